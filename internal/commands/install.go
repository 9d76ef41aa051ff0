package commands

import (
	"strings"

	"github.com/ruminaider/mcpack/internal/pack"
)

// InstallJarMods installs each file as a jar mod and returns the new
// component uids.
func InstallJarMods(env Env, files []string) ([]string, error) {
	var added []string
	err := withList(env, func(l *pack.List) error {
		before := map[string]bool{}
		for _, c := range l.Components() {
			before[c.ID()] = true
		}
		installErr := l.InstallJarMods(files)
		for _, c := range l.Components() {
			if !before[c.ID()] && strings.HasPrefix(c.ID(), pack.JarModUIDPrefix) {
				added = append(added, c.ID())
			}
		}
		return installErr
	})
	return added, err
}

// InstallCustomJar replaces the game jar with file.
func InstallCustomJar(env Env, file string) error {
	return withList(env, func(l *pack.List) error {
		return l.InstallCustomJar(file)
	})
}
