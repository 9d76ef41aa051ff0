package commands

import (
	"errors"
	"fmt"

	"github.com/ruminaider/mcpack/internal/fsutil"
	"github.com/ruminaider/mcpack/internal/paths"
)

// ErrAlreadyMigrated is returned by Migrate for an instance that has a pack file.
var ErrAlreadyMigrated = errors.New("instance already has a pack file")

// Migrate converts a legacy instance into a pack and returns the resulting
// component uids. versions override the component versions found in
// instance.cfg.
func Migrate(env Env, versions map[string]string) ([]string, error) {
	if fsutil.Exists(paths.PackFile(env.InstanceDir)) {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyMigrated, env.InstanceDir)
	}
	l, err := newList(env)
	if err != nil {
		return nil, err
	}
	for uid, version := range versions {
		l.SetOldConfigVersion(uid, version)
	}
	if err := l.Load(); err != nil {
		return nil, fmt.Errorf("migrating %s: %w", env.InstanceDir, err)
	}
	var uids []string
	for _, c := range l.Components() {
		uids = append(uids, c.ID())
	}
	return uids, l.Close()
}
