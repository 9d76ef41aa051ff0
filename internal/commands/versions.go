package commands

import (
	"fmt"
	"time"

	"github.com/ruminaider/mcpack/internal/pack"
)

// VersionInfo describes one selectable version of a component.
type VersionInfo struct {
	Version     string
	ReleaseTime time.Time
	Recommended bool
	Current     bool
}

// Versions lists the versions known for a component, newest first.
func Versions(env Env, uid string) ([]VersionInfo, error) {
	var out []VersionInfo
	err := withList(env, func(l *pack.List) error {
		c := l.Component(uid)
		if c == nil {
			return fmt.Errorf("%w: %s", pack.ErrNotFound, uid)
		}
		list := c.VersionList()
		if list == nil {
			return fmt.Errorf("no versions known for %s", uid)
		}
		if err := list.Load(); err != nil {
			return fmt.Errorf("loading versions of %s: %w", uid, err)
		}
		current := c.Version()
		for _, v := range list.Versions() {
			out = append(out, VersionInfo{
				Version:     v.Version(),
				ReleaseTime: v.Time(),
				Recommended: v.IsRecommended(),
				Current:     v.Version() == current,
			})
		}
		return nil
	})
	return out, err
}

// SetVersion selects a different version of a metadata-backed component.
func SetVersion(env Env, uid, version string) error {
	return withList(env, func(l *pack.List) error {
		return l.SetComponentVersion(uid, version)
	})
}
