package commands

import (
	"fmt"

	"github.com/ruminaider/mcpack/internal/launch"
	"github.com/ruminaider/mcpack/internal/pack"
)

// List returns the rows of the instance's component list in merge order.
func List(env Env) ([]pack.Row, error) {
	var rows []pack.Row
	err := withList(env, func(l *pack.List) error {
		rows = l.Rows()
		return nil
	})
	return rows, err
}

// Profile returns the merged launch profile. When the merge fails, the
// error says which component could not be applied.
func Profile(env Env) (*launch.Profile, error) {
	var profile *launch.Profile
	err := withList(env, func(l *pack.List) error {
		if err := l.ReapplyPatches(); err != nil {
			return fmt.Errorf("no launchable profile: %w", err)
		}
		profile = l.Profile()
		return nil
	})
	return profile, err
}
