package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruminaider/mcpack/internal/commands"
)

var migrateVersions map[string]string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Convert a legacy instance into a component pack",
	Long: "Build mmc-pack.json from a legacy instance: version.json/custom.json, patches/, order.json " +
		"and the versions in instance.cfg. Legacy files are renamed to .old, never deleted.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := commandEnv()
		if err != nil {
			return err
		}
		uids, err := commands.Migrate(env, migrateVersions)
		if err != nil {
			return err
		}
		fmt.Printf("Migrated %s with %d component(s):\n", env.InstanceDir, len(uids))
		for _, uid := range uids {
			fmt.Printf("  - %s\n", uid)
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringToStringVar(&migrateVersions, "set", nil, "override a legacy component version (uid=version)")
}
