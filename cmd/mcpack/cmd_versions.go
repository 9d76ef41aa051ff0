package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruminaider/mcpack/internal/commands"
)

var setVersionCmd = &cobra.Command{
	Use:   "set-version <uid> <version>",
	Short: "Select a different version of a component",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := commandEnv()
		if err != nil {
			return err
		}
		if err := commands.SetVersion(env, args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Set %s to %s\n", args[0], args[1])
		return nil
	},
}

var versionsCmd = &cobra.Command{
	Use:   "versions <uid>",
	Short: "List the versions available for a component",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := commandEnv()
		if err != nil {
			return err
		}
		versions, err := commands.Versions(env, args[0])
		if err != nil {
			return err
		}
		for _, v := range versions {
			fmt.Println(versionLine(v))
		}
		return nil
	},
}

func versionLine(v commands.VersionInfo) string {
	marker := "  "
	if v.Current {
		marker = "* "
	}
	line := marker + v.Version
	if !v.ReleaseTime.IsZero() {
		line += "  " + v.ReleaseTime.Format("2006-01-02")
	}
	if v.Recommended {
		line += "  (recommended)"
	}
	return line
}
