package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruminaider/mcpack/internal/commands"
)

var installJarModCmd = &cobra.Command{
	Use:   "install-jarmod <file>...",
	Short: "Install jar mods into the game jar",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := commandEnv()
		if err != nil {
			return err
		}
		added, err := commands.InstallJarMods(env, args)
		for _, uid := range added {
			fmt.Printf("Installed %s\n", uid)
		}
		return err
	},
}

var installJarCmd = &cobra.Command{
	Use:   "install-jar <file>",
	Short: "Replace the game jar with a custom jar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := commandEnv()
		if err != nil {
			return err
		}
		if err := commands.InstallCustomJar(env, args[0]); err != nil {
			return err
		}
		fmt.Printf("Installed custom jar %s\n", args[0])
		return nil
	},
}
