package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruminaider/mcpack/internal/commands"
)

var customizeCmd = &cobra.Command{
	Use:   "customize <uid>",
	Short: "Copy a component into an editable override file",
	Long:  "Copy a component's metadata into patches/<uid>.json. The file then takes precedence over the metadata until reverted.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := commandEnv()
		if err != nil {
			return err
		}
		if err := commands.Customize(env, args[0]); err != nil {
			return err
		}
		fmt.Printf("Customized %s\n", args[0])
		return nil
	},
}
