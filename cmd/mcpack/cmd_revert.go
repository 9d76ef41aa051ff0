package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ruminaider/mcpack/internal/commands"
)

var revertAllYes bool

var revertCmd = &cobra.Command{
	Use:   "revert <uid>",
	Short: "Delete a component's override file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := commandEnv()
		if err != nil {
			return err
		}
		if err := commands.Revert(env, args[0]); err != nil {
			return err
		}
		fmt.Printf("Reverted %s\n", args[0])
		return nil
	},
}

var revertAllCmd = &cobra.Command{
	Use:   "revert-all",
	Short: "Undo every customization in the instance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := commandEnv()
		if err != nil {
			return err
		}

		custom, err := commands.CustomComponents(env)
		if err != nil {
			return err
		}
		if len(custom) == 0 {
			fmt.Println("Nothing to revert. The instance is vanilla.")
			return nil
		}

		if !revertAllYes {
			ok, err := confirm(
				fmt.Sprintf("Revert %d customized component(s)?", len(custom)),
				"Removable components are removed, builtins go back to metadata: "+strings.Join(custom, ", "),
			)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := commands.RevertAll(env); err != nil {
			return err
		}
		fmt.Printf("Reverted %d component(s)\n", len(custom))
		return nil
	},
}

func init() {
	revertAllCmd.Flags().BoolVarP(&revertAllYes, "yes", "y", false, "don't ask for confirmation")
}
