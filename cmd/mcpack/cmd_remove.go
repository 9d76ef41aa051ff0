package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/ruminaider/mcpack/internal/commands"
)

var removeYes bool

var removeCmd = &cobra.Command{
	Use:   "remove <uid>",
	Short: "Remove a component and its files",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uid := args[0]
		env, err := commandEnv()
		if err != nil {
			return err
		}

		if !removeYes {
			ok, err := confirm(fmt.Sprintf("Remove %s?", uid), "Its override file and local jars are deleted too.")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := commands.Remove(env, uid); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", uid)
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVarP(&removeYes, "yes", "y", false, "don't ask for confirmation")
}

// confirm asks a yes/no question.
func confirm(title, description string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&ok),
		),
	).Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}
