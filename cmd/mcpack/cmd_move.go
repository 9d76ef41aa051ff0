package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ruminaider/mcpack/internal/commands"
	"github.com/ruminaider/mcpack/internal/pack"
)

var moveCmd = &cobra.Command{
	Use:       "move <uid> up|down",
	Short:     "Move a component one place earlier or later in merge order",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		direction, err := parseDirection(args[1])
		if err != nil {
			return err
		}
		env, err := commandEnv()
		if err != nil {
			return err
		}

		moved, err := commands.Move(env, args[0], direction)
		if err != nil {
			return err
		}
		if !moved {
			fmt.Printf("%s can't move %s\n", args[0], direction)
			return nil
		}
		fmt.Printf("Moved %s %s\n", args[0], direction)
		return nil
	},
}

func parseDirection(s string) (pack.Direction, error) {
	switch s {
	case "up":
		return pack.Up, nil
	case "down":
		return pack.Down, nil
	default:
		return pack.Up, fmt.Errorf("direction must be up or down, got %q", s)
	}
}
