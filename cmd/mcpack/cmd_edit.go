package main

import (
	"errors"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ruminaider/mcpack/cmd/mcpack/tui"
	"github.com/ruminaider/mcpack/internal/commands"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the component list interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		env, err := commandEnv()
		if err != nil {
			return err
		}
		l, err := commands.Open(env)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, l.Close())
		}()

		_, err = tea.NewProgram(tui.NewEditor(filepath.Base(env.InstanceDir), l)).Run()
		return err
	},
}
