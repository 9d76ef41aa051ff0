package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/ruminaider/mcpack/cmd/mcpack/tui"
	"github.com/ruminaider/mcpack/internal/commands"
	"github.com/ruminaider/mcpack/internal/pack"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the instance's components in merge order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := commandEnv()
		if err != nil {
			return err
		}
		rows, err := commands.List(env)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			fmt.Println("No components.")
			return nil
		}
		fmt.Println(renderRows(rows))
		return nil
	},
}

// renderRows draws rows as a table: position, name, version and problems.
func renderRows(rows []pack.Row) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tui.BorderStyle).
		Headers("#", "Name", "Version", "ID", "")
	for i, r := range rows {
		cells := r.Cells()
		t.Row(strconv.Itoa(i), cells[0], cells[1], r.UID, tui.Decoration(r.Decoration()))
	}
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return tui.HeaderStyle
		}
		if row >= 0 && row < len(rows) && rows[row].Custom && col == 2 {
			return tui.CustomStyle.Padding(0, 1)
		}
		return tui.CellStyle
	})
	return t.String()
}
