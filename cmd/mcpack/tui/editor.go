// Package tui contains the interactive component list editor.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ruminaider/mcpack/internal/pack"
)

// Pack is the part of *pack.List the editor drives.
type Pack interface {
	Rows() []pack.Row
	MoveUp(index int) bool
	MoveDown(index int) bool
	Customize(index int) error
	RevertToBase(index int) error
	Remove(index int) error
}

// Editor lists the components of one instance and edits them in place.
// Changes go through the pack, which saves them on its own schedule.
type Editor struct {
	title         string
	pack          Pack
	rows          []pack.Row
	cursor        int
	status        string
	failed        bool
	confirmRemove bool
	quitting      bool
}

// NewEditor returns an editor over p.
func NewEditor(title string, p Pack) Editor {
	return Editor{title: title, pack: p, rows: p.Rows()}
}

func (e Editor) Init() tea.Cmd { return nil }

func (e Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}

	if e.confirmRemove {
		e.confirmRemove = false
		if key.String() == "y" {
			e.apply("removed", e.pack.Remove)
			e.cursor = min(e.cursor, max(len(e.rows)-1, 0))
		} else {
			e.setStatus("remove cancelled", false)
		}
		return e, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		e.quitting = true
		return e, tea.Quit
	case "up", "k":
		if e.cursor > 0 {
			e.cursor--
		}
	case "down", "j":
		if e.cursor < len(e.rows)-1 {
			e.cursor++
		}
	case "K", "shift+up":
		if e.pack.MoveUp(e.cursor) {
			e.cursor--
			e.refresh()
			e.setStatus("moved up", false)
		} else {
			e.setStatus("can't move this component up", true)
		}
	case "J", "shift+down":
		if e.pack.MoveDown(e.cursor) {
			e.cursor++
			e.refresh()
			e.setStatus("moved down", false)
		} else {
			e.setStatus("can't move this component down", true)
		}
	case "c":
		e.apply("customized", e.pack.Customize)
	case "r":
		e.apply("reverted", e.pack.RevertToBase)
	case "x", "delete":
		if len(e.rows) > 0 {
			e.confirmRemove = true
			e.setStatus(fmt.Sprintf("remove %s? (y/N)", e.rows[e.cursor].Name), false)
		}
	}
	return e, nil
}

func (e *Editor) apply(done string, op func(int) error) {
	if len(e.rows) == 0 {
		return
	}
	name := e.rows[e.cursor].Name
	if err := op(e.cursor); err != nil {
		e.setStatus(err.Error(), true)
	} else {
		e.setStatus(fmt.Sprintf("%s %s", done, name), false)
	}
	e.refresh()
}

func (e *Editor) refresh() {
	e.rows = e.pack.Rows()
}

func (e *Editor) setStatus(msg string, failed bool) {
	e.status = msg
	e.failed = failed
}

// Quitting reports whether the user asked to leave.
func (e Editor) Quitting() bool { return e.quitting }

func (e Editor) View() string {
	if e.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(TitleStyle.Render(e.title))
	b.WriteString("\n\n")

	if len(e.rows) == 0 {
		b.WriteString(HelpStyle.Render("  no components"))
		b.WriteString("\n")
	}
	nameWidth := 4
	for _, r := range e.rows {
		nameWidth = max(nameWidth, len(r.Name))
	}
	for i, r := range e.rows {
		cells := r.Cells()
		line := fmt.Sprintf("%-*s  %s", nameWidth, cells[0], cells[1])
		switch {
		case i == e.cursor:
			line = SelectedStyle.Render("> " + line)
		case r.Custom:
			line = "  " + CustomStyle.Render(line)
		default:
			line = "  " + line
		}
		if dec := Decoration(r.Decoration()); dec != "" {
			line += "  " + dec
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if e.status != "" {
		style := SuccessStyle
		if e.failed {
			style = ErrorStyle
		}
		b.WriteString(style.Render(e.status))
		b.WriteString("\n")
	}
	b.WriteString(HelpStyle.Render("j/k: select · J/K: move · c: customize · r: revert · x: remove · q: quit"))
	b.WriteString("\n")
	return b.String()
}
