package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruminaider/mcpack/internal/launch"
	"github.com/ruminaider/mcpack/internal/pack"
)

// fakePack keeps rows in memory. The first row is pinned like a builtin.
type fakePack struct {
	rows       []pack.Row
	customized []int
	removeErr  error
}

func newFakePack() *fakePack {
	return &fakePack{rows: []pack.Row{
		{UID: "net.minecraft", Name: "Minecraft", Version: "1.7.10"},
		{UID: "net.minecraftforge", Name: "Forge", Version: "10.13.4.1614"},
		{UID: "com.example.mod", Name: "Mod", Version: "1.0", Custom: true},
	}}
}

func (f *fakePack) Rows() []pack.Row {
	out := make([]pack.Row, len(f.rows))
	copy(out, f.rows)
	return out
}

func (f *fakePack) MoveUp(i int) bool {
	if i <= 1 || i >= len(f.rows) {
		return false
	}
	f.rows[i], f.rows[i-1] = f.rows[i-1], f.rows[i]
	return true
}

func (f *fakePack) MoveDown(i int) bool {
	if i < 1 || i >= len(f.rows)-1 {
		return false
	}
	f.rows[i], f.rows[i+1] = f.rows[i+1], f.rows[i]
	return true
}

func (f *fakePack) Customize(i int) error {
	if f.rows[i].Custom {
		return pack.ErrNotCustomizable
	}
	f.rows[i].Custom = true
	f.customized = append(f.customized, i)
	return nil
}

func (f *fakePack) RevertToBase(i int) error {
	f.rows[i].Custom = false
	return nil
}

func (f *fakePack) Remove(i int) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.rows = append(f.rows[:i], f.rows[i+1:]...)
	return nil
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, e Editor, msgs ...tea.Msg) Editor {
	t.Helper()
	for _, msg := range msgs {
		model, _ := e.Update(msg)
		e = model.(Editor)
	}
	return e
}

func TestEditorNavigation(t *testing.T) {
	e := NewEditor("instance", newFakePack())

	e = press(t, e, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, e.cursor)

	e = press(t, e, runes("j"), runes("j"), runes("j"))
	assert.Equal(t, 2, e.cursor, "cursor stops at the last row")
}

func TestEditorMove(t *testing.T) {
	p := newFakePack()
	e := NewEditor("instance", p)

	e = press(t, e, runes("j"), runes("J"))
	assert.Equal(t, 2, e.cursor)
	assert.Equal(t, "net.minecraftforge", e.rows[2].UID)
	assert.False(t, e.failed)

	e = press(t, e, runes("J"))
	assert.Equal(t, 2, e.cursor)
	assert.True(t, e.failed)

	e = press(t, e, runes("K"))
	assert.Equal(t, 1, e.cursor)
	assert.Equal(t, "net.minecraftforge", e.rows[1].UID)
}

func TestEditorCustomizeAndRevert(t *testing.T) {
	p := newFakePack()
	e := NewEditor("instance", p)

	e = press(t, e, runes("c"))
	assert.Equal(t, []int{0}, p.customized)
	assert.True(t, e.rows[0].Custom)
	assert.Equal(t, "customized Minecraft", e.status)

	e = press(t, e, runes("c"))
	assert.True(t, e.failed)

	e = press(t, e, runes("r"))
	assert.False(t, e.rows[0].Custom)
	assert.False(t, e.failed)
}

func TestEditorRemoveNeedsConfirmation(t *testing.T) {
	p := newFakePack()
	e := NewEditor("instance", p)
	e = press(t, e, runes("j"), runes("j"))

	e = press(t, e, runes("x"), runes("n"))
	assert.Len(t, p.rows, 3)
	assert.Equal(t, "remove cancelled", e.status)

	e = press(t, e, runes("x"), runes("y"))
	require.Len(t, p.rows, 2)
	assert.Len(t, e.rows, 2)
	assert.Equal(t, 1, e.cursor)

	p.removeErr = errors.New("component is not removable")
	e = press(t, e, runes("x"), runes("y"))
	assert.True(t, e.failed)
	assert.Len(t, e.rows, 2)
}

func TestEditorQuit(t *testing.T) {
	e := NewEditor("instance", newFakePack())
	model, cmd := e.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.True(t, model.(Editor).Quitting())
	assert.Empty(t, model.(Editor).View())
}

func TestEditorView(t *testing.T) {
	p := newFakePack()
	p.rows[1].Severity = launch.SeverityError
	view := NewEditor("survival", p).View()

	assert.Contains(t, view, "survival")
	assert.Contains(t, view, "Minecraft")
	assert.Contains(t, view, "1.0 (Custom)")
	assert.Contains(t, view, "error")
}
