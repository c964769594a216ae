package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

// row adapts todo.Item to bubbles/list.Item
type row struct{ todo.Item }

func (r row) FilterValue() string { return r.Text }

func rows(l todo.List) []list.Item {
	out := make([]list.Item, 0, len(l))
	for _, it := range l {
		out = append(out, row{it})
	}
	return out
}

// rowDelegate draws each item on a single line via ui.Row.
type rowDelegate struct {
	mode    todo.Mode
	focused bool
}

func (d rowDelegate) Height() int                               { return 1 }
func (d rowDelegate) Spacing() int                              { return 0 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(row)
	if !ok {
		return
	}
	fmt.Fprint(w, ui.Row(r.Item, index, d.focused && index == m.Index(), d.mode))
}
