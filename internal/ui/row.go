package ui

import (
	"fmt"

	"github.com/idilsaglam/tada/internal/todo"
)

const maxTitle = 80

// Header is the counts line shown above the rows.
func Header(l todo.List) string {
	t := Current()
	done, pending := l.Stats()
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), len(l),
	)
}

// Row renders one item. index is the 0-based display position.
func Row(it todo.Item, index int, selected bool, mode todo.Mode) string {
	t := Current()

	title := it.Text
	if r := []rune(title); len(r) > maxTitle {
		title = string(r[:maxTitle-3]) + "..."
	}

	box := t.Muted.Render(t.BoxUnchecked)
	if it.Done {
		box = t.Success.Render(t.BoxChecked)
		title = t.DoneText.Render(title)
	}
	if mode == todo.ModeDelete {
		box = t.Danger.Render(t.SymFail)
	}

	prefix := "  "
	if selected {
		prefix = t.Selected.Render(t.Cursor)
	}
	return fmt.Sprintf("%s%s %s %s", prefix, t.Muted.Render(fmt.Sprintf("%2d.", index+1)), box, title)
}

// Lines renders the numbered rows, or a placeholder when l is empty.
func Lines(l todo.List) []string {
	if len(l) == 0 {
		return []string{Current().Muted.Render("no items")}
	}
	out := make([]string, 0, len(l))
	for i, it := range l {
		out = append(out, Row(it, i, false, todo.ModeToggle))
	}
	return out
}
