package cli

import (
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/ui"
)

func renderList(items todo.List, group bool) string {
	t := ui.Current()
	done, _ := items.Stats()

	var lines []string
	lines = append(lines, ui.Header(items))
	lines = append(lines, t.Muted.Render(ui.ProgressBar(done, len(items), 28)))
	lines = append(lines, "")

	if group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, ui.Lines(items)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `todo add \"Buy milk\"`"))
	return ui.Panel(lines)
}

// groupLines keeps each item's position from the full list so the numbers
// still work with done/rm.
func groupLines(items todo.List) []string {
	t := ui.Current()
	section := func(title string, want bool) []string {
		out := []string{t.Accent.Render(title)}
		for i, it := range items {
			if it.Done == want {
				out = append(out, ui.Row(it, i, false, todo.ModeToggle))
			}
		}
		if len(out) == 1 {
			out = append(out, t.Muted.Render("(none)"))
		}
		return out
	}

	lines := section("Pending", false)
	lines = append(lines, "")
	return append(lines, section("Done", true)...)
}
