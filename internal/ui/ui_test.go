package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/tada/internal/todo"
)

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 5))
	assert.Equal(t, "█████ 100%", ProgressBar(3, 3, 5))
	assert.True(t, strings.HasSuffix(ProgressBar(1, 2, 10), " 50%"))
}

func TestRowMarksDoneAndPosition(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	assert.Equal(t, "   1. [ ] walk dog", Row(todo.Item{Text: "walk dog"}, 0, false, todo.ModeToggle))
	assert.Equal(t, ">  4. [x] walk dog", Row(todo.Item{Text: "walk dog", Done: true}, 3, true, todo.ModeToggle))
	assert.Contains(t, Row(todo.Item{Text: "x"}, 0, false, todo.ModeDelete), "error:")
}

func TestRowTruncatesLongText(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	row := Row(todo.Item{Text: strings.Repeat("a", 200)}, 0, false, todo.ModeToggle)
	assert.True(t, strings.HasSuffix(row, "..."))
	assert.Less(t, len(row), 100)
}

func TestHeaderCounts(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	l := todo.List{{Text: "a", Done: true}, {Text: "b"}, {Text: "c"}}
	assert.Equal(t, "Todos  x 1  - 2  Total 3", Header(l))
}

func TestLinesEmpty(t *testing.T) {
	assert.Equal(t, []string{Current().Muted.Render("no items")}, Lines(nil))
}

func TestOKAndFail(t *testing.T) {
	SetTheme("mono")
	t.Cleanup(func() { SetTheme("classic") })

	var out bytes.Buffer
	OK(&out, "added")
	Fail(&out, "boom")
	assert.Equal(t, "ok added\nerror: boom\n", out.String())
}
