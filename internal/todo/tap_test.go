package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTapToggleMode(t *testing.T) {
	l := sample()
	act := Tap(ModeToggle, l, "c")

	assert.Equal(t, ActionApplied, act.Kind)
	assert.True(t, act.Changed)
	require.NoError(t, act.Err)
	assert.True(t, act.List[2].Done)
}

func TestTapDeleteModeAsksFirst(t *testing.T) {
	l := sample()
	act := Tap(ModeDelete, l, "b")

	assert.Equal(t, ActionConfirm, act.Kind)
	assert.Equal(t, "b", act.ID)
	assert.False(t, act.Changed)
	assert.Equal(t, sample(), act.List)

	t.Run("cancel", func(t *testing.T) {
		res := Confirm(l, act.ID, false)
		assert.False(t, res.Changed)
		assert.Equal(t, sample(), res.List)
	})

	t.Run("confirm", func(t *testing.T) {
		res := Confirm(l, act.ID, true)
		assert.True(t, res.Changed)
		assert.Len(t, res.List, 2)
		assert.Equal(t, -1, res.List.Index("b"))
	})
}

func TestTapUnknownItem(t *testing.T) {
	for _, m := range []Mode{ModeToggle, ModeDelete} {
		act := Tap(m, sample(), "nope")
		assert.Equal(t, ActionApplied, act.Kind, m.String())
		assert.ErrorIs(t, act.Err, ErrNoSuchItem)
		assert.False(t, act.Changed)
	}
}

func TestModeFlip(t *testing.T) {
	assert.Equal(t, ModeDelete, ModeToggle.Flip())
	assert.Equal(t, ModeToggle, ModeDelete.Flip())
	assert.Equal(t, "delete", ModeDelete.String())
}
