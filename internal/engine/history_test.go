package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryUndoRestoresPriorState(t *testing.T) {
	h := testHand(t, 2, nil)
	hist := NewHistory(h)

	h2, err := h.Apply(SmallBlind, Raise, 30)
	require.NoError(t, err)
	hist.Push(h2)
	assert.Equal(t, 2, hist.Depth())

	prev, err := hist.Undo()
	require.NoError(t, err)
	assert.Same(t, h, prev, "undo returns the earlier state verbatim")
	assert.Equal(t, 15, prev.Pot)
	assert.Equal(t, 1, hist.Depth())
}

func TestHistoryUndoAtRoot(t *testing.T) {
	h := testHand(t, 2, nil)
	hist := NewHistory(h)

	// Undo at the initial state is idempotent.
	for i := 0; i < 3; i++ {
		got, err := hist.Undo()
		assert.ErrorIs(t, err, ErrSequenceExhausted)
		assert.Same(t, h, got)
		assert.Equal(t, 1, hist.Depth())
	}
}

func TestHistoryUndoAcrossStageTransition(t *testing.T) {
	h := testHand(t, 2, nil)
	hist := NewHistory(h)

	h2, err := h.Apply(SmallBlind, Raise, 30)
	require.NoError(t, err)
	hist.Push(h2)

	h3, err := h2.TransitionStage(WithFinalAction("C"))
	require.NoError(t, err)
	hist.Push(h3)
	require.Equal(t, Flop, hist.Current().Street)

	prev, err := hist.Undo()
	require.NoError(t, err)
	assert.Equal(t, Preflop, prev.Street)
	assert.Empty(t, prev.Board)
	assert.Equal(t, 40, prev.Pot)
}

func TestAppliedStatesDoNotAliasMaps(t *testing.T) {
	h := testHand(t, 2, nil)

	h2, err := h.Apply(SmallBlind, Raise, 30)
	require.NoError(t, err)

	// Mutating the new state's maps must not leak into the old one.
	h2.Stacks[SmallBlind] = 1
	assert.Equal(t, 995, h.Stacks[SmallBlind])
}
