package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-tracker/internal/token"
)

func TestApplyInputFullForm(t *testing.T) {
	h := testHand(t, 2, nil)

	h2, err := h.ApplyInput("SB R 30")
	require.NoError(t, err)
	assert.Equal(t, 30, h2.CurrentBet)
	assert.Equal(t, 40, h2.Pot)
}

func TestApplyInputDefaultsToNextActor(t *testing.T) {
	h := testHand(t, 2, nil)

	// No position code: the decision lands on the seat next to act.
	h2, err := h.ApplyInput("R 30")
	require.NoError(t, err)
	require.Len(t, h2.VisibleLog(), 1)
	assert.Equal(t, SmallBlind, h2.VisibleLog()[0].Position)
}

func TestApplyInputClosingSuffix(t *testing.T) {
	h := testHand(t, 2, nil)

	h2, err := h.ApplyInput("SB R 30")
	require.NoError(t, err)

	h3, err := h2.ApplyInput("C.")
	require.NoError(t, err)
	assert.Equal(t, 60, h3.Pot)
}

func TestApplyInputAggressiveCannotClose(t *testing.T) {
	h := testHand(t, 2, nil)

	for _, line := range []string{"SB R 30.", "SB A."} {
		_, err := h.ApplyInput(line)
		require.Error(t, err, "line %q", line)
		assert.ErrorIs(t, err, ErrIllegalAction)
	}

	flop := playToFlop(t)
	_, err := flop.ApplyInput("B 50.")
	assert.ErrorIs(t, err, ErrIllegalAction)
}

func TestApplyInputPlusPositionForm(t *testing.T) {
	h := testHand(t, 8, nil)

	h2, err := h.ApplyInput("UTG+1 R 30")
	require.NoError(t, err)
	require.Len(t, h2.VisibleLog(), 1)
	assert.Equal(t, UTGPlus1, h2.VisibleLog()[0].Position)
}

func TestApplyInputSeatNotAtTable(t *testing.T) {
	h := testHand(t, 2, nil)

	_, err := h.ApplyInput("UTG R 30")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIllegalAction)
	assert.Contains(t, err.Error(), "2-seat")
}

func TestApplyInputSyntaxErrors(t *testing.T) {
	h := testHand(t, 2, nil)

	for _, line := range []string{"", "SB", "Z 30", "SB R thirty", "SB R 30 x"} {
		_, err := h.ApplyInput(line)
		assert.ErrorIs(t, err, token.ErrInvalidInput, "line %q", line)
	}
}

func TestApplyInputIllegalActionPropagates(t *testing.T) {
	h := testHand(t, 2, nil)

	// Syntactically fine, semantically not: a raise below the minimum.
	_, err := h.ApplyInput("SB R 15")
	assert.ErrorIs(t, err, ErrIllegalAction)
}

func TestValidateInputLeavesStateUntouched(t *testing.T) {
	h := testHand(t, 2, nil)

	require.NoError(t, h.ValidateInput("SB R 30"))
	assert.Equal(t, 15, h.Pot)
	assert.Equal(t, 10, h.CurrentBet)
	assert.Empty(t, h.Log)

	assert.Error(t, h.ValidateInput("SB R 15"))
}

func TestParseDecisionCodes(t *testing.T) {
	cases := map[string]Decision{
		"X": Check, "K": Check, "B": Bet, "R": Raise, "C": Call, "F": Fold, "A": AllIn,
	}
	for code, want := range cases {
		got, err := ParseDecision(code)
		require.NoError(t, err, code)
		assert.Equal(t, want, got, code)
	}

	_, err := ParseDecision("Z")
	assert.ErrorIs(t, err, token.ErrInvalidInput)
}
