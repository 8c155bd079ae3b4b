package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// playToShowdown checks a heads-up hand down on a fixed board. Hero (BB)
// holds AsKs and the board gives them top pair.
func playToShowdown(t *testing.T) *HandState {
	t.Helper()
	h := testHand(t, 2, nil)

	h, err := h.Apply(SmallBlind, Call, 0)
	require.NoError(t, err)
	h, err = h.Apply(BigBlind, Check, 0)
	require.NoError(t, err)

	boards := []string{"Ah7c2d", "Td", "3h"}
	for _, b := range boards {
		h, err = h.TransitionStage(WithBoardCards(b))
		require.NoError(t, err)

		h, err = h.Apply(SmallBlind, Check, 0)
		require.NoError(t, err)
		h, err = h.Apply(BigBlind, Check, 0)
		require.NoError(t, err)
	}

	h, err = h.TransitionStage()
	require.NoError(t, err)
	require.Equal(t, Showdown, h.Street)
	return h
}

func TestRevealResolvesShowdown(t *testing.T) {
	h := playToShowdown(t)
	require.Nil(t, h.Result)

	h, err := h.RevealHoleCards(SmallBlind, "7h7d")
	require.NoError(t, err)

	require.NotNil(t, h.Result)
	assert.Equal(t, []string{"SB"}, h.Result.Winners, "trip sevens beat top pair")
}

func TestMuckExcludesFromEvaluation(t *testing.T) {
	h := playToShowdown(t)

	h, err := h.MuckHoleCards(SmallBlind)
	require.NoError(t, err)

	require.NotNil(t, h.Result)
	assert.Equal(t, []string{"BB"}, h.Result.Winners)
	assert.True(t, h.Mucked[SmallBlind])
}

func TestRevealRejectsInPlayCards(t *testing.T) {
	h := playToShowdown(t)

	// Ah is on the board, As is hero's.
	for _, tokens := range []string{"Ah2c", "As2c"} {
		_, err := h.RevealHoleCards(SmallBlind, tokens)
		assert.Error(t, err, "tokens %s", tokens)
	}
}

func TestRevealGuards(t *testing.T) {
	h := playToShowdown(t)

	_, err := h.RevealHoleCards(BigBlind, "QcQd")
	assert.ErrorIs(t, err, ErrIllegalAction, "hero cards are already known")

	_, err = h.RevealHoleCards(SmallBlind, "QcQdQh")
	assert.Error(t, err, "exactly two cards")

	h2, err := h.RevealHoleCards(SmallBlind, "QcQd")
	require.NoError(t, err)
	_, err = h2.RevealHoleCards(SmallBlind, "JcJd")
	assert.ErrorIs(t, err, ErrIllegalAction, "already showed")
}

func TestRevealBeforeShowdownRejected(t *testing.T) {
	h := playToFlop(t)
	_, err := h.RevealHoleCards(SmallBlind, "QcQd")
	assert.ErrorIs(t, err, ErrIllegalAction)
}

func TestMuckNeedsRemainingHand(t *testing.T) {
	// Hero cannot muck at all, and a lone villain can, because hero's hand
	// is always live.
	h := playToShowdown(t)

	_, err := h.MuckHoleCards(h.Hero)
	assert.ErrorIs(t, err, ErrIllegalAction)

	h2, err := h.MuckHoleCards(SmallBlind)
	require.NoError(t, err)
	require.NotNil(t, h2.Result)
}

func TestThreeWayShowdownSplit(t *testing.T) {
	// 3-max, everyone checks the hand down on a board that plays for
	// everyone.
	h := testHand(t, 3, nil)

	var err error
	h, err = h.Apply(Button, Call, 0)
	require.NoError(t, err)
	h, err = h.Apply(SmallBlind, Call, 0)
	require.NoError(t, err)
	h, err = h.Apply(BigBlind, Check, 0)
	require.NoError(t, err)

	boards := []string{"9c9d9h", "Th", "Tc"}
	for _, b := range boards {
		h, err = h.TransitionStage(WithBoardCards(b))
		require.NoError(t, err)
		for _, pos := range []Position{SmallBlind, BigBlind, Button} {
			h, err = h.Apply(pos, Check, 0)
			require.NoError(t, err)
		}
	}

	h, err = h.TransitionStage()
	require.NoError(t, err)

	// Both villains hold small pocket pairs below the board: both play the
	// board's full house and split against each other, but hero's ace kicker
	// is irrelevant too since nines full of tens is the board. Three-way chop.
	h, err = h.RevealHoleCards(SmallBlind, "2c2d")
	require.NoError(t, err)
	h, err = h.RevealHoleCards(Button, "3c3d")
	require.NoError(t, err)

	require.NotNil(t, h.Result)
	assert.ElementsMatch(t, []string{"SB", "BB", "BTN"}, h.Result.Winners)
}
