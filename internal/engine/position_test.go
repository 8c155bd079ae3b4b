package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionsForSeats(t *testing.T) {
	cases := map[int][]Position{
		2: {SmallBlind, BigBlind},
		3: {SmallBlind, BigBlind, Button},
		6: {SmallBlind, BigBlind, UTG, Hijack, Cutoff, Button},
		9: {SmallBlind, BigBlind, UTG, UTGPlus1, UTGPlus2, Lojack, Hijack, Cutoff, Button},
	}
	for seats, want := range cases {
		got, err := PositionsForSeats(seats)
		require.NoError(t, err, "seats %d", seats)
		assert.Equal(t, want, got, "seats %d", seats)
	}

	for _, seats := range []int{0, 1, 10, -3} {
		_, err := PositionsForSeats(seats)
		assert.ErrorIs(t, err, ErrIllegalAction, "seats %d", seats)
	}
}

func TestPreflopOrder(t *testing.T) {
	six, err := PositionsForSeats(6)
	require.NoError(t, err)
	assert.Equal(t,
		[]Position{UTG, Hijack, Cutoff, Button, SmallBlind, BigBlind},
		preflopOrder(six),
		"first seat after the big blind opens, blinds act last")

	two, err := PositionsForSeats(2)
	require.NoError(t, err)
	assert.Equal(t, []Position{SmallBlind, BigBlind}, preflopOrder(two),
		"heads-up the small blind opens")
}

func TestParsePositionRoundTrip(t *testing.T) {
	all, err := PositionsForSeats(9)
	require.NoError(t, err)

	for _, p := range all {
		got, err := ParsePosition(p.Code())
		require.NoError(t, err, p.Code())
		assert.Equal(t, p, got)
	}

	// Case-insensitive, with the common aliases.
	for in, want := range map[string]Position{
		"sb": SmallBlind, "btn": Button, "BU": Button, "utg+1": UTGPlus1, "Utg2": UTGPlus2,
	} {
		got, err := ParsePosition(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err = ParsePosition("MP")
	assert.ErrorIs(t, err, ErrIllegalAction)
}
