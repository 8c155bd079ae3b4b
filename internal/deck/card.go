package deck

import (
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card token cannot be parsed or names a
// card that is already in play.
var ErrInvalidCard = fmt.Errorf("invalid card token")

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs

	// SuitAny marks a partially-typed card whose suit has not been chosen
	// yet (the "X" token). It must be resolved against the live deck before
	// the card enters a hand.
	SuitAny
)

// String returns the single-character token for a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	case SuitAny:
		return "X"
	default:
		return "?"
	}
}

// Rank represents a card rank (2-14, aces high)
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single-character token for a rank
func (r Rank) String() string {
	switch r {
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r >= Two && r <= Nine {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// Card represents a playing card. Equality is by (rank, suit).
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the two-character token for the card (e.g. "As", "Td")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Resolved reports whether the card has a concrete suit
func (c Card) Resolved() bool {
	return c.Suit != SuitAny
}

// ParseCard parses a two-character token like "As" or "Kh" (case-insensitive).
// A suit character of 'X' yields a card with SuitAny which must be resolved
// against the live deck before use.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	rank, ok := parseRank(s[0])
	if !ok {
		return Card{}, fmt.Errorf("%w: bad rank %q", ErrInvalidCard, string(s[0]))
	}

	suit, ok := parseSuit(s[1])
	if !ok {
		return Card{}, fmt.Errorf("%w: bad suit %q", ErrInvalidCard, string(s[1]))
	}

	return Card{Rank: rank, Suit: suit}, nil
}

func parseRank(b byte) (Rank, bool) {
	switch b {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(b - '0'), true
	case 'T', 't':
		return Ten, true
	case 'J', 'j':
		return Jack, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	case 'A', 'a':
		return Ace, true
	default:
		return 0, false
	}
}

func parseSuit(b byte) (Suit, bool) {
	switch b {
	case 's', 'S':
		return Spades, true
	case 'h', 'H':
		return Hearts, true
	case 'd', 'D':
		return Diamonds, true
	case 'c', 'C':
		return Clubs, true
	case 'x', 'X':
		return SuitAny, true
	default:
		return 0, false
	}
}

// ParseCards parses a concatenated run of card tokens. Both interleaved
// ("AhKdQc") and rank-then-suit ("AKQhdc") layouts are accepted; the layout is
// detected and normalized. Duplicate cards within the input are rejected.
func ParseCards(s string) ([]Card, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	n := len(s) / 2

	cards, err := parseInterleaved(s, n)
	if err != nil {
		// Fall back to the RRRSSS layout before giving up.
		cards, err = parseGrouped(s, n)
		if err != nil {
			return nil, err
		}
	}

	seen := make(map[Card]bool, n)
	for _, c := range cards {
		if c.Resolved() && seen[c] {
			return nil, fmt.Errorf("%w: duplicate card %s", ErrInvalidCard, c)
		}
		seen[c] = true
	}

	return cards, nil
}

func parseInterleaved(s string, n int) ([]Card, error) {
	cards := make([]Card, 0, n)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func parseGrouped(s string, n int) ([]Card, error) {
	cards := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := ParseCard(string(s[i]) + string(s[n+i]))
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
