package evaluator

import (
	"fmt"
	"sort"

	"github.com/lox/holdem-tracker/internal/deck"
)

// ErrInsufficientCards is returned when a showdown or evaluation is attempted
// without enough known cards.
var ErrInsufficientCards = fmt.Errorf("insufficient cards")

// Category represents the type of poker hand, ordered from weakest to strongest
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable hand description
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Evaluation is the strength of a 5-card hand: a category plus an ordered
// tie-break vector whose length and meaning depend on the category (e.g.
// [pair, kicker, kicker, kicker] for Pair, [trips, pair] for FullHouse).
type Evaluation struct {
	Category Category
	Tiebreak []deck.Rank
}

// Compare compares two evaluations lexicographically: category first, then the
// tie-break vectors position by position. Returns 1 if a wins, -1 if b wins,
// 0 for a tie (split pot).
func Compare(a, b Evaluation) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	for i := 0; i < len(a.Tiebreak) && i < len(b.Tiebreak); i++ {
		if a.Tiebreak[i] != b.Tiebreak[i] {
			if a.Tiebreak[i] > b.Tiebreak[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// EvaluateBest finds the best 5-card hand from two hole cards and 3-5
// community cards by scoring every 5-card subset and keeping the maximum.
// It returns the winning evaluation and the 5 cards composing it.
func EvaluateBest(holeCards, communityCards []deck.Card) (Evaluation, []deck.Card, error) {
	if len(holeCards) != 2 {
		return Evaluation{}, nil, fmt.Errorf("%w: need exactly 2 hole cards, got %d", ErrInsufficientCards, len(holeCards))
	}
	if len(communityCards) < 3 || len(communityCards) > 5 {
		return Evaluation{}, nil, fmt.Errorf("%w: need 3-5 community cards, got %d", ErrInsufficientCards, len(communityCards))
	}

	all := make([]deck.Card, 0, 7)
	all = append(all, holeCards...)
	all = append(all, communityCards...)
	for _, c := range all {
		if !c.Resolved() {
			return Evaluation{}, nil, fmt.Errorf("%w: unresolved card %s", deck.ErrInvalidCard, c)
		}
	}

	var best Evaluation
	var bestCards []deck.Card
	first := true

	forEachFiveCardSubset(all, func(subset []deck.Card) {
		eval := EvaluateFive(subset)
		if first || Compare(eval, best) > 0 {
			best = eval
			bestCards = append(bestCards[:0], subset...)
			first = false
		}
	})

	return best, bestCards, nil
}

// forEachFiveCardSubset visits every 5-card combination of the given cards
func forEachFiveCardSubset(cards []deck.Card, visit func([]deck.Card)) {
	n := len(cards)
	subset := make([]deck.Card, 5)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						subset[0], subset[1], subset[2], subset[3], subset[4] =
							cards[a], cards[b], cards[c], cards[d], cards[e]
						visit(subset)
					}
				}
			}
		}
	}
}

// EvaluateFive scores exactly five cards
func EvaluateFive(cards []deck.Card) Evaluation {
	ranks := make([]deck.Rank, 5)
	for i, c := range cards {
		ranks[i] = c.Rank
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })

	flush := true
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			flush = false
			break
		}
	}

	high, straight := straightHigh(ranks)

	if flush && straight {
		return Evaluation{Category: StraightFlush, Tiebreak: []deck.Rank{high}}
	}

	counts := make(map[deck.Rank]int, 5)
	for _, r := range ranks {
		counts[r]++
	}

	if quad := rankWithCount(counts, 4); quad != 0 {
		return Evaluation{Category: FourOfAKind, Tiebreak: []deck.Rank{quad, kickers(ranks, 1, quad)[0]}}
	}

	trips := rankWithCount(counts, 3)
	pair := rankWithCount(counts, 2)
	if trips != 0 && pair != 0 {
		return Evaluation{Category: FullHouse, Tiebreak: []deck.Rank{trips, pair}}
	}

	if flush {
		return Evaluation{Category: Flush, Tiebreak: ranks}
	}

	if straight {
		return Evaluation{Category: Straight, Tiebreak: []deck.Rank{high}}
	}

	if trips != 0 {
		return Evaluation{Category: ThreeOfAKind, Tiebreak: append([]deck.Rank{trips}, kickers(ranks, 2, trips)...)}
	}

	if pair != 0 {
		if low := rankWithCountBelow(counts, 2, pair); low != 0 {
			return Evaluation{Category: TwoPair, Tiebreak: []deck.Rank{pair, low, kickers(ranks, 1, pair, low)[0]}}
		}
		return Evaluation{Category: Pair, Tiebreak: append([]deck.Rank{pair}, kickers(ranks, 3, pair)...)}
	}

	return Evaluation{Category: HighCard, Tiebreak: ranks}
}

// straightHigh detects five consecutive ranks in a descending-sorted slice.
// The wheel (A-2-3-4-5) counts as a five-high straight, not ace-high.
func straightHigh(sorted []deck.Rank) (deck.Rank, bool) {
	if sorted[0] == deck.Ace && sorted[1] == deck.Five && sorted[2] == deck.Four &&
		sorted[3] == deck.Three && sorted[4] == deck.Two {
		return deck.Five, true
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]-1 {
			return 0, false
		}
	}
	return sorted[0], true
}

// rankWithCount returns the highest rank appearing exactly n times (0 if none)
func rankWithCount(counts map[deck.Rank]int, n int) deck.Rank {
	var best deck.Rank
	for r, c := range counts {
		if c == n && r > best {
			best = r
		}
	}
	return best
}

// rankWithCountBelow returns the highest rank appearing exactly n times,
// strictly below the given bound
func rankWithCountBelow(counts map[deck.Rank]int, n int, bound deck.Rank) deck.Rank {
	var best deck.Rank
	for r, c := range counts {
		if c == n && r < bound && r > best {
			best = r
		}
	}
	return best
}

// kickers returns the top n ranks in descending order, excluding used ranks
func kickers(sorted []deck.Rank, n int, used ...deck.Rank) []deck.Rank {
	out := make([]deck.Rank, 0, n)
	for _, r := range sorted {
		skip := false
		for _, u := range used {
			if r == u {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, r)
			if len(out) == n {
				break
			}
		}
	}
	return out
}
