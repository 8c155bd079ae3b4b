package evaluator

import (
	"fmt"

	"github.com/lox/holdem-tracker/internal/deck"
)

// Contender is one player reaching showdown. A mucked contender stays in the
// list for display but is excluded from evaluation.
type Contender struct {
	ID        string
	HoleCards string // concatenated card tokens, e.g. "AsKs"
	Mucked    bool
}

// ShowdownResult names the winner(s) of a showdown. Multiple winners share
// the pot (their evaluations compare equal).
type ShowdownResult struct {
	Winners     []string
	Category    Category
	Description string
	BestFive    []deck.Card
}

// ResolveShowdown evaluates every non-mucked contender against the community
// cards and returns every contender whose hand ties the maximum.
func ResolveShowdown(contenders []Contender, community []deck.Card) (*ShowdownResult, error) {
	if len(community) < 3 {
		return nil, fmt.Errorf("%w: showdown needs at least 3 community cards, got %d", ErrInsufficientCards, len(community))
	}

	var (
		winners  []string
		best     Evaluation
		bestFive []deck.Card
		found    bool
	)

	for _, contender := range contenders {
		if contender.Mucked {
			continue
		}

		hole, err := deck.ParseCards(contender.HoleCards)
		if err != nil || len(hole) != 2 {
			return nil, fmt.Errorf("%w: bad hole cards %q for %s", ErrInsufficientCards, contender.HoleCards, contender.ID)
		}

		eval, five, err := EvaluateBest(hole, community)
		if err != nil {
			return nil, err
		}

		switch {
		case !found:
			found = true
			best, bestFive, winners = eval, five, []string{contender.ID}
		default:
			switch Compare(eval, best) {
			case 1:
				best, bestFive, winners = eval, five, []string{contender.ID}
			case 0:
				winners = append(winners, contender.ID)
			}
		}
	}

	if !found {
		return nil, fmt.Errorf("%w: no live hands at showdown", ErrInsufficientCards)
	}

	return &ShowdownResult{
		Winners:     winners,
		Category:    best.Category,
		Description: best.Category.String(),
		BestFive:    bestFive,
	}, nil
}
