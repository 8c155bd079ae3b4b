package engine

import (
	"fmt"

	"github.com/lox/holdem-tracker/internal/deck"
	"github.com/lox/holdem-tracker/internal/evaluator"
)

// RevealHoleCards records a villain's hole cards at showdown and returns the
// new state. Once every live seat has either revealed or mucked, the showdown
// result is resolved automatically.
func (h *HandState) RevealHoleCards(pos Position, tokens string) (*HandState, error) {
	if err := h.checkRevealable(pos); err != nil {
		return nil, err
	}

	cards, err := deck.ParseCards(tokens)
	if err != nil {
		return nil, err
	}
	if len(cards) != 2 {
		return nil, fmt.Errorf("%w: %s must show exactly 2 cards", deck.ErrInvalidCard, pos)
	}

	next := h.clone()
	for _, c := range cards {
		resolved, err := next.Deck.ResolveCard(next.rng, c)
		if err != nil {
			return nil, err
		}
		next.Revealed[pos] = append(next.Revealed[pos], resolved)
	}

	next.tryResolveShowdown()
	next.checkInvariants()
	return next, nil
}

// MuckHoleCards marks a villain as mucking at showdown. Mucked players stay
// visible in the result input but are excluded from evaluation.
func (h *HandState) MuckHoleCards(pos Position) (*HandState, error) {
	if err := h.checkRevealable(pos); err != nil {
		return nil, err
	}

	// Somebody has to table a hand: refuse a muck that would leave the
	// showdown with nothing to evaluate.
	showable := 0
	for _, p := range h.Positions {
		if !h.Folded[p] && !h.Mucked[p] && p != pos {
			showable++
		}
	}
	if showable == 0 {
		return nil, fmt.Errorf("%w: %s cannot muck, no live hand would remain", ErrIllegalAction, pos)
	}

	next := h.clone()
	next.Mucked[pos] = true
	next.tryResolveShowdown()
	return next, nil
}

func (h *HandState) checkRevealable(pos Position) error {
	if h.Street != Showdown {
		return fmt.Errorf("%w: not at showdown", ErrIllegalAction)
	}
	if pos == h.Hero {
		return fmt.Errorf("%w: hero cards are already known", ErrIllegalAction)
	}
	if h.Folded[pos] {
		return fmt.Errorf("%w: %s folded", ErrIllegalAction, pos)
	}
	if _, ok := h.Revealed[pos]; ok || h.Mucked[pos] {
		return fmt.Errorf("%w: %s already showed or mucked", ErrIllegalAction, pos)
	}
	return nil
}

// tryResolveShowdown computes the result once every live villain has either
// revealed or mucked. Until then the result stays nil.
func (h *HandState) tryResolveShowdown() {
	if h.Result != nil || h.Street != Showdown {
		return
	}

	contenders := make([]evaluator.Contender, 0, len(h.Positions))
	for _, pos := range h.Positions {
		if h.Folded[pos] {
			continue
		}
		switch {
		case pos == h.Hero:
			contenders = append(contenders, evaluator.Contender{
				ID:        pos.Code(),
				HoleCards: cardTokens(h.HeroCards),
			})
		case h.Mucked[pos]:
			contenders = append(contenders, evaluator.Contender{ID: pos.Code(), Mucked: true})
		case h.Revealed[pos] != nil:
			contenders = append(contenders, evaluator.Contender{
				ID:        pos.Code(),
				HoleCards: cardTokens(h.Revealed[pos]),
			})
		default:
			return // still waiting on this seat
		}
	}

	result, err := evaluator.ResolveShowdown(contenders, h.Board)
	if err != nil {
		// Reaching showdown with an unresolvable board is a defect in the
		// state machine, not a user input error.
		panic(fmt.Sprintf("showdown resolution failed: %v", err))
	}
	h.Result = result
}

// resolveUncontested awards the pot to the last seat standing without
// evaluating cards.
func (h *HandState) resolveUncontested() {
	for _, pos := range h.Positions {
		if !h.Folded[pos] {
			h.Result = &evaluator.ShowdownResult{
				Winners:     []string{pos.Code()},
				Description: "wins uncontested",
			}
			return
		}
	}
}

func cardTokens(cards []deck.Card) string {
	s := ""
	for _, c := range cards {
		s += c.String()
	}
	return s
}
