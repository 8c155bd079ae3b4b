package engine

import (
	"fmt"

	"github.com/lox/holdem-tracker/internal/deck"
)

// Street represents the betting round
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown"}[s]
}

// dealCount returns the number of community cards revealed entering the street
func (s Street) dealCount() int {
	switch s {
	case Flop:
		return 3
	case Turn, River:
		return 1
	default:
		return 0
	}
}

type stageOpts struct {
	finalAction string
	boardTokens []deck.Card
	boardErr    error
}

// StageOption configures a stage transition
type StageOption func(*stageOpts)

// WithFinalAction applies a trailing decision before advancing the stage
func WithFinalAction(input string) StageOption {
	return func(o *stageOpts) { o.finalAction = input }
}

// WithBoardCards supplies the community cards to reveal instead of drawing
// them at random. Tokens beyond the next street's reveal are carried forward
// for later streets (useful when an all-in runout is fast-forwarded). A
// malformed token fails the transition rather than dealing a random board.
func WithBoardCards(tokens string) StageOption {
	return func(o *stageOpts) {
		o.boardTokens, o.boardErr = deck.ParseCards(tokens)
	}
}

// TransitionStage closes the current betting street and advances. Leaving
// preflop, every seat from the opening order that never acted is backfilled
// with a hidden synthetic fold. Entering a new street the action sequence is
// rebuilt in seat-rank order from the seats still in the hand, street
// contributions and the facing bet reset, and the pot is snapshotted. When at
// most one player can still act against a called all-in, the remaining
// reveals are fast-forwarded straight to showdown.
func (h *HandState) TransitionStage(opts ...StageOption) (*HandState, error) {
	var o stageOpts
	for _, opt := range opts {
		opt(&o)
	}
	if o.boardErr != nil {
		return nil, o.boardErr
	}

	next := h
	if o.finalAction != "" {
		applied, err := h.ApplyInput(o.finalAction)
		if err != nil {
			return nil, err
		}
		next = applied
	}

	next = next.clone()
	if err := next.advance(&o); err != nil {
		return nil, err
	}
	next.checkInvariants()
	return next, nil
}

func (h *HandState) advance(o *stageOpts) error {
	if h.Street >= Showdown {
		return fmt.Errorf("%w: hand is over", ErrIllegalAction)
	}

	if h.Street == Preflop {
		h.backfillAutoFolds()
	}

	// Uncontested: everyone else folded, the last seat standing takes the pot.
	if h.LiveCount() <= 1 {
		h.Street = Showdown
		h.Sequence = nil
		h.resolveUncontested()
		return nil
	}

	if pos, ok := h.NextToAct(); ok {
		return fmt.Errorf("%w: %s still owes a decision", ErrIllegalAction, pos)
	}

	for {
		h.Street++
		h.PotStreets[h.Street] = h.Pot

		if h.Street == Showdown {
			h.Sequence = nil
			h.tryResolveShowdown()
			return nil
		}

		if err := h.dealBoard(o); err != nil {
			return err
		}
		h.resetStreet()

		// A called all-in with at most one seat able to act fast-forwards
		// the remaining reveals with no further betting.
		if h.actionableCount() > 1 || !h.anyLiveAllIn() {
			return nil
		}
	}
}

// backfillAutoFolds inserts a hidden synthetic fold for every preflop seat
// that stayed silent while the action moved past it. A seat the action never
// reached (everyone folded first) is not folded.
func (h *HandState) backfillAutoFolds() {
	for i, pos := range h.openingOrder {
		if h.Folded[pos] || h.hasActed(pos) {
			continue
		}
		reached := false
		for _, a := range h.Log {
			if a.Auto || a.Street != Preflop {
				continue
			}
			for j := i + 1; j < len(h.openingOrder); j++ {
				if h.openingOrder[j] == a.Position {
					reached = true
					break
				}
			}
		}
		if !reached {
			continue
		}

		h.Folded[pos] = true
		h.Log = append(h.Log, PlayerAction{
			Position: pos,
			Decision: Fold,
			Street:   Preflop,
			Index:    len(h.Log),
			Auto:     true,
		})
		kept := h.Sequence[:0]
		for _, ps := range h.Sequence {
			if ps.Position != pos {
				kept = append(kept, ps)
			}
		}
		h.Sequence = kept
	}
}

// dealBoard reveals the street's community cards, from the supplied tokens
// when present, otherwise drawn at random from the live deck.
func (h *HandState) dealBoard(o *stageOpts) error {
	n := h.Street.dealCount()

	take := min(n, len(o.boardTokens))
	for _, c := range o.boardTokens[:take] {
		resolved, err := h.Deck.ResolveCard(h.rng, c)
		if err != nil {
			return err
		}
		h.Board = append(h.Board, resolved)
	}
	o.boardTokens = o.boardTokens[take:]

	if take < n {
		h.Board = append(h.Board, h.Deck.Draw(h.rng, n-take)...)
	}
	return nil
}

// resetStreet rebuilds the action sequence for a new betting street from the
// seats that did not fold, in seat-rank order, and zeroes the street money.
func (h *HandState) resetStreet() {
	h.StreetBets = make(map[Position]int, len(h.Positions))
	h.CurrentBet = 0
	h.lastRaise = h.BigBlind

	h.Sequence = h.Sequence[:0]
	for _, pos := range h.Positions {
		if h.Folded[pos] {
			continue
		}
		allIn := h.Stacks[pos] == 0
		h.Sequence = append(h.Sequence, PlayerStatus{
			Position: pos,
			AllIn:    allIn,
			Pending:  !allIn,
		})
	}
}

func (h *HandState) actionableCount() int {
	n := 0
	for _, ps := range h.Sequence {
		if ps.Actionable() {
			n++
		}
	}
	return n
}

func (h *HandState) anyLiveAllIn() bool {
	for _, pos := range h.Positions {
		if !h.Folded[pos] && h.Stacks[pos] == 0 {
			return true
		}
	}
	return false
}
