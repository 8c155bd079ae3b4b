package engine

import (
	"fmt"
)

// Apply resolves one decision for the given seat and returns the resulting
// state. The receiver is never mutated: on any rule violation the error
// carries the reason and the caller's state is unchanged.
//
// Preflop the opening order is static, so acting out of order is legal and
// implicitly skips the silent seats in between (they are auto-folded when the
// street closes). Post-flop the actor must be the head of the action sequence.
func (h *HandState) Apply(pos Position, dec Decision, amount int) (*HandState, error) {
	if h.Street >= Showdown {
		return nil, fmt.Errorf("%w: hand is over", ErrIllegalAction)
	}

	next := h.clone()

	if err := next.takeTurn(pos, dec); err != nil {
		return nil, err
	}
	if err := next.resolve(pos, dec, amount); err != nil {
		return nil, err
	}

	next.checkInvariants()
	return next, nil
}

// takeTurn advances the action sequence to the acting seat, enforcing turn
// order and removing implicitly skipped preflop seats.
func (h *HandState) takeTurn(pos Position, dec Decision) error {
	idx := -1
	for i, ps := range h.Sequence {
		if ps.Position == pos {
			idx = i
			break
		}
	}
	if idx == -1 {
		return fmt.Errorf("%w: %s has no action pending", ErrIllegalAction, pos)
	}

	entry := h.Sequence[idx]
	if entry.AllIn {
		if dec == Fold {
			return fmt.Errorf("%w: %s cannot fold while all-in", ErrIllegalAction, pos)
		}
		return fmt.Errorf("%w: %s is all-in and cannot act", ErrIllegalAction, pos)
	}
	if !entry.Pending {
		return fmt.Errorf("%w: %s already acted this street", ErrIllegalAction, pos)
	}

	head, ok := h.NextToAct()
	if !ok {
		return fmt.Errorf("%w: betting is complete", ErrIllegalAction)
	}
	if head != pos {
		if h.Street != Preflop {
			return fmt.Errorf("%w: it is %s's turn, not %s's", ErrIllegalAction, head, pos)
		}
		// Preflop: seats before the actor that have not yet acted are
		// skipped; their silence becomes an auto-fold at street close.
		kept := h.Sequence[:0]
		for i, ps := range h.Sequence {
			if i < idx && ps.Actionable() {
				if h.hasActed(ps.Position) {
					return fmt.Errorf("%w: %s still owes a decision", ErrIllegalAction, ps.Position)
				}
				continue
			}
			kept = append(kept, ps)
		}
		h.Sequence = kept
	}

	return nil
}

// hasActed reports whether the seat has a committed action on the current street
func (h *HandState) hasActed(pos Position) bool {
	for _, a := range h.Log {
		if a.Position == pos && a.Street == h.Street && !a.Auto {
			return true
		}
	}
	return false
}

// resolve applies the money flow and sequence bookkeeping for a decision
// whose turn-order legality has already been established.
func (h *HandState) resolve(pos Position, dec Decision, amount int) error {
	stack := h.Stacks[pos]
	already := h.StreetBets[pos]

	var added int
	raised := false

	switch dec {
	case Check:
		if amount != 0 {
			return fmt.Errorf("%w: check carries no amount", ErrIllegalAction)
		}
		if already != h.CurrentBet {
			return fmt.Errorf("%w: %s cannot check, must call %d", ErrIllegalAction, pos, h.CurrentBet-already)
		}

	case Fold:
		if amount != 0 {
			return fmt.Errorf("%w: fold carries no amount", ErrIllegalAction)
		}

	case Call:
		if amount != 0 {
			return fmt.Errorf("%w: call carries no amount", ErrIllegalAction)
		}
		toCall := h.CurrentBet - already
		if toCall <= 0 {
			return fmt.Errorf("%w: %s has nothing to call", ErrIllegalAction, pos)
		}
		// Capping at the stack is the all-in-by-calling path.
		added = min(toCall, stack)

	case Bet:
		if h.CurrentBet != 0 {
			return fmt.Errorf("%w: cannot bet facing %d, raise instead", ErrIllegalAction, h.CurrentBet)
		}
		if amount <= 0 {
			return fmt.Errorf("%w: bet amount %d must be positive", ErrIllegalAction, amount)
		}
		if amount > stack {
			return fmt.Errorf("%w: bet %d exceeds %s's stack of %d", ErrIllegalAction, amount, pos, stack)
		}
		added = amount
		h.lastRaise = amount
		h.CurrentBet = amount
		raised = true

	case Raise:
		if h.CurrentBet == 0 {
			return fmt.Errorf("%w: nothing to raise, bet instead", ErrIllegalAction)
		}
		if amount <= h.CurrentBet {
			return fmt.Errorf("%w: raise to %d does not exceed the bet of %d", ErrIllegalAction, amount, h.CurrentBet)
		}
		// Minimum raise, except the big blind exercising their preflop
		// option over limpers.
		bbOption := h.Street == Preflop && pos == BigBlind && h.bbOptionOpen
		if amount < h.CurrentBet+h.lastRaise && !bbOption {
			return fmt.Errorf("%w: raise to %d is below the minimum of %d", ErrIllegalAction, amount, h.CurrentBet+h.lastRaise)
		}
		added = amount - already
		if added > stack {
			return fmt.Errorf("%w: raise to %d exceeds %s's stack", ErrIllegalAction, amount, pos)
		}
		if size := amount - h.CurrentBet; size >= h.lastRaise {
			h.lastRaise = size
		}
		h.CurrentBet = amount
		raised = true

	case AllIn:
		if amount != 0 {
			return fmt.Errorf("%w: all-in carries no amount", ErrIllegalAction)
		}
		if stack == 0 {
			return fmt.Errorf("%w: %s has no chips behind", ErrIllegalAction, pos)
		}
		added = stack
		// Covers both shoving over a bet and opening by shoving. A short
		// all-in below the facing bet does not reopen the action.
		if total := already + added; total > h.CurrentBet {
			if size := total - h.CurrentBet; size >= h.lastRaise {
				h.lastRaise = size
			}
			h.CurrentBet = total
			raised = true
		}

	default:
		return fmt.Errorf("%w: unknown decision", ErrIllegalAction)
	}

	h.Stacks[pos] -= added
	h.StreetBets[pos] += added
	h.Pot += added

	// The big blind's option lasts until they act or anyone raises.
	if h.Street == Preflop && (pos == BigBlind || raised) {
		h.bbOptionOpen = false
	}

	h.Log = append(h.Log, PlayerAction{
		Position: pos,
		Decision: dec,
		Amount:   h.StreetBets[pos],
		Added:    added,
		Street:   h.Street,
		Index:    len(h.Log),
	})

	// Re-derive the action sequence: the actor leaves the front and, unless
	// folded, rejoins at the back. A raise flags everyone else as owing a
	// fresh decision.
	kept := h.Sequence[:0]
	for _, ps := range h.Sequence {
		if ps.Position == pos {
			continue
		}
		if raised && !ps.AllIn {
			ps.Pending = true
		}
		kept = append(kept, ps)
	}
	h.Sequence = kept

	if dec == Fold {
		h.Folded[pos] = true
	} else {
		h.Sequence = append(h.Sequence, PlayerStatus{
			Position: pos,
			AllIn:    h.Stacks[pos] == 0,
			Pending:  false,
		})
	}

	return nil
}
