package engine

import (
	"fmt"

	"github.com/lox/holdem-tracker/internal/token"
)

// ParseDecision maps a decision code to its Decision
func ParseDecision(code string) (Decision, error) {
	switch code {
	case "X", "K":
		return Check, nil
	case "B":
		return Bet, nil
	case "R":
		return Raise, nil
	case "C":
		return Call, nil
	case "F":
		return Fold, nil
	case "A":
		return AllIn, nil
	default:
		return 0, fmt.Errorf("%w: unknown decision code %q", token.ErrInvalidInput, code)
	}
}

// ApplyInput runs the full validation pipeline over a shorthand line and, if
// it passes, commits the decision, returning the new state.
func (h *HandState) ApplyInput(text string) (*HandState, error) {
	pos, dec, amount, closing, err := h.parseInput(text)
	if err != nil {
		return nil, err
	}

	next, err := h.Apply(pos, dec, amount)
	if err != nil {
		return nil, err
	}

	// An aggressive action cannot close the street: the other players still
	// owe a decision.
	if closing && dec.Aggressive() {
		return nil, fmt.Errorf("%w: %s reopens the action and cannot close the street", ErrIllegalAction, dec)
	}

	return next, nil
}

// ValidateInput runs the same pipeline speculatively: transitions are pure,
// so validation is an apply whose result is discarded. The state is never
// touched; on failure the error names the offending token, amount or seat.
func (h *HandState) ValidateInput(text string) error {
	_, err := h.ApplyInput(text)
	return err
}

// parseInput performs the syntactic and position/decision legality steps of
// the pipeline, ordered so that the first failure wins.
func (h *HandState) parseInput(text string) (Position, Decision, int, bool, error) {
	tok, err := token.Tokenize(text)
	if err != nil {
		return 0, 0, 0, false, err
	}

	var pos Position
	if tok.Position == "" {
		next, ok := h.NextToAct()
		if !ok {
			return 0, 0, 0, false, fmt.Errorf("%w: no action pending", ErrIllegalAction)
		}
		pos = next
	} else {
		parsed, err := ParsePosition(tok.Position)
		if err != nil {
			return 0, 0, 0, false, err
		}
		if !h.seatAtTable(parsed) {
			return 0, 0, 0, false, fmt.Errorf("%w: %s is not seated at a %d-seat table", ErrIllegalAction, parsed, len(h.Positions))
		}
		pos = parsed
	}

	if !token.IsDecisionCode(tok.Decision) {
		return 0, 0, 0, false, fmt.Errorf("%w: unknown decision code %q", token.ErrInvalidInput, tok.Decision)
	}
	dec, err := ParseDecision(tok.Decision)
	if err != nil {
		return 0, 0, 0, false, err
	}

	return pos, dec, tok.Amount, tok.Closing, nil
}

func (h *HandState) seatAtTable(pos Position) bool {
	for _, p := range h.Positions {
		if p == pos {
			return true
		}
	}
	return false
}
