package engine

import "fmt"

// Decision is a player decision kind
type Decision int

const (
	Check Decision = iota
	Bet
	Raise
	Call
	Fold
	AllIn
)

func (d Decision) String() string {
	return [...]string{"check", "bet", "raise", "call", "fold", "allin"}[d]
}

// Aggressive reports whether the decision reopens action for other players
func (d Decision) Aggressive() bool {
	switch d {
	case Bet, Raise, AllIn:
		return true
	default:
		return false
	}
}

// PlayerAction is an immutable record of one resolved decision in the log.
type PlayerAction struct {
	Position Position
	Decision Decision
	Amount   int // resulting total committed this street
	Added    int // chips moved into the pot by this action
	Street   Street
	Index    int  // position in the hand log
	Auto     bool // synthetic auto-fold, hidden from display
}

// Key returns a stable identity for duplicate/replay detection
func (a PlayerAction) Key() string {
	return fmt.Sprintf("%s|%s|%d|%s|%d", a.Position, a.Decision, a.Amount, a.Street, a.Index)
}

// Display returns the human-readable rendering of the action
func (a PlayerAction) Display() string {
	switch a.Decision {
	case Check:
		return fmt.Sprintf("%s checks", a.Position)
	case Bet:
		return fmt.Sprintf("%s bets %d", a.Position, a.Amount)
	case Raise:
		return fmt.Sprintf("%s raises to %d", a.Position, a.Amount)
	case Call:
		return fmt.Sprintf("%s calls %d", a.Position, a.Added)
	case Fold:
		return fmt.Sprintf("%s folds", a.Position)
	case AllIn:
		return fmt.Sprintf("%s is all-in for %d", a.Position, a.Amount)
	default:
		return fmt.Sprintf("%s ?", a.Position)
	}
}

// PlayerStatus is one entry in the action sequence. The entry at the front of
// the sequence is next to act; all-in players are retained for pot eligibility
// but never asked to act again.
type PlayerStatus struct {
	Position Position
	AllIn    bool
	Pending  bool // owes a decision this street
}

// Actionable reports whether the player can still be prompted this street
func (ps PlayerStatus) Actionable() bool {
	return ps.Pending && !ps.AllIn
}
