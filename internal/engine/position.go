package engine

import (
	"fmt"
	"strings"
)

// Position is a table seat. The declaration order is the seat rank used for
// deterministic post-flop action ordering (small blind acts first).
type Position int

const (
	SmallBlind Position = iota
	BigBlind
	UTG
	UTGPlus1
	UTGPlus2
	Lojack
	Hijack
	Cutoff
	Button
)

// Code returns the shorthand code for the position
func (p Position) Code() string {
	switch p {
	case SmallBlind:
		return "SB"
	case BigBlind:
		return "BB"
	case UTG:
		return "UTG"
	case UTGPlus1:
		return "UTG1"
	case UTGPlus2:
		return "UTG2"
	case Lojack:
		return "LJ"
	case Hijack:
		return "HJ"
	case Cutoff:
		return "CO"
	case Button:
		return "BTN"
	default:
		return "?"
	}
}

func (p Position) String() string {
	return p.Code()
}

// ParsePosition parses a position code (case-insensitive)
func ParsePosition(s string) (Position, error) {
	switch strings.ToUpper(s) {
	case "SB":
		return SmallBlind, nil
	case "BB":
		return BigBlind, nil
	case "UTG":
		return UTG, nil
	case "UTG1", "UTG+1":
		return UTGPlus1, nil
	case "UTG2", "UTG+2":
		return UTGPlus2, nil
	case "LJ":
		return Lojack, nil
	case "HJ":
		return Hijack, nil
	case "CO":
		return Cutoff, nil
	case "BTN", "BU":
		return Button, nil
	default:
		return 0, fmt.Errorf("%w: unknown position %q", ErrIllegalAction, s)
	}
}

// PositionsForSeats returns the active seats for a table of the given size in
// seat-rank order. Blinds are always present; late positions fill in from the
// button backward, early positions from UTG forward.
func PositionsForSeats(seats int) ([]Position, error) {
	if seats < 2 || seats > 9 {
		return nil, fmt.Errorf("%w: table size %d not in 2-9", ErrIllegalAction, seats)
	}

	switch seats {
	case 2:
		return []Position{SmallBlind, BigBlind}, nil
	case 3:
		return []Position{SmallBlind, BigBlind, Button}, nil
	case 4:
		return []Position{SmallBlind, BigBlind, Cutoff, Button}, nil
	case 5:
		return []Position{SmallBlind, BigBlind, UTG, Cutoff, Button}, nil
	case 6:
		return []Position{SmallBlind, BigBlind, UTG, Hijack, Cutoff, Button}, nil
	case 7:
		return []Position{SmallBlind, BigBlind, UTG, Lojack, Hijack, Cutoff, Button}, nil
	case 8:
		return []Position{SmallBlind, BigBlind, UTG, UTGPlus1, Lojack, Hijack, Cutoff, Button}, nil
	default:
		return []Position{SmallBlind, BigBlind, UTG, UTGPlus1, UTGPlus2, Lojack, Hijack, Cutoff, Button}, nil
	}
}

// preflopOrder rotates the seats into the static preflop opening order: first
// seat after the big blind opens, blinds act last. Heads-up the small blind
// (button) opens.
func preflopOrder(positions []Position) []Position {
	if len(positions) == 2 {
		return []Position{SmallBlind, BigBlind}
	}
	order := make([]Position, 0, len(positions))
	order = append(order, positions[2:]...)
	order = append(order, positions[0], positions[1])
	return order
}
