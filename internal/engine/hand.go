package engine

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/holdem-tracker/internal/deck"
	"github.com/lox/holdem-tracker/internal/evaluator"
)

var (
	// ErrIllegalAction covers every rule violation: wrong actor, bad amount,
	// double-act, fold while all-in, under-minimum raise, amount over stack.
	ErrIllegalAction = fmt.Errorf("illegal action")

	// ErrSequenceExhausted is returned by Undo when no prior state exists.
	ErrSequenceExhausted = fmt.Errorf("no prior state")
)

// Config describes the table setup for a new hand
type Config struct {
	Seats      int
	SmallBlind int
	BigBlind   int
	Hero       Position
	HeroCards  string // two concatenated card tokens, e.g. "AsKd"
	Stacks     map[Position]int
}

// HandState is the authoritative state of a single hand. States are never
// mutated in place: every accepted decision or stage transition yields a new
// HandState, so any previously returned state remains valid for undo.
type HandState struct {
	Street     Street
	Deck       *deck.Deck
	Board      []deck.Card
	Positions  []Position // active seats in seat-rank order
	SmallBlind int
	BigBlind   int

	Stacks     map[Position]int
	StreetBets map[Position]int // committed on the current street
	Folded     map[Position]bool
	CurrentBet int
	Pot        int
	PotStreets map[Street]int // pot entering each street, for display

	Log      []PlayerAction
	Sequence []PlayerStatus // action sequence for the current street

	Hero      Position
	HeroCards []deck.Card
	Revealed  map[Position][]deck.Card // villain hole cards shown at showdown
	Mucked    map[Position]bool
	Result    *evaluator.ShowdownResult

	initialStacks map[Position]int
	openingOrder  []Position // static preflop order, for auto-fold backfill
	lastRaise     int        // size of the last full raise on this street
	bbOptionOpen  bool       // big blind still holds the preflop option
	rng           *rand.Rand
}

// NewHand creates the state for a new hand: seeds the blinds, sets the
// preflop opening order and removes hero's hole cards from the live deck.
// The RNG is required to make randomness explicit and testing deterministic.
func NewHand(rng *rand.Rand, cfg Config) (*HandState, error) {
	if rng == nil {
		panic("rng is required for hand creation")
	}

	positions, err := PositionsForSeats(cfg.Seats)
	if err != nil {
		return nil, err
	}
	if cfg.SmallBlind <= 0 || cfg.BigBlind <= cfg.SmallBlind {
		return nil, fmt.Errorf("%w: blinds %d/%d", ErrIllegalAction, cfg.SmallBlind, cfg.BigBlind)
	}

	heroValid := false
	for _, p := range positions {
		if p == cfg.Hero {
			heroValid = true
			break
		}
	}
	if !heroValid {
		return nil, fmt.Errorf("%w: hero position %s not at a %d-seat table", ErrIllegalAction, cfg.Hero, cfg.Seats)
	}

	h := &HandState{
		Street:        Preflop,
		Deck:          deck.NewDeck(),
		Positions:     positions,
		SmallBlind:    cfg.SmallBlind,
		BigBlind:      cfg.BigBlind,
		Stacks:        make(map[Position]int, len(positions)),
		StreetBets:    make(map[Position]int, len(positions)),
		Folded:        make(map[Position]bool),
		PotStreets:    make(map[Street]int),
		Hero:          cfg.Hero,
		Revealed:      make(map[Position][]deck.Card),
		Mucked:        make(map[Position]bool),
		initialStacks: make(map[Position]int, len(positions)),
		openingOrder:  preflopOrder(positions),
		lastRaise:     cfg.BigBlind,
		bbOptionOpen:  true,
		rng:           rng,
	}

	for _, p := range positions {
		stack, ok := cfg.Stacks[p]
		if !ok || stack <= 0 {
			return nil, fmt.Errorf("%w: missing or non-positive stack for %s", ErrIllegalAction, p)
		}
		h.Stacks[p] = stack
		h.initialStacks[p] = stack
	}

	// Hero's cards come out of the live deck before anything else is dealt.
	holeCards, err := deck.ParseCards(cfg.HeroCards)
	if err != nil {
		return nil, err
	}
	if len(holeCards) != 2 {
		return nil, fmt.Errorf("%w: hero needs exactly 2 hole cards", deck.ErrInvalidCard)
	}
	for _, c := range holeCards {
		resolved, err := h.Deck.ResolveCard(rng, c)
		if err != nil {
			return nil, err
		}
		h.HeroCards = append(h.HeroCards, resolved)
	}

	h.postBlinds()

	// A blind that consumed the whole stack leaves that seat all-in before
	// any action.
	h.Sequence = make([]PlayerStatus, 0, len(positions))
	for _, p := range h.openingOrder {
		allIn := h.Stacks[p] == 0
		h.Sequence = append(h.Sequence, PlayerStatus{Position: p, AllIn: allIn, Pending: !allIn})
	}

	h.PotStreets[Preflop] = 0
	h.checkInvariants()
	return h, nil
}

func (h *HandState) postBlinds() {
	sb := min(h.SmallBlind, h.Stacks[SmallBlind])
	bb := min(h.BigBlind, h.Stacks[BigBlind])

	h.Stacks[SmallBlind] -= sb
	h.StreetBets[SmallBlind] = sb
	h.Stacks[BigBlind] -= bb
	h.StreetBets[BigBlind] = bb

	h.Pot = sb + bb
	h.CurrentBet = h.BigBlind
}

// clone produces the deep copy every pure transition starts from. The RNG is
// shared: randomness is not part of the snapshot.
func (h *HandState) clone() *HandState {
	c := &HandState{
		Street:        h.Street,
		Deck:          h.Deck.Clone(),
		Board:         append([]deck.Card(nil), h.Board...),
		Positions:     h.Positions,
		SmallBlind:    h.SmallBlind,
		BigBlind:      h.BigBlind,
		Stacks:        copyMap(h.Stacks),
		StreetBets:    copyMap(h.StreetBets),
		Folded:        copyMap(h.Folded),
		CurrentBet:    h.CurrentBet,
		Pot:           h.Pot,
		PotStreets:    copyMap(h.PotStreets),
		Log:           append([]PlayerAction(nil), h.Log...),
		Sequence:      append([]PlayerStatus(nil), h.Sequence...),
		Hero:          h.Hero,
		HeroCards:     append([]deck.Card(nil), h.HeroCards...),
		Revealed:      make(map[Position][]deck.Card, len(h.Revealed)),
		Mucked:        copyMap(h.Mucked),
		Result:        h.Result,
		initialStacks: h.initialStacks,
		openingOrder:  h.openingOrder,
		lastRaise:     h.lastRaise,
		bbOptionOpen:  h.bbOptionOpen,
		rng:           h.rng,
	}
	for p, cards := range h.Revealed {
		c.Revealed[p] = append([]deck.Card(nil), cards...)
	}
	return c
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// NextToAct returns the seat currently owed a decision, or false when the
// street's betting is complete.
func (h *HandState) NextToAct() (Position, bool) {
	for _, ps := range h.Sequence {
		if ps.Actionable() {
			return ps.Position, true
		}
	}
	return 0, false
}

// LiveCount returns the number of seats that have not folded
func (h *HandState) LiveCount() int {
	live := 0
	for _, p := range h.Positions {
		if !h.Folded[p] {
			live++
		}
	}
	return live
}

// VisibleLog returns the action log with synthetic auto-folds filtered out
func (h *HandState) VisibleLog() []PlayerAction {
	out := make([]PlayerAction, 0, len(h.Log))
	for _, a := range h.Log {
		if !a.Auto {
			out = append(out, a)
		}
	}
	return out
}

// committed returns the total a seat has put into the pot across all streets
func (h *HandState) committed(p Position) int {
	return h.initialStacks[p] - h.Stacks[p]
}

// checkInvariants enforces the money and deck-partition invariants. A failure
// here is a programming defect, not a recoverable input error, so it panics
// rather than letting an inconsistent ledger escape.
func (h *HandState) checkInvariants() {
	total := 0
	for _, p := range h.Positions {
		total += h.committed(p)
	}
	if total != h.Pot {
		panic(fmt.Sprintf("pot %d diverged from stack deltas %d", h.Pot, total))
	}

	seen := make(map[deck.Card]bool, 52)
	add := func(where string, cards []deck.Card) {
		for _, c := range cards {
			if seen[c] {
				panic(fmt.Sprintf("card %s duplicated in %s", c, where))
			}
			seen[c] = true
		}
	}
	add("deck", h.Deck.Cards())
	add("board", h.Board)
	add("hero cards", h.HeroCards)
	for _, cards := range h.Revealed {
		add("revealed cards", cards)
	}
	if len(seen) != 52 {
		panic(fmt.Sprintf("card partition has %d cards, want 52", len(seen)))
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
