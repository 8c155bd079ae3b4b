package deck

import (
	"fmt"
	rand "math/rand/v2"
)

// ErrNoSuitsAvailable is returned when a random-suit request finds all four
// suits of the rank already in play.
var ErrNoSuitsAvailable = fmt.Errorf("no suits available")

// Deck tracks the cards not yet revealed or assigned in a hand. It is a set:
// order is stable (new decks are rank-major) but carries no meaning.
type Deck struct {
	cards []Card
}

// NewDeck creates a full 52-card deck
func NewDeck() *Deck {
	d := &Deck{cards: make([]Card, 0, 52)}
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	return d
}

// Clone returns an independent copy of the deck
func (d *Deck) Clone() *Deck {
	cards := make([]Card, len(d.cards))
	copy(cards, d.cards)
	return &Deck{cards: cards}
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Contains reports whether the card is still in the deck
func (d *Deck) Contains(c Card) bool {
	for _, card := range d.cards {
		if card == c {
			return true
		}
	}
	return false
}

// Remove takes the given cards out of the deck. Cards already absent are
// skipped, so removal is idempotent.
func (d *Deck) Remove(cards ...Card) {
	for _, c := range cards {
		for i, card := range d.cards {
			if card == c {
				d.cards = append(d.cards[:i], d.cards[i+1:]...)
				break
			}
		}
	}
}

// Draw removes and returns n cards chosen uniformly at random
func (d *Deck) Draw(rng *rand.Rand, n int) []Card {
	if n > len(d.cards) {
		n = len(d.cards)
	}
	out := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		j := rng.IntN(len(d.cards))
		out = append(out, d.cards[j])
		d.cards = append(d.cards[:j], d.cards[j+1:]...)
	}
	return out
}

// ResolveRandomSuit picks a remaining suit for the rank uniformly at random
// and removes the resulting card from the deck. Returns ErrNoSuitsAvailable
// when all four suits of the rank are already in play.
func (d *Deck) ResolveRandomSuit(rng *rand.Rand, rank Rank) (Card, error) {
	var available []Card
	for _, c := range d.cards {
		if c.Rank == rank {
			available = append(available, c)
		}
	}
	if len(available) == 0 {
		return Card{}, fmt.Errorf("%w for rank %s", ErrNoSuitsAvailable, rank)
	}

	card := available[rng.IntN(len(available))]
	d.Remove(card)
	return card, nil
}

// Resolve parses a card token against the live deck: concrete cards must
// still be in the deck (and are removed), X tokens pick a random remaining
// suit of the rank.
func (d *Deck) Resolve(rng *rand.Rand, token string) (Card, error) {
	c, err := ParseCard(token)
	if err != nil {
		return Card{}, err
	}
	return d.ResolveCard(rng, c)
}

// ResolveCard finalizes a parsed card against the live deck, removing it.
func (d *Deck) ResolveCard(rng *rand.Rand, c Card) (Card, error) {
	if !c.Resolved() {
		return d.ResolveRandomSuit(rng, c.Rank)
	}
	if !d.Contains(c) {
		return Card{}, fmt.Errorf("%w: %s is already in play", ErrInvalidCard, c)
	}
	d.Remove(c)
	return c, nil
}
