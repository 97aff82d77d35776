package domain

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	// NumSeats is the fixed player count for a match.
	NumSeats = 4
	// HandSize is the number of cards dealt to each seat.
	HandSize = 13
)

// OpeningCard is the card whose holder leads the very first trick.
var OpeningCard = Card{Suit: Clubs, Rank: Three}

// Dealer shuffles and distributes the deck. The randomness source is
// injected so deals are reproducible in tests.
type Dealer struct {
	rng *rand.Rand
}

// NewDealer constructs a Dealer with the provided rng or a time-seeded
// default when nil.
func NewDealer(rng *rand.Rand) *Dealer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Dealer{rng: rng}
}

// Shuffle returns a uniformly shuffled copy of the given deck.
func (d *Dealer) Shuffle(deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	d.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal distributes a 52-card deck round-robin, one card per seat in seat
// order, into four 13-card hands. A deck of any other size is a defect
// in the caller, not a user-triggerable condition.
func Deal(deck []Card) ([NumSeats][]Card, error) {
	var hands [NumSeats][]Card
	if len(deck) != NumSeats*HandSize {
		return hands, fmt.Errorf("deal: deck has %d cards, want %d", len(deck), NumSeats*HandSize)
	}
	for seat := range hands {
		hands[seat] = make([]Card, 0, HandSize)
	}
	for i, c := range deck {
		seat := i % NumSeats
		hands[seat] = append(hands[seat], c)
	}
	return hands, nil
}

// FindOpeningSeat returns the seat holding the opening card. A correctly
// dealt deck always contains it; seat 0 is the documented fallback.
func FindOpeningSeat(hands [NumSeats][]Card) int {
	for seat, hand := range hands {
		for _, c := range hand {
			if c == OpeningCard {
				return seat
			}
		}
	}
	return 0
}
