package domain

import (
	"fmt"
	"sort"
)

// Suit is a card suit. The constant value doubles as the Pusoy Dos
// tiebreak weight: clubs lowest, diamonds highest.
type Suit int

const (
	Clubs Suit = iota + 1
	Spades
	Hearts
	Diamonds
)

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	default:
		return "?"
	}
}

// Rank is a card rank. The constant value is the Pusoy Dos comparison
// value: 3 is the lowest rank and 2 the highest (15), above the ace.
type Rank int

const (
	Three Rank = iota + 3
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Two
)

// Beats reports whether r outranks other.
func (r Rank) Beats(other Rank) bool {
	return r > other
}

func (r Rank) String() string {
	switch {
	case r >= Three && r <= Ten:
		return fmt.Sprintf("%d", int(r))
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	case r == Two:
		return "2"
	default:
		return "?"
	}
}

// Card is a single playing card. Two cards are the same card when their
// suit and rank match; there is no per-instance identity.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// Beats reports whether c outranks other as a single: rank first, suit
// weight on a rank tie.
func (c Card) Beats(other Card) bool {
	if c.Rank != other.Rank {
		return c.Rank.Beats(other.Rank)
	}
	return c.Suit > other.Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// NewDeck returns the 52 unique cards, ordered by suit then rank.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for s := Clubs; s <= Diamonds; s++ {
		for r := Three; r <= Two; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// SortCards orders cards ascending by rank value, suit weight on ties.
func SortCards(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Rank != cards[j].Rank {
			return cards[i].Rank < cards[j].Rank
		}
		return cards[i].Suit < cards[j].Suit
	})
}
