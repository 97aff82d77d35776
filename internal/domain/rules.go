package domain

import (
	"errors"
	"fmt"
)

// Variant names a rule modification layered on the classic ruleset.
type Variant string

const (
	VariantClassic      Variant = "classic"
	VariantNoPass       Variant = "no_pass"
	VariantReverseOrder Variant = "reverse_order"
	VariantJokerWild    Variant = "joker_wild"
	VariantSpeedMode    Variant = "speed_mode"
)

// Validation failures, in the order ValidatePlay checks them.
var (
	ErrNoCardsSelected    = errors.New("no cards selected")
	ErrDuplicateCards     = errors.New("duplicate cards selected")
	ErrInvalidCombination = errors.New("invalid card combination")
	ErrWrongCardCount     = errors.New("wrong number of cards for hand type")
	ErrDoesNotBeat        = errors.New("play does not beat the last play")
)

// ValidatePlay decides whether a candidate play is legal given the last
// accepted play of the trick (nil when leading). On success it returns
// the classified hand type. It never mutates anything.
func ValidatePlay(cards []Card, prior *Play, variant Variant) (HandType, error) {
	if len(cards) == 0 {
		return 0, ErrNoCardsSelected
	}

	seen := make(map[Card]struct{}, len(cards))
	for _, c := range cards {
		if _, dup := seen[c]; dup {
			return 0, ErrDuplicateCards
		}
		seen[c] = struct{}{}
	}

	handType, ok := ClassifyHand(cards)
	if !ok {
		return 0, ErrInvalidCombination
	}

	// Redundant with classification, but an explicit invariant check: a
	// hand type with a wrong inferred count must never slip through.
	if handType.CardCount() != len(cards) {
		return 0, fmt.Errorf("%w: %s takes %d cards", ErrWrongCardCount, handType, handType.CardCount())
	}

	// The first play of a trick is unconstrained in type and strength.
	if prior == nil {
		return handType, nil
	}

	if !beatsPrior(cards, handType, prior) {
		return 0, fmt.Errorf("%w: %s vs %s", ErrDoesNotBeat, handType, prior.Type)
	}

	return handType, nil
}

// beatsPrior reports whether a classified candidate outranks the prior
// play. Classic play only ever compares equal types; the cross-type
// five-card branch lives in CompareFiveCard for variants that relax it.
func beatsPrior(cards []Card, handType HandType, prior *Play) bool {
	if handType != prior.Type {
		return false
	}

	switch handType {
	case Single:
		return cards[0].Beats(prior.Cards[0])
	case Pair:
		// Equal classified types means both pairs share rank shape; the
		// tiebreak is the strongest suit present in each pair.
		return maxSuit(cards) > maxSuit(prior.Cards)
	default:
		return CompareFiveCard(cards, handType, prior.Cards, prior.Type)
	}
}

// CompareFiveCard reports whether five-card hand a outranks five-card
// hand b. Differing types resolve by type strength, a path reachable
// only under variants that permit cross-type beats. Equal types compare
// by highest rank value; suits are never consulted.
func CompareFiveCard(a []Card, aType HandType, b []Card, bType HandType) bool {
	if aType != bType {
		return aType > bType
	}
	return MaxRank(a) > MaxRank(b)
}
