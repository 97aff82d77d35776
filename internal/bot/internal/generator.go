package internal

import (
	"pusoydos/internal/domain"
)

// Combinations returns every k-card subset of hand, without repetition,
// in deterministic index order. Full enumeration is acceptable at this
// game's scale (hands of at most 13 cards, plays of at most 5).
func Combinations(hand []domain.Card, k int) [][]domain.Card {
	if k <= 0 || k > len(hand) {
		return nil
	}

	var out [][]domain.Card
	combo := make([]domain.Card, 0, k)

	var walk func(start int)
	walk = func(start int) {
		if len(combo) == k {
			out = append(out, append([]domain.Card(nil), combo...))
			return
		}
		for i := start; i <= len(hand)-(k-len(combo)); i++ {
			combo = append(combo, hand[i])
			walk(i + 1)
			combo = combo[:len(combo)-1]
		}
	}
	walk(0)
	return out
}

// FindValidResponses enumerates every subset of the hand matching the
// prior play's size and keeps those that legally beat it.
func FindValidResponses(hand []domain.Card, prior *domain.Play, variant domain.Variant) [][]domain.Card {
	var valid [][]domain.Card
	for _, combo := range Combinations(hand, len(prior.Cards)) {
		if _, err := domain.ValidatePlay(combo, prior, variant); err == nil {
			valid = append(valid, combo)
		}
	}
	return valid
}
