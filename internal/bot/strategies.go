package bot

import (
	"sort"

	"pusoydos/internal/domain"
)

// leadLowestSingle opens a trick with the weakest card in hand. Every
// tier leads this way; the tiers only diverge when responding.
func leadLowestSingle(hand []domain.Card) Move {
	lowest := hand[0]
	for _, c := range hand[1:] {
		if lowest.Beats(c) {
			lowest = c
		}
	}
	return Move{Cards: []domain.Card{lowest}}
}

// sortByMaxRank orders candidate plays by their highest rank value,
// weakest first.
func sortByMaxRank(plays [][]domain.Card) {
	sort.SliceStable(plays, func(i, j int) bool {
		return domain.MaxRank(plays[i]) < domain.MaxRank(plays[j])
	})
}
