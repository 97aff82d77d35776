package bot

import (
	"pusoydos/internal/bot/internal"
	"pusoydos/internal/domain"
)

// HardBot preserves hand structure: it avoids breaking up a same-rank
// group larger than the play itself when any non-splitting response
// exists, then plays the weakest of the remaining candidates.
type HardBot struct{}

func (b *HardBot) Decide(hand []domain.Card, prior *domain.Play, variant domain.Variant) (Move, error) {
	if len(hand) == 0 {
		return Move{Pass: true}, nil
	}
	if prior == nil {
		return leadLowestSingle(hand), nil
	}

	valid := internal.FindValidResponses(hand, prior, variant)
	if len(valid) == 0 {
		return Move{Pass: true}, nil
	}

	counts := make(map[domain.Rank]int, len(hand))
	for _, c := range hand {
		counts[c.Rank]++
	}

	preserving := make([][]domain.Card, 0, len(valid))
	for _, play := range valid {
		if !splitsGroup(play, counts) {
			preserving = append(preserving, play)
		}
	}

	pool := preserving
	if len(pool) == 0 {
		pool = valid
	}
	sortByMaxRank(pool)
	return Move{Cards: pool[0]}, nil
}

// splitsGroup reports whether the play takes cards out of a same-rank
// group bigger than the play, breaking up a pair, triple or quad that
// could still be played whole.
func splitsGroup(play []domain.Card, counts map[domain.Rank]int) bool {
	for _, c := range play {
		if counts[c.Rank] > len(play) {
			return true
		}
	}
	return false
}
