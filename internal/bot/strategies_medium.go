package bot

import (
	"math/rand"

	"pusoydos/internal/bot/internal"
	"pusoydos/internal/domain"
)

// suboptimalPercent is how often medium deliberately skips the best
// response. The imperfection is intentional, not a bug.
const suboptimalPercent = 20

// MediumBot usually plays the weakest valid response but mixes in a
// random stronger one to feel human.
type MediumBot struct {
	rng *rand.Rand
}

func (b *MediumBot) Decide(hand []domain.Card, prior *domain.Play, variant domain.Variant) (Move, error) {
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

	sortByMaxRank(valid)

	if len(valid) > 1 && b.rng.Intn(100) < suboptimalPercent {
		// Uniformly pick any response other than the weakest.
		pick := 1 + b.rng.Intn(len(valid)-1)
		return Move{Cards: valid[pick]}, nil
	}
	return Move{Cards: valid[0]}, nil
}
