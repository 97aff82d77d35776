package bot

import (
	"pusoydos/internal/bot/internal"
	"pusoydos/internal/domain"
)

// EasyBot plays the first legal response it finds. Enumeration order is
// deterministic, so easy play is predictable and often suboptimal.
type EasyBot struct{}

func (b *EasyBot) Decide(hand []domain.Card, prior *domain.Play, variant domain.Variant) (Move, error) {
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
	return Move{Cards: valid[0]}, nil
}
