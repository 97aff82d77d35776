package bot

import (
	"pusoydos/internal/domain"
)

// Difficulty selects how strongly a bot plays.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Move is a bot's decision for one turn: a card set to play, or a pass.
type Move struct {
	Pass  bool
	Cards []domain.Card
}

// Brain is implemented by every bot strategy. Decide is pure apart from
// the strategy's own injected randomness; it never mutates the hand.
type Brain interface {
	Decide(hand []domain.Card, prior *domain.Play, variant domain.Variant) (Move, error)
}
