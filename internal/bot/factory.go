package bot

import (
	"fmt"
	"math/rand"
	"time"
)

// NewBrain creates a strategy for the given difficulty. The rng feeds
// the stochastic branches (medium's imperfect play); nil gets a
// time-seeded default.
func NewBrain(difficulty Difficulty, rng *rand.Rand) (Brain, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	switch difficulty {
	case DifficultyEasy:
		return &EasyBot{}, nil
	case DifficultyMedium:
		return &MediumBot{rng: rng}, nil
	case DifficultyHard:
		return &HardBot{}, nil
	default:
		return nil, fmt.Errorf("unknown difficulty: %q", difficulty)
	}
}
