package bot

import (
	"math/rand"

	"pusoydos/internal/domain"
)

// Agent is a seated bot: an identity plus the brain that makes its
// decisions.
type Agent struct {
	UserID      string
	DisplayName string
	Difficulty  Difficulty

	brain Brain
}

// NewAgent builds an agent for the identity. A nil rng leaves seeding
// to the brain factory.
func NewAgent(id Identity, rng *rand.Rand) (*Agent, error) {
	brain, err := NewBrain(id.Difficulty, rng)
	if err != nil {
		return nil, err
	}
	return &Agent{
		UserID:      id.UserID,
		DisplayName: id.DisplayName,
		Difficulty:  id.Difficulty,
		brain:       brain,
	}, nil
}

// Decide asks the agent's brain for a move given its current hand and
// the play it must beat.
func (a *Agent) Decide(hand []domain.Card, prior *domain.Play, variant domain.Variant) (Move, error) {
	return a.brain.Decide(hand, prior, variant)
}
