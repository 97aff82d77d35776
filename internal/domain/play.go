package domain

import (
	"time"

	"github.com/google/uuid"
)

// Play is a single accepted submission of cards by the acting player.
// Plays are immutable once created; state transitions produce new values.
type Play struct {
	Cards    []Card    `json:"cards"`
	Type     HandType  `json:"hand_type"`
	PlayerID uuid.UUID `json:"player_id"`
	PlayedAt time.Time `json:"played_at"`
}

// NewPlay copies the card set and stamps the creation time.
func NewPlay(cards []Card, handType HandType, playerID uuid.UUID) Play {
	return Play{
		Cards:    append([]Card(nil), cards...),
		Type:     handType,
		PlayerID: playerID,
		PlayedAt: time.Now(),
	}
}

// MaxRank returns the highest rank comparison value among the cards.
func MaxRank(cards []Card) Rank {
	var max Rank
	for _, c := range cards {
		if c.Rank > max {
			max = c.Rank
		}
	}
	return max
}

func maxSuit(cards []Card) Suit {
	var max Suit
	for _, c := range cards {
		if c.Suit > max {
			max = c.Suit
		}
	}
	return max
}
