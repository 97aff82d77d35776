package app

import (
	"time"

	"github.com/google/uuid"

	"pusoydos/internal/domain"
)

// GameStats is the end-of-match summary broadcast with game_ended and
// kept for post-game screens.
type GameStats struct {
	GameID      uuid.UUID      `json:"game_id"`
	RoomCode    string         `json:"room_code"`
	Variant     domain.Variant `json:"variant"`
	Winner      *uuid.UUID     `json:"winner,omitempty"`
	TotalPlays  int            `json:"total_plays"`
	TotalPasses int            `json:"total_passes"`
	Duration    time.Duration  `json:"duration"`
}

// StatsFor summarizes a finished or in-progress game.
func StatsFor(g *domain.Game) GameStats {
	stats := GameStats{
		GameID:      g.ID,
		RoomCode:    g.RoomCode,
		Variant:     g.Variant,
		Winner:      g.Winner,
		TotalPlays:  len(g.History),
		TotalPasses: g.TotalPasses,
	}
	if !g.StartedAt.IsZero() {
		end := g.CompletedAt
		if end.IsZero() {
			end = time.Now()
		}
		stats.Duration = end.Sub(g.StartedAt)
	}
	return stats
}
