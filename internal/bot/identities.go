package bot

import (
	"fmt"
	"strings"
)

// botIDPrefix marks synthetic user ids occupied by bots.
const botIDPrefix = "bot:"

// Identity is a bot's table persona.
type Identity struct {
	UserID      string     `json:"user_id"`
	DisplayName string     `json:"display_name"`
	Difficulty  Difficulty `json:"difficulty"`
}

// The built-in roster cycles through the three tiers so a filled table
// mixes strengths.
var identities = []Identity{
	{UserID: "bot:dos", DisplayName: "Dos", Difficulty: DifficultyEasy},
	{UserID: "bot:reyna", DisplayName: "Reyna", Difficulty: DifficultyMedium},
	{UserID: "bot:kidlat", DisplayName: "Kidlat", Difficulty: DifficultyHard},
	{UserID: "bot:tala", DisplayName: "Tala", Difficulty: DifficultyMedium},
}

// IdentityForSeat returns a persona for the seat, wrapping around the
// roster and synthesizing one for seats past it.
func IdentityForSeat(seat int) Identity {
	if seat < 0 {
		seat = 0
	}
	if seat < len(identities) {
		return identities[seat]
	}
	return Identity{
		UserID:      fmt.Sprintf("%sseat-%d", botIDPrefix, seat),
		DisplayName: fmt.Sprintf("AI Player %d", seat),
		Difficulty:  DifficultyMedium,
	}
}

// IsBot reports whether the user id belongs to a bot seat.
func IsBot(userID string) bool {
	return strings.HasPrefix(userID, botIDPrefix)
}
