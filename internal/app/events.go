package app

import (
	"github.com/google/uuid"

	"pusoydos/internal/domain"
)

// EventKind identifies emitted game events for transport dispatch.
type EventKind string

const (
	EventGameStarted   EventKind = "game_started"
	EventHandDealt     EventKind = "hand_dealt"
	EventCardPlayed    EventKind = "card_played"
	EventTurnPassed    EventKind = "turn_passed"
	EventTrickCleared  EventKind = "trick_cleared"
	EventGameEnded     EventKind = "game_ended"
	EventGameAbandoned EventKind = "game_abandoned"
)

// Event is a game event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []uuid.UUID // player IDs; empty means broadcast
}

type GameStartedPayload struct {
	GameID      uuid.UUID      `json:"game_id"`
	RoomCode    string         `json:"room_code"`
	Variant     domain.Variant `json:"variant"`
	OpeningSeat int            `json:"opening_seat"`
}

// HandDealtPayload is always targeted at its owner; hands never ride a
// broadcast.
type HandDealtPayload struct {
	PlayerID uuid.UUID     `json:"player_id"`
	Seat     int           `json:"seat"`
	Hand     []domain.Card `json:"hand"`
}

type CardPlayedPayload struct {
	PlayerID uuid.UUID       `json:"player_id"`
	Seat     int             `json:"seat"`
	Cards    []domain.Card   `json:"cards"`
	HandType domain.HandType `json:"hand_type"`
	NextSeat int             `json:"next_seat"`
}

type TurnPassedPayload struct {
	PlayerID  uuid.UUID `json:"player_id"`
	Seat      int       `json:"seat"`
	PassCount int       `json:"pass_count"`
	NextSeat  int       `json:"next_seat"`
}

type TrickClearedPayload struct {
	LeadSeat int `json:"lead_seat"`
}

type GameEndedPayload struct {
	Winner uuid.UUID `json:"winner"`
	Stats  GameStats `json:"stats"`
}

type GameAbandonedPayload struct {
	PlayerID uuid.UUID `json:"player_id"`
}
