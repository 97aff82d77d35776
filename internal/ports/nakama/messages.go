package nakama

import "pusoydos/internal/domain"

// Client -> server request payloads, JSON encoded.

type startGameRequest struct {
	Variant domain.Variant `json:"variant,omitempty"`
}

type playCardsRequest struct {
	Cards []domain.Card `json:"cards"`
}

// matchLabel is the JSON label indexed by Nakama's match listing.
type matchLabel struct {
	Open  int    `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// playerInfo is one seat's public view inside a snapshot.
type playerInfo struct {
	UserID         string `json:"user_id"`
	DisplayName    string `json:"display_name"`
	Seat           int    `json:"seat"`
	IsOwner        bool   `json:"is_owner"`
	IsBot          bool   `json:"is_bot"`
	CardsRemaining int    `json:"cards_remaining"`
}

// matchSnapshot is broadcast whenever the roster changes.
type matchSnapshot struct {
	RoomCode  string       `json:"room_code"`
	OwnerSeat int          `json:"owner_seat"`
	Players   []playerInfo `json:"players"`
}

// gameError is sent privately to the player whose action was rejected.
type gameError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
