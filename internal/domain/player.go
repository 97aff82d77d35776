package domain

import "github.com/google/uuid"

// Player is one seat's participant. Identity, name and seat are fixed at
// seat assignment; the four flag setters are the only mutators.
type Player struct {
	ID             uuid.UUID `json:"id"`
	DisplayName    string    `json:"display_name"`
	Seat           int       `json:"seat"`
	Ready          bool      `json:"ready"`
	Connected      bool      `json:"connected"`
	CardsRemaining int       `json:"cards_remaining"`
	CurrentTurn    bool      `json:"current_turn"`
}

// NewPlayer seats a connected, not-yet-ready player.
func NewPlayer(id uuid.UUID, displayName string, seat int) *Player {
	return &Player{
		ID:             id,
		DisplayName:    displayName,
		Seat:           seat,
		Connected:      true,
		CardsRemaining: HandSize,
	}
}

func (p *Player) SetReady(ready bool) {
	p.Ready = ready
}

func (p *Player) SetConnected(connected bool) {
	p.Connected = connected
}

// SetCardsRemaining records the seat's hand size. The count is the only
// hand signal other seats ever see.
func (p *Player) SetCardsRemaining(count int) {
	p.CardsRemaining = count
}

func (p *Player) SetCurrentTurn(current bool) {
	p.CurrentTurn = current
}
