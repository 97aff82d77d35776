package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GamePhase is the lifecycle stage of a match.
type GamePhase string

const (
	PhaseWaiting   GamePhase = "waiting"
	PhaseDealing   GamePhase = "dealing"
	PhaseActive    GamePhase = "active"
	PhaseCompleted GamePhase = "completed"
	PhaseAbandoned GamePhase = "abandoned"
)

// Terminal reports whether the phase accepts no further transitions.
func (p GamePhase) Terminal() bool {
	return p == PhaseCompleted || p == PhaseAbandoned
}

// passesToClear is how many consecutive passes clear the trick.
const passesToClear = 3

// Transition failures. Callers must not apply a transition whose
// pre-condition failed; nothing is silently converted to a no-op.
var (
	ErrGameNotWaiting = errors.New("game is not waiting for players")
	ErrGameNotDealing = errors.New("game is not dealing")
	ErrGameNotActive  = errors.New("game is not active")
	ErrGameFinished   = errors.New("game already finished")
	ErrNotPlayersTurn = errors.New("not this player's turn")
	ErrSeatTaken      = errors.New("seat is already taken")
	ErrSeatOutOfRange = errors.New("seat index out of range")
	ErrNotAllReady    = errors.New("not all players are ready")
)

// Game is the authoritative per-match state. It owns turn order, the
// current trick, the pass counter and the play history, but never the
// seats' hand contents; those stay with the match controller. Callers
// must serialize access: one transition at a time.
type Game struct {
	ID           uuid.UUID        `json:"id"`
	RoomCode     string           `json:"room_code"`
	Players      [NumSeats]*Player `json:"players"`
	CurrentTrick []Card           `json:"current_trick"`
	TurnPlayer   int              `json:"turn_player"`
	PassCount    int              `json:"pass_count"`
	TotalPasses  int              `json:"total_passes"`
	Phase        GamePhase        `json:"phase"`
	Variant      Variant          `json:"variant"`
	LastPlay     *Play            `json:"last_play,omitempty"`
	History      []Play           `json:"history"`
	Winner       *uuid.UUID       `json:"winner,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	StartedAt    time.Time        `json:"started_at,omitzero"`
	CompletedAt  time.Time        `json:"completed_at,omitzero"`
}

// NewGame creates a match in the waiting phase.
func NewGame(variant Variant, roomCode string) *Game {
	return &Game{
		ID:        uuid.New(),
		RoomCode:  roomCode,
		Phase:     PhaseWaiting,
		Variant:   variant,
		CreatedAt: time.Now(),
	}
}

// Seat places a player at their seat while the match is waiting.
func (g *Game) Seat(p *Player) error {
	if g.Phase != PhaseWaiting {
		return ErrGameNotWaiting
	}
	if p.Seat < 0 || p.Seat >= NumSeats {
		return fmt.Errorf("%w: %d", ErrSeatOutOfRange, p.Seat)
	}
	if g.Players[p.Seat] != nil {
		return fmt.Errorf("%w: %d", ErrSeatTaken, p.Seat)
	}
	g.Players[p.Seat] = p
	return nil
}

// ReadyToStart reports whether all four seats are filled and ready.
func (g *Game) ReadyToStart() bool {
	for _, p := range g.Players {
		if p == nil || !p.Ready {
			return false
		}
	}
	return true
}

// BeginDealing moves waiting -> dealing once the full roster is ready.
func (g *Game) BeginDealing() error {
	if g.Phase != PhaseWaiting {
		return ErrGameNotWaiting
	}
	if !g.ReadyToStart() {
		return ErrNotAllReady
	}
	g.Phase = PhaseDealing
	return nil
}

// Activate moves dealing -> active with the opening seat to act.
func (g *Game) Activate(openingSeat int) error {
	if g.Phase != PhaseDealing {
		return ErrGameNotDealing
	}
	if openingSeat < 0 || openingSeat >= NumSeats {
		return fmt.Errorf("%w: %d", ErrSeatOutOfRange, openingSeat)
	}
	g.TurnPlayer = openingSeat
	g.Phase = PhaseActive
	g.StartedAt = time.Now()
	g.markCurrentTurn()
	return nil
}

// ApplyPlay records a validated play: it joins the trick, becomes the
// last play and the newest history entry, the turn advances and the pass
// counter resets. The play must already have passed ValidatePlay against
// the current last play.
func (g *Game) ApplyPlay(play Play) error {
	if g.Phase != PhaseActive {
		return ErrGameNotActive
	}
	actor := g.Players[g.TurnPlayer]
	if actor == nil || actor.ID != play.PlayerID {
		return ErrNotPlayersTurn
	}
	g.CurrentTrick = append(g.CurrentTrick, play.Cards...)
	g.LastPlay = &play
	g.History = append(g.History, play)
	g.PassCount = 0
	g.advanceTurn()
	return nil
}

// ApplyPass records a pass by the acting player. The third consecutive
// pass clears the trick: the face-up cards empty, the counter resets and
// the last play is nulled so the next trick leads unconstrained. The
// return value reports whether this pass cleared the trick.
func (g *Game) ApplyPass(playerID uuid.UUID) (bool, error) {
	if g.Phase != PhaseActive {
		return false, ErrGameNotActive
	}
	actor := g.Players[g.TurnPlayer]
	if actor == nil || actor.ID != playerID {
		return false, ErrNotPlayersTurn
	}
	g.PassCount++
	g.TotalPasses++
	cleared := false
	if g.PassCount >= passesToClear {
		g.CurrentTrick = g.CurrentTrick[:0]
		g.PassCount = 0
		g.LastPlay = nil
		cleared = true
	}
	g.advanceTurn()
	return cleared, nil
}

// Complete ends the match the moment a hand reaches zero cards. It is
// invoked by the match controller after card removal, never from inside
// a transition.
func (g *Game) Complete(winner uuid.UUID) error {
	if g.Phase != PhaseActive {
		return ErrGameNotActive
	}
	g.Phase = PhaseCompleted
	g.Winner = &winner
	g.CompletedAt = time.Now()
	for _, p := range g.Players {
		if p != nil {
			p.SetCurrentTurn(false)
		}
	}
	return nil
}

// Abandon terminates the match without a winner. Valid from any
// non-terminal phase.
func (g *Game) Abandon() error {
	if g.Phase.Terminal() {
		return ErrGameFinished
	}
	g.Phase = PhaseAbandoned
	g.CompletedAt = time.Now()
	return nil
}

// CurrentPlayer returns the player whose turn it is, or nil before the
// match activates.
func (g *Game) CurrentPlayer() *Player {
	if g.Phase != PhaseActive {
		return nil
	}
	return g.Players[g.TurnPlayer]
}

// PlayerByID finds a seated player by identity.
func (g *Game) PlayerByID(id uuid.UUID) *Player {
	for _, p := range g.Players {
		if p != nil && p.ID == id {
			return p
		}
	}
	return nil
}

func (g *Game) advanceTurn() {
	g.TurnPlayer = (g.TurnPlayer + 1) % NumSeats
	g.markCurrentTurn()
}

func (g *Game) markCurrentTurn() {
	for seat, p := range g.Players {
		if p != nil {
			p.SetCurrentTurn(seat == g.TurnPlayer)
		}
	}
}
