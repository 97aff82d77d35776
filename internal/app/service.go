package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"pusoydos/internal/domain"
)

// Service contains the Pusoy Dos use-cases operating on domain state.
// It owns dealing and the per-seat hands; the domain Game only ever
// sees card counts.
type Service struct {
	rng    *rand.Rand
	dealer *domain.Dealer
}

// NewService constructs a Service with the provided rng or a
// time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		rng:    rng,
		dealer: domain.NewDealer(rng),
	}
}

var (
	ErrRosterIncomplete = errors.New("all four seats must be filled")
	ErrCardsNotHeld     = errors.New("player does not hold those cards")
)

// RosterEntry describes one seat of the lobby roster handed to
// StartGame. Entries arrive in seat order.
type RosterEntry struct {
	ID          uuid.UUID
	DisplayName string
}

// Match pairs the authoritative game state with the hidden per-seat
// hands. Hands never leave this struct except as defensive copies.
type Match struct {
	Game  *domain.Game
	hands [domain.NumSeats][]domain.Card
}

// Hand returns a copy of the seat's current hand.
func (m *Match) Hand(seat int) []domain.Card {
	if seat < 0 || seat >= domain.NumSeats {
		return nil
	}
	return append([]domain.Card(nil), m.hands[seat]...)
}

// StartGame seats the roster, deals a shuffled deck and activates the
// match with the three of clubs holder to act first. It emits one
// targeted hand_dealt event per seat followed by a broadcast
// game_started.
func (s *Service) StartGame(roster [domain.NumSeats]RosterEntry, variant domain.Variant, roomCode string) (*Match, []Event, error) {
	for _, entry := range roster {
		if entry.ID == uuid.Nil {
			return nil, nil, ErrRosterIncomplete
		}
	}

	game := domain.NewGame(variant, roomCode)
	for seat, entry := range roster {
		p := domain.NewPlayer(entry.ID, entry.DisplayName, seat)
		p.SetReady(true)
		if err := game.Seat(p); err != nil {
			return nil, nil, err
		}
	}
	if err := game.BeginDealing(); err != nil {
		return nil, nil, err
	}

	deck := s.dealer.Shuffle(domain.NewDeck())
	hands, err := domain.Deal(deck)
	if err != nil {
		return nil, nil, err
	}

	opening := domain.FindOpeningSeat(hands)
	if err := game.Activate(opening); err != nil {
		return nil, nil, err
	}

	m := &Match{Game: game, hands: hands}

	events := make([]Event, 0, domain.NumSeats+1)
	for seat, entry := range roster {
		domain.SortCards(m.hands[seat])
		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				PlayerID: entry.ID,
				Seat:     seat,
				Hand:     m.Hand(seat),
			},
			Recipients: []uuid.UUID{entry.ID},
		})
	}
	events = append(events, Event{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			GameID:      game.ID,
			RoomCode:    game.RoomCode,
			Variant:     game.Variant,
			OpeningSeat: opening,
		},
	})

	return m, events, nil
}

// PlayCards validates and applies the acting seat's play. A play that
// empties the hand completes the match and appends a game_ended event.
func (s *Service) PlayCards(m *Match, seat int, cards []domain.Card) ([]Event, error) {
	game := m.Game
	actor := game.CurrentPlayer()
	if actor == nil {
		return nil, domain.ErrGameNotActive
	}
	if actor.Seat != seat {
		return nil, domain.ErrNotPlayersTurn
	}
	if !holdsAll(m.hands[seat], cards) {
		return nil, fmt.Errorf("%w: seat %d", ErrCardsNotHeld, seat)
	}

	handType, err := domain.ValidatePlay(cards, game.LastPlay, game.Variant)
	if err != nil {
		return nil, err
	}

	play := domain.NewPlay(cards, handType, actor.ID)
	if err := game.ApplyPlay(play); err != nil {
		return nil, err
	}

	m.hands[seat] = removeCards(m.hands[seat], cards)
	actor.SetCardsRemaining(len(m.hands[seat]))

	events := []Event{{
		Kind: EventCardPlayed,
		Payload: CardPlayedPayload{
			PlayerID: actor.ID,
			Seat:     seat,
			Cards:    play.Cards,
			HandType: handType,
			NextSeat: game.TurnPlayer,
		},
	}}

	if len(m.hands[seat]) == 0 {
		if err := game.Complete(actor.ID); err != nil {
			return nil, err
		}
		events = append(events, Event{
			Kind: EventGameEnded,
			Payload: GameEndedPayload{
				Winner: actor.ID,
				Stats:  StatsFor(game),
			},
		})
	}

	return events, nil
}

// PassTurn records the acting seat's pass. The third consecutive pass
// also emits trick_cleared with the seat that leads the fresh trick.
func (s *Service) PassTurn(m *Match, seat int) ([]Event, error) {
	game := m.Game
	actor := game.CurrentPlayer()
	if actor == nil {
		return nil, domain.ErrGameNotActive
	}
	if actor.Seat != seat {
		return nil, domain.ErrNotPlayersTurn
	}

	cleared, err := game.ApplyPass(actor.ID)
	if err != nil {
		return nil, err
	}

	events := []Event{{
		Kind: EventTurnPassed,
		Payload: TurnPassedPayload{
			PlayerID:  actor.ID,
			Seat:      seat,
			PassCount: game.PassCount,
			NextSeat:  game.TurnPlayer,
		},
	}}
	if cleared {
		events = append(events, Event{
			Kind:    EventTrickCleared,
			Payload: TrickClearedPayload{LeadSeat: game.TurnPlayer},
		})
	}

	return events, nil
}

// Resign abandons the match on behalf of a departing player.
func (s *Service) Resign(m *Match, playerID uuid.UUID) ([]Event, error) {
	if err := m.Game.Abandon(); err != nil {
		return nil, err
	}
	return []Event{{
		Kind:    EventGameAbandoned,
		Payload: GameAbandonedPayload{PlayerID: playerID},
	}}, nil
}

// holdsAll reports whether hand contains every card in cards, counting
// multiplicity. Cards are unique in a single deck so presence suffices.
func holdsAll(hand, cards []domain.Card) bool {
	held := make(map[domain.Card]bool, len(hand))
	for _, c := range hand {
		held[c] = true
	}
	for _, c := range cards {
		if !held[c] {
			return false
		}
	}
	return true
}

// removeCards returns hand without the played cards, preserving order.
func removeCards(hand, cards []domain.Card) []domain.Card {
	drop := make(map[domain.Card]bool, len(cards))
	for _, c := range cards {
		drop[c] = true
	}
	out := hand[:0]
	for _, c := range hand {
		if !drop[c] {
			out = append(out, c)
		}
	}
	return out
}
