package app

import (
	"github.com/google/uuid"

	"pusoydos/internal/ports"
)

// DispatchFeedback translates a batch of game events into feedback
// calls from one player's perspective. Events targeted at other
// players are skipped; TurnChanged fires whenever the turn lands on
// localSeat.
func DispatchFeedback(events []Event, localID uuid.UUID, localSeat int, fb ports.FeedbackPort) {
	for _, ev := range events {
		if !eventVisibleTo(ev, localID) {
			continue
		}
		switch p := ev.Payload.(type) {
		case CardPlayedPayload:
			fb.CardPlayed(p.Cards, p.HandType)
			if p.NextSeat == localSeat {
				fb.TurnChanged()
			}
		case TurnPassedPayload:
			fb.TurnPassed(p.Seat)
			if p.NextSeat == localSeat {
				fb.TurnChanged()
			}
		case TrickClearedPayload:
			fb.TrickCleared(p.LeadSeat)
		case GameEndedPayload:
			if p.Winner == localID {
				fb.GameWon()
			} else {
				fb.GameLost()
			}
		}
	}
}

func eventVisibleTo(ev Event, localID uuid.UUID) bool {
	if len(ev.Recipients) == 0 {
		return true
	}
	for _, id := range ev.Recipients {
		if id == localID {
			return true
		}
	}
	return false
}
