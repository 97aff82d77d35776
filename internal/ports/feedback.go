package ports

import "pusoydos/internal/domain"

// FeedbackPort defines the interface a client surface implements to
// react to game moments (sounds, haptics, notifications). Methods fire
// after the corresponding state change has been applied.
type FeedbackPort interface {
	// CardPlayed fires for every accepted play at the table.
	CardPlayed(cards []domain.Card, handType domain.HandType)

	// TurnPassed fires for every pass.
	TurnPassed(seat int)

	// TrickCleared fires when three consecutive passes reset the trick.
	TrickCleared(leadSeat int)

	// TurnChanged fires when the turn reaches the local player.
	TurnChanged()

	// GameWon and GameLost fire once at match end, from the local
	// player's perspective.
	GameWon()
	GameLost()
}
