package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "quick_match"

	// MatchName is the authoritative match handler name registered with Nakama.
	MatchName = "pusoydos_match"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame int64 = 1
	OpPlayCards int64 = 2
	OpPassTurn  int64 = 3
	OpResign    int64 = 4

	// Server -> Client events
	OpMatchSnapshot int64 = 101
	OpGameStarted   int64 = 102
	OpHandDealt     int64 = 103 // send privately
	OpCardPlayed    int64 = 104
	OpTurnPassed    int64 = 105
	OpTrickCleared  int64 = 106
	OpGameEnded     int64 = 107
	OpGameAbandoned int64 = 108
	OpGameError     int64 = 109
)
