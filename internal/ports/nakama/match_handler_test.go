package nakama

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/heroiclabs/nakama-common/runtime"

	"pusoydos/internal/app"
	"pusoydos/internal/bot"
	"pusoydos/internal/domain"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	broadcastCount int
	labelUpdates   int
	lastLabel      string
	lastOpCode     int64
	lastData       []byte
	opCodes        []int64
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.broadcastCount++
	md.lastOpCode = opCode
	md.lastData = append([]byte(nil), data...)
	md.opCodes = append(md.opCodes, opCode)
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	md.lastLabel = label
	return nil
}

func (md *mockDispatcher) saw(opCode int64) bool {
	for _, op := range md.opCodes {
		if op == opCode {
			return true
		}
	}
	return false
}

// fakePresence satisfies runtime.Presence for seat occupants.
type fakePresence struct {
	userID   string
	username string
}

func (p fakePresence) GetUserId() string                 { return p.userID }
func (p fakePresence) GetSessionId() string              { return "session-" + p.userID }
func (p fakePresence) GetNodeId() string                 { return "node" }
func (p fakePresence) GetHidden() bool                   { return false }
func (p fakePresence) GetPersistence() bool              { return false }
func (p fakePresence) GetUsername() string               { return p.username }
func (p fakePresence) GetStatus() string                 { return "" }
func (p fakePresence) GetReason() runtime.PresenceReason { return runtime.PresenceReasonUnknown }

// fakeMessage satisfies runtime.MatchData for client requests.
type fakeMessage struct {
	fakePresence
	opCode int64
	data   []byte
}

func (m fakeMessage) GetOpCode() int64      { return m.opCode }
func (m fakeMessage) GetData() []byte       { return m.data }
func (m fakeMessage) GetReliable() bool     { return true }
func (m fakeMessage) GetReceiveTime() int64 { return 0 }

// lobbyState builds a full table: one human plus three bots.
func lobbyState(t *testing.T) *MatchState {
	t.Helper()
	rng := rand.New(rand.NewSource(11))
	state := &MatchState{
		OwnerSeat:    0,
		RoomCode:     "TEST01",
		Variant:      domain.VariantClassic,
		TurnDuration: 30,
		BotsEnabled:  true,
		DisplayNames: make(map[string]string),
		Presences:    make(map[string]runtime.Presence),
		App:          app.NewService(rng),
		Bots:         make(map[string]*bot.Agent),
		rng:          rng,
	}

	human := fakePresence{userID: "user-1", username: "Ana"}
	state.Seats[0] = human.userID
	state.Presences[human.userID] = human
	state.DisplayNames[human.userID] = human.username

	for seat := 1; seat < domain.NumSeats; seat++ {
		identity := bot.IdentityForSeat(seat)
		agent, err := bot.NewAgent(identity, rng)
		if err != nil {
			t.Fatalf("NewAgent: %v", err)
		}
		state.Seats[seat] = identity.UserID
		state.DisplayNames[identity.UserID] = identity.DisplayName
		state.Bots[identity.UserID] = agent
	}
	return state
}

func startMessage(userID string) fakeMessage {
	return fakeMessage{
		fakePresence: fakePresence{userID: userID},
		opCode:       OpStartGame,
	}
}

func TestFirstHumanSeat(t *testing.T) {
	bot1 := bot.IdentityForSeat(0).UserID
	bot2 := bot.IdentityForSeat(1).UserID

	tests := []struct {
		name  string
		seats []string
		want  int
	}{
		{name: "FirstHumanAfterBot", seats: []string{bot1, "user-1", "", ""}, want: 1},
		{name: "AllBots", seats: []string{bot1, bot2, "", ""}, want: -1},
		{name: "AllEmpty", seats: []string{"", "", "", ""}, want: -1},
		{name: "FirstHumanIsSeatZero", seats: []string{"user-1", bot1, "user-2", ""}, want: 0},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := firstHumanSeat(test.seats); got != test.want {
				t.Fatalf("firstHumanSeat() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestMatchLabelMarshal(t *testing.T) {
	payload, err := json.Marshal(matchLabel{Open: 3, Game: "pusoydos", Phase: "lobby"})
	if err != nil {
		t.Fatalf("Failed to marshal label: %v", err)
	}
	want := `{"open":3,"game":"pusoydos","phase":"lobby"}`
	if string(payload) != want {
		t.Fatalf("Got %s, want %s", payload, want)
	}
}

func TestHandleStartGame(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := lobbyState(t)

	handler.handleStartGame(state, dispatcher, noopLogger{}, startMessage("user-1"))

	if state.Match == nil {
		t.Fatal("game was not started")
	}
	if state.Match.Game.Phase != domain.PhaseActive {
		t.Fatalf("phase = %s, want active", state.Match.Game.Phase)
	}
	if !dispatcher.saw(OpGameStarted) {
		t.Fatal("game_started was not broadcast")
	}
	if !dispatcher.saw(OpHandDealt) {
		t.Fatal("human hand was not delivered")
	}
	if dispatcher.labelUpdates == 0 || dispatcher.lastLabel != `{"open":0,"game":"pusoydos","phase":"playing"}` {
		t.Fatalf("label = %q, want playing with 0 open seats", dispatcher.lastLabel)
	}
	if state.TurnDeadline == 0 {
		t.Fatal("turn countdown was not armed")
	}

	// Bot hands are never delivered anywhere.
	handDealtCount := 0
	for _, op := range dispatcher.opCodes {
		if op == OpHandDealt {
			handDealtCount++
		}
	}
	if handDealtCount != 1 {
		t.Fatalf("hand_dealt broadcast %d times, want once (human only)", handDealtCount)
	}
}

func TestHandleStartGameRejectsNonOwner(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := lobbyState(t)
	intruder := fakePresence{userID: "user-2", username: "Ben"}
	state.Presences[intruder.userID] = intruder

	handler.handleStartGame(state, dispatcher, noopLogger{}, startMessage("user-2"))

	if state.Match != nil {
		t.Fatal("non-owner started the game")
	}
	if dispatcher.lastOpCode != OpGameError {
		t.Fatalf("lastOpCode = %d, want game error", dispatcher.lastOpCode)
	}
}

func TestHandleStartGameRequiresFullTable(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := lobbyState(t)
	state.Seats[3] = ""

	handler.handleStartGame(state, dispatcher, noopLogger{}, startMessage("user-1"))

	if state.Match != nil {
		t.Fatal("game started with an open seat")
	}
	if dispatcher.lastOpCode != OpGameError {
		t.Fatalf("lastOpCode = %d, want game error", dispatcher.lastOpCode)
	}
}

func TestHandlePlayCardsRejectsIllegalPlay(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := lobbyState(t)
	handler.handleStartGame(state, dispatcher, noopLogger{}, startMessage("user-1"))

	// Duplicate a card the human may not even hold; validation rejects
	// either way and only the sender hears about it.
	body, _ := json.Marshal(playCardsRequest{Cards: []domain.Card{
		{Suit: domain.Clubs, Rank: domain.Three},
		{Suit: domain.Clubs, Rank: domain.Three},
	}})
	before := state.Match.Game.TurnPlayer

	handler.handlePlayCards(state, dispatcher, noopLogger{}, fakeMessage{
		fakePresence: fakePresence{userID: "user-1"},
		opCode:       OpPlayCards,
		data:         body,
	})

	if dispatcher.lastOpCode != OpGameError {
		t.Fatalf("lastOpCode = %d, want game error", dispatcher.lastOpCode)
	}
	if state.Match.Game.TurnPlayer != before {
		t.Fatal("rejected play advanced the turn")
	}
}

func TestProcessBotsAddsBotsForSoloHuman(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := lobbyState(t)
	state.Seats = [domain.NumSeats]string{"user-1", "", "", ""}
	state.Bots = make(map[string]*bot.Agent)
	state.BotAutoFillDelay = 2
	state.LastSoloHumanTick = 8
	state.Tick = 10

	handler.processBots(state, dispatcher, noopLogger{})

	botCount := 0
	for _, seat := range state.Seats {
		if bot.IsBot(seat) {
			botCount++
		}
	}
	if botCount != 3 {
		t.Fatalf("Expected 3 bots, got %d", botCount)
	}
	if state.OpenSeatCount() != 0 {
		t.Fatalf("Expected 0 open seats after auto-fill, got %d", state.OpenSeatCount())
	}
	if state.LastSoloHumanTick != 0 {
		t.Fatalf("Expected auto-fill timer reset, got %d", state.LastSoloHumanTick)
	}
	if dispatcher.broadcastCount == 0 || dispatcher.labelUpdates == 0 {
		t.Fatal("Expected snapshot broadcast and label update after auto-fill")
	}
}

func TestProcessBotsWaitsForMoreHumans(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := lobbyState(t)
	state.Seats = [domain.NumSeats]string{"user-1", "user-2", "", ""}
	state.Bots = make(map[string]*bot.Agent)
	state.BotAutoFillDelay = 2
	state.Tick = 100

	handler.processBots(state, dispatcher, noopLogger{})

	for _, seat := range state.Seats {
		if bot.IsBot(seat) {
			t.Fatal("bots were added to a multi-human lobby")
		}
	}
}

func TestProcessBotsActsAfterDelay(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := lobbyState(t)
	state.BotMinDelay = 0
	state.BotMaxDelay = 0
	state.Tick = 5
	handler.handleStartGame(state, dispatcher, noopLogger{}, startMessage("user-1"))

	// If the human holds the opening card, lead to hand the turn to a bot.
	if state.Match.Game.TurnPlayer == 0 {
		body, _ := json.Marshal(playCardsRequest{Cards: []domain.Card{lowestCard(state.Match.Hand(0))}})
		handler.handlePlayCards(state, dispatcher, noopLogger{}, fakeMessage{
			fakePresence: fakePresence{userID: "user-1"},
			opCode:       OpPlayCards,
			data:         body,
		})
	}
	if !bot.IsBot(state.Seats[state.Match.Game.TurnPlayer]) {
		t.Fatal("expected a bot to act next")
	}

	historyBefore := len(state.Match.Game.History) + state.Match.Game.TotalPasses

	// First call arms the think delay, second call acts.
	handler.processBots(state, dispatcher, noopLogger{})
	handler.processBots(state, dispatcher, noopLogger{})

	historyAfter := len(state.Match.Game.History) + state.Match.Game.TotalPasses
	if historyAfter != historyBefore+1 {
		t.Fatalf("bot made %d moves, want exactly 1", historyAfter-historyBefore)
	}
	if !dispatcher.saw(OpCardPlayed) && !dispatcher.saw(OpTurnPassed) {
		t.Fatal("bot move was not broadcast")
	}
}

func TestEnforceTurnDeadlineForcesAction(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := lobbyState(t)
	state.TurnDuration = 5
	handler.handleStartGame(state, dispatcher, noopLogger{}, startMessage("user-1"))

	seat := state.Match.Game.TurnPlayer
	handBefore := len(state.Match.Hand(seat))

	state.Tick = state.TurnDeadline
	handler.enforceTurnDeadline(state, dispatcher, noopLogger{})

	// The opening seat leads, so the timeout forces a lowest-card play.
	if got := len(state.Match.Hand(seat)); got != handBefore-1 {
		t.Fatalf("hand size = %d, want %d after forced lead", got, handBefore-1)
	}
	if state.Match.Game.TurnPlayer == seat {
		t.Fatal("turn did not advance after forced action")
	}
	if state.TurnDeadline <= state.Tick {
		t.Fatal("countdown was not re-armed")
	}
}

func TestHandleResignAbandonsGame(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := lobbyState(t)
	handler.handleStartGame(state, dispatcher, noopLogger{}, startMessage("user-1"))

	handler.handleResign(state, dispatcher, noopLogger{}, fakeMessage{
		fakePresence: fakePresence{userID: "user-1"},
		opCode:       OpResign,
	})

	if !dispatcher.saw(OpGameAbandoned) {
		t.Fatal("abandonment was not broadcast")
	}
	if state.Match != nil {
		t.Fatal("match state was not cleared after resignation")
	}
	if dispatcher.lastLabel != `{"open":0,"game":"pusoydos","phase":"lobby"}` {
		t.Fatalf("label = %q, want lobby after abandonment", dispatcher.lastLabel)
	}
}

func TestMatchLeaveAbandonsActiveGame(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := lobbyState(t)

	// Second human replaces a bot so the match survives the departure.
	second := fakePresence{userID: "user-2", username: "Ben"}
	state.Seats[1] = second.userID
	delete(state.Bots, bot.IdentityForSeat(1).UserID)
	state.Presences[second.userID] = second
	state.DisplayNames[second.userID] = second.username

	handler.handleStartGame(state, dispatcher, noopLogger{}, startMessage("user-1"))
	if state.Match == nil {
		t.Fatal("game was not started")
	}

	result := handler.MatchLeave(context.Background(), noopLogger{}, nil, nil, dispatcher, 50, state, []runtime.Presence{second})
	if result == nil {
		t.Fatal("match terminated with a human still seated")
	}

	if !dispatcher.saw(OpGameAbandoned) {
		t.Fatal("abandonment was not broadcast")
	}
	if state.Match != nil {
		t.Fatal("match state was not cleared after abandonment")
	}
	if state.Seats[1] != "" {
		t.Fatal("seat was not freed")
	}
}

func TestMatchLeaveTerminatesWithoutHumans(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := lobbyState(t)
	human := state.Presences["user-1"]

	result := handler.MatchLeave(context.Background(), noopLogger{}, nil, nil, dispatcher, 50, state, []runtime.Presence{human})
	if result != nil {
		t.Fatal("match with only bots should terminate")
	}
}

func TestMatchJoinAttemptRejectsDuringGame(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := lobbyState(t)
	handler.handleStartGame(state, dispatcher, noopLogger{}, startMessage("user-1"))

	_, allowed, _ := handler.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, dispatcher, 10, state, fakePresence{userID: "user-9"}, nil)
	if allowed {
		t.Fatal("join was allowed mid-game")
	}
}

func TestMatchJoinReplacesBot(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := lobbyState(t)

	joiner := fakePresence{userID: "user-2", username: "Ben"}
	result := handler.MatchJoin(context.Background(), noopLogger{}, nil, nil, dispatcher, 10, state, []runtime.Presence{joiner})
	got, ok := result.(*MatchState)
	if !ok {
		t.Fatal("state type lost")
	}

	if got.seatOf("user-2") != 1 {
		t.Fatalf("joiner seated at %d, want 1 (first bot seat)", got.seatOf("user-2"))
	}
	if len(got.Bots) != 2 {
		t.Fatalf("bot agents = %d, want 2 after replacement", len(got.Bots))
	}
	if !dispatcher.saw(OpMatchSnapshot) {
		t.Fatal("snapshot was not broadcast after join")
	}
}
