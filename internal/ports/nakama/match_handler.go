package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"pusoydos/internal/app"
	"pusoydos/internal/bot"
	"pusoydos/internal/config"
	"pusoydos/internal/domain"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats        [domain.NumSeats]string `json:"seats"` // user IDs, empty string means seat is empty
	DisplayNames map[string]string       `json:"display_names"`
	OwnerSeat    int                     `json:"owner_seat"`
	RoomCode     string                  `json:"room_code"`
	Variant      domain.Variant          `json:"variant"`
	Tick         int64                   `json:"tick"`

	// Turn countdown: the tick at which the current seat is forced to
	// act. Zero while no game is running.
	TurnDeadline int64 `json:"turn_deadline"`
	TurnDuration int   `json:"turn_duration"`

	BotsEnabled       bool  `json:"bots_enabled"`
	BotMinDelay       int   `json:"bot_min_delay"`
	BotMaxDelay       int   `json:"bot_max_delay"`
	BotAutoFillDelay  int   `json:"bot_auto_fill_delay"`
	BotWaitUntil      int64 `json:"bot_wait_until"`
	LastSoloHumanTick int64 `json:"last_solo_human_tick"`

	Presences map[string]runtime.Presence `json:"-"`
	App       *app.Service                `json:"-"`
	Match     *app.Match                  `json:"-"` // nil while in lobby
	Bots      map[string]*bot.Agent       `json:"-"`

	rng *rand.Rand
}

func (ms *MatchState) OpenSeatCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) HumanCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !bot.IsBot(seat) {
			count++
		}
	}
	return count
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seat := range ms.Seats {
		if seat == userID {
			return i
		}
	}
	return -1
}

func (ms *MatchState) gameActive() bool {
	return ms.Match != nil && ms.Match.Game.Phase == domain.PhaseActive
}

// firstHumanSeat returns the first seat index with a human occupant or -1.
func firstHumanSeat(seats []string) int {
	for i, userID := range seats {
		if userID != "" && !bot.IsBot(userID) {
			return i
		}
	}
	return -1
}

type matchHandler struct{}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config, using defaults: %v", err)
	}
	cfg := config.GetGameConfig()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	state := &MatchState{
		DisplayNames:     make(map[string]string),
		OwnerSeat:        -1,
		RoomCode:         app.RoomCode(rng),
		Variant:          cfg.DefaultVariant,
		TurnDuration:     cfg.TurnDurationSeconds,
		BotsEnabled:      true,
		BotMinDelay:      cfg.BotMinDelaySeconds,
		BotMaxDelay:      cfg.BotMaxDelaySeconds,
		BotAutoFillDelay: cfg.BotAutoFillDelaySeconds,
		Presences:        make(map[string]runtime.Presence),
		App:              app.NewService(rng),
		Bots:             make(map[string]*bot.Agent),
		rng:              rng,
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["pusoydos_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["pusoydos_variant"]; ok && val != "" {
		state.Variant = domain.Variant(val)
	}
	if val, ok := env["pusoydos_turn_duration_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.TurnDuration = i
		}
	}
	if val, ok := env["pusoydos_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["pusoydos_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxDelay = i
		}
	}
	if val, ok := env["pusoydos_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotAutoFillDelay = i
		}
	}

	labelBytes, err := json.Marshal(matchLabel{
		Open:  state.OpenSeatCount(),
		Game:  "pusoydos",
		Phase: "lobby",
	})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1 // one tick per second drives the turn and bot timers
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}
	if matchState.Match != nil {
		return state, false, "game in progress"
	}

	// Allow join if there is an empty seat or a bot to replace.
	if matchState.OpenSeatCount() <= 0 {
		hasBot := false
		for _, seat := range matchState.Seats {
			if bot.IsBot(seat) {
				hasBot = true
				break
			}
		}
		if !hasBot {
			return state, false, "match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p
		matchState.DisplayNames[p.GetUserId()] = p.GetUsername()

		assigned := false
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned {
			for i, seatUserID := range matchState.Seats {
				if bot.IsBot(seatUserID) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserID, p.GetUserId(), i)
					delete(matchState.Bots, seatUserID)
					delete(matchState.DisplayNames, seatUserID)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
		}
	}

	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = firstHumanSeat(matchState.Seats[:])
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

func isHumanSeat(seats []string, seat int) bool {
	if seat < 0 || seat >= len(seats) {
		return false
	}
	return seats[seat] != "" && !bot.IsBot(seats[seat])
}

// MatchLeave is called when one or more players leave the match. A
// departure mid-game abandons the match for everyone.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		seat := matchState.seatOf(p.GetUserId())
		if seat < 0 {
			continue
		}

		if matchState.gameActive() {
			events, err := matchState.App.Resign(matchState.Match, playerUUID(p.GetUserId()))
			if err != nil {
				logger.Error("MatchLeave: Failed to abandon game: %v", err)
			} else {
				mh.broadcastEvents(matchState, dispatcher, logger, events)
			}
		}

		matchState.Seats[seat] = ""
		delete(matchState.DisplayNames, p.GetUserId())
		logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), seat)
	}

	if newOwner := firstHumanSeat(matchState.Seats[:]); newOwner != matchState.OwnerSeat {
		matchState.OwnerSeat = newOwner
	}

	if firstHumanSeat(matchState.Seats[:]) == -1 {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame:
			mh.handleStartGame(matchState, dispatcher, logger, msg)
		case OpPlayCards:
			mh.handlePlayCards(matchState, dispatcher, logger, msg)
		case OpPassTurn:
			mh.handlePassTurn(matchState, dispatcher, logger, msg)
		case OpResign:
			mh.handleResign(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(matchState, dispatcher, logger)
	}

	mh.enforceTurnDeadline(matchState, dispatcher, logger)

	return matchState
}

// handleStartGame starts a game on the owner's request once all four
// seats are occupied.
func (mh *matchHandler) handleStartGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	if state.Match != nil {
		mh.sendError(state, dispatcher, logger, senderID, 409, "game already running")
		return
	}
	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		mh.sendError(state, dispatcher, logger, senderID, 403, "only the owner can start the game")
		return
	}
	if open := state.OpenSeatCount(); open > 0 {
		mh.sendError(state, dispatcher, logger, senderID, 400, "table is not full")
		return
	}

	request := startGameRequest{}
	if len(msg.GetData()) > 0 {
		if err := json.Unmarshal(msg.GetData(), &request); err != nil {
			logger.Warn("StartGame: Invalid request from %s: %v", senderID, err)
			mh.sendError(state, dispatcher, logger, senderID, 400, "malformed request")
			return
		}
	}
	variant := state.Variant
	if request.Variant != "" {
		variant = request.Variant
	}

	var roster [domain.NumSeats]app.RosterEntry
	for seat, userID := range state.Seats {
		roster[seat] = app.RosterEntry{
			ID:          playerUUID(userID),
			DisplayName: state.displayName(userID),
		}
	}

	match, events, err := state.App.StartGame(roster, variant, state.RoomCode)
	if err != nil {
		logger.Error("StartGame: Failed to start game: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, 500, "could not start game")
		return
	}

	state.Match = match
	state.resetTurnTimer()
	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastEvents(state, dispatcher, logger, events)

	logger.Info("StartGame: Game %s started (variant=%s, opening_seat=%d)", match.Game.ID, variant, match.Game.TurnPlayer)
}

func (mh *matchHandler) handlePlayCards(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	if state.Match == nil {
		mh.sendError(state, dispatcher, logger, senderID, 400, "game not started")
		return
	}

	request := playCardsRequest{}
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handlePlayCards: Invalid request from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, "malformed request")
		return
	}

	events, err := state.App.PlayCards(state.Match, senderSeat, request.Cards)
	if err != nil {
		logger.Warn("handlePlayCards: User %s (seat %d) rejected: %v", senderID, senderSeat, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	state.resetTurnTimer()
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePassTurn(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	if state.Match == nil {
		mh.sendError(state, dispatcher, logger, senderID, 400, "game not started")
		return
	}

	events, err := state.App.PassTurn(state.Match, senderSeat)
	if err != nil {
		logger.Warn("handlePassTurn: User %s (seat %d) rejected: %v", senderID, senderSeat, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	state.resetTurnTimer()
	mh.broadcastEvents(state, dispatcher, logger, events)
}

// handleResign abandons the running game on a seated player's request.
func (mh *matchHandler) handleResign(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.seatOf(senderID) < 0 {
		mh.sendError(state, dispatcher, logger, senderID, 403, "not seated in this match")
		return
	}
	if state.Match == nil {
		mh.sendError(state, dispatcher, logger, senderID, 400, "game not started")
		return
	}

	events, err := state.App.Resign(state.Match, playerUUID(senderID))
	if err != nil {
		logger.Warn("handleResign: User %s rejected: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	logger.Info("handleResign: User %s resigned, match abandoned.", senderID)
	mh.broadcastEvents(state, dispatcher, logger, events)
}

// enforceTurnDeadline forces the current seat to act when its countdown
// expires: leading seats play their lowest card, responding seats pass.
func (mh *matchHandler) enforceTurnDeadline(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if !state.gameActive() || state.TurnDuration <= 0 {
		return
	}
	if state.TurnDeadline == 0 {
		state.resetTurnTimer()
		return
	}
	if state.Tick < state.TurnDeadline {
		return
	}

	seat := state.Match.Game.TurnPlayer
	logger.Info("enforceTurnDeadline: Seat %d timed out.", seat)

	var events []app.Event
	var err error
	if state.Match.Game.LastPlay == nil {
		hand := state.Match.Hand(seat)
		events, err = state.App.PlayCards(state.Match, seat, []domain.Card{lowestCard(hand)})
	} else {
		events, err = state.App.PassTurn(state.Match, seat)
	}
	if err != nil {
		logger.Error("enforceTurnDeadline: Forced action failed for seat %d: %v", seat, err)
		state.resetTurnTimer()
		return
	}

	state.resetTurnTimer()
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (ms *MatchState) resetTurnTimer() {
	if ms.TurnDuration > 0 {
		ms.TurnDeadline = ms.Tick + int64(ms.TurnDuration)
	}
}

func lowestCard(hand []domain.Card) domain.Card {
	lowest := hand[0]
	for _, c := range hand[1:] {
		if lowest.Beats(c) {
			lowest = c
		}
	}
	return lowest
}

func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// Auto-fill the lobby with bots when a lone human has waited long
	// enough.
	if state.Match == nil {
		if state.HumanCount() == 1 && state.OpenSeatCount() > 0 {
			if state.LastSoloHumanTick == 0 {
				state.LastSoloHumanTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}

			if state.Tick-state.LastSoloHumanTick >= int64(state.BotAutoFillDelay) {
				for seat, userID := range state.Seats {
					if userID != "" {
						continue
					}
					identity := bot.IdentityForSeat(seat)
					agent, err := bot.NewAgent(identity, state.rng)
					if err != nil {
						logger.Error("processBots: Failed to create bot agent for seat %d: %v", seat, err)
						continue
					}
					state.Seats[seat] = identity.UserID
					state.DisplayNames[identity.UserID] = identity.DisplayName
					state.Bots[identity.UserID] = agent
					logger.Info("processBots: Added bot %s (%s) to seat %d", identity.DisplayName, identity.UserID, seat)
				}
				state.LastSoloHumanTick = 0
				mh.updateLabel(state, dispatcher, logger)
				mh.broadcastSnapshot(state, dispatcher, logger)
			}
		} else {
			state.LastSoloHumanTick = 0
		}
		return
	}

	// In-game bot turns, delayed to feel human.
	if !state.gameActive() {
		state.BotWaitUntil = 0
		return
	}

	game := state.Match.Game
	seat := game.TurnPlayer
	userID := state.Seats[seat]
	if !bot.IsBot(userID) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := state.BotMinDelay
		if state.BotMaxDelay > state.BotMinDelay {
			delay += state.rng.Intn(state.BotMaxDelay - state.BotMinDelay + 1)
		}
		state.BotWaitUntil = state.Tick + int64(delay)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[userID]
	if !exists {
		var err error
		agent, err = bot.NewAgent(bot.IdentityForSeat(seat), state.rng)
		if err != nil {
			logger.Error("processBots: Failed to create fallback agent: %v", err)
			return
		}
		state.Bots[userID] = agent
	}

	move, err := agent.Decide(state.Match.Hand(seat), game.LastPlay, game.Variant)
	if err != nil {
		logger.Error("processBots: Bot %s failed to decide: %v", userID, err)
		return
	}

	var events []app.Event
	if move.Pass {
		events, err = state.App.PassTurn(state.Match, seat)
	} else {
		events, err = state.App.PlayCards(state.Match, seat, move.Cards)
	}
	if err != nil {
		logger.Error("processBots: Bot %s move rejected: %v", userID, err)
		return
	}

	state.resetTurnTimer()
	mh.broadcastEvents(state, dispatcher, logger, events)
}

func (ms *MatchState) displayName(userID string) string {
	if name, ok := ms.DisplayNames[userID]; ok && name != "" {
		return name
	}
	return userID
}

// broadcastSnapshot sends the public roster view to everyone.
func (mh *matchHandler) broadcastSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	snapshot := matchSnapshot{
		RoomCode:  state.RoomCode,
		OwnerSeat: state.OwnerSeat,
	}
	for seat, userID := range state.Seats {
		if userID == "" {
			continue
		}
		cardsRemaining := 0
		if state.Match != nil {
			if p := state.Match.Game.Players[seat]; p != nil {
				cardsRemaining = p.CardsRemaining
			}
		}
		snapshot.Players = append(snapshot.Players, playerInfo{
			UserID:         userID,
			DisplayName:    state.displayName(userID),
			Seat:           seat,
			IsOwner:        seat == state.OwnerSeat,
			IsBot:          bot.IsBot(userID),
			CardsRemaining: cardsRemaining,
		})
	}

	bytes, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("broadcastSnapshot: Failed to marshal: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchSnapshot, bytes, nil, nil, true)
}

// broadcastEvents dispatches app events to their Nakama op codes.
// Targeted events go only to connected recipients; an event whose
// recipients are all offline (or bots) is dropped rather than leaked.
func (mh *matchHandler) broadcastEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		opCode, ok := opCodeFor(ev.Kind)
		if !ok {
			logger.Warn("broadcastEvents: Unknown event kind: %v", ev.Kind)
			continue
		}

		bytes, err := json.Marshal(ev.Payload)
		if err != nil {
			logger.Error("broadcastEvents: Failed to marshal %v: %v", ev.Kind, err)
			continue
		}

		var recipients []runtime.Presence
		if len(ev.Recipients) > 0 {
			for _, id := range ev.Recipients {
				for userID, p := range state.Presences {
					if playerUUID(userID) == id {
						recipients = append(recipients, p)
					}
				}
			}
			if len(recipients) == 0 {
				continue
			}
		}

		dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)

		switch ev.Kind {
		case app.EventGameEnded, app.EventGameAbandoned:
			state.Match = nil
			state.TurnDeadline = 0
			state.BotWaitUntil = 0
			mh.updateLabel(state, dispatcher, logger)
		}
	}
}

func opCodeFor(kind app.EventKind) (int64, bool) {
	switch kind {
	case app.EventGameStarted:
		return OpGameStarted, true
	case app.EventHandDealt:
		return OpHandDealt, true
	case app.EventCardPlayed:
		return OpCardPlayed, true
	case app.EventTurnPassed:
		return OpTurnPassed, true
	case app.EventTrickCleared:
		return OpTrickCleared, true
	case app.EventGameEnded:
		return OpGameEnded, true
	case app.EventGameAbandoned:
		return OpGameAbandoned, true
	default:
		return 0, false
	}
}

// sendError sends a gameError privately to one user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("sendError: Presence not found for %s", userID)
		return
	}

	bytes, err := json.Marshal(gameError{Code: code, Message: message})
	if err != nil {
		logger.Error("sendError: Failed to marshal: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpGameError, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := "lobby"
	if state.Match != nil {
		phase = "playing"
	}

	labelBytes, err := json.Marshal(matchLabel{
		Open:  state.OpenSeatCount(),
		Game:  "pusoydos",
		Phase: phase,
	})
	if err != nil {
		logger.Error("updateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("updateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
