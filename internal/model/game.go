package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"ghostcheckers/internal/ws"

	"github.com/gofiber/websocket/v2"
)

const (
	initialClockTime = 600 * time.Second
	botThinkDelay    = 900 * time.Millisecond
)

// GameConnections holds the websocket connections observing one game.
type GameConnections struct {
	connections map[string]*websocket.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*websocket.Conn),
	}
}

type GamePlayers struct {
	White ClientPlayer `json:"white"`
	Black ClientPlayer `json:"black"`
}

// ClientState is the full snapshot pushed to clients after every move.
// Events carries the outcome stream of the last applied move so the
// frontend can animate observations, collapses and captures in order.
type ClientState struct {
	Pieces   []*Piece       `json:"pieces"`
	ToMove   PlayerColor    `json:"toMove"`
	Captured CapturedPieces `json:"capturedPieces"`
	Events   []Event        `json:"events"`
	MustMove *PieceID       `json:"mustMove"`
	Winner   *PlayerColor   `json:"winner"`
	Players  GamePlayers    `json:"players"`
}

// Game owns a single game: the rules state plus everything around it
// (players, clocks, observers, the bot). All rule mutations go through
// the mutex, so at most one move application is ever in flight.
type Game struct {
	ID          string
	mu          sync.Mutex
	rules       *GameState
	lastEvents  []Event
	mustMove    *PieceID
	winner      *PlayerColor
	players     GamePlayers
	vsBot       bool
	rng         *rand.Rand
	whiteClock  *Clock
	blackClock  *Clock
	connections *GameConnections
}

func NewGame(id string, vsBot bool) *Game {
	g := &Game{
		ID:          id,
		rules:       NewGameState(),
		connections: NewGameConnections(),
		vsBot:       vsBot,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		whiteClock:  NewClock(initialClockTime),
		blackClock:  NewClock(initialClockTime),
	}
	if vsBot {
		g.players.Black = ClientPlayer{
			ID:       BotPlayerID,
			Color:    PlayerColorBlack,
			TimeLeft: clockUnits(initialClockTime),
		}
	}
	return g
}

func clockUnits(d time.Duration) int {
	return int(d.Milliseconds() / 100)
}

func (g *Game) AddPlayer(playerID string) (PlayerColor, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.players.White.ID == "" {
		g.players.White = ClientPlayer{
			ID:       playerID,
			Color:    PlayerColorWhite,
			TimeLeft: clockUnits(initialClockTime),
		}
		return PlayerColorWhite, nil
	}
	if g.players.Black.ID == "" {
		g.players.Black = ClientPlayer{
			ID:       playerID,
			Color:    PlayerColorBlack,
			TimeLeft: clockUnits(initialClockTime),
		}
		return PlayerColorBlack, nil
	}
	return "", errors.New("game is full")
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.isPlayerInGame(playerID)
}

func (g *Game) isPlayerInGame(playerID string) bool {
	return (g.players.White.ID != "" && g.players.White.ID == playerID) ||
		(g.players.Black.ID != "" && g.players.Black.ID == playerID)
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.players.White.ID == "" || g.players.Black.ID == ""
}

func (g *Game) colorOf(playerID string) (PlayerColor, error) {
	if g.players.White.ID == playerID {
		return PlayerColorWhite, nil
	}
	if g.players.Black.ID == playerID {
		return PlayerColorBlack, nil
	}
	return "", errors.New("player not in game")
}

func (g *Game) GetState() ClientState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.clientStateLocked()
}

// Snapshot clones the rules state for read-only consumers such as the
// board renderer.
func (g *Game) Snapshot() *GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rules.Clone()
}

// MakeMove validates a client's intent at the boundary (ownership,
// turn, pending multi-jump) and resolves it against the legal-move
// list before handing it to the rules engine.
func (g *Game) MakeMove(playerID string, wm WSMove) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.winner != nil {
		return errors.New("game is over")
	}
	color, err := g.colorOf(playerID)
	if err != nil {
		return err
	}
	piece, ok := g.rules.Pieces[wm.PieceID]
	if !ok {
		return fmt.Errorf("no piece with id %d", wm.PieceID)
	}
	if piece.Color != color {
		return errors.New("not your piece")
	}
	if g.rules.ToMove != color {
		return errors.New("not your turn")
	}
	if g.mustMove != nil && *g.mustMove != wm.PieceID {
		return errors.New("must continue jumping with the same piece")
	}

	legal, err := LegalMoves(g.rules, wm.PieceID)
	if err != nil {
		return err
	}
	for _, mv := range legal {
		if mv.To == wm.To {
			return g.advance(wm.PieceID, mv)
		}
	}
	return errors.New("not a legal move")
}

// Resign ends the game in favor of the resigning player's opponent.
func (g *Game) Resign(playerID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.winner != nil {
		return errors.New("game is over")
	}
	color, err := g.colorOf(playerID)
	if err != nil {
		return err
	}
	winner := color.Opponent()
	g.winner = &winner
	g.whiteClock.Stop()
	g.blackClock.Stop()
	go g.broadcast(g.clientStateLocked())
	return nil
}

// advance applies a validated move and handles everything that follows:
// clock swap, multi-jump bookkeeping, win detection, broadcast and bot
// scheduling. Caller must hold g.mu.
func (g *Game) advance(id PieceID, mv Move) error {
	mover := g.rules.ToMove

	next, events, err := ApplyMove(g.rules, id, mv)
	if err != nil {
		return err
	}
	g.rules = next
	g.lastEvents = events
	g.mustMove = nil
	if len(events) > 0 && events[len(events)-1].Type == EventMultiJump {
		continuing := id
		g.mustMove = &continuing
	}

	g.clockFor(mover).Stop()
	g.clockFor(g.rules.ToMove).Start()
	g.players.White.TimeLeft = clockUnits(g.whiteClock.TimeLeft())
	g.players.Black.TimeLeft = clockUnits(g.blackClock.TimeLeft())

	if w := CheckWin(g.rules, g.rules.ToMove); w != nil {
		g.winner = w
		g.whiteClock.Stop()
		g.blackClock.Stop()
	}

	go g.broadcast(g.clientStateLocked())
	g.maybeScheduleBot()
	return nil
}

func (g *Game) clockFor(color PlayerColor) *Clock {
	if color == PlayerColorWhite {
		return g.whiteClock
	}
	return g.blackClock
}

// maybeScheduleBot queues the automated opponent's next move, including
// forced multi-jump continuations. Caller must hold g.mu.
func (g *Game) maybeScheduleBot() {
	if !g.vsBot || g.winner != nil || g.rules.ToMove != PlayerColorBlack {
		return
	}
	time.AfterFunc(botThinkDelay, g.playBotMove)
}

func (g *Game) playBotMove() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.winner != nil || g.rules.ToMove != PlayerColorBlack {
		return
	}
	selected := SelectMove(g.rules, g.mustMove, g.rng)
	if selected == nil {
		// No candidate moves; CheckWin has already recorded the loss.
		return
	}
	if err := g.advance(selected.PieceID, selected.Move); err != nil {
		fmt.Println("bot move failed:", err)
	}
}

func (g *Game) clientStateLocked() ClientState {
	pieces := make([]*Piece, 0, len(g.rules.Pieces))
	for _, id := range g.rules.pieceIDs() {
		pieces = append(pieces, g.rules.Pieces[id].clone())
	}
	return ClientState{
		Pieces: pieces,
		ToMove: g.rules.ToMove,
		Captured: CapturedPieces{
			White: append([]PieceID(nil), g.rules.Captured.White...),
			Black: append([]PieceID(nil), g.rules.Captured.Black...),
		},
		Events:   g.lastEvents,
		MustMove: g.mustMove,
		Winner:   g.winner,
		Players:  g.players,
	}
}

func (g *Game) RegisterConnection(playerID string, conn *websocket.Conn) error {
	g.mu.Lock()
	authorized := g.isPlayerInGame(playerID) || g.canSpectate()
	state := g.clientStateLocked()
	g.mu.Unlock()

	if !authorized {
		return errors.New("not authorized to join this game")
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		// Keep the healthy connection and reject the new one.
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(
				websocket.CloseNormalClosure,
				"connection already exists",
			),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcast(state)
	return nil
}

// UnregisterConnection removes the player's connection, but only if it
// is still the one being torn down. A rejected duplicate runs its own
// teardown too and must not evict the healthy connection it lost to.
func (g *Game) UnregisterConnection(playerID string, conn *websocket.Conn) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	if current, ok := g.connections.connections[playerID]; ok && current == conn {
		delete(g.connections.connections, playerID)
	}
}

// broadcast pushes a state snapshot to every connected client. The
// snapshot is taken under the game mutex by the caller; only the
// connection registry is locked here.
func (g *Game) broadcast(state ClientState) {
	payload, err := json.Marshal(state)
	if err != nil {
		fmt.Println("failed to marshal state:", err)
		return
	}

	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()
	for playerID, conn := range g.connections.connections {
		if err := conn.WriteJSON(ws.Message{
			Type:    ws.MessageTypeGameState,
			Payload: json.RawMessage(payload),
		}); err != nil {
			fmt.Println("failed to send state to player", playerID, err)
			delete(g.connections.connections, playerID)
		}
	}
}
