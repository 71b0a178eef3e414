package model

import (
	"testing"

	"github.com/gofiber/websocket/v2"
)

func newTwoPlayerGame(t *testing.T) *Game {
	t.Helper()
	g := NewGame("test-game", false)
	if color, err := g.AddPlayer("alice"); err != nil || color != PlayerColorWhite {
		t.Fatalf("alice got (%v, %v), want white", color, err)
	}
	if color, err := g.AddPlayer("bob"); err != nil || color != PlayerColorBlack {
		t.Fatalf("bob got (%v, %v), want black", color, err)
	}
	return g
}

func TestMakeMoveBoundaryChecks(t *testing.T) {
	tests := []struct {
		name   string
		player string
		move   WSMove
	}{
		{name: "out of turn", player: "bob", move: WSMove{PieceID: 8, To: at(3, 0)}},
		{name: "foreign piece", player: "alice", move: WSMove{PieceID: 8, To: at(3, 0)}},
		{name: "unknown piece", player: "alice", move: WSMove{PieceID: 99, To: at(4, 1)}},
		{name: "illegal destination", player: "alice", move: WSMove{PieceID: 13, To: at(3, 2)}},
		{name: "stranger", player: "mallory", move: WSMove{PieceID: 13, To: at(4, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTwoPlayerGame(t)
			if err := g.MakeMove(tt.player, tt.move); err == nil {
				t.Fatal("expected the move to be rejected")
			}
		})
	}
}

func TestMakeMoveAdvancesGame(t *testing.T) {
	g := newTwoPlayerGame(t)

	if err := g.MakeMove("alice", WSMove{PieceID: 13, To: at(4, 3)}); err != nil {
		t.Fatal(err)
	}

	state := g.GetState()
	if state.ToMove != PlayerColorBlack {
		t.Fatalf("got %s to move, want black", state.ToMove)
	}
	requireEventTypes(t, state.Events, EventMove, EventGhost)

	if err := g.MakeMove("bob", WSMove{PieceID: 9, To: at(3, 2)}); err != nil {
		t.Fatal(err)
	}
	if state := g.GetState(); state.ToMove != PlayerColorWhite {
		t.Fatalf("got %s to move, want white", state.ToMove)
	}
}

func TestResignEndsGame(t *testing.T) {
	g := newTwoPlayerGame(t)

	if err := g.Resign("alice"); err != nil {
		t.Fatal(err)
	}
	state := g.GetState()
	if state.Winner == nil || *state.Winner != PlayerColorBlack {
		t.Fatalf("got winner %v, want black after white resigns", state.Winner)
	}
	if err := g.MakeMove("alice", WSMove{PieceID: 13, To: at(4, 3)}); err == nil {
		t.Fatal("moves must be rejected once the game is over")
	}
}

func TestUnregisterIgnoresStaleConnection(t *testing.T) {
	g := newTwoPlayerGame(t)
	healthy := &websocket.Conn{}
	stale := &websocket.Conn{}

	g.connections.mu.Lock()
	g.connections.connections["alice"] = healthy
	g.connections.mu.Unlock()

	// A rejected duplicate runs the same teardown as a real disconnect;
	// it must not evict the connection it lost to.
	g.UnregisterConnection("alice", stale)

	g.connections.mu.RLock()
	got := g.connections.connections["alice"]
	g.connections.mu.RUnlock()
	if got != healthy {
		t.Fatal("stale teardown evicted the healthy connection")
	}

	g.UnregisterConnection("alice", healthy)

	g.connections.mu.RLock()
	_, ok := g.connections.connections["alice"]
	g.connections.mu.RUnlock()
	if ok {
		t.Fatal("owning teardown did not remove the connection")
	}
}

func TestBotAnswersHumanMove(t *testing.T) {
	g := NewGame("bot-game", true)
	if color, err := g.AddPlayer("alice"); err != nil || color != PlayerColorWhite {
		t.Fatalf("alice got (%v, %v), want white against the bot", color, err)
	}

	if err := g.MakeMove("alice", WSMove{PieceID: 13, To: at(4, 3)}); err != nil {
		t.Fatal(err)
	}

	// Drive the bot directly instead of waiting out the think delay.
	g.playBotMove()

	state := g.GetState()
	if state.ToMove != PlayerColorWhite {
		t.Fatalf("got %s to move, want white after the bot replied", state.ToMove)
	}
	moved := false
	for _, p := range state.Pieces {
		if p.Color == PlayerColorBlack && len(p.History) > 1 {
			moved = true
		}
	}
	if !moved {
		t.Fatal("the bot did not move a black piece")
	}
}
