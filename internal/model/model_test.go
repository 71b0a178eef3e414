package model

import (
	"testing"
)

func at(row, col int) Position {
	return Position{Row: row, Col: col}
}

func pc(id PieceID, color PlayerColor, king bool, history ...Position) *Piece {
	return &Piece{ID: id, Color: color, King: king, History: history}
}

// newTestState builds a state directly from pieces; the last history
// entry of each piece is its current square.
func newTestState(toMove PlayerColor, pieces ...*Piece) *GameState {
	st := &GameState{
		Pieces:    make(map[PieceID]*Piece),
		Occupancy: make(map[Position]PieceID),
		ToMove:    toMove,
		Captured: CapturedPieces{
			White: make([]PieceID, 0),
			Black: make([]PieceID, 0),
		},
	}
	for _, p := range pieces {
		st.Pieces[p.ID] = p
		st.Occupancy[p.Pos()] = p.ID
	}
	return st
}

func eventTypes(events []Event) []EventType {
	types := make([]EventType, len(events))
	for i, ev := range events {
		types[i] = ev.Type
	}
	return types
}

func requireEventTypes(t *testing.T, events []Event, want ...EventType) {
	t.Helper()
	got := eventTypes(events)
	if len(got) != len(want) {
		t.Fatalf("event stream %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event stream %v, want %v", got, want)
		}
	}
}

func TestNewGameState(t *testing.T) {
	st := NewGameState()

	if len(st.Pieces) != 24 {
		t.Fatalf("got %d pieces, want 24", len(st.Pieces))
	}
	white, black := 0, 0
	for _, p := range st.Pieces {
		if len(p.History) != 1 {
			t.Fatalf("piece %d starts with history length %d", p.ID, len(p.History))
		}
		if p.King {
			t.Fatalf("piece %d starts promoted", p.ID)
		}
		switch p.Color {
		case PlayerColorWhite:
			white++
			if p.Pos().Row < 5 {
				t.Fatalf("white piece %d starts on row %d", p.ID, p.Pos().Row)
			}
		case PlayerColorBlack:
			black++
			if p.Pos().Row > 2 {
				t.Fatalf("black piece %d starts on row %d", p.ID, p.Pos().Row)
			}
		}
	}
	if white != 12 || black != 12 {
		t.Fatalf("got %d white and %d black pieces, want 12 each", white, black)
	}
	if st.ToMove != PlayerColorWhite {
		t.Fatalf("got %s to move, want white", st.ToMove)
	}
	if err := st.checkConsistent(); err != nil {
		t.Fatalf("fresh state inconsistent: %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	st := NewGameState()
	c := st.Clone()

	p := c.Pieces[12]
	c.Occupancy[at(4, 1)] = p.ID
	delete(c.Occupancy, p.Pos())
	p.History = append(p.History, at(4, 1))

	if len(st.Pieces[12].History) != 1 {
		t.Fatal("mutating the clone leaked into the original history")
	}
	if _, ok := st.Occupancy[at(4, 1)]; ok {
		t.Fatal("mutating the clone leaked into the original occupancy")
	}
}

func TestCheckConsistentDetectsDrift(t *testing.T) {
	st := newTestState(PlayerColorWhite,
		pc(1, PlayerColorWhite, false, at(4, 3)),
	)
	delete(st.Occupancy, at(4, 3))

	if err := st.checkConsistent(); err == nil {
		t.Fatal("expected an error for occupancy drift")
	}
}
