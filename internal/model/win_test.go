package model

import "testing"

func TestWinByElimination(t *testing.T) {
	st := newTestState(PlayerColorWhite,
		pc(1, PlayerColorWhite, false, at(4, 3)),
	)

	if w := CheckWin(st, PlayerColorBlack); w == nil || *w != PlayerColorWhite {
		t.Fatalf("got %v, want white when black has no pieces", w)
	}
	if w := CheckWin(st, PlayerColorWhite); w == nil || *w != PlayerColorWhite {
		t.Fatalf("got %v, want white regardless of the side to move", w)
	}
}

func TestStuckSideLoses(t *testing.T) {
	// White's only piece has no step (both forward squares occupied)
	// and no jump (one landing off-board, the other blocked).
	st := newTestState(PlayerColorWhite,
		pc(1, PlayerColorWhite, false, at(4, 1)),
		pc(2, PlayerColorBlack, false, at(3, 0)),
		pc(3, PlayerColorBlack, false, at(3, 2)),
		pc(4, PlayerColorBlack, false, at(2, 3)),
	)

	if w := CheckWin(st, PlayerColorWhite); w == nil || *w != PlayerColorBlack {
		t.Fatalf("got %v, want black when white cannot move", w)
	}
	if w := CheckWin(st, PlayerColorBlack); w != nil {
		t.Fatalf("got %v, want the game to continue when black is to move", w)
	}
}

func TestFreshGameContinues(t *testing.T) {
	st := NewGameState()
	if w := CheckWin(st, PlayerColorWhite); w != nil {
		t.Fatalf("got winner %v on the opening position", *w)
	}
	if w := CheckWin(st, PlayerColorBlack); w != nil {
		t.Fatalf("got winner %v on the opening position", *w)
	}
}
