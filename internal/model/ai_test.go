package model

import (
	"math/rand"
	"testing"
)

func TestSelectorPrefersMandatoryJump(t *testing.T) {
	st := newTestState(PlayerColorWhite,
		pc(1, PlayerColorWhite, false, at(4, 3)),
		pc(2, PlayerColorBlack, false, at(3, 2)),
		pc(3, PlayerColorWhite, false, at(6, 1)),
	)

	for seed := int64(0); seed < 10; seed++ {
		selected := SelectMove(st, nil, rand.New(rand.NewSource(seed)))
		if selected == nil {
			t.Fatal("expected a move")
		}
		if selected.PieceID != 1 || !selected.Move.HasRealJump() {
			t.Fatalf("seed %d picked %+v, want the mandatory jump of piece 1", seed, selected)
		}
	}
}

func TestSelectorTakesGhostJumpWhenForced(t *testing.T) {
	// Piece 1's steps are blocked by its own side; the only candidate
	// is the optional ghost jump, which must then be taken.
	st := newTestState(PlayerColorWhite,
		pc(1, PlayerColorWhite, false, at(4, 3)),
		pc(2, PlayerColorWhite, false, at(3, 2)),
		pc(3, PlayerColorWhite, false, at(3, 4)),
		pc(4, PlayerColorBlack, false, at(3, 4), at(4, 5)),
	)
	mustMove := PieceID(1)

	selected := SelectMove(st, &mustMove, rand.New(rand.NewSource(1)))
	if selected == nil {
		t.Fatal("a forced continuation may not come back empty")
	}
	if !selected.Move.IsJump() || selected.Move.HasRealJump() {
		t.Fatalf("got %+v, want a ghost jump", selected)
	}
	if selected.Move.To != at(2, 5) {
		t.Fatalf("got landing %v, want (2,5)", selected.Move.To)
	}
}

func TestSelectorMixesGhostJumpsAndSteps(t *testing.T) {
	st := newTestState(PlayerColorWhite,
		pc(1, PlayerColorWhite, false, at(4, 3)),
		pc(2, PlayerColorBlack, false, at(3, 2), at(4, 1)),
	)

	ghost, regular := 0, 0
	for seed := int64(0); seed < 50; seed++ {
		selected := SelectMove(st, nil, rand.New(rand.NewSource(seed)))
		if selected == nil {
			t.Fatal("expected a move")
		}
		if selected.Move.IsJump() {
			ghost++
		} else {
			regular++
		}
	}
	if ghost == 0 || regular == 0 {
		t.Fatalf("got %d ghost jumps and %d steps, want both to occur", ghost, regular)
	}
}

func TestSelectorReturnsNilWhenStuck(t *testing.T) {
	st := newTestState(PlayerColorWhite,
		pc(1, PlayerColorWhite, false, at(4, 1)),
		pc(2, PlayerColorBlack, false, at(3, 0)),
		pc(3, PlayerColorBlack, false, at(3, 2)),
		pc(4, PlayerColorBlack, false, at(2, 3)),
	)

	if selected := SelectMove(st, nil, rand.New(rand.NewSource(1))); selected != nil {
		t.Fatalf("got %+v, want nil for a stuck side", selected)
	}
}
