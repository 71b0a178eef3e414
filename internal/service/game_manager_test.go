package service

import (
	"encoding/json"
	"testing"
	"time"

	"ghostcheckers/internal/model"
)

func TestMatchPayloadSurvivesPollTimeout(t *testing.T) {
	gm := NewGameManager()

	ch := make(chan string, 1)
	if err := gm.RegisterMatchmakingChannel("p1", ch); err != nil {
		t.Fatal(err)
	}

	gm.mu.Lock()
	delivered := gm.notifyMatchLocked("p1", model.MatchFoundEvent{
		GameID: "g1",
		Color:  model.PlayerColorWhite,
	})
	gm.mu.Unlock()
	if !delivered {
		t.Fatal("notify did not reach the registered channel")
	}

	// A long-poll whose timer fired in the same instant unregisters and
	// then drains its channel; the buffered payload must still be there.
	gm.UnregisterMatchmakingChannel("p1")

	select {
	case payload, ok := <-ch:
		if !ok {
			t.Fatal("channel closed without a payload")
		}
		var ev model.MatchFoundEvent
		if err := json.Unmarshal([]byte(payload), &ev); err != nil {
			t.Fatal(err)
		}
		if ev.GameID != "g1" || ev.Color != model.PlayerColorWhite {
			t.Fatalf("got %+v, want game g1 as white", ev)
		}
	default:
		t.Fatal("no buffered payload left to drain after the timeout")
	}
}

func TestMatchmakingPairsQueuedPlayers(t *testing.T) {
	gm := NewGameManager()

	chA := make(chan string, 1)
	chB := make(chan string, 1)
	if err := gm.RegisterMatchmakingChannel("ann", chA); err != nil {
		t.Fatal(err)
	}
	if err := gm.RegisterMatchmakingChannel("ben", chB); err != nil {
		t.Fatal(err)
	}
	if err := gm.JoinMatchmaking("ann"); err != nil {
		t.Fatal(err)
	}
	if err := gm.JoinMatchmaking("ben"); err != nil {
		t.Fatal(err)
	}

	waitFor := func(ch chan string) model.MatchFoundEvent {
		t.Helper()
		select {
		case payload := <-ch:
			var ev model.MatchFoundEvent
			if err := json.Unmarshal([]byte(payload), &ev); err != nil {
				t.Fatal(err)
			}
			return ev
		case <-time.After(3 * time.Second):
			t.Fatal("no match notification before the deadline")
			return model.MatchFoundEvent{}
		}
	}

	evA := waitFor(chA)
	evB := waitFor(chB)
	if evA.GameID == "" || evA.GameID != evB.GameID {
		t.Fatalf("players paired into different games: %q vs %q", evA.GameID, evB.GameID)
	}
	if evA.Color == evB.Color {
		t.Fatalf("both players were assigned %s", evA.Color)
	}
	if _, err := gm.GetGame(evA.GameID); err != nil {
		t.Fatal(err)
	}
}
