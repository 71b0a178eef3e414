package model

import "fmt"

// ApplyMove plays out a chosen move: the step itself, promotion, the
// observation and collapse of every jumped piece, and the multi-jump
// check. It operates on a clone and returns the new state together
// with the ordered event stream; the caller's state is never mutated.
//
// A move that is not in the piece's legal-move list is a contract
// violation and is rejected with an error, as is a state whose
// occupancy and histories disagree.
func ApplyMove(state *GameState, id PieceID, move Move) (*GameState, []Event, error) {
	if err := state.checkConsistent(); err != nil {
		return nil, nil, err
	}
	legal, err := LegalMoves(state, id)
	if err != nil {
		return nil, nil, err
	}
	ok := false
	for _, m := range legal {
		if m.equal(move) {
			ok = true
			break
		}
	}
	if !ok {
		return nil, nil, fmt.Errorf("move %v -> %v is not legal for piece %d", move.From, move.To, id)
	}

	work := state.Clone()
	piece := work.Pieces[id]
	from := piece.Pos()

	events := []Event{{Type: EventMove, PieceID: id, From: posPtr(from), To: posPtr(move.To)}}
	if !move.IsJump() {
		events = append(events, Event{Type: EventGhost, PieceID: id, Square: posPtr(from)})
	}

	delete(work.Occupancy, from)
	piece.History = append(piece.History, move.To)
	work.Occupancy[move.To] = id

	if move.To.Row == piece.Color.promotionRow() && !piece.King {
		piece.King = true
		events = append(events, Event{Type: EventKing, PieceID: id, Square: posPtr(move.To)})
	}

	// Each observed piece collapses in turn. Resolver events are
	// replayed onto the working state immediately so later refs and the
	// multi-jump check see the projected occupancy.
	observed := midpoint(move.From, move.To)
	for _, ref := range move.Jumped {
		events = append(events, Event{
			Type:    EventObservation,
			PieceID: ref.PieceID,
			Square:  posPtr(observed),
			Real:    ref.Real,
		})
		collapse := ResolveCollapse(work, ref.PieceID, ref.HistoryIndex-1, move.To)
		for _, ev := range collapse {
			work.applyEvent(ev)
		}
		events = append(events, collapse...)
	}

	if move.IsJump() {
		further, err := LegalMoves(work, id)
		if err != nil {
			return nil, nil, err
		}
		hasJump, hasMandatory := false, false
		for _, m := range further {
			if m.IsJump() {
				hasJump = true
				if m.HasRealJump() {
					hasMandatory = true
				}
			}
		}
		if hasJump {
			// Same piece moves again; the turn does not switch.
			events = append(events, Event{Type: EventMultiJump, PieceID: id, HasMandatory: hasMandatory})
			return work, events, nil
		}
	}

	work.ToMove = work.ToMove.Opponent()
	return work, events, nil
}
