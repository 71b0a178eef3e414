package model

// ResolveCollapse works out the full consequence of forcing a piece to
// retreat to targetIdx in its own history. protected is the square the
// jumping piece landed on; it may never be used as a collapse
// destination, otherwise the jumper and the collapsing piece could
// trade the square forever.
//
// The function is pure: the caller's state is untouched and the
// returned events must be replayed onto it (see GameState.applyEvent).
// Internally the resolver replays its own events onto a private clone
// so that cascade occupancy checks see the projected board.
func ResolveCollapse(state *GameState, id PieceID, targetIdx int, protected Position) []Event {
	return resolveCollapse(state.Clone(), id, targetIdx, protected, make(map[PieceID]bool))
}

// resolving holds the ids currently on the resolution stack. A square
// held by a piece that is itself mid-collapse can never be freed by
// cascading into it again (the two pieces would re-enter each other
// without progress), so such a square is treated as permanently blocked
// and the collapsing piece falls back to older history.
func resolveCollapse(work *GameState, id PieceID, targetIdx int, protected Position, resolving map[PieceID]bool) []Event {
	piece, ok := work.Pieces[id]
	if !ok {
		// Already captured by an earlier step of this cascade.
		return nil
	}
	if targetIdx < 0 {
		// Nowhere left to retreat to.
		ev := Event{Type: EventCapture, PieceID: id, Square: posPtr(piece.Pos())}
		work.applyEvent(ev)
		return []Event{ev}
	}
	if targetIdx >= len(piece.History)-1 {
		// The observed history entry was truncated by an earlier step
		// of this cascade; there is no longer anything to retreat from.
		return nil
	}

	if !resolving[id] {
		resolving[id] = true
		defer delete(resolving, id)
	}

	target := piece.History[targetIdx]
	if target == protected {
		ev := Event{Type: EventInterference, PieceID: id, Square: posPtr(target)}
		return append([]Event{ev}, resolveCollapse(work, id, targetIdx-1, protected, resolving)...)
	}

	if occID, occupied := work.Occupancy[target]; occupied && occID != id {
		if resolving[occID] {
			// The blocker is higher up this very resolution; its square
			// cannot free up, so retreat further instead of re-entering.
			return resolveCollapse(work, id, targetIdx-1, protected, resolving)
		}
		events := []Event{{
			Type:    EventCascadeStart,
			PieceID: id,
			OtherID: occID,
			Square:  posPtr(target),
		}}
		// The blocking piece resolves completely, retreating one step
		// of its own, before the target square is re-tested.
		occ := work.Pieces[occID]
		events = append(events, resolveCollapse(work, occID, len(occ.History)-2, protected, resolving)...)
		if piece, ok = work.Pieces[id]; !ok || targetIdx >= len(piece.History)-1 {
			// The cascade resolved this piece along the way; nothing
			// further to move.
			return events
		}
		if _, still := work.Occupancy[target]; still {
			return append(events, resolveCollapse(work, id, targetIdx-1, protected, resolving)...)
		}
		ev := Event{Type: EventCollapseMove, PieceID: id, From: posPtr(piece.Pos()), To: posPtr(target)}
		work.applyEvent(ev)
		return append(events, ev)
	}

	ev := Event{Type: EventCollapseMove, PieceID: id, From: posPtr(piece.Pos()), To: posPtr(target)}
	work.applyEvent(ev)
	return []Event{ev}
}
