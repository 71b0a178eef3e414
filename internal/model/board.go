package model

import (
	"fmt"
	"sort"
)

type CapturedPieces struct {
	White []PieceID `json:"white"`
	Black []PieceID `json:"black"`
}

// GameState is the whole rules-engine state: the piece arena, the
// occupancy table over current squares, whose turn it is and which
// pieces each side has lost. Ghost squares are not part of Occupancy;
// they are derived from piece histories.
type GameState struct {
	Pieces    map[PieceID]*Piece   `json:"pieces"`
	Occupancy map[Position]PieceID `json:"-"`
	ToMove    PlayerColor          `json:"toMove"`
	Captured  CapturedPieces       `json:"captured"`
}

// NewGameState sets up the standard opening: 12 pieces per side on the
// dark squares of the back three rows. Black occupies rows 0-2 and
// advances toward row 7, white occupies rows 5-7 and advances toward
// row 0. White moves first.
func NewGameState() *GameState {
	st := &GameState{
		Pieces:    make(map[PieceID]*Piece),
		Occupancy: make(map[Position]PieceID),
		ToMove:    PlayerColorWhite,
		Captured: CapturedPieces{
			White: make([]PieceID, 0),
			Black: make([]PieceID, 0),
		},
	}
	id := PieceID(0)
	place := func(color PlayerColor, firstRow int) {
		for row := firstRow; row < firstRow+3; row++ {
			for col := 0; col < 8; col++ {
				pos := Position{Row: row, Col: col}
				if !pos.Playable() {
					continue
				}
				st.Pieces[id] = &Piece{
					ID:      id,
					Color:   color,
					History: []Position{pos},
				}
				st.Occupancy[pos] = id
				id++
			}
		}
	}
	place(PlayerColorBlack, 0)
	place(PlayerColorWhite, 5)
	return st
}

// Clone deep-copies the state. The arena is small (at most 24 pieces)
// so a full copy per move is cheap.
func (s *GameState) Clone() *GameState {
	c := &GameState{
		Pieces:    make(map[PieceID]*Piece, len(s.Pieces)),
		Occupancy: make(map[Position]PieceID, len(s.Occupancy)),
		ToMove:    s.ToMove,
		Captured: CapturedPieces{
			White: append([]PieceID(nil), s.Captured.White...),
			Black: append([]PieceID(nil), s.Captured.Black...),
		},
	}
	for id, p := range s.Pieces {
		c.Pieces[id] = p.clone()
	}
	for pos, id := range s.Occupancy {
		c.Occupancy[pos] = id
	}
	return c
}

// PieceAt looks up the piece currently occupying pos.
func (s *GameState) PieceAt(pos Position) (*Piece, bool) {
	id, ok := s.Occupancy[pos]
	if !ok {
		return nil, false
	}
	p, ok := s.Pieces[id]
	return p, ok
}

// pieceIDs returns every live piece id in ascending order so that
// iteration over the arena is deterministic.
func (s *GameState) pieceIDs() []PieceID {
	ids := make([]PieceID, 0, len(s.Pieces))
	for id := range s.Pieces {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *GameState) piecesOf(color PlayerColor) []PieceID {
	ids := make([]PieceID, 0, 12)
	for _, id := range s.pieceIDs() {
		if s.Pieces[id].Color == color {
			ids = append(ids, id)
		}
	}
	return ids
}

// checkConsistent verifies that piece histories and the occupancy table
// agree. A mismatch means an earlier operation corrupted the state, so
// callers abort rather than repair.
func (s *GameState) checkConsistent() error {
	for id, p := range s.Pieces {
		if len(p.History) == 0 {
			return fmt.Errorf("piece %d has an empty history", id)
		}
		for _, pos := range p.History {
			if !pos.Playable() {
				return fmt.Errorf("piece %d history contains unplayable square %v", id, pos)
			}
		}
		if occ, ok := s.Occupancy[p.Pos()]; !ok || occ != id {
			return fmt.Errorf("piece %d is at %v but occupancy disagrees", id, p.Pos())
		}
	}
	for pos, id := range s.Occupancy {
		p, ok := s.Pieces[id]
		if !ok {
			return fmt.Errorf("occupancy at %v names missing piece %d", pos, id)
		}
		if p.Pos() != pos {
			return fmt.Errorf("occupancy at %v names piece %d which is at %v", pos, id, p.Pos())
		}
	}
	return nil
}

// applyEvent folds a resolver event into the state. Only collapse_move
// and capture change state; the other event types are purely
// informational for the caller.
func (s *GameState) applyEvent(ev Event) {
	switch ev.Type {
	case EventCollapseMove:
		p, ok := s.Pieces[ev.PieceID]
		if !ok {
			return
		}
		delete(s.Occupancy, p.Pos())
		// A collapsed piece loses its trail: history restarts at the
		// landing square.
		p.History = []Position{*ev.To}
		s.Occupancy[*ev.To] = p.ID
	case EventCapture:
		p, ok := s.Pieces[ev.PieceID]
		if !ok {
			return
		}
		delete(s.Occupancy, p.Pos())
		delete(s.Pieces, p.ID)
		switch p.Color {
		case PlayerColorWhite:
			s.Captured.White = append(s.Captured.White, p.ID)
		case PlayerColorBlack:
			s.Captured.Black = append(s.Captured.Black, p.ID)
		}
	}
}
