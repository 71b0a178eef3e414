package model

type PlayerColor string

const (
	PlayerColorWhite PlayerColor = "white"
	PlayerColorBlack PlayerColor = "black"
)

func (c PlayerColor) Opponent() PlayerColor {
	if c == PlayerColorWhite {
		return PlayerColorBlack
	}
	return PlayerColorWhite
}

// forwardDir is the row delta a non-king piece advances in.
func (c PlayerColor) forwardDir() int {
	if c == PlayerColorWhite {
		return -1
	}
	return 1
}

// promotionRow is the far edge that turns a piece into a king.
func (c PlayerColor) promotionRow() int {
	if c == PlayerColorWhite {
		return 0
	}
	return 7
}

// PieceID is a stable handle into the piece arena, unique for the
// lifetime of a game. Ids are never reused after a capture.
type PieceID int

// Piece carries its full movement trail. History is ordered oldest
// first and its last element is always the piece's current square;
// every earlier element is a "ghost" the piece left behind. History is
// append-only except when a collapse truncates it.
type Piece struct {
	ID      PieceID     `json:"id"`
	Color   PlayerColor `json:"color"`
	King    bool        `json:"king"`
	History []Position  `json:"history"`
}

// Pos is the piece's current square.
func (p *Piece) Pos() Position {
	return p.History[len(p.History)-1]
}

// Ghosts returns the trail squares the piece has vacated, oldest first.
func (p *Piece) Ghosts() []Position {
	return p.History[:len(p.History)-1]
}

func (p *Piece) clone() *Piece {
	history := make([]Position, len(p.History))
	copy(history, p.History)
	return &Piece{ID: p.ID, Color: p.Color, King: p.King, History: history}
}
