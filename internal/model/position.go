package model

import "fmt"

// Position addresses a board square by row and column, both 0-7.
// Row 0 is black's back rank, row 7 is white's.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) OnBoard() bool {
	return p.Row >= 0 && p.Row < 8 && p.Col >= 0 && p.Col < 8
}

// Playable reports whether the square is one of the 32 dark squares
// pieces actually live on.
func (p Position) Playable() bool {
	return p.OnBoard() && (p.Row+p.Col)%2 == 1
}

func (p Position) Step(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// midpoint of a two-square diagonal jump.
func midpoint(from, to Position) Position {
	return Position{Row: (from.Row + to.Row) / 2, Col: (from.Col + to.Col) / 2}
}

func posPtr(p Position) *Position {
	return &p
}
