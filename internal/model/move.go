package model

// JumpedRef identifies one piece observed by a jump. Real marks that
// the jumped square is the piece's current position; otherwise it is a
// ghost and HistoryIndex records where in that piece's history the
// jumped square sits.
type JumpedRef struct {
	PieceID      PieceID `json:"pieceId"`
	Real         bool    `json:"real"`
	HistoryIndex int     `json:"historyIndex"`
}

// Move is a single step or jump. A jump carries the set of pieces it
// observes at the midpoint; a move with an empty Jumped set is a plain
// diagonal step.
type Move struct {
	From   Position    `json:"from"`
	To     Position    `json:"to"`
	Jumped []JumpedRef `json:"jumped,omitempty"`
}

func (m Move) IsJump() bool {
	return len(m.Jumped) > 0
}

// HasRealJump reports whether the jump observes a live piece's current
// square, which makes the jump mandatory.
func (m Move) HasRealJump() bool {
	for _, j := range m.Jumped {
		if j.Real {
			return true
		}
	}
	return false
}

func (m Move) equal(other Move) bool {
	if m.From != other.From || m.To != other.To || len(m.Jumped) != len(other.Jumped) {
		return false
	}
	for i := range m.Jumped {
		if m.Jumped[i] != other.Jumped[i] {
			return false
		}
	}
	return true
}

// WSMove is the client's move intent: which piece and where to. The
// jumped set is derived server-side from the legal-move list.
type WSMove struct {
	PieceID PieceID  `json:"pieceId"`
	To      Position `json:"to"`
}
