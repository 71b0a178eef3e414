package model

// EventType tags the ordered outcome stream of a move. The frontend
// translates these 1:1 into animations and sounds; the engine itself
// only emits them.
type EventType string

const (
	EventMove         EventType = "move"
	EventGhost        EventType = "ghost"
	EventKing         EventType = "king"
	EventObservation  EventType = "observation"
	EventCascadeStart EventType = "cascade_start"
	EventInterference EventType = "interference"
	EventCollapseMove EventType = "collapse_move"
	EventCapture      EventType = "capture"
	EventMultiJump    EventType = "multijump"
)

// Event is one entry of the outcome stream.
//
//	move          PieceID moved From -> To
//	ghost         PieceID left a ghost on Square
//	king          PieceID promoted on Square
//	observation   PieceID was observed on Square (Real: current square,
//	              otherwise a ghost)
//	cascade_start PieceID's collapse onto Square is blocked by OtherID
//	interference  PieceID may not collapse onto Square (jumper landed there)
//	collapse_move PieceID retreated From -> To, trail cleared
//	capture       PieceID was removed from the board at Square
//	multijump     PieceID must jump again (HasMandatory: a live-piece
//	              jump is among the continuations)
type Event struct {
	Type         EventType `json:"type"`
	PieceID      PieceID   `json:"pieceId"`
	OtherID      PieceID   `json:"otherId,omitempty"`
	From         *Position `json:"from,omitempty"`
	To           *Position `json:"to,omitempty"`
	Square       *Position `json:"square,omitempty"`
	Real         bool      `json:"real,omitempty"`
	HasMandatory bool      `json:"hasMandatory,omitempty"`
}
