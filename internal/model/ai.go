package model

import "math/rand"

// SelectedMove pairs a move with the piece that makes it.
type SelectedMove struct {
	PieceID PieceID
	Move    Move
}

// ghostJumpOdds is the chance the bot takes an optional ghost jump when
// a regular move is also available.
const ghostJumpOdds = 3 // 1 in 3

// SelectMove picks a move for the automated side. Candidates come from
// mustMove's legal moves while a multi-jump is in flight, otherwise
// from every piece of the side to move. Mandatory live-piece jumps
// outrank optional ghost jumps, which outrank regular steps; within a
// bucket the pick is uniform. Returns nil only when no candidate move
// exists.
func SelectMove(state *GameState, mustMove *PieceID, rng *rand.Rand) *SelectedMove {
	var ids []PieceID
	if mustMove != nil {
		ids = []PieceID{*mustMove}
	} else {
		ids = state.piecesOf(state.ToMove)
	}

	var real, ghost, regular []SelectedMove
	for _, id := range ids {
		moves, err := LegalMoves(state, id)
		if err != nil {
			continue
		}
		for _, m := range moves {
			sm := SelectedMove{PieceID: id, Move: m}
			switch {
			case m.HasRealJump():
				real = append(real, sm)
			case m.IsJump():
				ghost = append(ghost, sm)
			default:
				regular = append(regular, sm)
			}
		}
	}

	switch {
	case len(real) > 0:
		return &real[rng.Intn(len(real))]
	case len(ghost) > 0 && (len(regular) == 0 || rng.Intn(ghostJumpOdds) == 0):
		return &ghost[rng.Intn(len(ghost))]
	case len(regular) > 0:
		return &regular[rng.Intn(len(regular))]
	default:
		return nil
	}
}
