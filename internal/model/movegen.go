package model

import "fmt"

type direction struct {
	dr, dc int
}

func moveDirections(p *Piece) []direction {
	forward := p.Color.forwardDir()
	dirs := []direction{{forward, -1}, {forward, 1}}
	if p.King {
		dirs = append(dirs, direction{-forward, -1}, direction{-forward, 1})
	}
	return dirs
}

// LegalMoves generates every move the piece may make in the given
// state. If any jump over a live opposing piece exists, only such
// jumps are returned (mandatory capture). Ghost-only jumps are
// optional and returned alongside regular steps. The function is pure
// and deterministic.
func LegalMoves(state *GameState, id PieceID) ([]Move, error) {
	piece, ok := state.Pieces[id]
	if !ok {
		return nil, fmt.Errorf("no piece with id %d", id)
	}
	from := piece.Pos()

	var regular, ghostJumps, realJumps []Move
	for _, d := range moveDirections(piece) {
		step := from.Step(d.dr, d.dc)
		if step.OnBoard() {
			if _, occupied := state.Occupancy[step]; !occupied {
				regular = append(regular, Move{From: from, To: step})
			}
		}
		landing := from.Step(2*d.dr, 2*d.dc)
		if !landing.OnBoard() {
			continue
		}
		if _, occupied := state.Occupancy[landing]; occupied {
			continue
		}
		jumped := state.jumpedAt(step, piece.Color)
		if len(jumped) == 0 {
			continue
		}
		mv := Move{From: from, To: landing, Jumped: jumped}
		if mv.HasRealJump() {
			realJumps = append(realJumps, mv)
		} else {
			ghostJumps = append(ghostJumps, mv)
		}
	}

	if len(realJumps) > 0 {
		return realJumps, nil
	}
	return append(ghostJumps, regular...), nil
}

// jumpedAt collects every opposing piece a jump over mid would observe:
// the live occupant of mid, if hostile, plus every opposing piece whose
// trail passes through mid. At most one reference per piece; for a
// trail that revisits mid the most recent ghost is the one observed.
func (s *GameState) jumpedAt(mid Position, mover PlayerColor) []JumpedRef {
	var refs []JumpedRef
	realID := PieceID(-1)
	if occ, ok := s.PieceAt(mid); ok && occ.Color != mover {
		realID = occ.ID
		refs = append(refs, JumpedRef{
			PieceID:      occ.ID,
			Real:         true,
			HistoryIndex: len(occ.History) - 1,
		})
	}
	for _, id := range s.pieceIDs() {
		p := s.Pieces[id]
		if p.Color == mover || id == realID {
			continue
		}
		for i := len(p.History) - 2; i >= 0; i-- {
			if p.History[i] == mid {
				refs = append(refs, JumpedRef{PieceID: id, HistoryIndex: i})
				break
			}
		}
	}
	return refs
}
