package model

// CheckWin returns the winner, or nil while the game continues. A side
// with no pieces has lost; a side to move with no legal move has lost
// (being stuck counts as a loss, not a draw).
func CheckWin(state *GameState, sideToMove PlayerColor) *PlayerColor {
	opponent := sideToMove.Opponent()
	if len(state.piecesOf(sideToMove)) == 0 {
		return &opponent
	}
	if len(state.piecesOf(opponent)) == 0 {
		winner := sideToMove
		return &winner
	}
	for _, id := range state.piecesOf(sideToMove) {
		moves, err := LegalMoves(state, id)
		if err == nil && len(moves) > 0 {
			return nil
		}
	}
	return &opponent
}
