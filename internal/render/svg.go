// Package render draws static board diagrams. It is a read-only
// consumer of the rules state; nothing in here feeds back into the
// engine.
package render

import (
	"bytes"

	"ghostcheckers/internal/model"

	svg "github.com/ajstarks/svgo"
)

const cellSize = 60

// BoardSVG renders the current position as an SVG diagram: the board,
// every piece (kings ringed), and each piece's ghost trail as faded
// markers on the squares it has vacated.
func BoardSVG(state *model.GameState) []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(8*cellSize, 8*cellSize)

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			fill := "fill:#f0d9b5"
			if (model.Position{Row: row, Col: col}).Playable() {
				fill = "fill:#b58863"
			}
			canvas.Rect(col*cellSize, row*cellSize, cellSize, cellSize, fill)
		}
	}

	for _, p := range state.Pieces {
		for _, ghost := range p.Ghosts() {
			canvas.Circle(
				center(ghost.Col), center(ghost.Row), cellSize/5,
				ghostStyle(p.Color),
			)
		}
	}

	for _, p := range state.Pieces {
		pos := p.Pos()
		canvas.Circle(center(pos.Col), center(pos.Row), cellSize/2-8, pieceStyle(p.Color))
		if p.King {
			canvas.Circle(center(pos.Col), center(pos.Row), cellSize/4, "fill:none;stroke:#d4af37;stroke-width:3")
		}
	}

	canvas.End()
	return buf.Bytes()
}

func center(n int) int {
	return n*cellSize + cellSize/2
}

func pieceStyle(c model.PlayerColor) string {
	if c == model.PlayerColorWhite {
		return "fill:#fafafa;stroke:#555;stroke-width:2"
	}
	return "fill:#2b2b2b;stroke:#000;stroke-width:2"
}

func ghostStyle(c model.PlayerColor) string {
	if c == model.PlayerColorWhite {
		return "fill:#fafafa;fill-opacity:0.35"
	}
	return "fill:#2b2b2b;fill-opacity:0.35"
}
