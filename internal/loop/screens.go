package loop

import (
	"fmt"

	"github.com/tomz197/pong/internal/draw"
)

const controlsHint = "a/z left   ↑/↓ right   q quit"

// netDash is the dash length of the center line, in half-rows.
const netDash = 2

// drawFrame draws the arena, bodies and HUD, then flushes the frame.
func (s *Session) drawFrame() error {
	s.canvas.Clear()

	netX, _ := s.match.Arena.Center()
	s.canvas.DashedVLine(netX, netDash)
	for _, body := range s.match.Bodies() {
		s.canvas.FillRect(body.Rect())
	}

	// Render canvas to terminal
	if err := s.canvas.Render(s.chunkWriter); err != nil {
		return err
	}

	// Draw border when terminal exceeds max render resolution
	if err := s.canvas.RenderBorder(s.chunkWriter); err != nil {
		return err
	}

	s.drawHUD()

	return s.chunkWriter.Flush()
}

// drawHUD draws both scores over their halves and the key hint on the last row.
func (s *Session) drawHUD() {
	termWidth := s.canvas.TerminalWidth()
	termHeight := s.canvas.TerminalHeight()

	// Scores sit a quarter of the arena in from each side.
	arenaWidth := s.match.Arena.Width()
	leftCol, row := s.canvas.LogicalToTerminal(arenaWidth/4, 0)
	rightCol, _ := s.canvas.LogicalToTerminal(arenaWidth*3/4, 0)
	draw.CenteredText(leftCol, row, fmt.Sprint(s.match.Score.Left)).Draw(s.chunkWriter)
	draw.CenteredText(rightCol, row, fmt.Sprint(s.match.Score.Right)).Draw(s.chunkWriter)

	if termHeight > 2 && termWidth >= len([]rune(controlsHint)) {
		draw.CenteredText(termWidth/2, termHeight, controlsHint).Draw(s.chunkWriter)
	}
}
