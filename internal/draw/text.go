package draw

import "unicode/utf8"

// Text is a string placed on the canvas at a 1-based cell position.
type Text struct {
	Col   int
	Row   int
	Value string
}

// CenteredText returns a Text horizontally centered on col.
func CenteredText(col, row int, value string) Text {
	return Text{
		Col:   col - utf8.RuneCountInString(value)/2,
		Row:   row,
		Value: value,
	}
}

// Draw writes the text through cw. Positions before the first cell are
// pulled back onto the canvas.
func (t Text) Draw(cw *ChunkWriter) {
	if t.Value == "" {
		return
	}
	col, row := t.Col, t.Row
	if col < 1 {
		col = 1
	}
	if row < 1 {
		row = 1
	}
	cw.WriteAt(col, row, t.Value)
}
