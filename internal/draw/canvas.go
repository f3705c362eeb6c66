// Package draw renders the arena to a terminal with ANSI escape sequences.
package draw

import (
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/tomz197/pong/internal/physics"
)

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Supports scaling from logical coordinates to actual terminal pixels.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x] - true if pixel is set

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets for centering the render area when the
	// terminal is larger than the max resolution.
	offsetCol int
	offsetRow int

	renderBuf []byte
	rowBuf    []rune
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the arena.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Offset returns the 0-based column and row offset used for centering.
func (c *Canvas) Offset() (col, row int) {
	return c.offsetCol, c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// pixel reports whether the pixel at terminal coordinates is set.
func (c *Canvas) pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// FillRect sets every pixel covered by r (logical coordinates).
// A rectangle always covers at least one pixel on each axis, so thin
// paddles stay visible on small terminals.
func (c *Canvas) FillRect(r physics.Rect) {
	x0 := int(math.Floor(r.Left() * c.scaleX))
	x1 := int(math.Ceil(r.Right()*c.scaleX)) - 1
	y0 := int(math.Floor(r.Top() * c.scaleY))
	y1 := int(math.Ceil(r.Bottom()*c.scaleY)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.setPixel(x, y)
		}
	}
}

// DashedVLine draws a dashed vertical line at logical x, alternating dash
// and gap of the given pixel length.
func (c *Canvas) DashedVLine(x float64, dash int) {
	if dash < 1 {
		dash = 1
	}
	px := int(math.Floor(x * c.scaleX))
	for y := 0; y < c.subPixelHeight; y++ {
		if (y/dash)%2 == 0 {
			c.setPixel(px, y)
		}
	}
}

// Render outputs the whole canvas to the writer using half-block characters.
// Every cell is written, so no screen clear is needed between frames.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf = c.renderBuf[:0]

	if cap(c.rowBuf) < c.termWidth {
		c.rowBuf = make([]rune, c.termWidth)
	}
	row := c.rowBuf[:c.termWidth]

	for r := 0; r < c.termHeight; r++ {
		for col := range row {
			top := c.pixel(col, r*2)
			bottom := c.pixel(col, r*2+1)
			switch {
			case top && bottom:
				row[col] = BlockFull
			case top:
				row[col] = BlockUpperHalf
			case bottom:
				row[col] = BlockLowerHalf
			default:
				row[col] = BlockEmpty
			}
		}
		c.renderBuf = appendCursor(c.renderBuf, 1+c.offsetCol, r+1+c.offsetRow)
		for _, ch := range row {
			c.renderBuf = utf8.AppendRune(c.renderBuf, ch)
		}
	}

	return writeChunks(w, c.renderBuf)
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
// Draws horizontal borders when there is vertical offset, vertical borders
// when there is horizontal offset, and corners when both are present.
func (c *Canvas) RenderBorder(w io.Writer) error {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf []byte
	line := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			buf = append(appendCursor(buf, left, top), "┌"+line+"┐"...)
			buf = append(appendCursor(buf, left, bottom), "└"+line+"┘"...)
		} else {
			buf = append(appendCursor(buf, c.offsetCol+1, top), line...)
			buf = append(appendCursor(buf, c.offsetCol+1, bottom), line...)
		}
	}

	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			buf = append(appendCursor(buf, left, row), "│"...)
			buf = append(appendCursor(buf, right, row), "│"...)
		}
	}

	return writeChunks(w, buf)
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row),
// relative to the canvas (offset not applied).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}
