package draw

import (
	"io"
	"os"
	"strconv"

	"golang.org/x/term"
)

// ANSI sequences used around a session.
const (
	clearScreen = "\033[H\033[2J"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes fits in a typical MTU for smooth SSH/network transmission.
const maxChunkSize = 1400

// ChunkWriter collects one frame of terminal output and hands it to the
// underlying writer on Flush, maxChunkSize bytes at a time. WriteAt takes
// canvas cells; the canvas offset is added here.
type ChunkWriter struct {
	out    io.Writer
	frame  []byte
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that flushes to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{out: w}
}

// SetOffset moves the canvas origin, e.g. after a resize.
func (cw *ChunkWriter) SetOffset(col, row int) {
	cw.offCol = col
	cw.offRow = row
}

// Write appends p to the frame unchanged. Canvas output is already absolute.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	cw.frame = append(cw.frame, p...)
	return len(p), nil
}

// WriteAt places s at the 1-based canvas cell (col, row).
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.frame = appendCursor(cw.frame, col+cw.offCol, row+cw.offRow)
	cw.frame = append(cw.frame, s...)
}

// ClearScreen queues a full clear with the cursor sent home.
func (cw *ChunkWriter) ClearScreen() {
	cw.frame = append(cw.frame, clearScreen...)
}

// ShowCursor queues showing or hiding the terminal cursor.
func (cw *ChunkWriter) ShowCursor(visible bool) {
	if visible {
		cw.frame = append(cw.frame, showCursor...)
		return
	}
	cw.frame = append(cw.frame, hideCursor...)
}

// Flush writes the queued frame and starts a new one.
func (cw *ChunkWriter) Flush() error {
	err := writeChunks(cw.out, cw.frame)
	cw.frame = cw.frame[:0]
	return err
}

// appendCursor appends the cursor position sequence for the 1-based
// terminal cell (col, row).
func appendCursor(b []byte, col, row int) []byte {
	b = append(b, "\033["...)
	b = strconv.AppendInt(b, int64(row), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col), 10)
	return append(b, 'H')
}

// writeChunks writes data to w in pieces of at most maxChunkSize bytes.
func writeChunks(w io.Writer, data []byte) error {
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}
