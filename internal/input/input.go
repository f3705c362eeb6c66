// Package input turns a raw terminal byte stream into per-tick key state.
package input

import (
	"bufio"
	"sync"
	"time"
)

// KeyHoldDuration is how long a key is considered "held" after its last byte.
// Terminals send no key-up events, only the initial press and auto-repeat, so
// this has to bridge the gap between repeats.
const KeyHoldDuration = 80 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	LeftUp    bool // a
	LeftDown  bool // z
	RightUp   bool // Up arrow
	RightDown bool // Down arrow
	Quit      bool // q
	Escape    bool // Esc on its own
	Closed    bool // The underlying reader is gone
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	leftUp    time.Time
	leftDown  time.Time
	rightUp   time.Time
	rightDown time.Time
	quit      time.Time
	escape    time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	hold   time.Duration
	now    func() time.Time
	closed bool

	done     chan struct{}
	stopOnce sync.Once
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits when r fails or, once Stop is called, at the next byte.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{
		ch:   make(chan byte, 128),
		hold: KeyHoldDuration,
		now:  time.Now,
		done: make(chan struct{}),
	}
}

// Stop tells the reader goroutine nobody reads the stream any more.
// Safe to call more than once.
func (s *Stream) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and accumulates all pressed keys.
// Uses key state persistence so both players can hold keys at the same time.
func ReadInput(s *Stream) Input {
	now := s.now()
	var buf []byte

	// Drain all available bytes
drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	parseBytes(&s.state, buf, now)

	held := func(t time.Time) bool {
		return now.Sub(t) < s.hold
	}
	return Input{
		LeftUp:    held(s.state.leftUp),
		LeftDown:  held(s.state.leftDown),
		RightUp:   held(s.state.rightUp),
		RightDown: held(s.state.rightDown),
		Quit:      held(s.state.quit),
		Escape:    held(s.state.escape),
		Closed:    s.closed,
	}
}

// ResetKeyInput forgets every held key, e.g. after a pause or resize.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
}

// parseBytes updates the key state timestamps for one batch of bytes.
func parseBytes(state *keyState, buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <params> <final>, or SS3 ESC O <final> in
		// application mode. Modified arrows carry params, e.g. ESC [ 1 ; 5 A.
		if b == '\x1b' && i+1 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			end, ok := sequenceEnd(buf, i+2)
			if !ok {
				// Cut off or malformed: resume at the byte that broke it.
				i = end - 1
				continue
			}
			switch buf[end] {
			case 'A': // Up arrow
				state.rightUp = now
			case 'B': // Down arrow
				state.rightDown = now
			}
			// Other sequences (left/right arrows, function keys) are ignored
			// rather than read as a bare Esc.
			i = end
			continue
		}

		applyByteToState(state, b, now)
	}
}

// sequenceEnd returns the index of the final byte (0x40-0x7e) of an escape
// sequence whose parameters start at buf[from]. Parameter and intermediate
// bytes (0x20-0x3f) are skipped. If there is no final byte it returns the
// index of the first byte that is not part of the sequence, or len(buf).
func sequenceEnd(buf []byte, from int) (int, bool) {
	for j := from; j < len(buf); j++ {
		switch c := buf[j]; {
		case c >= 0x40 && c <= 0x7e:
			return j, true
		case c < 0x20 || c > 0x3f:
			return j, false
		}
	}
	return len(buf), false
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'a', 'A':
		state.leftUp = now
	case 'z', 'Z':
		state.leftDown = now
	case 'q', 'Q', 0x03: // Ctrl+C arrives as a byte in raw mode
		state.quit = now
	case '\x1b':
		state.escape = now
	}
}
