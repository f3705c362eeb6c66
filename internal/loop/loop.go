// Package loop runs a pong match against a terminal: it polls input, steps
// the match at a fixed tick rate and redraws the arena.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/draw"
	"github.com/tomz197/pong/internal/input"
	loopconfig "github.com/tomz197/pong/internal/loop/config"
	"github.com/tomz197/pong/internal/random"
)

// Options configures a terminal session.
type Options struct {
	// Settings for the match. The zero value means config.DefaultSettings().
	Settings config.Settings
	// Random feeds serves and bounces. Nil seeds a PCG from Settings.Seed.
	Random random.Source
	// TermSizeFunc reports the terminal size. Nil means the local stdout.
	TermSizeFunc draw.TermSizeFunc
	Logger       *log.Logger
}

// Session is one match played in one terminal.
type Session struct {
	match        *Match
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter
	inputStream  *input.Stream
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
	tickTime     time.Duration

	termWidth  int
	termHeight int
	running    bool
}

// NewSession builds a match from opts and prepares the canvas for w.
func NewSession(r *bufio.Reader, w io.Writer, opts Options) (*Session, error) {
	settings := opts.Settings
	if settings == (config.Settings{}) {
		settings = config.DefaultSettings()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := opts.Random
	if rng == nil {
		rng = random.NewSource(settings.Seed)
	}

	match, err := NewMatch(settings, rng, WithLogger(logger))
	if err != nil {
		return nil, err
	}

	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}

	s := &Session{
		match:        match,
		chunkWriter:  draw.NewChunkWriter(w),
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		logger:       logger,
		tickTime:     time.Second / time.Duration(settings.TickRate),
	}
	s.canvas = draw.NewScaledCanvas(1, 1, match.Arena.Width(), match.Arena.Height())
	s.updateScreen()
	return s, nil
}

// Run is NewSession followed by Session.Run.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	s, err := NewSession(bufio.NewReader(r), w, opts)
	if err != nil {
		return err
	}
	return s.Run(ctx)
}

// Match exposes the session's match.
func (s *Session) Match() *Match {
	return s.match
}

// Run plays until the player quits, the input closes or ctx is done.
func (s *Session) Run(ctx context.Context) error {
	s.chunkWriter.ShowCursor(false)
	s.chunkWriter.ClearScreen()
	if err := s.chunkWriter.Flush(); err != nil {
		return err
	}
	defer s.inputStream.Stop()
	defer func() {
		s.chunkWriter.ClearScreen()
		s.chunkWriter.ShowCursor(true)
		_ = s.chunkWriter.Flush()
	}()

	s.logger.Info("match started",
		"arena", s.match.Arena.Rect(),
		"tickRate", int(time.Second/s.tickTime),
	)

	s.running = true
	for s.running {
		frameStart := time.Now()

		select {
		case <-ctx.Done():
			s.running = false
			continue
		default:
		}

		// ===== INPUT PHASE =====
		controls := s.processInput()
		if !s.running {
			break
		}

		// ===== UPDATE PHASE =====
		s.updateScreen()
		s.match.Step(controls)

		// ===== DRAW PHASE =====
		if err := s.drawFrame(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < s.tickTime {
			select {
			case <-ctx.Done():
				s.running = false
			case <-time.After(s.tickTime - elapsed):
			}
		}
	}

	s.logger.Info("match ended",
		"left", s.match.Score.Left,
		"right", s.match.Score.Right,
		"ticks", s.match.Ticks,
	)
	return nil
}

// processInput reads the pending input and maps it onto the four controls.
func (s *Session) processInput() Controls {
	in := input.ReadInput(s.inputStream)
	if in.Quit || in.Escape || in.Closed {
		s.running = false
	}
	return Controls{
		LeftUp:    in.LeftUp,
		LeftDown:  in.LeftDown,
		RightUp:   in.RightUp,
		RightDown: in.RightDown,
	}
}

// updateScreen handles terminal resize.
func (s *Session) updateScreen() {
	termWidth, termHeight, err := s.termSizeFunc()
	if err != nil {
		return
	}
	if termWidth == s.termWidth && termHeight == s.termHeight {
		return
	}

	if s.termWidth != 0 {
		s.logger.Debug("terminal resized", "width", termWidth, "height", termHeight)
		// Offsets move, so the old border and HUD would stay on screen.
		s.chunkWriter.ClearScreen()
		input.ResetKeyInput(s.inputStream)
	}
	s.termWidth, s.termHeight = termWidth, termHeight

	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	s.chunkWriter.SetOffset(s.canvas.Offset())
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// offsets to center the render area within the terminal.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > loopconfig.MaxTermWidth {
		renderWidth = loopconfig.MaxTermWidth
	}
	if renderHeight > loopconfig.MaxTermHeight {
		renderHeight = loopconfig.MaxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}
