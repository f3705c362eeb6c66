package loop

import (
	"github.com/charmbracelet/log"

	"github.com/tomz197/pong/internal/config"
	"github.com/tomz197/pong/internal/object"
	"github.com/tomz197/pong/internal/physics"
	"github.com/tomz197/pong/internal/random"
)

// Controls is one tick's state of the four logical controls.
type Controls struct {
	LeftUp    bool
	LeftDown  bool
	RightUp   bool
	RightDown bool
}

// Score holds each side's points for the session. It is never persisted.
type Score struct {
	Left  int
	Right int
}

// Match owns everything in one session: the arena, both paddles and the ball.
// It is driven by a single goroutine; nothing in it blocks or does I/O apart
// from debug logging.
type Match struct {
	Arena object.Arena
	Left  *object.Paddle
	Right *object.Paddle
	Ball  *object.Ball
	Score Score
	Ticks uint64

	logger *log.Logger
}

// MatchOption configures a Match.
type MatchOption func(*Match)

// WithLogger makes the match log serves and points at debug level.
func WithLogger(logger *log.Logger) MatchOption {
	return func(m *Match) {
		m.logger = logger
	}
}

// NewMatch sets up a session from settings. Paddles start vertically centered
// against the left and right edges; the ball is served from the center.
func NewMatch(settings config.Settings, rng random.Source, opts ...MatchOption) (*Match, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	arena, err := object.NewArena(settings.Arena.Width, settings.Arena.Height)
	if err != nil {
		return nil, err
	}

	pw, ph := settings.Paddle.Width, settings.Paddle.Height
	middle := arena.Height()/2 - ph/2

	left, err := object.NewPaddle(physics.NewRect(0, middle, pw, ph), arena, settings.Paddle.Speed)
	if err != nil {
		return nil, err
	}
	right, err := object.NewPaddle(physics.NewRect(arena.Width()-pw, middle, pw, ph), arena, settings.Paddle.Speed)
	if err != nil {
		return nil, err
	}

	ball, err := object.NewBall(physics.NewRect(0, 0, settings.Ball.Width, settings.Ball.Height), arena, settings.Ball.Speed, rng)
	if err != nil {
		return nil, err
	}

	m := &Match{
		Arena: arena,
		Left:  left,
		Right: right,
		Ball:  ball,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Step advances the match by one tick: paddles move, the ball moves and
// bounces off walls, then paddle contact is checked.
func (m *Match) Step(c Controls) {
	m.Ticks++

	m.Left.SetIntent(c.LeftUp, c.LeftDown)
	m.Right.SetIntent(c.RightUp, c.RightDown)
	m.Left.Update()
	m.Right.Update()

	switch m.Ball.Update() {
	case object.SideLeft:
		m.Score.Right++
		m.logPoint("right")
	case object.SideRight:
		m.Score.Left++
		m.logPoint("left")
	}

	if CheckCollisions(m.Ball, m.Left, m.Right) && m.logger != nil {
		m.logger.Debug("paddle hit", "tick", m.Ticks, "vx", m.Ball.VX, "vy", m.Ball.VY)
	}
}

func (m *Match) logPoint(scorer string) {
	if m.logger == nil {
		return
	}
	m.logger.Debug("point",
		"scorer", scorer,
		"left", m.Score.Left,
		"right", m.Score.Right,
		"tick", m.Ticks,
		"serve", object.DirectionFromSign(m.Ball.VX),
	)
}

// Bodies returns everything a renderer draws, in draw order.
func (m *Match) Bodies() []object.Body {
	return []object.Body{m.Left, m.Right, m.Ball}
}
