package object

import (
	"math"

	"github.com/tomz197/pong/internal/physics"
	"github.com/tomz197/pong/internal/random"
)

// Serve and bounce tuning. Serves send the ball mostly vertically with a
// horizontal component of 30-40% of the base speed; every paddle hit speeds
// the horizontal component up and jitters the vertical one.
const (
	serveMinXRatio = 0.3
	serveMaxXRatio = 0.4

	bounceMinXScale = 1.1
	bounceMaxXScale = 1.2
	bounceMinYScale = 0.7
	bounceMaxYScale = 1.3
)

// Ball is the bouncing ball. It reflects off the top and bottom walls and is
// re-served from the arena center when it leaves through the left or right.
type Ball struct {
	rect      physics.Rect
	arena     Arena
	baseSpeed float64
	rng       random.Source

	VX, VY float64 // Velocity in arena units per tick
}

// NewBall creates a ball of initialRect's size and performs the first serve
// in a random direction. speed is the velocity magnitude of every serve.
func NewBall(initialRect physics.Rect, arena Arena, speed float64, rng random.Source) (*Ball, error) {
	if initialRect.Empty() {
		return nil, configErrorf("ball", "size must be positive, got %vx%v", initialRect.Width, initialRect.Height)
	}
	if speed <= 0 {
		return nil, configErrorf("ball speed", "must be positive, got %v", speed)
	}
	if rng == nil {
		return nil, configErrorf("ball", "random source is required")
	}

	b := &Ball{
		rect:      initialRect,
		arena:     arena,
		baseSpeed: speed,
		rng:       rng,
	}
	b.serve(DirectionFromSign(rng.Sign()))
	return b, nil
}

// Rect returns the ball's current extent.
func (b *Ball) Rect() physics.Rect {
	return b.rect
}

// BaseSpeed returns the speed every serve starts with.
func (b *Ball) BaseSpeed() float64 {
	return b.baseSpeed
}

// Speed returns the current velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}

// Spawn recenters the ball and serves it toward dir at exactly the base speed.
func (b *Ball) Spawn(dir Direction) error {
	if dir != Left && dir != Right {
		return ErrInvalidDirection
	}
	b.serve(dir)
	return nil
}

// serve recenters the ball and launches it toward dir, which must be Left or Right.
func (b *Ball) serve(dir Direction) {
	cx, cy := b.arena.Center()
	b.rect = b.rect.WithCenter(cx, cy)

	b.VX = float64(dir) * b.rng.Uniform(serveMinXRatio, serveMaxXRatio) * b.baseSpeed
	b.VY = b.rng.Sign() * math.Sqrt(b.baseSpeed*b.baseSpeed-b.VX*b.VX)
}

// Bounce reverses the horizontal direction after a paddle hit, speeding the
// ball up horizontally and randomly scaling its vertical speed. The speed is
// not renormalized; only the next serve restores the base speed.
func (b *Ball) Bounce() {
	b.VX *= b.rng.Uniform(bounceMinXScale, bounceMaxXScale)
	b.VX = -b.VX
	b.VY *= b.rng.Uniform(bounceMinYScale, bounceMaxYScale)
}

// Update moves the ball one tick, reflects it off the top and bottom walls and
// re-serves it if it left the arena. It returns the side the ball exited
// through, or SideNone.
func (b *Ball) Update() Side {
	b.rect = b.rect.Move(b.VX, b.VY)

	bounds := b.arena.Rect()
	if b.rect.Top() < bounds.Top() || b.rect.Bottom() > bounds.Bottom() {
		b.rect = b.rect.ClampVertical(bounds)
		b.VY = -b.VY
	}

	// A ball leaving on the left is served back toward the right, and vice versa.
	exited := SideNone
	if b.rect.Left() < bounds.Left() {
		exited = SideLeft
		b.serve(Right)
	}
	if b.rect.Right() > bounds.Right() {
		exited = SideRight
		b.serve(Left)
	}
	return exited
}
