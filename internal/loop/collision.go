package loop

import (
	"github.com/tomz197/pong/internal/object"
	"github.com/tomz197/pong/internal/physics"
)

// Bouncer is the part of the ball the collision check needs.
type Bouncer interface {
	Rect() physics.Rect
	Bounce()
}

// CheckCollisions bounces the ball if it overlaps any paddle.
// The ball bounces at most once per call no matter how many paddles it
// touches. Reports whether a bounce happened.
func CheckCollisions(ball Bouncer, paddles ...*object.Paddle) bool {
	rect := ball.Rect()
	for _, p := range paddles {
		if physics.Overlaps(rect, p.Rect()) {
			ball.Bounce()
			return true
		}
	}
	return false
}
