// Package object implements the bodies in the arena: the two paddles and
// the ball, plus the arena bounds they are confined to.
package object

import (
	"errors"
	"fmt"

	"github.com/tomz197/pong/internal/physics"
)

// Body is anything with a rectangular extent that a renderer can draw.
type Body interface {
	Rect() physics.Rect
}

// ConfigError reports invalid construction parameters.
// It is only ever returned from constructors, never during play.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func configErrorf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ErrInvalidDirection is returned by Ball.Spawn for a direction that is not
// Left or Right.
var ErrInvalidDirection = errors.New("serve direction must be Left (-1) or Right (+1)")

// Direction is the horizontal direction a serve travels toward.
// Its value is the sign applied to the serve's horizontal velocity.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// DirectionFromSign converts a ±1 sign to a Direction.
func DirectionFromSign(sign float64) Direction {
	if sign < 0 {
		return Left
	}
	return Right
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Side identifies the arena edge a ball left through on a tick.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Arena is the rectangular play space. It is immutable once created.
type Arena struct {
	width, height float64
}

// NewArena creates an arena of the given size.
func NewArena(width, height float64) (Arena, error) {
	if width <= 0 || height <= 0 {
		return Arena{}, configErrorf("arena", "size must be positive, got %vx%v", width, height)
	}
	return Arena{width: width, height: height}, nil
}

// Width returns the arena width.
func (a Arena) Width() float64 { return a.width }

// Height returns the arena height.
func (a Arena) Height() float64 { return a.height }

// Rect returns the arena bounds with the origin at the top-left corner.
func (a Arena) Rect() physics.Rect {
	return physics.NewRect(0, 0, a.width, a.height)
}

// Center returns the center point of the arena.
func (a Arena) Center() (x, y float64) {
	return a.width / 2, a.height / 2
}
