// Package config centralizes all tunable game parameters.
package config

import "time"

// Arena dimensions in logical units.
const (
	ArenaWidth  = 600
	ArenaHeight = 400
)

// Paddles
const (
	PaddleWidth  = 10
	PaddleHeight = 50
	PaddleSpeed  = 5 // Units per tick while a key is held
)

// Ball
const (
	BallWidth  = 30
	BallHeight = 30
	BallSpeed  = 5.0 // Velocity magnitude of every serve, units per tick
)

// Tick rate
const (
	TickRate = 60
	TickTime = time.Second / TickRate
)

// Terminal rendering. The canvas never grows beyond MaxTermWidth x
// MaxTermHeight cells; larger terminals get a centered, bordered view.
const (
	MaxTermWidth  = 120
	MaxTermHeight = 40
)
