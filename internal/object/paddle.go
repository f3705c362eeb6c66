package object

import "github.com/tomz197/pong/internal/physics"

// Paddle is a player-controlled bar that moves vertically inside the arena.
type Paddle struct {
	rect  physics.Rect
	arena Arena
	Speed float64 // Distance moved per tick while a direction is held

	up, down bool
}

// NewPaddle creates a paddle from initialRect, clamped to lie inside arena.
// speed is the per-tick step distance.
func NewPaddle(initialRect physics.Rect, arena Arena, speed float64) (*Paddle, error) {
	if initialRect.Empty() {
		return nil, configErrorf("paddle", "size must be positive, got %vx%v", initialRect.Width, initialRect.Height)
	}
	if !initialRect.Fits(arena.Rect()) {
		return nil, configErrorf("paddle", "%vx%v does not fit in a %vx%v arena",
			initialRect.Width, initialRect.Height, arena.Width(), arena.Height())
	}
	if speed < 0 {
		return nil, configErrorf("paddle speed", "must not be negative, got %v", speed)
	}
	return &Paddle{
		rect:  initialRect.Clamp(arena.Rect()),
		arena: arena,
		Speed: speed,
	}, nil
}

// Rect returns the paddle's current extent.
func (p *Paddle) Rect() physics.Rect {
	return p.rect
}

// SetIntent stores this tick's raw key-down state. Both may be held at once.
func (p *Paddle) SetIntent(up, down bool) {
	p.up = up
	p.down = down
}

// Update applies the held intents and keeps the paddle inside the arena.
// Up is applied before down, so holding both leaves the paddle in place.
func (p *Paddle) Update() {
	if p.up {
		p.rect = p.rect.Move(0, -p.Speed)
	}
	if p.down {
		p.rect = p.rect.Move(0, p.Speed)
	}

	if p.rect.Top() < 0 {
		p.rect = p.rect.WithTop(0)
	}
	if p.rect.Bottom() > p.arena.Height() {
		p.rect = p.rect.WithBottom(p.arena.Height())
	}
}
