package object

import (
	"errors"
	"math"
	"testing"

	"github.com/tomz197/pong/internal/physics"
	"github.com/tomz197/pong/internal/random"
)

const speedTolerance = 1e-9

func newTestBall(t *testing.T, rng random.Source) *Ball {
	t.Helper()
	b, err := NewBall(physics.NewRect(0, 0, 30, 30), testArena(t), 5.0, rng)
	if err != nil {
		t.Fatalf("NewBall: %v", err)
	}
	return b
}

func TestNewBall(t *testing.T) {
	arena := testArena(t)

	tests := []struct {
		name    string
		rect    physics.Rect
		speed   float64
		rng     random.Source
		wantErr bool
	}{
		{name: "valid", rect: physics.NewRect(0, 0, 30, 30), speed: 5, rng: random.NewSource(1)},
		{name: "zero speed", rect: physics.NewRect(0, 0, 30, 30), speed: 0, rng: random.NewSource(1), wantErr: true},
		{name: "negative speed", rect: physics.NewRect(0, 0, 30, 30), speed: -5, rng: random.NewSource(1), wantErr: true},
		{name: "zero size", rect: physics.NewRect(0, 0, 0, 30), speed: 5, rng: random.NewSource(1), wantErr: true},
		{name: "missing random source", rect: physics.NewRect(0, 0, 30, 30), speed: 5, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBall(tt.rect, arena, tt.speed, tt.rng)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewBall() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var cfgErr *ConfigError
				if !errors.As(err, &cfgErr) {
					t.Errorf("error %v is not a *ConfigError", err)
				}
				return
			}
			x, y := b.Rect().Center()
			if x != 300 || y != 200 {
				t.Errorf("first serve center = (%v, %v), want (300, 200)", x, y)
			}
			if math.Abs(b.Speed()-5) > speedTolerance {
				t.Errorf("first serve speed = %v, want 5", b.Speed())
			}
		})
	}
}

func TestSpawnConservesSpeed(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		b := newTestBall(t, random.NewSource(seed))
		for _, dir := range []Direction{Left, Right} {
			if err := b.Spawn(dir); err != nil {
				t.Fatalf("Spawn(%v): %v", dir, err)
			}

			sq := b.VX*b.VX + b.VY*b.VY
			if math.Abs(sq-25) > speedTolerance {
				t.Fatalf("seed %d: vx²+vy² = %v, want 25", seed, sq)
			}

			ratio := math.Abs(b.VX) / b.BaseSpeed()
			if ratio < 0.3 || ratio >= 0.4 {
				t.Fatalf("seed %d: |vx|/speed = %v, want [0.3, 0.4)", seed, ratio)
			}

			if math.Signbit(b.VX) != (dir == Left) {
				t.Fatalf("seed %d: Spawn(%v) gave vx = %v", seed, dir, b.VX)
			}
		}
	}
}

func TestSpawnInvalidDirection(t *testing.T) {
	b := newTestBall(t, random.NewSource(3))
	before := *b

	for _, dir := range []Direction{0, 2, -2} {
		if err := b.Spawn(dir); !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("Spawn(%v) error = %v, want ErrInvalidDirection", dir, err)
		}
	}
	if b.Rect() != before.Rect() || b.VX != before.VX || b.VY != before.VY {
		t.Error("rejected Spawn mutated the ball")
	}
}

func TestSpawnUsesInjectedDraws(t *testing.T) {
	// Sign for the first serve, x ratio, vy sign; then the Spawn below.
	seq := random.NewSequence(0.9, 0, 0.9, 0.5, 0.1)
	b := newTestBall(t, seq)

	if b.VX != 1.5 {
		t.Errorf("first serve vx = %v, want 1.5", b.VX)
	}
	if want := math.Sqrt(25 - 2.25); b.VY != want {
		t.Errorf("first serve vy = %v, want %v", b.VY, want)
	}

	if err := b.Spawn(Left); err != nil {
		t.Fatal(err)
	}
	if want := -0.35 * 5; math.Abs(b.VX-want) > speedTolerance {
		t.Errorf("vx = %v, want %v", b.VX, want)
	}
	if b.VY >= 0 {
		t.Errorf("vy = %v, want negative", b.VY)
	}
}

func TestBounce(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		b := newTestBall(t, random.NewSource(seed))
		for i := 0; i < 5; i++ {
			vx, vy := b.VX, b.VY
			b.Bounce()

			if math.Abs(b.VX) <= math.Abs(vx) {
				t.Fatalf("seed %d: |vx| did not grow: %v -> %v", seed, vx, b.VX)
			}
			if math.Signbit(b.VX) == math.Signbit(vx) {
				t.Fatalf("seed %d: vx did not reverse: %v -> %v", seed, vx, b.VX)
			}
			xScale := math.Abs(b.VX / vx)
			if xScale < 1.1-speedTolerance || xScale >= 1.2 {
				t.Fatalf("seed %d: x scale %v outside [1.1, 1.2)", seed, xScale)
			}
			yScale := b.VY / vy
			if yScale < 0.7-speedTolerance || yScale >= 1.3 {
				t.Fatalf("seed %d: y scale %v outside [0.7, 1.3)", seed, yScale)
			}
		}
	}
}

func TestBounceIsNotRenormalized(t *testing.T) {
	// Serve draws, then x scale 1.2-ε and y scale 1.3-ε.
	seq := random.NewSequence(0.9, 0.5, 0.9, 0.999, 0.999)
	b := newTestBall(t, seq)
	b.Bounce()
	if b.Speed() <= b.BaseSpeed() {
		t.Errorf("speed after bounce = %v, want above base %v", b.Speed(), b.BaseSpeed())
	}
}

func TestUpdateMoves(t *testing.T) {
	b := newTestBall(t, random.NewSource(5))
	b.VX, b.VY = 2, -1.5
	start := b.Rect()

	if side := b.Update(); side != SideNone {
		t.Fatalf("Update() = %v, want none", side)
	}
	if got := b.Rect(); got.X != start.X+2 || got.Y != start.Y-1.5 {
		t.Errorf("Rect() = %v, want moved by (2, -1.5) from %v", got, start)
	}
}

func TestUpdateReflectsOffWalls(t *testing.T) {
	tests := []struct {
		name   string
		y      float64
		vy     float64
		wantVY float64
	}{
		{name: "bottom wall", y: 368, vy: 4, wantVY: -4},
		{name: "top wall", y: 2, vy: -4, wantVY: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBall(t, random.NewSource(9))
			b.rect = physics.NewRect(100, tt.y, 30, 30)
			b.VX, b.VY = 1, tt.vy

			if side := b.Update(); side != SideNone {
				t.Fatalf("Update() = %v, want none", side)
			}
			if b.VY != tt.wantVY {
				t.Errorf("vy = %v, want %v", b.VY, tt.wantVY)
			}
			if r := b.Rect(); r.Top() < 0 || r.Bottom() > 400 {
				t.Errorf("ball %v not inside the arena vertically", r)
			}
			if b.Rect().X != 101 {
				t.Errorf("x = %v, want 101", b.Rect().X)
			}
		})
	}
}

func TestUpdateReservesOnExit(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		vx       float64
		wantSide Side
		wantDir  Direction
	}{
		{name: "already out on the left", x: -1, vx: -3, wantSide: SideLeft, wantDir: Right},
		{name: "already out on the left, stationary", x: -1, vx: 0, wantSide: SideLeft, wantDir: Right},
		{name: "crosses the left edge", x: 2, vx: -3, wantSide: SideLeft, wantDir: Right},
		{name: "crosses the right edge", x: 569, vx: 3, wantSide: SideRight, wantDir: Left},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBall(t, random.NewSource(11))
			b.rect = physics.NewRect(tt.x, 100, 30, 30)
			b.VX, b.VY = tt.vx, 1

			if side := b.Update(); side != tt.wantSide {
				t.Fatalf("Update() = %v, want %v", side, tt.wantSide)
			}
			x, y := b.Rect().Center()
			if x != 300 || y != 200 {
				t.Errorf("center = (%v, %v), want (300, 200)", x, y)
			}
			if DirectionFromSign(b.VX) != tt.wantDir {
				t.Errorf("vx = %v, want serve toward %v", b.VX, tt.wantDir)
			}
			if math.Abs(b.Speed()-b.BaseSpeed()) > speedTolerance {
				t.Errorf("speed = %v, want base speed", b.Speed())
			}
		})
	}
}

func TestUpdateServesLikeSpawn(t *testing.T) {
	// First serve: sign, x ratio, vy sign. Then the re-serve under test.
	draws := []float64{0.9, 0.5, 0.9, 0.25, 0.1}

	exited := newTestBall(t, random.NewSequence(draws...))
	exited.rect = physics.NewRect(-1, 100, 30, 30)
	exited.VX, exited.VY = -3, 1
	if side := exited.Update(); side != SideLeft {
		t.Fatalf("Update() = %v, want %v", side, SideLeft)
	}

	spawned := newTestBall(t, random.NewSequence(draws...))
	if err := spawned.Spawn(Right); err != nil {
		t.Fatal(err)
	}

	if exited.Rect() != spawned.Rect() || exited.VX != spawned.VX || exited.VY != spawned.VY {
		t.Errorf("re-serve = %+v (%v, %v), Spawn(Right) = %+v (%v, %v)",
			exited.Rect(), exited.VX, exited.VY, spawned.Rect(), spawned.VX, spawned.VY)
	}
}

func TestSpawnRightRecenters(t *testing.T) {
	b := newTestBall(t, random.NewSource(13))
	b.rect = physics.NewRect(-1, 50, 30, 30)
	if err := b.Spawn(Right); err != nil {
		t.Fatal(err)
	}
	x, y := b.Rect().Center()
	if x != 300 || y != 200 || b.VX <= 0 {
		t.Errorf("after Spawn(Right): center (%v, %v), vx %v", x, y, b.VX)
	}
}

func TestBallReplayIsDeterministic(t *testing.T) {
	run := func() []physics.Rect {
		b := newTestBall(t, random.NewSource(2024))
		var trail []physics.Rect
		for tick := 0; tick < 2000; tick++ {
			if tick%37 == 0 {
				b.Bounce()
			}
			b.Update()
			trail = append(trail, b.Rect())
		}
		return trail
	}

	a, c := run(), run()
	for i := range a {
		if a[i] != c[i] {
			t.Fatalf("tick %d diverged: %v != %v", i, a[i], c[i])
		}
	}
}
