// Package window plays a match in a desktop window through ebiten.
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/pong/internal/loop"
)

// Title is the window title.
const Title = "Pong Clone"

var (
	backgroundColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	bodyColor       = color.White
)

// KeyFunc reports the state of a key.
type KeyFunc func(ebiten.Key) bool

// Game implements ebiten.Game for one local match.
// Update is called once per tick at the match's tick rate.
type Game struct {
	match *loop.Match

	pressed     KeyFunc
	justPressed KeyFunc
}

// NewGame wraps match. Keys are read from ebiten.
func NewGame(match *loop.Match) *Game {
	return &Game{
		match:       match,
		pressed:     ebiten.IsKeyPressed,
		justPressed: inpututil.IsKeyJustPressed,
	}
}

// Update reads the keyboard and steps the match.
// Returns ebiten.Termination when the player quits.
func (g *Game) Update() error {
	if g.justPressed(ebiten.KeyEscape) || g.justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.match.Step(g.controls())
	return nil
}

// controls maps the keyboard onto the four logical controls.
func (g *Game) controls() loop.Controls {
	return loop.Controls{
		LeftUp:    g.pressed(ebiten.KeyA),
		LeftDown:  g.pressed(ebiten.KeyZ),
		RightUp:   g.pressed(ebiten.KeyArrowUp),
		RightDown: g.pressed(ebiten.KeyArrowDown),
	}
}

// Draw paints the background, every body and both scores.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, body := range g.match.Bodies() {
		r := body.Rect()
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), bodyColor, false)
	}

	w := int(g.match.Arena.Width())
	ebitenutil.DebugPrintAt(screen, fmt.Sprint(g.match.Score.Left), w/4, 10)
	ebitenutil.DebugPrintAt(screen, fmt.Sprint(g.match.Score.Right), w*3/4, 10)
}

// Layout returns the arena size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Size()
}

// Size returns the arena size in whole pixels.
func (g *Game) Size() (width, height int) {
	return int(g.match.Arena.Width()), int(g.match.Arena.Height())
}
