package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
	golog "github.com/tochemey/goakt/v3/log"
)

// Game implements ebiten.Game: one flock tick per Update, replayed in Draw.
// Run it with ebiten.SetTPS(ebiten.SyncWithFPS) to get one tick per displayed frame.
type Game struct {
	flock      *behavior.Flock
	frame      *behavior.Frame
	painter    *Painter
	background color.RGBA
	log        golog.Logger

	// canvas size, refreshed by Layout when the window is resized
	width, height int

	ShowStats bool

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// NewGame wraps a seeded flock. width and height are the canvas the flock was seeded on.
func NewGame(flock *behavior.Flock, width, height int, background color.RGBA, logger golog.Logger) *Game {
	if logger == nil {
		logger = golog.DiscardLogger
	}
	return &Game{
		flock:      flock,
		frame:      &behavior.Frame{},
		painter:    NewPainter(),
		background: background,
		log:        logger,
		width:      width,
		height:     height,
	}
}

// Environment samples the canvas size and cursor position for the current tick.
func (g *Game) Environment() behavior.Environment {
	mx, my := ebiten.CursorPosition()
	return behavior.Environment{
		Width:   float64(g.width),
		Height:  float64(g.height),
		Pointer: geometry.Vector2D{X: float64(mx), Y: float64(my)},
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	g.frame.Reset()
	g.flock.Advance(g.Environment(), g.frame)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(g.background)
	g.painter.Paint(screen, g.frame)

	if g.ShowStats {
		msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nBoids: %d\nMode: %s\n\nUpdate: %.2fms\nDraw:   %.2fms",
			ebiten.ActualFPS(),
			ebiten.ActualTPS(),
			g.flock.Len(),
			g.flock.Options().Boundary,
			g.updateAvg,
			g.drawAvg)
		ebitenutil.DebugPrintAt(screen, msg, 10, 10)
	}
}

// Layout makes the canvas follow the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// a minimised window reports 0x0, keep the last real size
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	if outsideWidth != g.width || outsideHeight != g.height {
		g.log.Debugf("canvas resized to %dx%d", outsideWidth, outsideHeight)
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}
