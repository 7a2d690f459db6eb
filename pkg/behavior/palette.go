package behavior

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps a speed to a colour between two endpoints.
type Palette struct {
	Slow colorful.Color
	Fast colorful.Color
}

// DefaultPalette goes from red (slow) to blue (fast).
var DefaultPalette = Palette{
	Slow: colorful.Color{R: 1, G: 0, B: 50.0 / 255.0},
	Fast: colorful.Color{R: 0, G: 0, B: 1},
}

// Blend returns the linear RGB interpolation for speed/maxSpeed clamped into [0, 1].
func (p Palette) Blend(speed, maxSpeed float64) colorful.Color {
	t := 0.0
	if maxSpeed > 0 {
		t = math.Min(math.Max(speed/maxSpeed, 0), 1)
	}
	return p.Slow.BlendRgb(p.Fast, t)
}

// ColorAt is Blend converted to an opaque color.RGBA.
func (p Palette) ColorAt(speed, maxSpeed float64) color.RGBA {
	r, g, b := p.Blend(speed, maxSpeed).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
