package behavior

import (
	"image/color"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
)

// Renderer receives the draw commands emitted by the boids.
type Renderer interface {
	DrawTriangle(t Triangle)
}

// Triangle is a filled and outlined isosceles triangle.
// In local space the nose sits at (0, -Length/2) and the tail corners at (±HalfWidth, Length/2);
// the shape is rotated by Heading then translated to Position.
type Triangle struct {
	Position  geometry.Vector2D
	Heading   float64
	Length    float64
	HalfWidth float64
	Fill      color.RGBA
	Stroke    color.RGBA
}

// Vertices returns nose, left tail and right tail in world coordinates.
func (t Triangle) Vertices() [3]geometry.Vector2D {
	half := t.Length / 2
	local := [3]geometry.Vector2D{
		{X: 0, Y: -half},
		{X: -t.HalfWidth, Y: half},
		{X: t.HalfWidth, Y: half},
	}
	var out [3]geometry.Vector2D
	for i, v := range local {
		out[i] = v.Rotate(t.Heading).Add(t.Position)
	}
	return out
}

// Frame records the triangles of one tick so they can be replayed later.
type Frame struct {
	triangles []Triangle
}

// DrawTriangle implements Renderer.
func (f *Frame) DrawTriangle(t Triangle) {
	f.triangles = append(f.triangles, t)
}

// Reset empties the frame, keeping its capacity.
func (f *Frame) Reset() {
	f.triangles = f.triangles[:0]
}

// Triangles returns the recorded commands in emission order.
func (f *Frame) Triangles() []Triangle { return f.triangles }

// Len returns the number of recorded commands.
func (f *Frame) Len() int { return len(f.triangles) }
