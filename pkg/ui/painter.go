package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
)

// maxBatch keeps the vertex count of one DrawTriangles call under the uint16 index limit.
const maxBatch = 16384

// Painter replays a behavior.Frame onto an ebiten image.
// Fills are batched in as few DrawTriangles calls as possible, outlines are stroked per edge.
type Painter struct {
	StrokeWidth float32
	AntiAlias   bool

	whiteImage *ebiten.Image // created on first Paint
	vertices   []ebiten.Vertex
	indices    []uint16
}

func NewPainter() *Painter {
	return &Painter{
		StrokeWidth: 1,
		AntiAlias:   true,
	}
}

// Paint draws every triangle of the frame in emission order.
func (p *Painter) Paint(dst *ebiten.Image, frame *behavior.Frame) {
	if p.whiteImage == nil {
		p.whiteImage = ebiten.NewImage(3, 3)
		p.whiteImage.Fill(color.White)
	}
	triangles := frame.Triangles()
	for _, r := range batchRanges(len(triangles)) {
		p.vertices, p.indices = buildBatch(p.vertices[:0], p.indices[:0], triangles[r[0]:r[1]])
		dst.DrawTriangles(p.vertices, p.indices, p.whiteImage, &ebiten.DrawTrianglesOptions{})
	}
	if p.StrokeWidth <= 0 {
		return
	}
	for _, t := range triangles {
		p.stroke(dst, t)
	}
}

// batchRanges splits n triangles into [start, end) spans of at most maxBatch.
func batchRanges(n int) [][2]int {
	var out [][2]int
	for start := 0; start < n; start += maxBatch {
		out = append(out, [2]int{start, min(start+maxBatch, n)})
	}
	return out
}

// buildBatch appends three vertices and three indices per triangle.
// Indices restart at 0 for every batch, so len(triangles) must not exceed maxBatch.
func buildBatch(vs []ebiten.Vertex, is []uint16, triangles []behavior.Triangle) ([]ebiten.Vertex, []uint16) {
	for _, t := range triangles {
		base := uint16(len(vs))
		r, g, b, a := normalized(t.Fill)
		for _, v := range t.Vertices() {
			vs = append(vs, ebiten.Vertex{
				DstX: float32(v.X),
				DstY: float32(v.Y),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			})
		}
		is = append(is, base, base+1, base+2)
	}
	return vs, is
}

func (p *Painter) stroke(dst *ebiten.Image, t behavior.Triangle) {
	v := t.Vertices()
	for i := range v {
		a, b := v[i], v[(i+1)%len(v)]
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), p.StrokeWidth, t.Stroke, p.AntiAlias)
	}
}

func normalized(c color.RGBA) (float32, float32, float32, float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
