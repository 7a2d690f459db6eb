package behavior

import (
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
)

// Physical constants shared by every boid of the flock.
const (
	DefaultRadius   = 2.0 // Boid size
	DefaultMaxSpeed = 3.0
	DefaultMaxForce = 0.2 // Max steering force
)

// Boid represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// The name "boid" corresponds to a shortened version of "bird-oid object",
// which refers to a bird-like object. https://en.wikipedia.org/wiki/Boids
//
// A Boid only ever writes its own state. Other boids are read through the
// roster handed to Run, which is what keeps the exhaustive scan lock free.
type Boid struct {
	Position     geometry.Vector2D
	Velocity     geometry.Vector2D
	Acceleration geometry.Vector2D

	Radius   float64
	MaxSpeed float64
	MaxForce float64
}

// NewBoid creates a boid at (x, y) with a random velocity in [-1, 1] on both axes.
func NewBoid(x, y float64, rng *rand.Rand) *Boid {
	return &Boid{
		Position: geometry.Vector2D{X: x, Y: y},
		Velocity: geometry.Vector2D{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
		},
		Radius:   DefaultRadius,
		MaxSpeed: DefaultMaxSpeed,
		MaxForce: DefaultMaxForce,
	}
}

// Run executes the whole per-tick pipeline of the boid.
func (b *Boid) Run(roster []*Boid, env Environment, opts Options, r Renderer) {
	b.Flock(roster, env.Pointer)
	b.Update()
	b.ApplyBoundary(opts.Boundary, env)
	b.Render(r, opts.Palette)
}

// ApplyForce accumulates a force into the acceleration (unit mass).
func (b *Boid) ApplyForce(force geometry.Vector2D) {
	b.Acceleration = b.Acceleration.Add(force)
}

// Flock computes the four weighted steering forces and accumulates them.
// Only each unweighted force is capped at MaxForce, never the sum.
func (b *Boid) Flock(roster []*Boid, pointer geometry.Vector2D) {
	sep := b.Separation(roster).Mul(SeparationWeight)
	ali := b.Alignment(roster).Mul(AlignmentWeight)
	coh := b.Cohesion(roster).Mul(CohesionWeight)
	avo := b.Repulsion(pointer).Mul(RepulsionWeight)

	b.ApplyForce(sep)
	b.ApplyForce(ali)
	b.ApplyForce(coh)
	b.ApplyForce(avo)
}

// Update integrates the motion: the acceleration is consumed then reset.
func (b *Boid) Update() {
	b.Velocity = b.Velocity.Add(b.Acceleration).Limit(b.MaxSpeed)
	b.Position = b.Position.Add(b.Velocity)
	b.Acceleration = geometry.Zero
}

// ApplyBoundary enforces the boundary policy against the current canvas size.
func (b *Boid) ApplyBoundary(mode BoundaryMode, env Environment) {
	b.Position = mode.Apply(b.Position, b.Radius, env)
}

// Speed is the magnitude of the current velocity.
func (b *Boid) Speed() float64 {
	return b.Velocity.Len()
}

// Render emits one triangle pointing along the velocity, coloured by speed.
// It reads the boid state and never writes it.
func (b *Boid) Render(r Renderer, p Palette) {
	if r == nil {
		return
	}
	col := p.ColorAt(b.Speed(), b.MaxSpeed)
	r.DrawTriangle(Triangle{
		Position:  b.Position,
		Heading:   b.Velocity.Heading() + math.Pi/2,
		Length:    b.Radius * 4,
		HalfWidth: b.Radius,
		Fill:      col,
		Stroke:    col,
	})
}
