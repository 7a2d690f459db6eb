package behavior

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func newTestBoid(x, y, vx, vy float64) *Boid {
	return &Boid{
		Position: geometry.Vector2D{X: x, Y: y},
		Velocity: geometry.Vector2D{X: vx, Y: vy},
		Radius:   DefaultRadius,
		MaxSpeed: DefaultMaxSpeed,
		MaxForce: DefaultMaxForce,
	}
}

func TestNewBoid(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 100; i++ {
		b := NewBoid(10, 20, rng)
		assert.Equal(t, geometry.Vector2D{X: 10, Y: 20}, b.Position)
		assert.True(t, b.Acceleration.IsZero())
		assert.GreaterOrEqual(t, b.Velocity.X, -1.0)
		assert.Less(t, b.Velocity.X, 1.0)
		assert.GreaterOrEqual(t, b.Velocity.Y, -1.0)
		assert.Less(t, b.Velocity.Y, 1.0)
		assert.Equal(t, 2.0, b.Radius)
		assert.Equal(t, 3.0, b.MaxSpeed)
		assert.Equal(t, 0.2, b.MaxForce)
	}
}

func TestBoid_Update_CapsSpeed(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 500; i++ {
		b := newTestBoid(0, 0, rng.Float64()*10-5, rng.Float64()*10-5)
		b.ApplyForce(geometry.Vector2D{X: rng.Float64()*40 - 20, Y: rng.Float64()*40 - 20})
		b.Update()
		require.LessOrEqual(t, b.Speed(), b.MaxSpeed+tolerance)
		require.True(t, b.Acceleration.IsZero(), "acceleration must be reset after integration")
	}
}

func TestBoid_Update_Order(t *testing.T) {
	b := newTestBoid(10, 10, 1, 0)
	b.ApplyForce(geometry.Vector2D{X: 0, Y: 1})
	b.Update()

	// velocity is updated before the position moves
	assert.Equal(t, geometry.Vector2D{X: 1, Y: 1}, b.Velocity)
	assert.Equal(t, geometry.Vector2D{X: 11, Y: 11}, b.Position)
	assert.Equal(t, geometry.Zero, b.Acceleration)
}

func TestBoid_Flock_AccumulatesWeightedForces(t *testing.T) {
	me := newTestBoid(100, 100, 0, 0)
	other := newTestBoid(110, 100, 0, 1)
	roster := []*Boid{me, other}
	pointer := geometry.Vector2D{X: 150, Y: 100}

	want := me.Separation(roster).Mul(1.5).
		Add(me.Alignment(roster)).
		Add(me.Cohesion(roster)).
		Add(me.Repulsion(pointer).Mul(2.5))

	me.Flock(roster, pointer)
	assert.True(t, me.Acceleration.Eq(want), "got %s want %s", me.Acceleration, want)
	// only the unweighted components are capped, the sum may exceed MaxForce
	assert.Greater(t, me.Acceleration.Len(), me.MaxForce)
}

func TestBoid_Render(t *testing.T) {
	b := newTestBoid(50, 60, 3, 0)
	before := *b
	frame := &Frame{}

	b.Render(frame, DefaultPalette)

	assert.Equal(t, before, *b, "render must not mutate the boid")
	require.Equal(t, 1, frame.Len())
	tri := frame.Triangles()[0]
	assert.Equal(t, b.Position, tri.Position)
	assert.InDelta(t, math.Pi/2, tri.Heading, tolerance)
	assert.Equal(t, 8.0, tri.Length)
	assert.Equal(t, 2.0, tri.HalfWidth)
	assert.Equal(t, DefaultPalette.ColorAt(3, 3), tri.Fill)
	assert.Equal(t, tri.Fill, tri.Stroke)

	// the nose points along the velocity
	v := tri.Vertices()
	assert.True(t, v[0].Eq(geometry.Vector2D{X: 54, Y: 60}), "nose %s", v[0])
	assert.True(t, v[1].Eq(geometry.Vector2D{X: 46, Y: 58}), "left tail %s", v[1])
	assert.True(t, v[2].Eq(geometry.Vector2D{X: 46, Y: 62}), "right tail %s", v[2])
}

func TestBoid_Render_NilRenderer(t *testing.T) {
	b := newTestBoid(0, 0, 1, 1)
	assert.NotPanics(t, func() { b.Render(nil, DefaultPalette) })
}

func TestBoid_Run_Pipeline(t *testing.T) {
	b := newTestBoid(799, 300, 3, 0)
	env := Environment{Width: 800, Height: 600, Pointer: geometry.Vector2D{X: -500, Y: -500}}
	frame := &Frame{}

	b.Run([]*Boid{b}, env, DefaultOptions(), frame)

	// alone and far from the pointer: no force, straight motion then wrap
	assert.True(t, b.Velocity.Eq(geometry.Vector2D{X: 3, Y: 0}))
	assert.InDelta(t, 802.0, b.Position.X, tolerance) // not past width+radius yet
	assert.Equal(t, 1, frame.Len())

	b.Run([]*Boid{b}, env, DefaultOptions(), frame)
	assert.Equal(t, -2.0, b.Position.X)
}
