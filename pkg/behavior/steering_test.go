package behavior

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeparation_SingleNeighbour(t *testing.T) {
	me := newTestBoid(0, 0, 0, 0)
	other := newTestBoid(10, 0, 0, 0)

	force := me.Separation([]*Boid{me, other})

	assert.Less(t, force.X, 0.0, "expected a push away from the neighbour, got %s", force)
	assert.Equal(t, 0.0, force.Y)
	assert.LessOrEqual(t, force.Len(), me.MaxForce+tolerance)
	assert.InDelta(t, me.MaxForce, force.Len(), tolerance)
}

func TestSeparation_IgnoresSelfAndFarBoids(t *testing.T) {
	me := newTestBoid(0, 0, 1, 0)
	far := newTestBoid(30, 0, 0, 0)
	twin := newTestBoid(0, 0, 0, 0) // coincident: distance 0 is skipped

	assert.Equal(t, geometry.Zero, me.Separation([]*Boid{me}))
	assert.Equal(t, geometry.Zero, me.Separation([]*Boid{me, far, twin}))
}

func TestAway_LinearFalloff(t *testing.T) {
	me := newTestBoid(0, 0, 0, 0)
	tests := []struct {
		from geometry.Vector2D
		want geometry.Vector2D
	}{
		{geometry.Vector2D{X: 10, Y: 0}, geometry.Vector2D{X: -0.1, Y: 0}},
		{geometry.Vector2D{X: 0, Y: -4}, geometry.Vector2D{X: 0, Y: 0.25}},
		{geometry.Vector2D{X: 3, Y: 4}, geometry.Vector2D{X: -0.12, Y: -0.16}},
	}
	for _, tt := range tests {
		got := me.away(tt.from, me.Position.DistanceTo(tt.from))
		assert.True(t, got.Eq(tt.want), "away(%s) = %s want %s", tt.from, got, tt.want)
	}
}

func TestSeparation_LinearFalloff(t *testing.T) {
	// Two neighbours on opposite sides of the x axis, at 5 and 20.
	// 1/d weights give (-1/5 + 1/20) / 2 = -0.075. An inverse square
	// falloff would give (-1/25 + 1/400) / 2 = -0.01875.
	me := newTestBoid(0, 0, 0, 0)
	near := newTestBoid(5, 0, 0, 0)
	farther := newTestBoid(-20, 0, 0, 0)
	roster := []*Boid{me, near, farther}

	sum := me.separationVector(roster)
	assert.InDelta(t, -0.075, sum.X, tolerance)
	assert.Equal(t, 0.0, sum.Y)

	force := me.Separation(roster)
	assert.True(t, force.Eq(geometry.Vector2D{X: -me.MaxForce, Y: 0}), "got %s", force)
}

func TestSeparation_DirectionWeightsByDistance(t *testing.T) {
	// Perpendicular neighbours at 5 and 20: the summed direction is (-1/5, -1/20)/2,
	// so the force has slope 0.25. Inverse square weights would give 0.0625.
	me := newTestBoid(0, 0, 0, 0)
	near := newTestBoid(5, 0, 0, 0)
	above := newTestBoid(0, 20, 0, 0)

	force := me.Separation([]*Boid{me, near, above})
	require.Less(t, force.X, 0.0)
	assert.InDelta(t, 0.25, force.Y/force.X, 1e-12)
	assert.InDelta(t, me.MaxForce, force.Len(), tolerance)
}

func TestAlignment(t *testing.T) {
	t.Run("NoNeighbours", func(t *testing.T) {
		me := newTestBoid(0, 0, 1, 1)
		far := newTestBoid(60, 0, 3, 0)
		assert.Equal(t, geometry.Zero, me.Alignment([]*Boid{me, far}))
	})

	t.Run("MatchesHeading", func(t *testing.T) {
		me := newTestBoid(0, 0, 0, 0)
		friend := newTestBoid(20, 0, 0, 2)
		force := me.Alignment([]*Boid{me, friend})
		assert.Greater(t, force.Y, 0.0)
		assert.InDelta(t, 0.0, force.X, tolerance)
		assert.LessOrEqual(t, force.Len(), me.MaxForce+tolerance)
	})
}

func TestCohesion(t *testing.T) {
	t.Run("NoNeighbours", func(t *testing.T) {
		me := newTestBoid(0, 0, 1, 1)
		far := newTestBoid(0, 50, 0, 0) // threshold is exclusive
		assert.Equal(t, geometry.Zero, me.Cohesion([]*Boid{me, far}))
	})

	t.Run("PullsTowardCentroid", func(t *testing.T) {
		me := newTestBoid(0, 0, 0, 0)
		a := newTestBoid(30, 10, 0, 0)
		b := newTestBoid(30, -10, 0, 0)
		force := me.Cohesion([]*Boid{me, a, b})
		assert.Greater(t, force.X, 0.0)
		assert.InDelta(t, 0.0, force.Y, tolerance)
		assert.True(t, force.Eq(me.Seek(geometry.Vector2D{X: 30, Y: 0})))
	})
}

func TestSeek(t *testing.T) {
	me := newTestBoid(0, 0, 0, 0)
	force := me.Seek(geometry.Vector2D{X: 0, Y: 100})
	assert.True(t, force.Eq(geometry.Vector2D{X: 0, Y: 0.2}), "got %s", force)

	// already at max speed toward the target: nothing to correct
	moving := newTestBoid(0, 0, 0, 3)
	assert.True(t, moving.Seek(geometry.Vector2D{X: 0, Y: 100}).Eq(geometry.Zero))
}

func TestRepulsion(t *testing.T) {
	tests := []struct {
		name    string
		pointer geometry.Vector2D
		zero    bool
	}{
		{"InRange", geometry.Vector2D{X: 50, Y: 0}, false},
		{"OnTop", geometry.Vector2D{X: 0, Y: 0}, true},
		{"AtThreshold", geometry.Vector2D{X: 100, Y: 0}, true},
		{"OutOfRange", geometry.Vector2D{X: 150, Y: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			me := newTestBoid(0, 0, 0, 0)
			force := me.Repulsion(tt.pointer)
			if tt.zero {
				assert.Equal(t, geometry.Zero, force)
				return
			}
			assert.Less(t, force.X, 0.0, "expected a push away from the pointer, got %s", force)
			assert.LessOrEqual(t, force.Len(), me.MaxForce+tolerance)
		})
	}
}

func TestSteering_BoundedByMaxForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 13))
	roster := make([]*Boid, 60)
	for i := range roster {
		roster[i] = NewBoid(rng.Float64()*120, rng.Float64()*120, rng)
	}
	pointer := geometry.Vector2D{X: 60, Y: 60}

	for _, b := range roster {
		forces := map[string]geometry.Vector2D{
			"separation": b.Separation(roster),
			"alignment":  b.Alignment(roster),
			"cohesion":   b.Cohesion(roster),
			"repulsion":  b.Repulsion(pointer),
		}
		for name, f := range forces {
			require.LessOrEqual(t, f.Len(), b.MaxForce+tolerance, "%s force %s exceeds max", name, f)
			require.False(t, math.IsNaN(f.X) || math.IsNaN(f.Y), "%s force is NaN", name)
		}
	}
}
