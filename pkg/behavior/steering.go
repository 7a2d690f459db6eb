package behavior

import "github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"

// Perception thresholds.
const (
	SeparationDistance = 25.0
	NeighborDistance   = 50.0
	// RepulsionDistance is larger than the neighbour ranges, the pointer is seen from further away.
	RepulsionDistance = 100.0
)

// Force weights applied in Flock.
const (
	SeparationWeight = 1.5
	AlignmentWeight  = 1.0
	CohesionWeight   = 1.0
	RepulsionWeight  = 2.5
)

// steer implements Reynolds: Steering = Desired - Velocity, desired running at MaxSpeed.
func (b *Boid) steer(desired geometry.Vector2D) geometry.Vector2D {
	return desired.SetLen(b.MaxSpeed).Sub(b.Velocity).Limit(b.MaxForce)
}

// Seek returns the steering force that moves the boid toward target.
func (b *Boid) Seek(target geometry.Vector2D) geometry.Vector2D {
	return b.steer(target.Sub(b.Position))
}

// away is the vector pointing from 'from' to the boid, weighted by 1/d (linear falloff).
func (b *Boid) away(from geometry.Vector2D, d float64) geometry.Vector2D {
	return b.Position.Sub(from).Normalize().Div(d)
}

// separationVector averages away() over the neighbours closer than SeparationDistance.
// The boid itself is skipped because its distance is 0.
func (b *Boid) separationVector(roster []*Boid) geometry.Vector2D {
	sum := geometry.Zero
	count := 0
	for _, other := range roster {
		d := b.Position.DistanceTo(other.Position)
		if d > 0 && d < SeparationDistance {
			sum = sum.Add(b.away(other.Position, d))
			count++
		}
	}
	return sum.Div(float64(count))
}

// Separation steers away from neighbours closer than SeparationDistance.
func (b *Boid) Separation(roster []*Boid) geometry.Vector2D {
	sum := b.separationVector(roster)
	if sum.IsZero() {
		return geometry.Zero
	}
	return b.steer(sum)
}

// Alignment steers toward the average velocity of neighbours within NeighborDistance.
func (b *Boid) Alignment(roster []*Boid) geometry.Vector2D {
	sum := geometry.Zero
	count := 0
	for _, other := range roster {
		d := b.Position.DistanceTo(other.Position)
		if d > 0 && d < NeighborDistance {
			sum = sum.Add(other.Velocity)
			count++
		}
	}
	if count == 0 {
		return geometry.Zero
	}
	return b.steer(sum.Div(float64(count)))
}

// Cohesion seeks the centroid of neighbours within NeighborDistance.
func (b *Boid) Cohesion(roster []*Boid) geometry.Vector2D {
	sum := geometry.Zero
	count := 0
	for _, other := range roster {
		d := b.Position.DistanceTo(other.Position)
		if d > 0 && d < NeighborDistance {
			sum = sum.Add(other.Position)
			count++
		}
	}
	if count == 0 {
		return geometry.Zero
	}
	return b.Seek(sum.Div(float64(count)))
}

// Repulsion steers away from the pointer when it is within RepulsionDistance.
func (b *Boid) Repulsion(pointer geometry.Vector2D) geometry.Vector2D {
	d := b.Position.DistanceTo(pointer)
	if d <= 0 || d >= RepulsionDistance {
		return geometry.Zero
	}
	diff := b.away(pointer, d)
	if diff.IsZero() {
		return geometry.Zero
	}
	return b.steer(diff)
}
