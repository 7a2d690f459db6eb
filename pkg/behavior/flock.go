package behavior

import "github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"

// Environment holds the external inputs sampled once per tick by the driver.
type Environment struct {
	Width, Height float64           // current canvas size
	Pointer       geometry.Vector2D // repulsor position
}

// Options are fixed for the lifetime of a Flock.
type Options struct {
	Boundary BoundaryMode
	Palette  Palette
}

// DefaultOptions wraps around the canvas and uses the red to blue speed palette.
func DefaultOptions() Options {
	return Options{
		Boundary: Wraparound,
		Palette:  DefaultPalette,
	}
}

// Flock is the ordered population of boids.
type Flock struct {
	boids []*Boid
	opts  Options
}

// NewFlock creates an empty flock. The boundary selector goes through ParseBoundaryMode,
// so an empty mode falls back to Wraparound and an unknown one is rejected.
func NewFlock(opts Options) (*Flock, error) {
	mode, err := ParseBoundaryMode(string(opts.Boundary))
	if err != nil {
		return nil, err
	}
	opts.Boundary = mode
	return &Flock{opts: opts}, nil
}

// AddBoid appends b; insertion order is the iteration order of Advance.
func (f *Flock) AddBoid(b *Boid) {
	f.boids = append(f.boids, b)
}

// Advance runs one tick for every boid, in order.
// Each boid gets the entire flock, itself included, as its roster. Boids processed
// later in the tick therefore see the already updated state of earlier ones.
func (f *Flock) Advance(env Environment, r Renderer) {
	for _, b := range f.boids {
		b.Run(f.boids, env, f.opts, r)
	}
}

// Boids returns the population. Callers must treat it as read-only.
func (f *Flock) Boids() []*Boid { return f.boids }

// Len returns the population size.
func (f *Flock) Len() int { return len(f.boids) }

// Options returns the settings the flock was built with.
func (f *Flock) Options() Options { return f.opts }

// MeanSpeed is the average speed over the population, 0 when empty.
func (f *Flock) MeanSpeed() float64 {
	if len(f.boids) == 0 {
		return 0
	}
	total := 0.0
	for _, b := range f.boids {
		total += b.Speed()
	}
	return total / float64(len(f.boids))
}
