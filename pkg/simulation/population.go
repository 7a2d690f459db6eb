package simulation

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
)

// ResolveSeed returns seed, or a time based one when seed is 0.
func ResolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

// NewRand returns the deterministic generator used to seed a flock.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewFlock creates the flock described by cfg with boids spread uniformly over width x height.
func NewFlock(cfg *Config, width, height float64, rng *rand.Rand) (*behavior.Flock, error) {
	f, err := behavior.NewFlock(behavior.Options{
		Boundary: behavior.BoundaryMode(cfg.BoundaryMode),
		Palette:  behavior.DefaultPalette,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for i := 0; i < cfg.Population; i++ {
		f.AddBoid(behavior.NewBoid(rng.Float64()*width, rng.Float64()*height, rng))
	}
	return f, nil
}
