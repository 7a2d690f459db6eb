package simulation

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
	golog "github.com/tochemey/goakt/v3/log"
)

const progressEvery = 100

// Report summarises a headless run.
type Report struct {
	Seed       uint64
	Ticks      int
	Population int
	Mode       behavior.BoundaryMode
	Width      float64
	Height     float64

	// MeanSpeed holds the average flock speed after each tick
	MeanSpeed []float64
	// Triangles counts the render commands emitted over the run
	Triangles int
	// Digest is the xxhash of every position and velocity after every tick.
	// Same seed and tick count give the same digest.
	Digest uint64

	Min, Max geometry.Vector2D // bounding box of the final positions
}

// DigestHex formats Digest for golden files and terminal output.
func (r *Report) DigestHex() string {
	return fmt.Sprintf("%016x", r.Digest)
}

// Runner drives a flock without a window: fixed canvas, fixed pointer.
type Runner struct {
	cfg *Config
	log golog.Logger
}

func NewRunner(cfg *Config, logger golog.Logger) *Runner {
	if logger == nil {
		logger = golog.DiscardLogger
	}
	return &Runner{cfg: cfg, log: logger}
}

// Run advances the flock for ticks steps. It stops early with ctx.Err() on cancellation.
func (r *Runner) Run(ctx context.Context, ticks int) (*Report, error) {
	if ticks <= 0 {
		return nil, fmt.Errorf("ticks must be positive, got %d", ticks)
	}
	if err := r.cfg.Validate(); err != nil {
		return nil, err
	}

	w, h := r.cfg.CanvasSize(DefaultCanvasWidth, DefaultCanvasHeight)
	seed := ResolveSeed(r.cfg.Seed)
	flock, err := NewFlock(r.cfg, float64(w), float64(h), NewRand(seed))
	if err != nil {
		return nil, err
	}
	mode := flock.Options().Boundary
	if !mode.Implemented() {
		r.log.Warnf("boundary mode %s is reserved, boids are not confined", mode)
	}
	r.log.Infof("headless run: %d boids, %d ticks, %dx%d, mode=%s, seed=%d", flock.Len(), ticks, w, h, mode, seed)

	env := behavior.Environment{Width: float64(w), Height: float64(h), Pointer: r.cfg.Pointer}
	rep := &Report{
		Seed:       seed,
		Ticks:      ticks,
		Population: flock.Len(),
		Mode:       mode,
		Width:      env.Width,
		Height:     env.Height,
		MeanSpeed:  make([]float64, 0, ticks),
	}

	frame := &behavior.Frame{}
	digest := xxhash.New()
	for tick := 1; tick <= ticks; tick++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		frame.Reset()
		flock.Advance(env, frame)
		rep.Triangles += frame.Len()
		rep.MeanSpeed = append(rep.MeanSpeed, flock.MeanSpeed())
		hashState(digest, flock.Boids())

		if tick%progressEvery == 0 {
			r.log.Debugf("tick %d/%d mean speed %.3f", tick, ticks, flock.MeanSpeed())
		}
	}
	rep.Digest = digest.Sum64()
	rep.Min, rep.Max = bounds(flock.Boids())
	return rep, nil
}

func hashState(d *xxhash.Digest, boids []*behavior.Boid) {
	var buf [8]byte
	put := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = d.Write(buf[:])
	}
	for _, b := range boids {
		put(b.Position.X)
		put(b.Position.Y)
		put(b.Velocity.X)
		put(b.Velocity.Y)
	}
}

func bounds(boids []*behavior.Boid) (geometry.Vector2D, geometry.Vector2D) {
	if len(boids) == 0 {
		return geometry.Zero, geometry.Zero
	}
	lo, hi := boids[0].Position, boids[0].Position
	for _, b := range boids[1:] {
		lo.X = math.Min(lo.X, b.Position.X)
		lo.Y = math.Min(lo.Y, b.Position.Y)
		hi.X = math.Max(hi.X, b.Position.X)
		hi.Y = math.Max(hi.Y, b.Position.Y)
	}
	return lo, hi
}
