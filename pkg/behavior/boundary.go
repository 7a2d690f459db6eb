package behavior

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lao-tseu-is-alive/go-boids-flock/pkg/geometry"
)

// BoundaryMode selects what happens when a boid reaches the edge of the canvas.
type BoundaryMode string

const (
	// Wraparound gives the canvas a toroidal topology.
	Wraparound BoundaryMode = "wraparound"
	// Clamped pins the position inside the canvas. The velocity is left untouched,
	// so boids slide along the walls and pile up on them.
	Clamped BoundaryMode = "clamped"
	// Circular is reserved, no confinement is applied yet.
	Circular BoundaryMode = "circular"
)

// ErrUnknownBoundaryMode is returned for a selector that names no mode.
var ErrUnknownBoundaryMode = errors.New("unknown boundary mode")

// ParseBoundaryMode maps a selector to a mode. The empty string means Wraparound.
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	switch m := BoundaryMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return Wraparound, nil
	case Wraparound, Clamped, Circular:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q (want %s, %s or %s)", ErrUnknownBoundaryMode, s, Wraparound, Clamped, Circular)
	}
}

// Implemented reports whether the mode actually constrains positions.
func (m BoundaryMode) Implemented() bool {
	return m == Wraparound || m == Clamped
}

func (m BoundaryMode) String() string { return string(m) }

// Apply returns the position after the boundary policy, each axis handled independently.
func (m BoundaryMode) Apply(pos geometry.Vector2D, radius float64, env Environment) geometry.Vector2D {
	switch m {
	case Wraparound:
		if pos.X < -radius {
			pos.X = env.Width + radius
		}
		if pos.Y < -radius {
			pos.Y = env.Height + radius
		}
		if pos.X > env.Width+radius {
			pos.X = -radius
		}
		if pos.Y > env.Height+radius {
			pos.Y = -radius
		}
	case Clamped:
		pos = pos.Clamp(geometry.Zero, geometry.Vector2D{X: env.Width, Y: env.Height})
	case Circular:
		// reserved: positions are left alone
	default:
		panic(fmt.Sprintf("behavior: boundary mode %q was not parsed", string(m)))
	}
	return pos
}
