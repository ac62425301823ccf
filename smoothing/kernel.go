package smoothing

import (
	"fmt"
	"math"

	"github.com/katalvlaran/histfilter/world"
)

// Tap is one off-center kernel weight.
type Tap struct {
	Offset world.Offset
	Weight float64
}

// Kernel is a 3×3 motion-uncertainty stencil. Center + Σ taps == 1.
type Kernel struct {
	Factor float64
	Conn   world.Connectivity
	Center float64
	Taps   []Tap
}

// NewKernel builds the stencil for blur factor f and connectivity conn.
// Returns ErrInvalidBlurFactor unless 0 ≤ f ≤ 1.
func NewKernel(f float64, conn world.Connectivity) (Kernel, error) {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return Kernel{}, fmt.Errorf("NewKernel(%v): %w", f, ErrInvalidBlurFactor)
	}
	offsets := world.NeighborOffsets(conn)
	taps := make([]Tap, 0, len(offsets))
	for _, o := range offsets {
		var w float64
		switch {
		case conn != world.Conn8:
			w = f / 4
		case o.Diagonal():
			w = f / 12
		default:
			w = f / 6
		}
		taps = append(taps, Tap{Offset: o, Weight: w})
	}

	return Kernel{Factor: f, Conn: conn, Center: 1 - f, Taps: taps}, nil
}

// Sum returns Center + Σ tap weights (1 up to rounding).
func (k Kernel) Sum() float64 {
	s := k.Center
	for _, t := range k.Taps {
		s += t.Weight
	}

	return s
}
