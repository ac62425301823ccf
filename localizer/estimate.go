package localizer

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/histfilter/matrix"
	"github.com/katalvlaran/histfilter/world"
)

// Estimate is a point estimate read off a belief.
type Estimate struct {
	world.Cell
	P float64 // probability mass of the cell
}

// MostLikely returns the cell with the highest belief.
// Ties resolve to the first cell in row-major order.
func MostLikely(beliefs matrix.Matrix) (Estimate, error) {
	r, c, p, err := matrix.ArgMax(beliefs)
	if err != nil {
		return Estimate{}, fmt.Errorf("MostLikely: %w", err)
	}

	return Estimate{Cell: world.Cell{Row: r, Col: c}, P: p}, nil
}

// Entropy returns the Shannon entropy of beliefs in nats (0·log 0 = 0).
// A uniform belief over n cells scores log n; a certain one scores 0.
// beliefs must be a probability mass function (see matrix.ValidateStochastic).
func Entropy(beliefs matrix.Matrix) (float64, error) {
	if err := matrix.ValidateStochastic(beliefs); err != nil {
		return 0, fmt.Errorf("Entropy: %w", err)
	}
	d, err := matrix.CloneDense(beliefs)
	if err != nil {
		return 0, fmt.Errorf("Entropy: %w", err)
	}

	return stat.Entropy(d.Flat()), nil
}
