package ink

import "math"

// Grid geometry. Classifiers in the MNIST family consume 28x28 inputs.
const (
	// GridEdge is the edge length of the normalized grid in cells.
	GridEdge = 28

	// GridLen is the total cell count of a valid grid.
	GridLen = GridEdge * GridEdge
)

// Grid is a normalized drawing: GridLen intensity values in row-major
// order, each in [0, 1] rounded to 3 decimals. 0 means no ink, 1 full ink.
type Grid []float64

// Validate reports whether the grid satisfies the transmission contract.
// A grid with any other element count is rejected outright; it is never
// padded or truncated to fit.
func (g Grid) Validate() error {
	if len(g) != GridLen {
		return ErrInvalidGrid
	}
	return nil
}

// Valid reports whether Validate returns nil.
func (g Grid) Valid() bool {
	return g.Validate() == nil
}

// Clone returns an independent copy of the grid.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	copy(out, g)
	return out
}

// round3 rounds to 3 decimal places, the precision classifiers receive.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
