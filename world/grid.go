// Package world provides the immutable color grid used as the filter's map.
// Cells are addressed as (row, col); both axes wrap around.
package world

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/histfilter/matrix"
)

// Grid is an immutable H×W array of colors. The zero value is a degenerate
// (zero-area) grid; use NewGrid or FromStrings to build a usable one.
type Grid struct {
	height, width int
	cells         []Color // row-major, len == height*width
}

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrEmptyColor for "" cells.
// Complexity: O(W×H) time and memory.
func NewGrid(cells [][]Color) (Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return Grid{}, ErrNonRectangular
		}
	}
	flat := make([]Color, 0, h*w)
	for y, row := range cells {
		for x, c := range row {
			if c == "" {
				return Grid{}, fmt.Errorf("cell (%d,%d): %w", y, x, ErrEmptyColor)
			}
			flat = append(flat, c)
		}
	}

	return Grid{height: h, width: w, cells: flat}, nil
}

// FromStrings builds a Grid from text rows. A row without spaces holds one
// single-character color per rune ("RGGR"); a row with spaces is split into
// whitespace-separated labels ("red green green red").
func FromStrings(rows ...string) (Grid, error) {
	cells := make([][]Color, len(rows))
	for y, row := range rows {
		var labels []string
		if strings.ContainsAny(row, " \t") {
			labels = strings.Fields(row)
		} else {
			labels = strings.Split(row, "")
		}
		cells[y] = make([]Color, len(labels))
		for x, l := range labels {
			cells[y][x] = Color(l)
		}
	}

	return NewGrid(cells)
}

// Rows returns H. Complexity: O(1).
func (g Grid) Rows() int { return g.height }

// Cols returns W. Complexity: O(1).
func (g Grid) Cols() int { return g.width }

// Shape returns (H, W).
func (g Grid) Shape() (rows, cols int) { return g.height, g.width }

// Area returns H×W.
func (g Grid) Area() int { return g.height * g.width }

// Empty reports whether g has zero area (the zero value).
func (g Grid) Empty() bool { return g.height == 0 || g.width == 0 }

// InBounds reports whether (row, col) lies within the grid boundaries.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// At returns the color at (row, col) or ErrOutOfRange.
func (g Grid) At(row, col int) (Color, error) {
	if !g.InBounds(row, col) {
		return "", fmt.Errorf("At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return g.cells[row*g.width+col], nil
}

// Wrap maps any (row, col) onto the torus. Panics on an empty grid.
func (g Grid) Wrap(row, col int) (int, int) {
	return matrix.WrapIndex(row, g.height), matrix.WrapIndex(col, g.width)
}

// AtWrapped returns the color at (row, col) after toroidal wrapping.
func (g Grid) AtWrapped(row, col int) Color {
	r, c := g.Wrap(row, col)

	return g.cells[r*g.width+c]
}

// Cells returns a deep copy of the grid as [][]Color.
func (g Grid) Cells() [][]Color {
	out := make([][]Color, g.height)
	for y := 0; y < g.height; y++ {
		row := make([]Color, g.width)
		copy(row, g.cells[y*g.width:(y+1)*g.width])
		out[y] = row
	}

	return out
}

// Colors returns the distinct colors of the grid in ascending order.
func (g Grid) Colors() []Color {
	seen := make(map[Color]struct{}, 4)
	out := make([]Color, 0, 4)
	for _, c := range g.cells {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Contains reports whether any cell has the given color.
func (g Grid) Contains(color Color) bool {
	for _, c := range g.cells {
		if c == color {
			return true
		}
	}

	return false
}

// MatchMask returns an H×W matrix with 1 where the cell equals color and 0 elsewhere.
// Returns ErrEmptyGrid for a zero-area grid.
// Complexity: O(W×H).
func (g Grid) MatchMask(color Color) (*matrix.Dense, error) {
	if g.Empty() {
		return nil, ErrEmptyGrid
	}

	return matrix.Generate(g.height, g.width, func(i, j int) float64 {
		if g.cells[i*g.width+j] == color {
			return 1
		}
		return 0
	})
}

// String renders one row per line with labels separated by spaces.
func (g Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(string(g.cells[y*g.width+x]))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
