// Package world defines core types and options for the grid world.
package world

// Color is a discrete cell label such as "R" or "G". Two colors match iff equal.
type Color string

// String implements fmt.Stringer.
func (c Color) String() string { return string(c) }

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}

	return "conn4"
}

// Offset is a (row, col) displacement between neighboring cells.
type Offset struct {
	DY, DX int
}

// Diagonal reports whether the offset moves along both axes.
func (o Offset) Diagonal() bool { return o.DY != 0 && o.DX != 0 }

var (
	offsets4 = []Offset{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = []Offset{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// NeighborOffsets returns the neighbor displacements for conn in clockwise
// order starting north. The returned slice is a copy.
// Any value other than Conn8 is treated as Conn4.
func NeighborOffsets(conn Connectivity) []Offset {
	src := offsets4
	if conn == Conn8 {
		src = offsets8
	}
	out := make([]Offset, len(src))
	copy(out, src)

	return out
}

// Cell is a single grid position.
type Cell struct {
	Row, Col int
}
