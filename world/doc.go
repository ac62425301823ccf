// Package world models the fixed environment the histogram filter localizes in:
// a rectangular, toroidal grid of colored cells.
//
// What:
//
//   - Grid wraps a rectangular [][]Color and is immutable once built.
//   - Indices wrap around both edges (row -1 is the last row).
//   - MatchMask turns a color observation into a 0/1 indicator matrix.
//   - Connectivity (Conn4/Conn8) names the neighborhood used by motion blur.
//
// Complexity:
//
//   - NewGrid / FromStrings: O(W×H) time and memory (deep copy).
//   - MatchMask:             O(W×H).
//   - Colors:                O(W×H + k log k) for k distinct colors.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrEmptyColor: a cell holds the empty color.
//   - ErrOutOfRange: At was called outside the grid.
package world
