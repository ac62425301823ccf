// Package smoothing rescales and spreads belief mass on a toroidal grid.
//
// ⚙️ Operations:
//
//	Normalize(m)          - divide every entry by Σm so the total is 1.
//	Blur(m, f, opts...)   - convolve with a 3×3 uncertainty kernel (wrap-around),
//	                        then Normalize.
//
// The default kernel spreads a fraction f of each cell's mass to its eight
// neighbors: orthogonal neighbors receive f/6 each, diagonal neighbors f/12
// each, and the cell keeps 1−f. WithConnectivity(world.Conn4) restricts the
// spread to orthogonal neighbors (f/4 each).
//
//	f/12  f/6  f/12
//	f/6   1−f  f/6
//	f/12  f/6  f/12
//
// f = 0 is the identity (up to renormalization). On grids narrower than the
// kernel, taps that wrap onto the same cell accumulate, so mass is conserved.
//
// Performance:
//
//   - Time:   O(k·H·W) for k kernel taps (5 or 9)
//   - Memory: O(H·W)
package smoothing
