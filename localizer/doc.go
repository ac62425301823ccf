// Package localizer implements a discrete two-dimensional histogram filter:
// Bayesian localization of a robot on a toroidal grid of colored cells.
//
// 🚀 What is a histogram filter?
//
//	The belief over the robot's position is a probability mass function with
//	one bin per grid cell. Two steps alternate as data arrives:
//	  • Sense - weight each cell by how well it explains the observed color
//	            (p_hit on a match, p_miss otherwise), then renormalize.
//	  • Move  - shift the whole belief by the commanded (dy, dx) with
//	            wrap-around, then blur it to model imprecise motion.
//
// ⚙️ Usage:
//
//	grid, _ := world.FromStrings("RGG", "GGR")
//	b, _ := localizer.InitializeBeliefs(grid)
//	b, _ = localizer.Sense("R", grid, b, 0.6, 0.2)
//	b, _ = localizer.Move(0, 1, b, 0.12)
//	est, _ := localizer.MostLikely(b)
//
// Every operation returns a freshly allocated belief and never mutates its
// inputs, so beliefs may be shared freely between goroutines.
//
// Errors:
//
//   - ErrDegenerateGrid (a DomainError): zero-area grid or belief.
//   - ErrZeroEvidence (a DomainError): the observation has zero likelihood
//     under every cell with prior mass; no NaN is ever returned.
//   - ErrShapeMismatch: belief and grid dimensions differ.
//   - ErrInvalidSensorModel: negative or non-finite p_hit / p_miss.
//
// Performance:
//
//   - InitializeBeliefs, Sense: O(H·W)
//   - Move: O(k·H·W) for a k-tap blur kernel
package localizer
