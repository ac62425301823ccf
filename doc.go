// Package histfilter is a discrete Bayes (histogram) filter for localizing a
// robot on a cyclic 2D grid of colored cells.
//
// What is a histogram filter?
//
//	The robot's position is unknown. We keep a belief: one probability per
//	cell, summing to 1. Two updates alternate forever:
//		• Sense – weight every cell by how well its color explains the
//		  reading (PHit on a match, PMiss otherwise), then renormalize.
//		• Move  – shift the whole belief by the commanded (dy, dx) with
//		  wrap-around on both axes, then blur it to model slippage.
//
// Under the hood, everything is organized under five subpackages:
//
//	matrix/    - row-major Dense grids, toroidal Roll, Hadamard, Axpy, validators
//	world/     - the colored map (Grid), connectivity and neighbor offsets
//	smoothing/ - Normalize and the 4/8-neighbor Blur kernel
//	localizer/ - InitializeBeliefs, Sense, Move, estimates and the Localizer value
//	simulate/  - seeded robot simulation driven by YAML scenarios, logged with zap
//
// Quick start:
//
//	g, _ := world.FromStrings("RGGR", "GGRG")
//	b, _ := localizer.InitializeBeliefs(g)
//	b, _ = localizer.Sense("R", g, b, 0.9, 0.1)
//	b, _ = localizer.Move(0, 1, b, 0.12)
//	est, _ := localizer.MostLikely(b)
//
// Errors are sentinel values matched with errors.Is; every localizer domain
// failure also matches localizer.ErrDomain.
package histfilter
