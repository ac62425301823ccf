// Package simulate drives a localizer.Localizer against a simulated robot.
//
// A Simulation owns a hidden true pose on a cyclic world.Grid. Each Step
// draws a random unit move (8-neighborhood or stay), applies it to the robot
// and to the belief, then draws a noisy color reading and folds it in:
//
//	cfg, _ := simulate.LoadConfig("testdata/corridor.yaml")
//	sim, _ := simulate.New(cfg, simulate.WithLogger(logger))
//	reports, err := sim.Run(ctx, cfg.Steps)
//
// Scenarios are YAML documents (see Config). Sampling uses gonum distuv
// over a seeded PCG source, so a given seed always replays the same run.
package simulate
