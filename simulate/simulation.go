package simulate

import (
	"context"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/histfilter/localizer"
	"github.com/katalvlaran/histfilter/matrix"
	"github.com/katalvlaran/histfilter/world"
)

// moveSet lists the commands a Step may draw: stay plus the 8-neighborhood.
var moveSet = append([]world.Offset{{DY: 0, DX: 0}}, world.NeighborOffsets(world.Conn8)...)

// StepReport describes one simulated step.
type StepReport struct {
	Step     int
	Move     world.Offset
	Pose     world.Cell // true pose after the move
	Reading  world.Color
	Correct  bool // reading equals the true cell color
	Estimate localizer.Estimate
	Entropy  float64 // nats
}

// Hit reports whether the estimate sits on the true pose.
func (r StepReport) Hit() bool { return r.Estimate.Cell == r.Pose }

// Simulation couples a hidden robot with the filter tracking it.
// It is not safe for concurrent use.
type Simulation struct {
	cfg    Config
	grid   world.Grid
	loc    localizer.Localizer
	belief *matrix.Dense
	pose   world.Cell
	step   int

	colors  []world.Color
	rng     *rand.Rand
	moves   distuv.Categorical
	reading distuv.Bernoulli
	log     *zap.Logger
}

// New validates cfg and returns a Simulation at cfg.Start with a uniform belief.
func New(cfg Config, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	o := gatherOptions(opts...)

	grid, err := cfg.World()
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	loc, err := localizer.New(grid,
		localizer.WithSensorModel(cfg.PHit, cfg.PMiss),
		localizer.WithBlur(cfg.Blurring),
	)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	belief, err := loc.Initial()
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	src := rand.NewPCG(cfg.Seed, ^cfg.Seed)
	weights := make([]float64, len(moveSet))
	for i := range weights {
		weights[i] = 1
	}

	return &Simulation{
		cfg:     cfg,
		grid:    grid,
		loc:     loc,
		belief:  belief,
		pose:    cfg.Start,
		colors:  grid.Colors(),
		rng:     rand.New(src),
		moves:   distuv.NewCategorical(weights, src),
		reading: distuv.Bernoulli{P: cfg.SensorAccuracy, Src: src},
		log:     o.logger,
	}, nil
}

// Pose returns the robot's true cell.
func (s *Simulation) Pose() world.Cell { return s.pose }

// Belief returns a copy of the current belief.
func (s *Simulation) Belief() *matrix.Dense { return s.belief.Clone().(*matrix.Dense) }

// Localizer returns the filter driven by the simulation.
func (s *Simulation) Localizer() localizer.Localizer { return s.loc }

// Step advances the robot and the filter by one move and one reading.
// A filter error (e.g. localizer.ErrZeroEvidence when PMiss is 0 and the
// sensor lied) leaves the pose, belief and step count unchanged, but the
// random source has already advanced past that step's draws.
func (s *Simulation) Step(ctx context.Context) (StepReport, error) {
	if err := ctx.Err(); err != nil {
		return StepReport{}, err
	}

	mv := moveSet[int(s.moves.Rand())]
	pose := world.Cell{}
	pose.Row, pose.Col = s.grid.Wrap(s.pose.Row+mv.DY, s.pose.Col+mv.DX)

	belief, err := s.loc.Move(s.belief, mv.DY, mv.DX)
	if err != nil {
		return StepReport{}, fmt.Errorf("Step %d: %w", s.step+1, err)
	}
	truth := s.grid.AtWrapped(pose.Row, pose.Col)
	reading := s.read(truth)
	belief, err = s.loc.Sense(belief, reading)
	if err != nil {
		return StepReport{}, fmt.Errorf("Step %d: %w", s.step+1, err)
	}
	est, err := localizer.MostLikely(belief)
	if err != nil {
		return StepReport{}, fmt.Errorf("Step %d: %w", s.step+1, err)
	}
	h, err := localizer.Entropy(belief)
	if err != nil {
		return StepReport{}, fmt.Errorf("Step %d: %w", s.step+1, err)
	}

	s.step++
	s.pose, s.belief = pose, belief
	rep := StepReport{
		Step:     s.step,
		Move:     mv,
		Pose:     pose,
		Reading:  reading,
		Correct:  reading == truth,
		Estimate: est,
		Entropy:  h,
	}
	s.log.Debug("step",
		zap.Int("step", rep.Step),
		zap.Int("dy", mv.DY),
		zap.Int("dx", mv.DX),
		zap.Stringer("reading", reading),
		zap.Bool("correct", rep.Correct),
		zap.Int("row", pose.Row),
		zap.Int("col", pose.Col),
		zap.Int("est_row", est.Row),
		zap.Int("est_col", est.Col),
		zap.Float64("est_p", est.P),
		zap.Float64("entropy", h),
	)

	return rep, nil
}

// Run performs up to n steps, stopping early on error or when ctx is done.
// The reports of completed steps are returned in either case.
func (s *Simulation) Run(ctx context.Context, n int) ([]StepReport, error) {
	reports := make([]StepReport, 0, n)
	for i := 0; i < n; i++ {
		rep, err := s.Step(ctx)
		if err != nil {
			s.log.Warn("run stopped", zap.Int("completed", len(reports)), zap.Error(err))
			return reports, err
		}
		reports = append(reports, rep)
	}

	hits := 0
	for _, r := range reports {
		if r.Hit() {
			hits++
		}
	}
	s.log.Info("run finished",
		zap.Int("steps", len(reports)),
		zap.Int("hits", hits),
		zap.Int("row", s.pose.Row),
		zap.Int("col", s.pose.Col),
	)

	return reports, nil
}

// read returns truth with probability SensorAccuracy, otherwise a
// uniformly drawn different color. A single-color world always reads truth.
func (s *Simulation) read(truth world.Color) world.Color {
	if s.reading.Rand() == 1 || len(s.colors) < 2 {
		return truth
	}
	k := s.rng.IntN(len(s.colors) - 1)
	for _, c := range s.colors {
		if c == truth {
			continue
		}
		if k == 0 {
			return c
		}
		k--
	}

	return truth
}
