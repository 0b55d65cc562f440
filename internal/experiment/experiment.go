// Package experiment runs configured tracks end to end: build the track,
// integrate, sample and score.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/coaster/internal/config"
	"github.com/san-kum/coaster/internal/curves"
	"github.com/san-kum/coaster/internal/metrics"
	"github.com/san-kum/coaster/internal/storage"
	"github.com/san-kum/coaster/internal/trajectory"
	"golang.org/x/sync/errgroup"
)

var ErrNotSetup = errors.New("experiment: not set up")

type Experiment struct {
	cfg  *config.Config
	traj *trajectory.Trajectory
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup resolves the configured shapes and prepares the integrator.
func (e *Experiment) Setup(reg *curves.Registry) error {
	tr, err := e.cfg.Build(reg)
	if err != nil {
		return err
	}
	traj, err := trajectory.New(tr, e.cfg.Params())
	if err != nil {
		return err
	}
	e.traj = traj
	return nil
}

func (e *Experiment) Config() *config.Config { return e.cfg }

// Trajectory returns the prepared trajectory, or nil before Setup.
func (e *Experiment) Trajectory() *trajectory.Trajectory { return e.traj }

// Run samples the ride over the configured duration. When integration fails
// part way, the returned run holds the samples taken before the failure.
func (e *Experiment) Run(ctx context.Context) (*storage.Run, error) {
	if e.traj == nil {
		return nil, ErrNotSetup
	}

	samples, err := trajectory.Record(ctx, e.traj, e.cfg.Duration, e.cfg.SampleEvery)
	run := &storage.Run{
		Config:  e.cfg,
		Samples: samples,
		Steps:   max(e.traj.Cache().Len()-1, 0),
		Metrics: metrics.Evaluate(samples, metrics.Default(e.cfg.Physics.Gravity)...),
	}
	return run, err
}

// Outcome is one entry of a comparison.
type Outcome struct {
	Name    string
	Run     *storage.Run
	Elapsed time.Duration
	Err     error
}

// Compare runs every configuration concurrently, at most limit at a time
// (no limit when limit <= 0). A failing configuration is reported in its
// Outcome and does not stop the others. The error is non-nil only when ctx
// ends first.
func Compare(ctx context.Context, reg *curves.Registry, cfgs []*config.Config, limit int) ([]Outcome, error) {
	out := make([]Outcome, len(cfgs))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, cfg := range cfgs {
		i, cfg := i, cfg
		g.Go(func() error {
			start := time.Now()
			exp := New(cfg)
			o := Outcome{Name: cfg.Name}
			if o.Err = exp.Setup(reg); o.Err == nil {
				o.Run, o.Err = exp.Run(ctx)
			}
			o.Elapsed = time.Since(start)
			out[i] = o
			return nil
		})
	}
	g.Wait()
	return out, ctx.Err()
}

type BenchRow struct {
	TimeSlice float64
	Steps     int
	Elapsed   time.Duration
	Final     trajectory.Sample
}

// Bench integrates cfg to its full duration once per time slice on a cold
// cache.
func Bench(ctx context.Context, reg *curves.Registry, cfg *config.Config, slices []float64) ([]BenchRow, error) {
	rows := make([]BenchRow, 0, len(slices))
	for _, slice := range slices {
		c := cfg.Clone()
		c.Physics.TimeSlice = slice

		exp := New(c)
		if err := exp.Setup(reg); err != nil {
			return rows, fmt.Errorf("time slice %g: %w", slice, err)
		}

		start := time.Now()
		v, err := exp.traj.Position(ctx, c.Duration)
		elapsed := time.Since(start)
		if err != nil {
			return rows, fmt.Errorf("time slice %g: %w", slice, err)
		}
		rows = append(rows, BenchRow{
			TimeSlice: slice,
			Steps:     exp.traj.Cache().Steps(),
			Elapsed:   elapsed,
			Final:     trajectory.Sample{Time: c.Duration, Vector: v},
		})
	}
	return rows, nil
}
