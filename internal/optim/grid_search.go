// Package optim searches track and physics settings for the ride that
// scores best on a metric.
package optim

import (
	"context"
	"errors"
	"math"

	"github.com/san-kum/coaster/internal/experiment"
)

var ErrNoTrials = errors.New("optim: no trial completed")

// Axis is one knob and the values to try for it.
type Axis struct {
	Name   string
	Values []float64
}

type Trial struct {
	Params map[string]float64
	Value  float64
	Err    error
}

type GridSearch struct {
	axes     []Axis
	maximize bool
}

func NewGridSearch(axes []Axis, maximize bool) *GridSearch {
	return &GridSearch{axes: axes, maximize: maximize}
}

func (g *GridSearch) better(a, b float64) bool {
	if g.maximize {
		return a > b
	}
	return a < b
}

// Search runs one experiment per grid point and returns the best trial along
// with every trial in grid order. Failed trials are kept with their error
// and never win.
func (g *GridSearch) Search(
	ctx context.Context,
	buildExperiment func(params map[string]float64) (*experiment.Experiment, error),
	metricName string,
) (Trial, []Trial, error) {
	var trials []Trial
	if err := g.searchRecursive(ctx, 0, map[string]float64{}, buildExperiment, metricName, &trials); err != nil {
		return Trial{}, trials, err
	}

	best := -1
	for i, tr := range trials {
		if tr.Err != nil || math.IsNaN(tr.Value) {
			continue
		}
		if best < 0 || g.better(tr.Value, trials[best].Value) {
			best = i
		}
	}
	if best < 0 {
		return Trial{}, trials, ErrNoTrials
	}
	return trials[best], trials, nil
}

func (g *GridSearch) searchRecursive(
	ctx context.Context,
	depth int,
	current map[string]float64,
	buildExperiment func(map[string]float64) (*experiment.Experiment, error),
	metricName string,
	trials *[]Trial,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if depth == len(g.axes) {
		tr := Trial{Params: current}
		exp, err := buildExperiment(current)
		if err != nil {
			tr.Err = err
			*trials = append(*trials, tr)
			return nil
		}

		run, err := exp.Run(ctx)
		if err != nil {
			tr.Err = err
		} else if v, ok := run.Metrics[metricName]; ok {
			tr.Value = v
		} else {
			tr.Err = &UnknownMetricError{Name: metricName}
		}
		*trials = append(*trials, tr)
		return nil
	}

	axis := g.axes[depth]
	for _, val := range axis.Values {
		next := make(map[string]float64, len(current)+1)
		for k, v := range current {
			next[k] = v
		}
		next[axis.Name] = val

		if err := g.searchRecursive(ctx, depth+1, next, buildExperiment, metricName, trials); err != nil {
			return err
		}
	}
	return nil
}

type UnknownMetricError struct {
	Name string
}

func (e *UnknownMetricError) Error() string {
	return "optim: run has no metric " + e.Name
}
