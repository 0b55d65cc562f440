package optim

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/coaster/internal/config"
	"github.com/san-kum/coaster/internal/curves"
	"github.com/san-kum/coaster/internal/experiment"
)

func builder(base *config.Config) func(map[string]float64) (*experiment.Experiment, error) {
	reg := curves.NewRegistry()
	return func(params map[string]float64) (*experiment.Experiment, error) {
		cfg := base.Clone()
		for k, v := range params {
			if err := Apply(cfg, k, v); err != nil {
				return nil, err
			}
		}
		exp := experiment.New(cfg)
		if err := exp.Setup(reg); err != nil {
			return nil, err
		}
		return exp, nil
	}
}

func TestGridSearch_Maximize(t *testing.T) {
	base := config.GetPreset("slope")
	base.Duration = 0.5

	g := NewGridSearch([]Axis{{Name: "0.slope", Values: []float64{-0.5, -1, -2}}}, true)
	best, trials, err := g.Search(context.Background(), builder(base), "max_speed")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if len(trials) != 3 {
		t.Errorf("expected 3 trials, got %d", len(trials))
	}
	if best.Params["0.slope"] != -2 {
		t.Errorf("steepest slope should be fastest, got %v", best.Params)
	}
}

func TestGridSearch_MinimizeAcrossAxes(t *testing.T) {
	base := config.GetPreset("slope")
	base.Duration = 0.25

	axes := []Axis{
		{Name: "gravity", Values: []float64{9.8, 1.6}},
		{Name: "0.slope", Values: []float64{-1, -3}},
	}
	best, trials, err := NewGridSearch(axes, false).Search(context.Background(), builder(base), "max_speed")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}

	if len(trials) != 4 {
		t.Errorf("expected 4 trials, got %d", len(trials))
	}
	if best.Params["gravity"] != 1.6 || best.Params["0.slope"] != -1 {
		t.Errorf("expected low gravity on the gentle slope, got %v", best.Params)
	}
}

func TestGridSearch_Failures(t *testing.T) {
	base := config.GetPreset("slope")
	base.Duration = 0.1

	g := NewGridSearch([]Axis{{Name: "9.slope", Values: []float64{1}}}, true)
	_, trials, err := g.Search(context.Background(), builder(base), "max_speed")
	if !errors.Is(err, ErrNoTrials) {
		t.Errorf("expected ErrNoTrials, got %v", err)
	}
	if len(trials) != 1 || !errors.Is(trials[0].Err, ErrUnknownKnob) {
		t.Errorf("expected the failed trial to be kept, got %+v", trials)
	}

	g = NewGridSearch([]Axis{{Name: "gravity", Values: []float64{9.8}}}, true)
	_, trials, _ = g.Search(context.Background(), builder(base), "fun")
	var ume *UnknownMetricError
	if len(trials) != 1 || !errors.As(trials[0].Err, &ume) {
		t.Errorf("expected UnknownMetricError, got %+v", trials)
	}
}

func TestGridSearch_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := NewGridSearch([]Axis{{Name: "gravity", Values: []float64{1, 2}}}, true)
	if _, _, err := g.Search(ctx, builder(config.GetPreset("flat")), "max_speed"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestParseAxis(t *testing.T) {
	ax, err := ParseAxis("0.height=2, 4,6")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if ax.Name != "0.height" || len(ax.Values) != 3 || ax.Values[1] != 4 {
		t.Errorf("unexpected axis %+v", ax)
	}

	for _, bad := range []string{"gravity", "=1,2", "gravity=", "gravity=1,x"} {
		if _, err := ParseAxis(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestApply(t *testing.T) {
	cfg := config.GetPreset("flat")

	if err := Apply(cfg, "friction", 0.99); err != nil || cfg.Physics.Friction != 0.99 {
		t.Errorf("friction not applied: %v", err)
	}
	if err := Apply(cfg, "0.intercept", 3); err != nil || cfg.Segments[0].Params["intercept"] != 3 {
		t.Errorf("segment param not applied: %v", err)
	}
	if err := Apply(cfg, "mass", 1); !errors.Is(err, ErrUnknownKnob) {
		t.Errorf("expected ErrUnknownKnob, got %v", err)
	}
	if err := Apply(cfg, "x.slope", 1); !errors.Is(err, ErrUnknownKnob) {
		t.Errorf("expected ErrUnknownKnob, got %v", err)
	}
}
