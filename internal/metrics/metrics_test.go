package metrics

import (
	"testing"

	"github.com/san-kum/coaster/internal/dynamo"
	"github.com/san-kum/coaster/internal/trajectory"
)

func sample(t, x, y, speed float64, line bool) trajectory.Sample {
	return trajectory.Sample{Time: t, Vector: dynamo.Vector{Origin: dynamo.Point{X: x, Y: y}, Magnitude: speed, Line: line}}
}

func ride() []trajectory.Sample {
	return []trajectory.Sample{
		sample(0, 0, 10, 0, true),
		sample(1, 3, 6, 4, true),
		sample(2, 6, 2, 8, false),
		sample(3, 9, 4, 6, true),
	}
}

func TestEvaluate(t *testing.T) {
	got := Evaluate(ride(), Default(10)...)

	tests := []struct {
		name string
		want float64
	}{
		{"max_speed", 8},
		{"airtime", 1},
		{"distance", 10 + 3.605551275463989},
		{"drop", 8},
		// energies: 100, 68, 52, 58 -> worst drift 48/100
		{"energy_drift", 0.48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := got[tt.name]
			if !ok {
				t.Fatalf("metric %s missing", tt.name)
			}
			if diff := v - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("%s = %v, want %v", tt.name, v, tt.want)
			}
		})
	}
}

func TestEvaluate_ResetsBetweenRuns(t *testing.T) {
	ms := Default(10)
	first := Evaluate(ride(), ms...)
	second := Evaluate(ride(), ms...)

	for name, v := range first {
		if second[name] != v {
			t.Errorf("%s changed between runs: %v then %v", name, v, second[name])
		}
	}
}

func TestEnergyDrift_GroundLevelStart(t *testing.T) {
	m := NewEnergyDrift(10)
	m.Observe(sample(0, 0, 0, 0, true))
	m.Observe(sample(1, 1, -0.1, 1, true))

	// 0.5 - 1 = -0.5 relative to a unit scale
	if v := m.Value(); v < 0.5-1e-12 || v > 0.5+1e-12 {
		t.Errorf("drift = %v, want 0.5", v)
	}
}
