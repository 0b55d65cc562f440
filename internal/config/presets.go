package config

import "sort"

func single(name, desc string, duration float64, seg SegmentConfig) *Config {
	return &Config{
		Name:        name,
		Description: desc,
		Duration:    duration,
		SampleEvery: DefaultSampleEvery,
		Physics:     DefaultPhysics(),
		Segments:    []SegmentConfig{seg},
	}
}

var Presets = map[string]*Config{
	"flat": single("flat", "level ground", 2, SegmentConfig{
		Shape: "line", Low: 0, High: 10,
	}),
	"slope": single("slope", "constant incline", 1.5, SegmentConfig{
		Shape: "line", Params: map[string]float64{"slope": -1, "intercept": 10}, Low: 0, High: 10,
	}),
	"valley": single("valley", "parabolic bowl", 10, SegmentConfig{
		Shape: "parabola", Params: map[string]float64{"a": 0.25, "h": 5, "k": 0}, Low: 0, High: 10,
	}),
	"bumps": single("bumps", "rolling hills", 5, SegmentConfig{
		Shape: "cosine", Params: map[string]float64{"amplitude": 1, "frequency": 1, "offset": 2}, Low: 0.3, High: 12,
	}),
	"jump": single("jump", "crest launch", 3, SegmentConfig{
		Shape: "bump", Params: map[string]float64{"height": 6, "center": 0, "width": 2}, Low: 0.2, High: 8,
	}),
	"ramp": single("ramp", "exponential drop", 4, SegmentConfig{
		Shape: "exp", Params: map[string]float64{"amplitude": 8, "rate": -0.8}, Low: 0, High: 10,
	}),
	"chain": {
		Name:        "chain",
		Description: "three joined pieces",
		Duration:    DefaultDuration,
		SampleEvery: DefaultSampleEvery,
		Physics:     DefaultPhysics(),
		Segments: []SegmentConfig{
			{Name: "drop", Shape: "line", Params: map[string]float64{"slope": -2, "intercept": 8}, Low: 0, High: 2},
			{Name: "dip", Shape: "parabola", Params: map[string]float64{"a": 1, "h": 3, "k": 3}, Low: 2, High: 4},
			{Name: "run", Shape: "line", Params: map[string]float64{"slope": 0, "intercept": 4}, Low: 4, High: 8},
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
