package config

import (
	"fmt"
	"os"

	"github.com/san-kum/coaster/internal/curves"
	"github.com/san-kum/coaster/internal/track"
	"github.com/san-kum/coaster/internal/trajectory"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDuration    = trajectory.DefaultDuration
	DefaultSampleEvery = trajectory.DefaultSampleEvery
)

type Config struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Duration    float64         `yaml:"duration"`
	SampleEvery float64         `yaml:"sample_every"`
	Physics     PhysicsConfig   `yaml:"physics"`
	Segments    []SegmentConfig `yaml:"segments"`
}

type PhysicsConfig struct {
	TimeSlice        float64 `yaml:"time_slice"`
	Gravity          float64 `yaml:"gravity"`
	Friction         float64 `yaml:"friction"`
	ContactTolerance float64 `yaml:"contact_tolerance"`
}

type SegmentConfig struct {
	Name   string             `yaml:"name,omitempty"`
	Shape  string             `yaml:"shape"`
	Params map[string]float64 `yaml:"params,omitempty"`
	Low    float64            `yaml:"low"`
	High   float64            `yaml:"high"`
}

func DefaultPhysics() PhysicsConfig {
	p := trajectory.DefaultParams()
	return PhysicsConfig{
		TimeSlice:        p.TimeSlice,
		Gravity:          p.Gravity,
		Friction:         p.Friction,
		ContactTolerance: p.ContactTolerance,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Name:        "slope",
		Duration:    DefaultDuration,
		SampleEvery: DefaultSampleEvery,
		Physics:     DefaultPhysics(),
		Segments: []SegmentConfig{
			{Name: "slope", Shape: "line", Params: map[string]float64{"slope": -1, "intercept": 10}, Low: 0, High: 10},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	cfg.Segments = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params converts the physics block into integrator constants.
func (c *Config) Params() trajectory.Params {
	return trajectory.Params{
		TimeSlice:        c.Physics.TimeSlice,
		Gravity:          c.Physics.Gravity,
		Friction:         c.Physics.Friction,
		ContactTolerance: c.Physics.ContactTolerance,
	}
}

// Build resolves every segment's shape into a track.
func (c *Config) Build(reg *curves.Registry) (*track.Track, error) {
	segs := make([]track.Segment, 0, len(c.Segments))
	for i, sc := range c.Segments {
		f, err := reg.Build(sc.Shape, curves.Params(sc.Params))
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
		name := sc.Name
		if name == "" {
			name = fmt.Sprintf("%s#%d", sc.Shape, i)
		}
		segs = append(segs, track.NewSegment(name, f, sc.Low, sc.High))
	}
	return track.New(segs...), nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Segments = make([]SegmentConfig, len(c.Segments))
	for i, sc := range c.Segments {
		out.Segments[i] = sc
		if sc.Params != nil {
			out.Segments[i].Params = make(map[string]float64, len(sc.Params))
			for k, v := range sc.Params {
				out.Segments[i].Params[k] = v
			}
		}
	}
	return &out
}
