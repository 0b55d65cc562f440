package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/coaster/internal/curves"
	"github.com/san-kum/coaster/internal/track"
	"github.com/san-kum/coaster/internal/trajectory"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.SampleEvery <= 0 {
		t.Error("sample period should be positive")
	}
	if cfg.Params() != trajectory.DefaultParams() {
		t.Errorf("expected default params, got %+v", cfg.Params())
	}
	if len(cfg.Segments) != 1 {
		t.Errorf("expected 1 segment, got %d", len(cfg.Segments))
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.yaml")
	cfg := GetPreset("chain")

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Name != "chain" {
		t.Errorf("expected name chain, got %s", loaded.Name)
	}
	if len(loaded.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(loaded.Segments))
	}
	if loaded.Segments[1].Params["h"] != 3 {
		t.Errorf("expected h=3, got %v", loaded.Segments[1].Params["h"])
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.yaml")
	doc := `
name: short
physics:
  gravity: 1.6
segments:
  - shape: line
    params: {slope: -0.5}
    low: 0
    high: 4
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Physics.Gravity != 1.6 {
		t.Errorf("expected gravity 1.6, got %v", cfg.Physics.Gravity)
	}
	if cfg.Physics.TimeSlice != trajectory.DefaultTimeSlice {
		t.Errorf("expected default time slice, got %v", cfg.Physics.TimeSlice)
	}
	if cfg.Duration != DefaultDuration {
		t.Errorf("expected default duration, got %v", cfg.Duration)
	}
	if len(cfg.Segments) != 1 {
		t.Errorf("expected only the file's segment, got %d", len(cfg.Segments))
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("segments: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestBuild(t *testing.T) {
	tr, err := GetPreset("chain").Build(curves.NewRegistry())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	segs := tr.Segments()
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segs))
	}
	if rep := track.Validate(segs); rep.Status() != track.Good {
		t.Errorf("chain preset should validate cleanly, got %v", rep.Problems)
	}

	cfg := DefaultConfig()
	cfg.Segments[0].Shape = "spiral"
	if _, err := cfg.Build(curves.NewRegistry()); err == nil {
		t.Error("expected error for unknown shape")
	}
}

func TestPresets(t *testing.T) {
	reg := curves.NewRegistry()
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			cfg := GetPreset(name)
			if cfg == nil {
				t.Fatal("expected preset, got nil")
			}
			if err := cfg.Params().Validate(); err != nil {
				t.Errorf("invalid params: %v", err)
			}
			tr, err := cfg.Build(reg)
			if err != nil {
				t.Fatalf("build failed: %v", err)
			}
			if err := track.Validate(tr.Segments()).Err(); err != nil {
				t.Errorf("validation failed: %v", err)
			}
		})
	}
}

func TestGetPreset_ReturnsCopy(t *testing.T) {
	cfg := GetPreset("slope")
	cfg.Segments[0].Params["slope"] = 42

	if Presets["slope"].Segments[0].Params["slope"] != -1 {
		t.Error("GetPreset leaked the shared preset")
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}
