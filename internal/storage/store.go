package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/coaster/internal/config"
	"github.com/san-kum/coaster/internal/dynamo"
	"github.com/san-kum/coaster/internal/trajectory"
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
	trackFile    = "track.yaml"
)

var ErrMalformedRow = errors.New("storage: malformed sample row")

var sampleHeader = []string{"time", "x", "y", "angle", "speed", "line"}

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SegmentInfo struct {
	Name  string  `json:"name"`
	Shape string  `json:"shape"`
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Track       string             `json:"track"`
	Timestamp   time.Time          `json:"timestamp"`
	Duration    float64            `json:"duration"`
	SampleEvery float64            `json:"sample_every"`
	TimeSlice   float64            `json:"time_slice"`
	Gravity     float64            `json:"gravity"`
	Friction    float64            `json:"friction"`
	Samples     int                `json:"samples"`
	Steps       int                `json:"steps"`
	Segments    []SegmentInfo      `json:"segments"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Run is everything a single integration produced.
type Run struct {
	Config  *config.Config
	Samples []trajectory.Sample
	Steps   int
	Metrics map[string]float64
}

func newRunID(name string) string {
	if name == "" {
		name = "track"
	}
	return fmt.Sprintf("%s_%s", name, uuid.NewString()[:8])
}

func (s *Store) Save(run *Run) (string, error) {
	cfg := run.Config
	runID := newRunID(cfg.Name)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Track:       cfg.Name,
		Timestamp:   time.Now(),
		Duration:    cfg.Duration,
		SampleEvery: cfg.SampleEvery,
		TimeSlice:   cfg.Physics.TimeSlice,
		Gravity:     cfg.Physics.Gravity,
		Friction:    cfg.Physics.Friction,
		Samples:     len(run.Samples),
		Steps:       run.Steps,
		Metrics:     run.Metrics,
	}
	for _, sc := range cfg.Segments {
		meta.Segments = append(meta.Segments, SegmentInfo{Name: sc.Name, Shape: sc.Shape, Low: sc.Low, High: sc.High})
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := config.Save(filepath.Join(runDir, trackFile), cfg); err != nil {
		return "", err
	}
	if err := writeSamples(filepath.Join(runDir, samplesFile), run.Samples); err != nil {
		return "", err
	}
	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func writeSamples(path string, samples []trajectory.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, samples)
}

// WriteCSV writes samples in the same layout the store keeps on disk.
func WriteCSV(out io.Writer, samples []trajectory.Sample) error {
	w := csv.NewWriter(out)
	if err := w.Write(sampleHeader); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			formatFloat(s.Time),
			formatFloat(s.Vector.Origin.X),
			formatFloat(s.Vector.Origin.Y),
			formatFloat(s.Vector.Angle),
			formatFloat(s.Vector.Magnitude),
			strconv.FormatBool(s.Vector.Line),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns stored runs, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadConfig returns the track file the run was recorded from.
func (s *Store) LoadConfig(runID string) (*config.Config, error) {
	return config.Load(filepath.Join(s.baseDir, runID, trackFile))
}

func (s *Store) LoadSamples(runID string) ([]trajectory.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, samplesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(sampleHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []trajectory.Sample{}, nil
	}

	samples := make([]trajectory.Sample, 0, len(records)-1)
	for i, record := range records[1:] {
		sample, err := parseSample(record)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, i+2, err)
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

func parseSample(record []string) (trajectory.Sample, error) {
	var vals [5]float64
	for i := range vals {
		v, err := strconv.ParseFloat(record[i], 64)
		if err != nil {
			return trajectory.Sample{}, err
		}
		vals[i] = v
	}
	line, err := strconv.ParseBool(record[5])
	if err != nil {
		return trajectory.Sample{}, err
	}
	return trajectory.Sample{
		Time: vals[0],
		Vector: dynamo.Vector{
			Origin:    dynamo.Point{X: vals[1], Y: vals[2]},
			Angle:     vals[3],
			Magnitude: vals[4],
			Line:      line,
		},
	}, nil
}

func (s *Store) Delete(runID string) error {
	runDir := filepath.Join(s.baseDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, metadataFile)); err != nil {
		return err
	}
	return os.RemoveAll(runDir)
}
