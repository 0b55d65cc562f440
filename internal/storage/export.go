package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/coaster/internal/trajectory"
)

type ExportSample struct {
	Time  float64 `json:"t"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
	Speed float64 `json:"speed"`
	Line  bool    `json:"line"`
}

type ExportData struct {
	Track       string             `json:"track"`
	TimeSlice   float64            `json:"time_slice"`
	Duration    float64            `json:"duration"`
	SampleEvery float64            `json:"sample_every"`
	Steps       int                `json:"steps"`
	Samples     []ExportSample     `json:"samples"`
	Metrics     map[string]float64 `json:"metrics"`
}

func NewExportData(run *Run) ExportData {
	data := ExportData{
		Track:       run.Config.Name,
		TimeSlice:   run.Config.Physics.TimeSlice,
		Duration:    run.Config.Duration,
		SampleEvery: run.Config.SampleEvery,
		Steps:       run.Steps,
		Samples:     make([]ExportSample, len(run.Samples)),
		Metrics:     run.Metrics,
	}
	for i, s := range run.Samples {
		data.Samples[i] = exportSample(s)
	}
	return data
}

func exportSample(s trajectory.Sample) ExportSample {
	return ExportSample{
		Time:  s.Time,
		X:     s.Vector.Origin.X,
		Y:     s.Vector.Origin.Y,
		Angle: s.Vector.Angle,
		Speed: s.Vector.Magnitude,
		Line:  s.Vector.Line,
	}
}

func WriteJSON(w io.Writer, run *Run) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewExportData(run))
}

func ExportJSON(path string, run *Run) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, run)
}
