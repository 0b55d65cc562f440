package export

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/coaster/internal/dynamo"
	"github.com/san-kum/coaster/internal/track"
	"github.com/san-kum/coaster/internal/trajectory"
)

func slopeTrack() []track.Segment {
	return []track.Segment{track.NewSegment("slope", func(x float64) float64 { return 10 - x }, 0, 10)}
}

func testSamples() []trajectory.Sample {
	return []trajectory.Sample{
		{Time: 0, Vector: dynamo.Vector{Origin: dynamo.Point{X: 0, Y: 10}, Line: true}},
		{Time: 0.5, Vector: dynamo.Vector{Origin: dynamo.Point{X: 0.9, Y: 9.1}, Magnitude: 1.7, Line: true}},
		{Time: 1, Vector: dynamo.Vector{Origin: dynamo.Point{X: 3.4, Y: 6.4}, Magnitude: 3.5}},
	}
}

func TestTrackSVG(t *testing.T) {
	profile, err := track.Profile(slopeTrack(), 20)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}

	svg := TrackSVG(profile, testSamples(), 400, 300)

	if !strings.HasPrefix(svg, "<?xml") {
		t.Error("missing xml header")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("missing closing tag")
	}
	if strings.Count(svg, " L") != len(profile)-1 {
		t.Errorf("expected %d path segments", len(profile)-1)
	}
	if got := strings.Count(svg, "<circle"); got != 3 {
		t.Errorf("expected 3 sample dots, got %d", got)
	}
	if !strings.Contains(svg, "#f04646") {
		t.Error("airborne sample should be highlighted")
	}
}

func TestTrackSVG_Empty(t *testing.T) {
	if svg := TrackSVG(nil, nil, 100, 100); svg != "" {
		t.Errorf("expected empty output, got %q", svg)
	}
}

func TestFrameProject(t *testing.T) {
	f := newFrame([]dynamo.Point{{X: 0, Y: 0}, {X: 10, Y: 10}}, 120, 120)

	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

	x, y := f.project(dynamo.Point{X: 0, Y: 0})
	if !near(x, 10) || !near(y, 110) {
		t.Errorf("expected (10, 110), got (%v, %v)", x, y)
	}
	x, y = f.project(dynamo.Point{X: 10, Y: 10})
	if !near(x, 110) || !near(y, 10) {
		t.Errorf("expected (110, 10), got (%v, %v)", x, y)
	}
}

func TestProfilePNG(t *testing.T) {
	p, err := ProfilePlot("slope", slopeTrack(), testSamples())
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, p, 2, 1.5, 72); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a png")
	}
}

func TestSeriesPlot(t *testing.T) {
	if _, err := SeriesPlot("speed", "m/s", testSamples()[:1], Speed); err == nil {
		t.Error("expected error for a single sample")
	}

	p, err := SeriesPlot("height", "m", testSamples(), Height)
	if err != nil {
		t.Fatalf("plot failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out", "height.png")
	if err := SavePNG(path, p, 2, 1.5, 72); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
}
