package export

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"github.com/san-kum/coaster/internal/dynamo"
	"github.com/san-kum/coaster/internal/track"
	"github.com/san-kum/coaster/internal/trajectory"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const profilePoints = 200

var (
	trackColor    = color.RGBA{170, 170, 170, 255}
	contactColor  = color.RGBA{40, 140, 255, 255}
	airborneColor = color.RGBA{240, 70, 70, 255}
	seriesColor   = color.RGBA{60, 200, 120, 255}
)

func toXYs(pts []dynamo.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i].X, xys[i].Y = p.X, p.Y
	}
	return xys
}

func stylePlot(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Title.Padding = vg.Points(8)
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.X.Padding = vg.Points(10)
	p.Y.Padding = vg.Points(10)
	p.Add(plotter.NewGrid())
}

// ProfilePlot draws the track curve with the recorded positions on top,
// colouring samples by whether the body was on the track.
func ProfilePlot(name string, segs []track.Segment, samples []trajectory.Sample) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = name
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "y (m)"
	stylePlot(p)

	profile, err := track.Profile(segs, profilePoints)
	if err != nil {
		return nil, err
	}
	if len(profile) > 1 {
		line, err := plotter.NewLine(toXYs(profile))
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = trackColor
		p.Add(line)
		p.Legend.Add("track", line)
	}

	var onTrack, airborne []dynamo.Point
	for _, s := range samples {
		if s.Vector.Line {
			onTrack = append(onTrack, s.Vector.Origin)
		} else {
			airborne = append(airborne, s.Vector.Origin)
		}
	}
	for _, group := range []struct {
		label string
		pts   []dynamo.Point
		color color.Color
	}{
		{"on track", onTrack, contactColor},
		{"airborne", airborne, airborneColor},
	} {
		if len(group.pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(toXYs(group.pts))
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = group.color
		sc.GlyphStyle.Radius = vg.Points(2)
		p.Add(sc)
		p.Legend.Add(group.label, sc)
	}
	return p, nil
}

// SeriesPlot draws one scalar of each sample against time.
func SeriesPlot(title, ylabel string, samples []trajectory.Sample, value func(trajectory.Sample) float64) (*plot.Plot, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("export: need at least 2 samples, got %d", len(samples))
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (s)"
	p.Y.Label.Text = ylabel
	stylePlot(p)

	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i].X = s.Time
		pts[i].Y = value(s)
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = seriesColor
	p.Add(line)
	return p, nil
}

func Speed(s trajectory.Sample) float64  { return s.Vector.Magnitude }
func Height(s trajectory.Sample) float64 { return s.Vector.Origin.Y }

// WritePNG renders p at widthIn x heightIn inches.
func WritePNG(w io.Writer, p *plot.Plot, widthIn, heightIn float64, dpi int) error {
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(dpi),
	)
	p.Draw(draw.New(c))

	bw := bufio.NewWriter(w)
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return bw.Flush()
}

func SavePNG(path string, p *plot.Plot, widthIn, heightIn float64, dpi int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	defer f.Close()
	return WritePNG(f, p, widthIn, heightIn, dpi)
}
