package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/coaster/internal/dynamo"
	"github.com/san-kum/coaster/internal/track"
	"github.com/san-kum/coaster/internal/trajectory"
)

// frame maps world coordinates onto an SVG viewport with 10% padding.
type frame struct {
	min, span     dynamo.Point
	width, height int
}

func newFrame(pts []dynamo.Point, width, height int) frame {
	lo, hi := track.Bounds(pts)
	span := dynamo.Point{X: hi.X - lo.X, Y: hi.Y - lo.Y}
	if span.X == 0 {
		span.X = 1
	}
	if span.Y == 0 {
		span.Y = 1
	}
	lo.X -= span.X * 0.1
	lo.Y -= span.Y * 0.1
	span.X *= 1.2
	span.Y *= 1.2
	return frame{min: lo, span: span, width: width, height: height}
}

func (f frame) project(p dynamo.Point) (x, y float64) {
	x = (p.X - f.min.X) / f.span.X * float64(f.width)
	y = float64(f.height) - (p.Y-f.min.Y)/f.span.Y*float64(f.height)
	return
}

// TrackSVG draws the track profile as a path and each sample as a dot.
// Returns an empty string when there is nothing to draw.
func TrackSVG(profile []dynamo.Point, samples []trajectory.Sample, width, height int) string {
	if len(profile) < 2 && len(samples) == 0 {
		return ""
	}

	all := append([]dynamo.Point{}, profile...)
	for _, s := range samples {
		all = append(all, s.Vector.Origin)
	}
	f := newFrame(all, width, height)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if len(profile) > 1 {
		sb.WriteString(`<path fill="none" stroke="#aaaaaa" stroke-width="1.5" d="M`)
		for i, p := range profile {
			x, y := f.project(p)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")
	}

	for _, s := range samples {
		x, y := f.project(s.Vector.Origin)
		fill := "#288cff"
		if !s.Vector.Line {
			fill = "#f04646"
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2.5" fill="%s"/>
`, x, y, fill))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
