package viz

import (
	"errors"

	"github.com/san-kum/coaster/internal/dynamo"
	"github.com/san-kum/coaster/internal/track"
	"github.com/san-kum/coaster/internal/trajectory"
)

var ErrNothingToDraw = errors.New("viz: track has no drawable points")

const viewportPad = 0.05

// RenderTrack draws the track and the recorded positions into a braille
// canvas of w x h cells. The final sample is drawn as a cross.
func RenderTrack(segs []track.Segment, samples []trajectory.Sample, w, h int) (string, error) {
	c := NewCanvas(w, h)
	pw, _ := c.Pixels()

	profile, err := track.Profile(segs, pw)
	if err != nil {
		return "", err
	}
	if len(profile) < 2 {
		return "", ErrNothingToDraw
	}

	all := append([]dynamo.Point{}, profile...)
	for _, s := range samples {
		all = append(all, s.Vector.Origin)
	}
	v := NewViewport(c, all, viewportPad)

	c.Polyline(v, profile)
	for _, s := range samples {
		c.Set(v.Project(s.Vector.Origin))
	}
	if n := len(samples); n > 0 {
		c.Mark(v.Project(samples[n-1].Vector.Origin))
	}
	return c.String(), nil
}
