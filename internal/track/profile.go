package track

import "github.com/san-kum/coaster/internal/dynamo"

// Profile evaluates every segment at perSegment evenly spaced points,
// endpoints included. Points that fail to evaluate are skipped; the first
// such error is returned alongside whatever did evaluate.
func Profile(segs []Segment, perSegment int) ([]dynamo.Point, error) {
	if perSegment < 2 {
		perSegment = 2
	}

	var firstErr error
	pts := make([]dynamo.Point, 0, len(segs)*perSegment)
	for _, s := range segs {
		step := s.Range.Width() / float64(perSegment-1)
		for i := 0; i < perSegment; i++ {
			x := s.Range.Low + float64(i)*step
			if i == perSegment-1 {
				x = s.Range.High
			}
			y, err := s.Eval(x)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			pts = append(pts, dynamo.Point{X: x, Y: y})
		}
	}
	return pts, firstErr
}

// Bounds returns the smallest box holding every point.
func Bounds(pts []dynamo.Point) (min, max dynamo.Point) {
	if len(pts) == 0 {
		return
	}
	min, max = pts[0], pts[0]
	for _, p := range pts[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return
}
