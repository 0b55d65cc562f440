package trajectory

import (
	"math"

	"github.com/san-kum/coaster/internal/dynamo"
	"github.com/san-kum/coaster/internal/track"
)

// Step advances vec by one time slice along seg.
//
// The candidate position integrates acceleration and velocity together. When
// that candidate ends up below the track the mass is held to it: the x
// landing point is shifted by reflecting the raw displacement across the
// chord to the track and bisecting, then y is read back off the curve.
// Otherwise the mass is in free flight and the candidate is kept.
func Step(vec dynamo.Vector, seg track.Segment, p Params) (dynamo.Vector, error) {
	pd, err := PointDataAt(vec.Origin.X, seg)
	if err != nil {
		return dynamo.Vector{}, err
	}
	f := Forces(vec, pd.Normal, pd.Tangent, p)

	ts := p.TimeSlice
	ts2 := ts * ts
	xd := f.Ax*ts2 + f.Vx*ts
	yd := f.Ay*ts2 + f.Vy*ts

	x := vec.Origin.X + xd
	yc := vec.Origin.Y + yd
	yf, err := seg.Eval(x)
	if err != nil {
		return dynamo.Vector{}, err
	}

	overTheLine := yc < yf+p.ContactTolerance
	if overTheLine {
		angleFunc := dynamo.NormalizeAngle(math.Atan2(yf-vec.Origin.Y, xd))
		angleVect := dynamo.NormalizeAngle(math.Atan2(yd, xd))
		angleDelt := angleVect - angleFunc
		x += math.Hypot(xd, yd) * math.Sin(angleFunc) * math.Sin(angleDelt)
		if yf, err = seg.Eval(x); err != nil {
			return dynamo.Vector{}, err
		}
	}

	y := yc
	if overTheLine {
		y = yf
	}

	heading := math.Atan2(y-vec.Origin.Y, x-vec.Origin.X)
	speed := dynamo.Dist(vec.Origin, x, y) / ts
	return dynamo.NewVector(dynamo.Point{X: x, Y: y}, heading, speed, overTheLine), nil
}

// Start is the state at t=0: at rest on the start of the first segment.
func Start(segs []track.Segment) (dynamo.Vector, error) {
	if err := track.CheckStructure(segs); err != nil {
		return dynamo.Vector{}, err
	}
	origin, err := segs[0].StartPoint()
	if err != nil {
		return dynamo.Vector{}, err
	}
	return dynamo.NewVector(origin, 0, 0, true), nil
}
