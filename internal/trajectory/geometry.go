package trajectory

import (
	"math"

	"github.com/san-kum/coaster/internal/dynamo"
	"github.com/san-kum/coaster/internal/track"
)

// tangentSlice is the finite-difference width used for slopes.
const tangentSlice = 1e-10

type PointData struct {
	Tangent float64
	Normal  float64
}

// TangentAngle approximates the direction of the curve at x.
func TangentAngle(x float64, seg track.Segment) (float64, error) {
	y, err := seg.Eval(x)
	if err != nil {
		return 0, err
	}
	y2, err := seg.Eval(x + tangentSlice)
	if err != nil {
		return 0, err
	}
	return dynamo.NormalizeAngle(math.Atan2(y2-y, tangentSlice)), nil
}

// PointDataAt returns the tangent angle at x and the normal rotated a
// quarter turn counter-clockwise from it.
func PointDataAt(x float64, seg track.Segment) (PointData, error) {
	tangent, err := TangentAngle(x, seg)
	if err != nil {
		return PointData{}, err
	}
	return PointData{
		Tangent: tangent,
		Normal:  dynamo.NormalizeAngle(tangent + dynamo.HalfPi),
	}, nil
}
