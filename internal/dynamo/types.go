package dynamo

import (
	"fmt"
	"math"
)

const (
	HalfPi = math.Pi / 2
	TwoPi  = math.Pi * 2
)

type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", p.X, p.Y)
}

// Vector is a single trajectory sample. Angle is the direction of travel,
// Magnitude the speed, and Line reports whether the mass rides the track.
type Vector struct {
	Origin    Point
	Angle     float64
	Magnitude float64
	Line      bool
}

// NewVector builds a Vector with its angle normalized.
func NewVector(origin Point, angle, magnitude float64, line bool) Vector {
	return Vector{
		Origin:    origin,
		Angle:     NormalizeAngle(angle),
		Magnitude: magnitude,
		Line:      line,
	}
}

// Velocity decomposes the vector into x and y components.
func (v Vector) Velocity() (vx, vy float64) {
	return v.Magnitude * math.Cos(v.Angle), v.Magnitude * math.Sin(v.Angle)
}

func (v Vector) IsValid() bool {
	for _, f := range []float64{v.Origin.X, v.Origin.Y, v.Angle, v.Magnitude} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// NormalizeAngle folds n into (-π, π] keeping it congruent modulo 2π.
func NormalizeAngle(n float64) float64 {
	r := math.Mod(n, TwoPi)
	if r > math.Pi {
		r -= TwoPi
	} else if r <= -math.Pi {
		// math.Mod keeps the dividend's sign
		r += TwoPi
	}
	return r
}

func DistSquare(p Point, x, y float64) float64 {
	xd := p.X - x
	yd := p.Y - y
	return xd*xd + yd*yd
}

func Dist(p Point, x, y float64) float64 {
	return math.Sqrt(DistSquare(p, x, y))
}
