// Package track holds the curve segments a mass rides along.
//
// A [Segment] wraps a real function with its closed domain. Evaluation goes
// through [Segment.Eval], which turns non-finite results and panics into an
// [EvalError] instead of letting them escape. A [Track] is the ordered,
// editable list of segments; every edit bumps its version so that cached
// trajectories derived from the old shape can be discarded.
package track

import (
	"fmt"
	"math"

	"github.com/san-kum/coaster/internal/dynamo"
)

// Func is a resolved curve: y as a function of x.
type Func func(x float64) float64

type Range struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

func (r Range) Contains(x float64) bool { return x >= r.Low && x <= r.High }
func (r Range) Width() float64          { return r.High - r.Low }
func (r Range) Ordered() bool           { return r.Low <= r.High }

type Segment struct {
	Name  string
	Func  Func
	Range Range
}

func NewSegment(name string, f Func, low, high float64) Segment {
	return Segment{Name: name, Func: f, Range: Range{Low: low, High: high}}
}

// EvalError reports a curve that could not be evaluated at X.
type EvalError struct {
	Segment string
	X       float64
	Value   float64
	Cause   any
}

func (e *EvalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("track: segment %q at x=%g: %v", e.Segment, e.X, e.Cause)
	}
	return fmt.Sprintf("track: segment %q at x=%g: non-finite value %v", e.Segment, e.X, e.Value)
}

func (e *EvalError) Unwrap() error {
	return dynamo.ErrEvaluation
}

// Eval samples the segment at x. It does not clamp x to the segment range.
func (s Segment) Eval(x float64) (y float64, err error) {
	if s.Func == nil {
		return 0, &EvalError{Segment: s.Name, X: x, Cause: "no function"}
	}
	defer func() {
		if r := recover(); r != nil {
			y, err = 0, &EvalError{Segment: s.Name, X: x, Cause: r}
		}
	}()
	y = s.Func(x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, &EvalError{Segment: s.Name, X: x, Value: y}
	}
	return y, nil
}

// StartPoint is the point at the low end of the domain.
func (s Segment) StartPoint() (dynamo.Point, error) {
	y, err := s.Eval(s.Range.Low)
	if err != nil {
		return dynamo.Point{}, err
	}
	return dynamo.Point{X: s.Range.Low, Y: y}, nil
}

// EndPoint is the point at the high end of the domain.
func (s Segment) EndPoint() (dynamo.Point, error) {
	y, err := s.Eval(s.Range.High)
	if err != nil {
		return dynamo.Point{}, err
	}
	return dynamo.Point{X: s.Range.High, Y: y}, nil
}

// withRange returns a copy of s over [low, high].
func (s Segment) withRange(low, high float64) Segment {
	s.Range = Range{Low: low, High: high}
	return s
}

// CheckStructure reports the first structural defect that makes a segment
// list unusable for integration. It does not evaluate any curve.
func CheckStructure(segs []Segment) error {
	if len(segs) == 0 {
		return dynamo.ErrEmptyTrack
	}
	for i, s := range segs {
		if !s.Range.Ordered() {
			return fmt.Errorf("segment %d [%g, %g]: %w", i, s.Range.Low, s.Range.High, dynamo.ErrUnorderedRange)
		}
	}
	return nil
}
