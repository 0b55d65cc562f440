package track

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

const continuityTolerance = 1e-6

type ProblemKind int

const (
	UnorderedRange ProblemKind = iota
	Discontinuous
	RangeGap
	EvaluationFail
)

func (k ProblemKind) String() string {
	switch k {
	case UnorderedRange:
		return "unordered range"
	case Discontinuous:
		return "discontinuous"
	case RangeGap:
		return "range gap"
	case EvaluationFail:
		return "evaluation failure"
	}
	return fmt.Sprintf("problem(%d)", int(k))
}

type Severity int

const (
	Good Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Good:
		return "good"
	case Warning:
		return "warning"
	}
	return "error"
}

type Problem struct {
	Segment  int
	Kind     ProblemKind
	Severity Severity
	Detail   string
}

func (p Problem) String() string {
	return fmt.Sprintf("segment %d: %s (%s): %s", p.Segment, p.Kind, p.Severity, p.Detail)
}

type Report struct {
	Problems []Problem
}

// Status is the worst severity in the report.
func (r Report) Status() Severity {
	worst := Good
	for _, p := range r.Problems {
		if p.Severity > worst {
			worst = p.Severity
		}
	}
	return worst
}

// Err is non-nil when the report holds at least one error.
func (r Report) Err() error {
	var msgs []string
	for _, p := range r.Problems {
		if p.Severity == Error {
			msgs = append(msgs, p.String())
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return errors.New("track: " + strings.Join(msgs, "; "))
}

// Validate checks range ordering, range continuity between neighbours, value
// continuity at each divider and that every endpoint evaluates.
func Validate(segs []Segment) Report {
	var rep Report
	add := func(i int, k ProblemKind, s Severity, format string, args ...any) {
		rep.Problems = append(rep.Problems, Problem{Segment: i, Kind: k, Severity: s, Detail: fmt.Sprintf(format, args...)})
	}

	if len(segs) == 0 {
		add(-1, RangeGap, Error, "track has no segments")
		return rep
	}

	var prev *Segment
	var prevY float64
	for i := range segs {
		s := segs[i]
		if !s.Range.Ordered() {
			add(i, UnorderedRange, Error, "low %g > high %g", s.Range.Low, s.Range.High)
		}
		if prev != nil && math.Abs(prev.Range.High-s.Range.Low) > continuityTolerance {
			add(i, RangeGap, Error, "starts at %g but previous ends at %g", s.Range.Low, prev.Range.High)
		}

		start, err := s.StartPoint()
		if err != nil {
			add(i, EvaluationFail, Error, "%v", err)
			prev = nil
			continue
		}
		if prev != nil && math.Abs(prevY-start.Y) > continuityTolerance {
			add(i, Discontinuous, Warning, "jumps from y=%g to y=%g at x=%g", prevY, start.Y, s.Range.Low)
		}

		end, err := s.EndPoint()
		if err != nil {
			add(i, EvaluationFail, Error, "%v", err)
			prev = nil
			continue
		}
		prev, prevY = &segs[i], end.Y
	}
	return rep
}
