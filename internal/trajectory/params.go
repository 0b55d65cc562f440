package trajectory

import (
	"fmt"
	"math"

	"github.com/san-kum/coaster/internal/dynamo"
)

const (
	DefaultTimeSlice        = 1.0 / 1024
	DefaultGravity          = 9.8
	DefaultFriction         = 1.0
	DefaultContactTolerance = 1e-9
)

// Params are the fixed constants of one simulation.
type Params struct {
	TimeSlice float64
	Gravity   float64
	Friction  float64
	// ContactTolerance is how far above the track a candidate position may
	// sit and still count as riding it. Zero gives a strict comparison.
	ContactTolerance float64
}

func DefaultParams() Params {
	return Params{
		TimeSlice:        DefaultTimeSlice,
		Gravity:          DefaultGravity,
		Friction:         DefaultFriction,
		ContactTolerance: DefaultContactTolerance,
	}
}

func (p Params) Validate() error {
	if !(p.TimeSlice > 0) || math.IsInf(p.TimeSlice, 0) {
		return fmt.Errorf("%w: time slice must be positive, got %g", dynamo.ErrInvalidParams, p.TimeSlice)
	}
	for name, v := range map[string]float64{"gravity": p.Gravity, "friction": p.Friction, "contact tolerance": p.ContactTolerance} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %g", dynamo.ErrInvalidParams, name, v)
		}
	}
	if p.ContactTolerance < 0 {
		return fmt.Errorf("%w: contact tolerance must not be negative", dynamo.ErrInvalidParams)
	}
	return nil
}

// StepIndex is the cache slot holding the state at time t.
func (p Params) StepIndex(t float64) int {
	return int(math.Floor(t / p.TimeSlice))
}
