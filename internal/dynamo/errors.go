package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for trajectory operations.
var (
	// ErrEvaluation indicates a curve produced a non-finite value or panicked.
	ErrEvaluation = errors.New("dynamo: curve evaluation failed")

	// ErrEmptyTrack indicates a query against a track with no segments.
	ErrEmptyTrack = errors.New("dynamo: track has no segments")

	// ErrUnorderedRange indicates a segment whose low bound exceeds its high bound.
	ErrUnorderedRange = errors.New("dynamo: segment range is unordered")

	// ErrInvalidTime indicates a negative or NaN query time.
	ErrInvalidTime = errors.New("dynamo: time must be a non-negative number")

	// ErrUnstable indicates a step produced a non-finite state.
	ErrUnstable = errors.New("dynamo: simulation unstable (state diverged)")

	// ErrInvalidParams indicates non-positive or non-finite simulation constants.
	ErrInvalidParams = errors.New("dynamo: invalid simulation parameters")
)

// StepError wraps an error with the step that produced it.
type StepError struct {
	Step    int
	Time    float64
	From    Vector
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
