package trajectory

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/coaster/internal/dynamo"
	"github.com/san-kum/coaster/internal/track"
)

// maxStepIndex bounds a single query so a huge time cannot overflow the index.
const maxStepIndex = math.MaxInt32

// Cache memoizes integration steps. Slot n holds the state at step n, so a
// query for time t resumes from the furthest slot already computed instead of
// integrating from t=0.
//
// A Cache assumes one fixed set of segments. Call Invalidate whenever the
// segments change. It is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	params  Params
	entries []dynamo.Vector
	steps   int
}

func NewCache(p Params) (*Cache, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Cache{params: p}, nil
}

func (c *Cache) Params() Params { return c.params }

// Len is the number of cached slots, including the start state.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Steps counts every integration step this cache has performed.
func (c *Cache) Steps() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.steps
}

// At returns slot n if it has been computed.
func (c *Cache) At(n int) (dynamo.Vector, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n < 0 || n >= len(c.entries) {
		return dynamo.Vector{}, false
	}
	return c.entries[n], true
}

// Invalidate drops every cached slot.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}

// Position returns the state at time t on segs. A failing step leaves every
// earlier slot in place and writes nothing for itself.
func (c *Cache) Position(ctx context.Context, segs []track.Segment, t float64) (dynamo.Vector, error) {
	if math.IsNaN(t) || t < 0 {
		return dynamo.Vector{}, fmt.Errorf("%w: %v", dynamo.ErrInvalidTime, t)
	}
	if err := track.CheckStructure(segs); err != nil {
		return dynamo.Vector{}, err
	}
	if t/c.params.TimeSlice > maxStepIndex {
		return dynamo.Vector{}, fmt.Errorf("%w: %v is beyond the step limit", dynamo.ErrInvalidTime, t)
	}
	n := c.params.StepIndex(t)

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) == 0 {
		start, err := Start(segs)
		if err != nil {
			return dynamo.Vector{}, &dynamo.StepError{Step: 0, Time: 0, Wrapped: err}
		}
		c.entries = append(c.entries, start)
	}
	if n < len(c.entries) {
		return c.entries[n], nil
	}

	// Moving on to the next segment is not supported; the first segment's
	// curve is used for the whole ride.
	seg := segs[0]
	vec := c.entries[len(c.entries)-1]

	for idx := len(c.entries); idx <= n; idx++ {
		select {
		case <-ctx.Done():
			return dynamo.Vector{}, ctx.Err()
		default:
		}

		next, err := Step(vec, seg, c.params)
		if err == nil && !next.IsValid() {
			err = dynamo.ErrUnstable
		}
		if err != nil {
			return dynamo.Vector{}, &dynamo.StepError{
				Step:    idx,
				Time:    float64(idx) * c.params.TimeSlice,
				From:    vec,
				Wrapped: err,
			}
		}

		c.entries = append(c.entries, next)
		c.steps++
		vec = next
	}
	return vec, nil
}

// GetPosition integrates segs up to t from scratch.
func GetPosition(segs []track.Segment, t float64) (dynamo.Vector, error) {
	c, err := NewCache(DefaultParams())
	if err != nil {
		return dynamo.Vector{}, err
	}
	return c.Position(context.Background(), segs, t)
}
