package trajectory

import (
	"math"
	"testing"

	"github.com/san-kum/coaster/internal/dynamo"
	"github.com/san-kum/coaster/internal/track"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_FlatTrack(t *testing.T) {
	p := DefaultParams()
	seg := segment(func(float64) float64 { return 0 })
	start := dynamo.NewVector(dynamo.Point{}, 0, 0, true)

	next, err := Step(start, seg, p)
	require.NoError(t, err)

	assert.True(t, next.Line)
	assert.InDelta(t, 0, next.Origin.Y, 1e-12)
	assert.Greater(t, next.Origin.X, 0.0)
	assert.Less(t, next.Origin.X, p.TimeSlice*1e-6)
}

func TestStep_StrictContactLeavesFlatTrack(t *testing.T) {
	p := DefaultParams()
	p.ContactTolerance = 0
	seg := segment(func(float64) float64 { return 0 })

	next, err := Step(dynamo.NewVector(dynamo.Point{}, 0, 0, true), seg, p)
	require.NoError(t, err)
	assert.False(t, next.Line)
	assert.InDelta(t, 0, next.Origin.Y, 1e-12)
}

func TestStep_SlopeAccelerates(t *testing.T) {
	p := DefaultParams()
	seg := segment(func(x float64) float64 { return -x })
	vec := dynamo.NewVector(dynamo.Point{}, 0, 0, true)

	for i := 0; i < 500; i++ {
		next, err := Step(vec, seg, p)
		require.NoError(t, err)
		require.True(t, next.Line, "left the track at step %d", i)
		require.Greater(t, next.Magnitude, vec.Magnitude, "slowed down at step %d", i)
		require.Greater(t, next.Origin.X, vec.Origin.X)
		vec = next
	}

	assert.InDelta(t, -math.Pi/4, vec.Angle, 1e-6)
	assert.InDelta(t, -vec.Origin.X, vec.Origin.Y, 1e-12)
}

func TestStep_ContactFlagMatchesPosition(t *testing.T) {
	p := DefaultParams()
	f := func(x float64) float64 { return -x * x }
	seg := track.NewSegment("crest", f, 1, 10)
	vec, err := Start([]track.Segment{seg})
	require.NoError(t, err)

	flights := 0
	for i := 0; i < 2048; i++ {
		vec, err = Step(vec, seg, p)
		require.NoError(t, err)
		if vec.Line {
			require.Equal(t, f(vec.Origin.X), vec.Origin.Y, "contact step %d is off the curve", i)
		} else {
			flights++
			require.GreaterOrEqual(t, vec.Origin.Y, f(vec.Origin.X), "free flight step %d is under the curve", i)
		}
	}
	assert.Positive(t, flights)
}

func TestStep_HeadingAndSpeed(t *testing.T) {
	p := DefaultParams()
	seg := segment(func(x float64) float64 { return -0.5 * x })
	from := dynamo.NewVector(dynamo.Point{X: 1, Y: -0.5}, -0.3, 2, true)

	next, err := Step(from, seg, p)
	require.NoError(t, err)

	dx := next.Origin.X - from.Origin.X
	dy := next.Origin.Y - from.Origin.Y
	assert.InDelta(t, math.Atan2(dy, dx), next.Angle, 1e-12)
	assert.InDelta(t, math.Hypot(dx, dy)/p.TimeSlice, next.Magnitude, 1e-9)
}

func TestStep_EvaluationFailure(t *testing.T) {
	seg := segment(func(x float64) float64 { return math.Log(x) })
	_, err := Step(dynamo.NewVector(dynamo.Point{X: -1}, 0, 0, true), seg, DefaultParams())
	assert.ErrorIs(t, err, dynamo.ErrEvaluation)
}

func TestStart(t *testing.T) {
	segs := []track.Segment{track.NewSegment("s", func(x float64) float64 { return x + 2 }, 1, 3)}
	v, err := Start(segs)
	require.NoError(t, err)
	assert.Equal(t, dynamo.Vector{Origin: dynamo.Point{X: 1, Y: 3}, Line: true}, v)

	_, err = Start(nil)
	assert.ErrorIs(t, err, dynamo.ErrEmptyTrack)
}
