package track

import (
	"math"
	"testing"

	"github.com/san-kum/coaster/internal/dynamo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	segs := []Segment{
		NewSegment("a", func(x float64) float64 { return x }, 0, 2),
		NewSegment("b", func(x float64) float64 { return 2 }, 2, 4),
	}

	pts, err := Profile(segs, 3)
	require.NoError(t, err)
	require.Len(t, pts, 6)
	assert.Equal(t, dynamo.Point{X: 0, Y: 0}, pts[0])
	assert.Equal(t, dynamo.Point{X: 1, Y: 1}, pts[1])
	assert.Equal(t, dynamo.Point{X: 4, Y: 2}, pts[5])
}

func TestProfile_SkipsFailures(t *testing.T) {
	segs := []Segment{NewSegment("sqrt", math.Sqrt, -1, 1)}

	pts, err := Profile(segs, 3)
	assert.ErrorIs(t, err, dynamo.ErrEvaluation)
	assert.Len(t, pts, 2)
}

func TestProfile_MinimumPoints(t *testing.T) {
	segs := []Segment{NewSegment("flat", func(float64) float64 { return 0 }, 0, 1)}

	pts, err := Profile(segs, 0)
	require.NoError(t, err)
	assert.Len(t, pts, 2)
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds([]dynamo.Point{{X: 1, Y: -2}, {X: -3, Y: 4}, {X: 0, Y: 0}})
	assert.Equal(t, dynamo.Point{X: -3, Y: -2}, lo)
	assert.Equal(t, dynamo.Point{X: 1, Y: 4}, hi)

	lo, hi = Bounds(nil)
	assert.Equal(t, dynamo.Point{}, lo)
	assert.Equal(t, dynamo.Point{}, hi)
}
