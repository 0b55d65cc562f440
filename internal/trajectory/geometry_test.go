package trajectory

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/coaster/internal/dynamo"
	"github.com/san-kum/coaster/internal/track"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func segment(f track.Func) track.Segment {
	return track.NewSegment("test", f, 0, 10)
}

func TestTangentAngle(t *testing.T) {
	tests := []struct {
		name string
		f    track.Func
		x    float64
		want float64
	}{
		{"flat", func(float64) float64 { return 0 }, 3, 0},
		{"45 up", func(x float64) float64 { return x }, 1, math.Pi / 4},
		{"45 down", func(x float64) float64 { return -x }, 1, -math.Pi / 4},
		{"parabola at vertex", func(x float64) float64 { return x * x }, 0, 0},
		{"steep", func(x float64) float64 { return 1000 * x }, 0, math.Atan(1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TangentAngle(tt.x, segment(tt.f))
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-5)
		})
	}
}

func TestPointDataAt(t *testing.T) {
	pd, err := PointDataAt(2, segment(func(x float64) float64 { return -x }))
	require.NoError(t, err)
	assert.InDelta(t, -math.Pi/4, pd.Tangent, 1e-5)
	assert.InDelta(t, math.Pi/4, pd.Normal, 1e-5)

	// A near-vertical tangent still leaves the normal inside (-π, π].
	pd, err = PointDataAt(0, segment(func(x float64) float64 { return 1e12 * x }))
	require.NoError(t, err)
	assert.Greater(t, pd.Normal, -math.Pi)
	assert.LessOrEqual(t, pd.Normal, math.Pi)
	assert.InDelta(t, dynamo.NormalizeAngle(pd.Tangent+dynamo.HalfPi), pd.Normal, 1e-12)
}

func TestPointDataAt_EvaluationFailure(t *testing.T) {
	_, err := PointDataAt(-1, segment(math.Sqrt))
	require.Error(t, err)
	assert.True(t, errors.Is(err, dynamo.ErrEvaluation))
}
