package track

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/coaster/internal/dynamo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment_Eval(t *testing.T) {
	tests := []struct {
		name    string
		f       Func
		x       float64
		want    float64
		wantErr bool
	}{
		{"linear", func(x float64) float64 { return 2 * x }, 3, 6, false},
		{"nan", func(x float64) float64 { return math.NaN() }, 0, 0, true},
		{"inf", func(x float64) float64 { return 1 / x }, 0, 0, true},
		{"sqrt of negative", math.Sqrt, -1, 0, true},
		{"panics", func(x float64) float64 { panic("boom") }, 1, 0, true},
		{"nil func", nil, 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSegment(tt.name, tt.f, 0, 1)
			got, err := s.Eval(tt.x)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, dynamo.ErrEvaluation))
				var evalErr *EvalError
				require.True(t, errors.As(err, &evalErr))
				assert.Equal(t, tt.x, evalErr.X)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSegment_EndPoints(t *testing.T) {
	s := NewSegment("sq", func(x float64) float64 { return x * x }, 1, 3)

	start, err := s.StartPoint()
	require.NoError(t, err)
	assert.Equal(t, dynamo.Point{X: 1, Y: 1}, start)

	end, err := s.EndPoint()
	require.NoError(t, err)
	assert.Equal(t, dynamo.Point{X: 3, Y: 9}, end)
}

func TestCheckStructure(t *testing.T) {
	flat := func(float64) float64 { return 0 }

	assert.ErrorIs(t, CheckStructure(nil), dynamo.ErrEmptyTrack)
	assert.ErrorIs(t, CheckStructure([]Segment{NewSegment("a", flat, 2, 1)}), dynamo.ErrUnorderedRange)
	assert.NoError(t, CheckStructure([]Segment{NewSegment("a", flat, 0, 1), NewSegment("b", flat, 1, 1)}))
}
