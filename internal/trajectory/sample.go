package trajectory

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/coaster/internal/dynamo"
)

const (
	DefaultSampleEvery = 1.0 / 32
	DefaultDuration    = 5.0
)

type Sample struct {
	Time   float64
	Vector dynamo.Vector
}

type Positioner interface {
	Position(ctx context.Context, t float64) (dynamo.Vector, error)
}

// Record samples p every `every` seconds from 0 through duration.
func Record(ctx context.Context, p Positioner, duration, every float64) ([]Sample, error) {
	if !(every > 0) || math.IsInf(every, 0) {
		return nil, fmt.Errorf("sample period must be positive, got %g", every)
	}
	if math.IsNaN(duration) || duration < 0 {
		return nil, fmt.Errorf("%w: duration %g", dynamo.ErrInvalidTime, duration)
	}

	n := int(math.Floor(duration/every+1e-9)) + 1
	samples := make([]Sample, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) * every
		v, err := p.Position(ctx, t)
		if err != nil {
			return samples, err
		}
		samples = append(samples, Sample{Time: t, Vector: v})
	}
	return samples, nil
}
