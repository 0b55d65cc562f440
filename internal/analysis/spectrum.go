package analysis

import (
	"errors"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"github.com/san-kum/coaster/internal/trajectory"
)

var ErrTooShort = errors.New("analysis: need at least 4 samples")

// PowerSpectrum returns |X(k)| for the non-negative frequency bins of data
// after removing its mean and zero-padding to a power of two.
func PowerSpectrum(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	if len(data) > 0 {
		mean /= float64(len(data))
	}

	padded := make([]float64, n)
	for i, v := range data {
		padded[i] = v - mean
	}

	spectrum := fft.FFTReal(padded)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the strongest non-zero frequency in hertz for
// data sampled at sampleRate samples per second.
func DominantFrequency(data []float64, sampleRate float64) (freq, power float64, err error) {
	if len(data) < 4 {
		return 0, 0, ErrTooShort
	}
	ps := PowerSpectrum(data)
	best := 1
	for i := 2; i < len(ps); i++ {
		if ps[i] > ps[best] {
			best = i
		}
	}
	n := 2 * len(ps)
	return float64(best) * sampleRate / float64(n), ps[best], nil
}

func Heights(samples []trajectory.Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Vector.Origin.Y
	}
	return out
}

func Speeds(samples []trajectory.Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.Vector.Magnitude
	}
	return out
}
