// Package analysis looks for periodic motion in a recorded ride.
//
// A mass rocking in a valley traces an almost periodic height signal;
// [PowerSpectrum] and [DominantFrequency] recover its period:
//
//	heights := analysis.Heights(samples)
//	freq, _ := analysis.DominantFrequency(heights, 32)
//	period := 1 / freq
package analysis
