// Package dynamo provides the value types shared by every part of the
// coaster simulator.
//
// The package defines:
//
//   - [Point]: an immutable (x, y) coordinate pair
//   - [Vector]: one trajectory sample (origin, heading, speed, contact flag)
//   - [NormalizeAngle]: folds any angle into (-π, π]
//   - sentinel errors and [StepError] for failures inside the integrator
//
// # Example
//
//	v := dynamo.NewVector(dynamo.Point{X: 0, Y: 2}, 0, 0, true)
//	heading := dynamo.NormalizeAngle(v.Angle + 3*math.Pi)
//
// Values in this package are immutable and safe to share between goroutines.
package dynamo
