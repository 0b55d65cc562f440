// Package trajectory integrates a point mass riding a track.
//
// The integrator is split the same way the physics is:
//
//   - [PointDataAt]: tangent and normal angles of a curve by finite difference
//   - [Forces]: tangential acceleration and velocity components for one step
//   - [Step]: one semi-implicit time slice plus track contact resolution
//   - [Cache]: memoized steps indexed by floor(t / TimeSlice)
//   - [Trajectory]: a cache bound to an editable [track.Track]
//
// # Example
//
//	tr := track.New(track.NewSegment("slope", func(x float64) float64 { return -x }, 0, 10))
//	traj, _ := trajectory.New(tr, trajectory.DefaultParams())
//	v, err := traj.Position(ctx, 1.5)
//
// Only the first segment is ever integrated: crossing into the next segment
// when x leaves the current range is not supported.
package trajectory
