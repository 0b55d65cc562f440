// Package viz draws tracks and trajectories in the terminal.
//
// Rendering is done on a braille [Canvas], where each character cell holds a
// 2x4 grid of dots. [RenderTrack] produces a static picture of a run;
// [LiveModel] is a Bubble Tea model that animates the body along its track
// in real time, and [App] wraps it in a track picker.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from t=0
//	[ ]   - Seek backwards/forwards
//	+ -   - Change play rate
//	T     - Cycle color themes
//	?     - Show help overlay
//	Esc   - Back to the track list
package viz
