package track

import (
	"errors"
	"sync"
)

var ErrIndex = errors.New("track: segment index out of range")

// Track is an ordered list of segments covering contiguous x ranges.
// It is safe for concurrent use.
type Track struct {
	mu       sync.RWMutex
	segments []Segment
	version  uint64
}

func New(segs ...Segment) *Track {
	t := &Track{}
	t.segments = append(t.segments, segs...)
	return t
}

// Segments returns a copy of the current segment list.
func (t *Track) Segments() []Segment {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// Snapshot returns the segments together with the version they belong to.
func (t *Track) Snapshot() ([]Segment, uint64) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out, t.version
}

func (t *Track) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.segments)
}

// Version increases on every edit.
func (t *Track) Version() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.version
}

// Set replaces every segment at once.
func (t *Track) Set(segs []Segment) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.segments = append([]Segment(nil), segs...)
	t.version++
}

// Append adds a unit-wide segment after the last one.
func (t *Track) Append(name string, f Func) {
	t.mu.Lock()
	defer t.mu.Unlock()
	low := 0.0
	if n := len(t.segments); n > 0 {
		low = t.segments[n-1].Range.High
	}
	t.segments = append(t.segments, NewSegment(name, f, low, low+1))
	t.version++
}

// Replace swaps the function of segment i, keeping its range.
func (t *Track) Replace(i int, name string, f Func) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i < 0 || i >= len(t.segments) {
		return ErrIndex
	}
	r := t.segments[i].Range
	t.segments[i] = NewSegment(name, f, r.Low, r.High)
	t.version++
	return nil
}

// Remove deletes segment i. The previous segment absorbs its range; when i is
// the first segment, the next one is stretched back to i's low bound.
func (t *Track) Remove(i int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i < 0 || i >= len(t.segments) {
		return ErrIndex
	}
	removed := t.segments[i]
	segs := make([]Segment, 0, len(t.segments)-1)
	segs = append(segs, t.segments[:i]...)
	segs = append(segs, t.segments[i+1:]...)
	switch {
	case i > 0:
		prev := segs[i-1]
		segs[i-1] = prev.withRange(prev.Range.Low, removed.Range.High)
	case len(segs) > 0:
		next := segs[0]
		segs[0] = next.withRange(removed.Range.Low, next.Range.High)
	}
	t.segments = segs
	t.version++
	return nil
}

// MoveDivider moves the boundary in front of segment pos to x. Position 0
// moves the start of the track, position Len() moves its end.
func (t *Track) MoveDivider(pos int, x float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := len(t.segments)
	if pos < 0 || pos > n || n == 0 {
		return ErrIndex
	}
	if pos > 0 {
		hi := t.segments[pos-1]
		t.segments[pos-1] = hi.withRange(hi.Range.Low, x)
	}
	if pos < n {
		lo := t.segments[pos]
		t.segments[pos] = lo.withRange(x, lo.Range.High)
	}
	t.version++
	return nil
}

// Swap exchanges the curve of segment pos with its neighbour above (up) or
// below. Ranges stay where they are.
func (t *Track) Swap(pos int, up bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	a, b := pos, pos+1
	if up {
		a, b = pos-1, pos
	}
	if a < 0 || b >= len(t.segments) {
		return ErrIndex
	}
	sa, sb := t.segments[a], t.segments[b]
	t.segments[a] = sb.withRange(sa.Range.Low, sa.Range.High)
	t.segments[b] = sa.withRange(sb.Range.Low, sb.Range.High)
	t.version++
	return nil
}
