package trajectory

import (
	"context"
	"sync"

	"github.com/san-kum/coaster/internal/dynamo"
	"github.com/san-kum/coaster/internal/track"
)

// Trajectory binds a cache to a track and drops cached steps whenever the
// track is edited.
type Trajectory struct {
	mu      sync.Mutex
	track   *track.Track
	cache   *Cache
	version uint64
}

func New(tr *track.Track, p Params) (*Trajectory, error) {
	c, err := NewCache(p)
	if err != nil {
		return nil, err
	}
	return &Trajectory{track: tr, cache: c, version: tr.Version()}, nil
}

func (t *Trajectory) Track() *track.Track { return t.track }
func (t *Trajectory) Cache() *Cache       { return t.cache }
func (t *Trajectory) Params() Params      { return t.cache.Params() }

// Position returns the state at time tm on the track's current shape.
func (t *Trajectory) Position(ctx context.Context, tm float64) (dynamo.Vector, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	segs, version := t.track.Snapshot()
	if version != t.version {
		t.cache.Invalidate()
		t.version = version
	}
	return t.cache.Position(ctx, segs, tm)
}
