// Package keepalive
// Author: momentics <momentics@gmail.com>
//
// Concrete api.Recorder implementations. The body core only emits
// activity events; these recorders turn them into something a
// keepalive/idle-timeout policy can consult.

package keepalive

import (
	"sync"
	"time"

	"github.com/momentics/hioload-body/api"
)

// Ensure compile-time interface compliance.
var _ api.Recorder = (*Activity)(nil)

// Activity accumulates frame counters and the last-activity clock.
// Safe for concurrent use by multiple bodies.
type Activity struct {
	mu         sync.Mutex
	bytes      uint64
	dataFrames uint64
	nonData    uint64
	last       time.Time
	now        func() time.Time
}

// NewActivity creates an empty recorder.
func NewActivity() *Activity {
	return &Activity{now: time.Now}
}

// RecordData implements api.Recorder.
func (a *Activity) RecordData(n int) {
	a.mu.Lock()
	a.bytes += uint64(n)
	a.dataFrames++
	a.last = a.now()
	a.mu.Unlock()
}

// RecordNonData implements api.Recorder.
func (a *Activity) RecordNonData() {
	a.mu.Lock()
	a.nonData++
	a.last = a.now()
	a.mu.Unlock()
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Bytes        uint64
	DataFrames   uint64
	NonDataEvts  uint64
	LastActivity time.Time
}

// Snapshot returns the current counters.
func (a *Activity) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Snapshot{
		Bytes:        a.bytes,
		DataFrames:   a.dataFrames,
		NonDataEvts:  a.nonData,
		LastActivity: a.last,
	}
}

// IdleFor reports how long the stream has been without activity at
// the given instant. Zero before any event was recorded.
func (a *Activity) IdleFor(at time.Time) time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.last.IsZero() {
		return 0
	}
	return at.Sub(a.last)
}
