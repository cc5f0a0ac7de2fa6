// File: fake/recorder.go
// Author: momentics <momentics@gmail.com>
//
// Fake keepalive recorder capturing the events a body emits.

package fake

import (
	"sync"

	"github.com/momentics/hioload-body/api"
)

var _ api.Recorder = (*Recorder)(nil)

// Recorder captures RecordData/RecordNonData calls for assertions.
type Recorder struct {
	mu        sync.Mutex
	dataSizes []int
	nonData   int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// RecordData implements api.Recorder.
func (r *Recorder) RecordData(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dataSizes = append(r.dataSizes, n)
}

// RecordNonData implements api.Recorder.
func (r *Recorder) RecordNonData() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nonData++
}

// DataSizes returns the recorded data byte counts in order.
func (r *Recorder) DataSizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.dataSizes))
	copy(out, r.dataSizes)
	return out
}

// NonDataCount returns how many non-data events were recorded.
func (r *Recorder) NonDataCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.nonData
}
