// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake implementations for testing and development.
// Provides predictable, controllable behavior for the capability
// interfaces the body core consumes.

package fake

import (
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/momentics/hioload-body/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.ReceiveStream = (*ReceiveStream)(nil)
	_ api.FlowControl   = (*ReceiveStream)(nil)
)

// ReceiveStream is a scripted api.ReceiveStream. Chunks queued with
// AddChunk are served in order, then the configured error or a clean
// end of stream. Flow-control releases are recorded for inspection.
type ReceiveStream struct {
	mu          sync.Mutex
	chunks      [][]byte
	trailers    http.Header
	dataErr     error
	trailersErr error
	releaseErr  error
	released    []int
}

// NewReceiveStream creates an empty stream, which reads as already
// ended until chunks or trailers are scripted.
func NewReceiveStream() *ReceiveStream {
	return &ReceiveStream{}
}

// ReadData implements api.ReceiveStream.
func (s *ReceiveStream) ReadData(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.chunks) > 0 {
		chunk := s.chunks[0]
		s.chunks = s.chunks[1:]
		return chunk, nil
	}
	if s.dataErr != nil {
		return nil, s.dataErr
	}
	return nil, io.EOF
}

// ReadTrailers implements api.ReceiveStream.
func (s *ReceiveStream) ReadTrailers(_ context.Context) (http.Header, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.trailersErr != nil {
		return nil, s.trailersErr
	}
	return s.trailers, nil
}

// IsEndStream implements api.ReceiveStream.
func (s *ReceiveStream) IsEndStream() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.chunks) == 0 && s.dataErr == nil &&
		s.trailers == nil && s.trailersErr == nil
}

// FlowControl implements api.ReceiveStream.
func (s *ReceiveStream) FlowControl() api.FlowControl { return s }

// ReleaseCapacity implements api.FlowControl, recording n.
func (s *ReceiveStream) ReleaseCapacity(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.releaseErr != nil {
		return s.releaseErr
	}
	s.released = append(s.released, n)
	return nil
}

// AddChunk queues a data frame. The bytes are copied.
func (s *ReceiveStream) AddChunk(data []byte) {
	chunk := make([]byte, len(data))
	copy(chunk, data)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chunks = append(s.chunks, chunk)
}

// SetTrailers scripts the trailing header block.
func (s *ReceiveStream) SetTrailers(t http.Header) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trailers = t
}

// SetDataError configures the error served once chunks are drained.
func (s *ReceiveStream) SetDataError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataErr = err
}

// SetTrailersError configures ReadTrailers to fail.
func (s *ReceiveStream) SetTrailersError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trailersErr = err
}

// SetReleaseError configures ReleaseCapacity to fail.
func (s *ReceiveStream) SetReleaseError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseErr = err
}

// Released returns the recorded flow-control releases in order.
func (s *ReceiveStream) Released() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.released))
	copy(out, s.released)
	return out
}
