// Package api
// Author: momentics <momentics@gmail.com>
//
// Protocol receive-stream capability consumed by the body core.
// Framing, window accounting and frame parsing live behind this
// interface; the body only moves the results along.

package api

import (
	"context"
	"net/http"
)

// ReceiveStream is the receive half of a protocol-native stream
// (an HTTP/2 stream, typically). ReadData returns io.EOF once the
// stream has ended and keeps returning it afterwards.
type ReceiveStream interface {
	// ReadData yields the next data frame's bytes.
	ReadData(ctx context.Context) ([]byte, error)

	// ReadTrailers yields the trailing header block, nil when the
	// stream carries none.
	ReadTrailers(ctx context.Context) (http.Header, error)

	// IsEndStream reports whether the stream has already ended,
	// without reading.
	IsEndStream() bool

	// FlowControl returns the stream's credit handle.
	FlowControl() FlowControl
}

// FlowControl releases receive window credit back to the peer.
type FlowControl interface {
	// ReleaseCapacity returns n bytes of window. Failing is only
	// possible while the stream is being torn down; callers may
	// ignore the error.
	ReleaseCapacity(n int) error
}
