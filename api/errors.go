// Package api
// Author: momentics <momentics@gmail.com>
//
// Error kinds for the body core. Producer-side failures are never
// panics; they travel as the error half of the next item the consumer
// observes, so stream ordering is preserved.

package api

import (
	"errors"
	"fmt"
)

// ErrBufferFull reports that the single in-flight buffer slot is
// occupied. The chunk handed to TrySendData is not consumed; the
// caller still owns it and may retry.
var ErrBufferFull = fmt.Errorf("body send buffer full")

// ErrorKind classifies body errors.
type ErrorKind int

const (
	// KindClosed: either side of a channel primitive has been abandoned.
	KindClosed ErrorKind = iota
	// KindBodyWriteAborted: the sender called Abort.
	KindBodyWriteAborted
	// KindTransport: opaque failure from the protocol receive stream.
	KindTransport
	// KindFrame: trailer/frame decoding failed at the protocol layer.
	KindFrame
)

// String returns a short name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindClosed:
		return "closed"
	case KindBodyWriteAborted:
		return "body write aborted"
	case KindTransport:
		return "transport"
	case KindFrame:
		return "frame"
	default:
		return "unknown"
	}
}

// Error is a body error with a kind and an optional wrapped cause.
// Transport and frame causes are wrapped, not inspected.
type Error struct {
	Kind  ErrorKind
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindClosed:
		return "body channel closed"
	case KindBodyWriteAborted:
		return "body write aborted"
	case KindTransport:
		return fmt.Sprintf("body transport error: %v", e.Cause)
	case KindFrame:
		return fmt.Sprintf("body frame error: %v", e.Cause)
	default:
		return fmt.Sprintf("body error: %v", e.Cause)
	}
}

// Unwrap exposes the wrapped cause, if any.
func (e *Error) Unwrap() error { return e.Cause }

// NewClosed reports an abandoned channel half.
func NewClosed() *Error { return &Error{Kind: KindClosed} }

// NewBodyWriteAborted reports an explicit sender abort.
func NewBodyWriteAborted() *Error { return &Error{Kind: KindBodyWriteAborted} }

// NewTransport wraps a receive-stream failure.
func NewTransport(cause error) *Error { return &Error{Kind: KindTransport, Cause: cause} }

// NewFrame wraps a trailer/frame decoding failure.
func NewFrame(cause error) *Error { return &Error{Kind: KindFrame, Cause: cause} }

// IsClosed reports whether err is a closed-channel body error.
func IsClosed(err error) bool { return hasKind(err, KindClosed) }

// IsBodyWriteAborted reports whether err came from Sender.Abort.
func IsBodyWriteAborted(err error) bool { return hasKind(err, KindBodyWriteAborted) }

// IsTransport reports whether err wraps a receive-stream failure.
func IsTransport(err error) bool { return hasKind(err, KindTransport) }

// IsFrame reports whether err wraps a frame decoding failure.
func IsFrame(err error) bool { return hasKind(err, KindFrame) }

func hasKind(err error, k ErrorKind) bool {
	var be *Error
	return errors.As(err, &be) && be.Kind == k
}
