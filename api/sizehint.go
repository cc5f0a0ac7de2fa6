// Package api
// Author: momentics <momentics@gmail.com>
//
// Byte-count bounds reported by a body before it is read.

package api

// SizeHint bounds the number of body bytes still to come.
// HasUpper false means the stream is unbounded (chunked/streaming).
type SizeHint struct {
	Lower    uint64
	Upper    uint64
	HasUpper bool
}

// ExactHint reports a body of exactly n bytes.
func ExactHint(n uint64) SizeHint {
	return SizeHint{Lower: n, Upper: n, HasUpper: true}
}

// UnboundedHint reports a body of unknown size.
func UnboundedHint() SizeHint { return SizeHint{} }

// Exact returns the exact byte count when lower and upper agree.
func (h SizeHint) Exact() (uint64, bool) {
	if h.HasUpper && h.Lower == h.Upper {
		return h.Lower, true
	}
	return 0, false
}
