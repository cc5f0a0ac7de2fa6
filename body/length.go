// File: body/length.go
// Author: momentics <momentics@gmail.com>
//
// Declared body length: an exact byte count, or the chunked/streaming
// marker when the size is unknown up front.

package body

import "fmt"

// Length is the declared size state of a body. The zero value is an
// exact zero-byte length.
type Length struct {
	chunked bool
	n       uint64
}

// LengthChunked returns the unknown/streaming marker.
func LengthChunked() Length { return Length{chunked: true} }

// LengthZero returns the exact zero length.
func LengthZero() Length { return Length{} }

// LengthExact returns an exact byte count.
func LengthExact(n uint64) Length { return Length{n: n} }

// IsExact reports whether a concrete byte count was declared.
func (l Length) IsExact() bool { return !l.chunked }

// IsZero reports an exact zero length. Chunked is never zero.
func (l Length) IsZero() bool { return !l.chunked && l.n == 0 }

// Exact returns the declared count, ok false for chunked.
func (l Length) Exact() (uint64, bool) {
	if l.chunked {
		return 0, false
	}
	return l.n, true
}

// Consume subtracts n observed bytes, saturating at zero. A peer
// sending more than it declared is tolerated silently at this layer.
func (l *Length) Consume(n uint64) {
	if l.chunked {
		return
	}
	if n >= l.n {
		l.n = 0
		return
	}
	l.n -= n
}

// String formats the length for debug output.
func (l Length) String() string {
	if l.chunked {
		return "chunked"
	}
	return fmt.Sprintf("exact(%d)", l.n)
}
