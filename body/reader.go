// File: body/reader.go
// Author: momentics <momentics@gmail.com>
//
// io.Reader adapter over a Body, for callers that want plain byte
// reads instead of chunk reads. Leftover chunk bytes are buffered
// between Read calls.

package body

import "context"

// Reader streams a Body's data through the io.Reader interface.
// Trailers are not consumed; read them from the Body afterwards.
type Reader struct {
	ctx  context.Context
	body *Body
	rest []byte
	err  error
}

// Reader returns an io.Reader view of the body. The context bounds
// every blocking read.
func (b *Body) Reader(ctx context.Context) *Reader {
	return &Reader{ctx: ctx, body: b}
}

// Read copies the next available bytes into p. It returns at most one
// chunk's worth of data per call and io.EOF after the last chunk.
func (r *Reader) Read(p []byte) (int, error) {
	if len(r.rest) > 0 {
		n := copy(p, r.rest)
		r.rest = r.rest[n:]
		return n, nil
	}
	if r.err != nil {
		return 0, r.err
	}
	chunk, err := r.body.ReadData(r.ctx)
	if err != nil {
		r.err = err
		return 0, err
	}
	n := copy(p, chunk)
	if n < len(chunk) {
		r.rest = chunk[n:]
	}
	return n, nil
}
