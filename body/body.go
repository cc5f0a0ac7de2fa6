// File: body/body.go
// Author: momentics <momentics@gmail.com>
//
// The Body container and its per-variant behavior. The variant set is
// closed and small, so each operation does direct case analysis
// instead of dynamic dispatch; nothing extra is allocated per chunk.

package body

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/momentics/hioload-body/api"
	"github.com/momentics/hioload-body/core/concurrency"
)

type kind int

const (
	kindEmpty kind = iota
	kindChan
	kindStream
)

// Body is a stream of byte chunks with optional trailing headers.
// Exactly one backend variant is active for its whole lifetime.
//
// A Body is driven by a single consumer goroutine; the paired Sender
// may live on any other goroutine.
type Body struct {
	kind   kind
	length Length

	// channel variant
	want     *concurrency.WatchSender
	data     *concurrency.SendQueue[api.Result[[]byte]]
	trailers *concurrency.OneShot[http.Header]

	// receive-stream variant
	stream   api.ReceiveStream
	recorder api.Recorder

	log *zap.Logger
}

// Empty returns a body with no data, already ended.
func Empty() *Body {
	return &Body{kind: kindEmpty, log: zap.NewNop()}
}

// FromReceiveStream wraps a protocol receive stream. Flow-control
// credit is released and the recorder is fed inline as the body is
// read. A stream that is already ended with no exact declared length
// is normalized to exact zero, which downstream size checks can use.
func FromReceiveStream(rs api.ReceiveStream, length Length, rec api.Recorder, opts ...Option) *Body {
	if !length.IsExact() && rs.IsEndStream() {
		length = LengthZero()
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	cfg := newConfig(opts)
	return &Body{
		kind:     kindStream,
		length:   length,
		stream:   rs,
		recorder: rec,
		log:      cfg.log,
	}
}

// ReadData returns the next chunk. It blocks until a chunk, an error
// item or end of stream arrives; end of stream is io.EOF and stays
// io.EOF on every later call.
func (b *Body) ReadData(ctx context.Context) ([]byte, error) {
	switch b.kind {
	case kindEmpty:
		return nil, io.EOF
	case kindChan:
		// Every consumer read re-arms demand, which is what lets a
		// lazy-mode producer past its first Ready gate.
		b.want.Set(concurrency.WatchReady)
		res, ok, err := b.data.Pop(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, io.EOF
		}
		if res.Err != nil {
			return nil, res.Err
		}
		b.length.Consume(uint64(len(res.Value)))
		return res.Value, nil
	default:
		chunk, err := b.stream.ReadData(ctx)
		if err != nil {
			return nil, wrapStreamErr(err, api.NewTransport)
		}
		if fc := b.stream.FlowControl(); fc != nil {
			// Only fails mid-teardown; the bytes are already ours.
			_ = fc.ReleaseCapacity(len(chunk))
		}
		b.length.Consume(uint64(len(chunk)))
		b.recorder.RecordData(len(chunk))
		return chunk, nil
	}
}

// ReadTrailers returns the trailing headers, nil when the stream has
// none. For the channel variant a sender that went away without
// sending trailers yields nil, not an error.
func (b *Body) ReadTrailers(ctx context.Context) (http.Header, error) {
	switch b.kind {
	case kindEmpty:
		return nil, nil
	case kindChan:
		t, ok, err := b.trailers.Recv(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		return t, nil
	default:
		t, err := b.stream.ReadTrailers(ctx)
		if err != nil {
			return nil, wrapStreamErr(err, api.NewFrame)
		}
		b.recorder.RecordNonData()
		return t, nil
	}
}

// IsEndStream reports, without blocking, whether no more data will
// arrive. Callers use it to skip reading entirely.
func (b *Body) IsEndStream() bool {
	switch b.kind {
	case kindEmpty:
		return true
	case kindChan:
		return b.length.IsZero()
	default:
		return b.stream.IsEndStream()
	}
}

// SizeHint bounds the bytes still to come: exact when the declared
// length is exact, unbounded otherwise.
func (b *Body) SizeHint() api.SizeHint {
	if b.kind == kindEmpty {
		return api.ExactHint(0)
	}
	if n, ok := b.length.Exact(); ok {
		return api.ExactHint(n)
	}
	return api.UnboundedHint()
}

// Close releases the consumer side. For a channel body the paired
// Sender observes it on its next readiness check, without having to
// send first. Idempotent.
func (b *Body) Close() error {
	if b.kind == kindChan {
		b.want.Close()
		b.data.Abandon()
		b.trailers.Close()
		b.log.Debug("body closed by consumer")
	}
	return nil
}

// String formats the body for debug output without exposing state.
func (b *Body) String() string {
	if b.kind == kindEmpty {
		return "Body(Empty)"
	}
	return "Body(Streaming)"
}

// wrapStreamErr wraps receive-stream failures while letting io.EOF
// and the caller's own cancellation through untouched.
func wrapStreamErr(err error, wrap func(error) *api.Error) error {
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return wrap(err)
}

type nopRecorder struct{}

func (nopRecorder) RecordData(int) {}
func (nopRecorder) RecordNonData() {}
