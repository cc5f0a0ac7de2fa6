// File: body/sender.go
// Author: momentics <momentics@gmail.com>
//
// The producer half of a channel body. A Sender is independent of the
// Body's lifetime: either side may go away at any moment and the
// other observes it without blocking or panicking.

package body

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/momentics/hioload-body/api"
	"github.com/momentics/hioload-body/core/concurrency"
)

// Sender feeds data chunks and trailers to a paired Body.
//
// A Sender is driven by a single producer goroutine. Close marks a
// graceful end of stream; Abort the abnormal one.
type Sender struct {
	want     *concurrency.WatchReceiver
	data     *concurrency.SendQueue[api.Result[[]byte]]
	trailers *concurrency.OneShot[http.Header]
	log      *zap.Logger
}

// Ready blocks until the sender may enqueue a chunk: the consumer has
// shown demand and the buffer slot is free. A gone consumer surfaces
// as a closed error, with no read required first.
func (s *Sender) Ready(ctx context.Context) error {
	st, err := s.want.Wait(ctx)
	if err != nil {
		return err
	}
	if st == concurrency.WatchClosed {
		return api.NewClosed()
	}
	if err := s.data.WaitCapacity(ctx); err != nil {
		return mapQueueErr(err)
	}
	return nil
}

// SendData waits for readiness and enqueues chunk.
func (s *Sender) SendData(ctx context.Context, chunk []byte) error {
	if err := s.Ready(ctx); err != nil {
		return err
	}
	if err := s.data.TryPush(api.Ok(chunk)); err != nil {
		return api.NewClosed()
	}
	return nil
}

// TrySendData enqueues chunk without consulting the demand signal.
// api.ErrBufferFull means the slot is occupied and chunk was not
// consumed; the caller keeps it and may retry or hold it.
func (s *Sender) TrySendData(chunk []byte) error {
	err := s.data.TryPush(api.Ok(chunk))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, concurrency.ErrQueueFull):
		return api.ErrBufferFull
	default:
		return api.NewClosed()
	}
}

// SendTrailers delivers the trailer map. The trailer slot is consumed
// by the first call; any later call fails closed without touching the
// data side.
func (s *Sender) SendTrailers(trailers http.Header) error {
	slot := s.trailers
	if slot == nil {
		return api.NewClosed()
	}
	s.trailers = nil
	if !slot.Send(trailers) {
		return api.NewClosed()
	}
	return nil
}

// Abort terminates the body abnormally. The abort error is injected
// past the capacity gate, but in order: a chunk already buffered is
// delivered to the consumer first. The sender is unusable afterwards.
func (s *Sender) Abort() {
	_ = s.data.ForcePush(api.Fail[[]byte](api.NewBodyWriteAborted()))
	s.finish()
	s.log.Debug("body write aborted")
}

// SendError injects err into the data stream without the backpressure
// gate. Protocol layers use it to surface faults they detect below
// the application. Dropped silently if the buffer slot is occupied.
func (s *Sender) SendError(err error) {
	_ = s.data.TryPush(api.Fail[[]byte](err))
}

// Close ends the stream gracefully. Anything buffered is still
// delivered, then the Body reads end of stream; unsent trailers
// resolve to none. Idempotent.
func (s *Sender) Close() error {
	s.finish()
	return nil
}

func (s *Sender) finish() {
	s.data.CloseSend()
	if s.trailers != nil {
		s.trailers.Close()
		s.trailers = nil
	}
}

// String formats the sender for debug output.
func (s *Sender) String() string {
	if s.want.State() == concurrency.WatchClosed {
		return "Sender(Closed)"
	}
	return "Sender(Open)"
}

func mapQueueErr(err error) error {
	if errors.Is(err, concurrency.ErrQueueAbandoned) || errors.Is(err, concurrency.ErrQueueClosed) {
		return api.NewClosed()
	}
	return err
}
