// File: body/channel.go
// Author: momentics <momentics@gmail.com>
//
// Construction of the channel-fed Sender/Body pair and its demand
// modes.

package body

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/momentics/hioload-body/api"
	"github.com/momentics/hioload-body/core/concurrency"
)

// DemandMode selects the initial state of the backpressure signal.
type DemandMode int

const (
	// DemandEager lets the producer send before the first read.
	DemandEager DemandMode = iota
	// DemandLazy holds the producer's readiness until the consumer
	// has read for data at least once.
	DemandLazy
)

// String returns the mode name.
func (m DemandMode) String() string {
	if m == DemandLazy {
		return "lazy"
	}
	return "eager"
}

// Option configures constructed bodies and senders.
type Option func(*config)

type config struct {
	log *zap.Logger
}

func newConfig(opts []Option) config {
	cfg := config{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger injects a logger for debug events. Default is a nop.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

// Channel creates a paired Sender and Body. The Sender is driven by
// the payload producer, the Body by a downstream writer; backpressure
// runs between them over a single in-flight buffer slot.
//
// Closing the Sender without sending anything is a graceful, empty
// end of stream.
func Channel(length Length, mode DemandMode, opts ...Option) (*Sender, *Body) {
	data := concurrency.NewSendQueue[api.Result[[]byte]](1)
	trailers := concurrency.NewOneShot[http.Header]()

	initial := concurrency.WatchReady
	if mode == DemandLazy {
		initial = concurrency.WatchPending
	}
	wantTx, wantRx := concurrency.NewWatch(initial)
	cfg := newConfig(opts)

	tx := &Sender{
		want:     wantRx,
		data:     data,
		trailers: trailers,
		log:      cfg.log,
	}
	rx := &Body{
		kind:     kindChan,
		length:   length,
		want:     wantTx,
		data:     data,
		trailers: trailers,
		log:      cfg.log,
	}
	return tx, rx
}
