// File: core/concurrency/watch.go
// Package concurrency implements the tri-state demand signal.
// Author: momentics <momentics@gmail.com>
//
// A single-slot watch propagated from the consumer side to the
// producer side. WatchClosed is terminal; WatchPending can only
// advance to WatchReady, never back.

package concurrency

import (
	"context"
	"sync"
)

// WatchState is the value carried by a Watch.
type WatchState int32

const (
	// WatchPending: the producer must wait.
	WatchPending WatchState = iota
	// WatchReady: the producer may proceed.
	WatchReady
	// WatchClosed: the consumer is gone. Terminal.
	WatchClosed
)

// String returns the state name.
func (s WatchState) String() string {
	switch s {
	case WatchPending:
		return "pending"
	case WatchReady:
		return "ready"
	case WatchClosed:
		return "closed"
	default:
		return "invalid"
	}
}

type watchShared struct {
	mu      sync.Mutex
	state   WatchState
	changed chan struct{}
}

// set applies the transition rules: closed is sticky and ready
// never falls back to pending.
func (w *watchShared) set(s WatchState) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == WatchClosed || s == w.state {
		return
	}
	if w.state == WatchReady && s == WatchPending {
		return
	}
	w.state = s
	close(w.changed)
	w.changed = make(chan struct{})
}

func (w *watchShared) snapshot() (WatchState, <-chan struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state, w.changed
}

// WatchSender is held by the consumer side of a body channel.
type WatchSender struct {
	shared *watchShared
}

// WatchReceiver is held by the producer side.
type WatchReceiver struct {
	shared *watchShared
}

// NewWatch creates a watch pair starting in the given state.
func NewWatch(initial WatchState) (*WatchSender, *WatchReceiver) {
	shared := &watchShared{
		state:   initial,
		changed: make(chan struct{}),
	}
	return &WatchSender{shared: shared}, &WatchReceiver{shared: shared}
}

// Set publishes a new state, waking any waiting receiver.
func (tx *WatchSender) Set(s WatchState) { tx.shared.set(s) }

// Close marks the consumer as gone. Idempotent.
func (tx *WatchSender) Close() { tx.shared.set(WatchClosed) }

// State returns the current value without waiting.
func (rx *WatchReceiver) State() WatchState {
	s, _ := rx.shared.snapshot()
	return s
}

// Wait blocks until the state leaves WatchPending, then returns it.
func (rx *WatchReceiver) Wait(ctx context.Context) (WatchState, error) {
	for {
		s, ch := rx.shared.snapshot()
		if s != WatchPending {
			return s, nil
		}
		select {
		case <-ctx.Done():
			return s, ctx.Err()
		case <-ch:
		}
	}
}
