package body

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-body/api"
)

func TestSenderBuffersOne(t *testing.T) {
	tx, _ := Channel(LengthChunked(), DemandEager)

	require.NoError(t, tx.TrySendData([]byte("chunk 1")))

	// Slot occupied: the second chunk is rejected, not consumed.
	err := tx.TrySendData([]byte("chunk 2"))
	assert.ErrorIs(t, err, api.ErrBufferFull)
}

func TestSenderAbortImmediately(t *testing.T) {
	tx, rx := Channel(LengthChunked(), DemandEager)
	tx.Abort()

	_, err := rx.ReadData(testCtx(t))
	require.Error(t, err)
	assert.True(t, api.IsBodyWriteAborted(err), "unexpected error: %v", err)
}

func TestSenderAbortWhenBufferIsFull(t *testing.T) {
	ctx := testCtx(t)
	tx, rx := Channel(LengthChunked(), DemandEager)

	require.NoError(t, tx.TrySendData([]byte("chunk 1")))
	// Buffer is full, but abort must still get through.
	tx.Abort()

	chunk, err := rx.ReadData(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("chunk 1"), chunk)

	_, err = rx.ReadData(ctx)
	assert.True(t, api.IsBodyWriteAborted(err), "unexpected error: %v", err)
}

func TestSenderUnusableAfterAbort(t *testing.T) {
	tx, _ := Channel(LengthChunked(), DemandEager)
	tx.Abort()

	err := tx.TrySendData([]byte("late"))
	assert.True(t, api.IsClosed(err), "unexpected error: %v", err)
	err = tx.SendData(testCtx(t), []byte("late"))
	assert.True(t, api.IsClosed(err), "unexpected error: %v", err)
}

func TestSenderReadyEager(t *testing.T) {
	tx, _ := Channel(LengthChunked(), DemandEager)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, tx.Ready(ctx), "eager sender is ready immediately")
}

func TestSenderReadyLazyWaitsForFirstRead(t *testing.T) {
	ctx := testCtx(t)
	tx, rx := Channel(LengthChunked(), DemandLazy)

	ready := make(chan error, 1)
	go func() {
		ready <- tx.Ready(ctx)
	}()

	select {
	case err := <-ready:
		t.Fatalf("sender ready before the consumer read: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	// The consumer's first read shows demand and wakes the sender.
	read := make(chan struct{})
	go func() {
		defer close(read)
		if _, err := rx.ReadData(ctx); err != io.EOF {
			t.Errorf("ReadData: %v", err)
		}
	}()

	select {
	case err := <-ready:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("sender not woken by consumer read")
	}

	require.NoError(t, tx.Close())
	<-read
}

func TestSenderNoticesBodyClosure(t *testing.T) {
	ctx := testCtx(t)
	tx, rx := Channel(LengthChunked(), DemandLazy)

	ready := make(chan error, 1)
	go func() {
		ready <- tx.Ready(ctx)
	}()

	select {
	case err := <-ready:
		t.Fatalf("sender ready before the consumer read: %v", err)
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, rx.Close())

	select {
	case err := <-ready:
		assert.True(t, api.IsClosed(err), "unexpected error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("sender not woken by body closure")
	}
}

func TestSenderClosedWhileBlockedOnCapacity(t *testing.T) {
	ctx := testCtx(t)
	tx, rx := Channel(LengthChunked(), DemandEager)

	require.NoError(t, tx.TrySendData([]byte("fill")))

	ready := make(chan error, 1)
	go func() {
		ready <- tx.Ready(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, rx.Close())

	select {
	case err := <-ready:
		assert.True(t, api.IsClosed(err), "unexpected error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("sender not woken while blocked on capacity")
	}
}

func TestSenderSendAfterClose(t *testing.T) {
	tx, _ := Channel(LengthChunked(), DemandEager)
	require.NoError(t, tx.Close())

	err := tx.TrySendData([]byte("late"))
	assert.True(t, api.IsClosed(err), "unexpected error: %v", err)
	err = tx.SendData(testCtx(t), []byte("late"))
	assert.True(t, api.IsClosed(err), "unexpected error: %v", err)
}

func TestSenderTrailersConsumedOnce(t *testing.T) {
	tx, _ := Channel(LengthChunked(), DemandEager)

	require.NoError(t, tx.SendTrailers(http.Header{"X-Sum": []string{"abc"}}))

	err := tx.SendTrailers(http.Header{"X-Sum": []string{"def"}})
	assert.True(t, api.IsClosed(err), "second SendTrailers must fail closed")
}

func TestSenderTrailersAfterBodyClose(t *testing.T) {
	tx, rx := Channel(LengthChunked(), DemandEager)
	require.NoError(t, rx.Close())

	err := tx.SendTrailers(http.Header{"X-Sum": []string{"abc"}})
	assert.True(t, api.IsClosed(err), "unexpected error: %v", err)
}

func TestSenderSendError(t *testing.T) {
	ctx := testCtx(t)
	tx, rx := Channel(LengthChunked(), DemandEager)

	cause := errors.New("connection reset")
	tx.SendError(api.NewTransport(cause))
	require.NoError(t, tx.Close())

	_, err := rx.ReadData(ctx)
	require.Error(t, err)
	assert.True(t, api.IsTransport(err))
	assert.ErrorIs(t, err, cause)

	_, err = rx.ReadData(ctx)
	assert.ErrorIs(t, err, io.EOF)
}
