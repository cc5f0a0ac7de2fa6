// Package api
// Author: momentics@gmail.com
//
// Generic result propagation. The body's data queue carries
// Result[[]byte] items so an error takes the same ordered path
// as a data chunk.

package api

// Result wraps any payload or error.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok wraps a successful payload.
func Ok[T any](v T) Result[T] { return Result[T]{Value: v} }

// Fail wraps an error into the item stream.
func Fail[T any](err error) Result[T] { return Result[T]{Err: err} }
