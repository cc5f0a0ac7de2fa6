// Package concurrency
// Author: momentics <momentics@gmail.com>
//
// Channel primitives composed by the body core: a tri-state demand
// signal (Watch), a one-shot value slot (OneShot) and a bounded FIFO
// with a capacity-bypassing injection path (SendQueue).
// Each primitive is built for exactly one producer handle and one
// consumer handle; no further locking is required on top of them.
package concurrency
