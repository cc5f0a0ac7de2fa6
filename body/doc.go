// Package body
// Author: momentics <momentics@gmail.com>
//
// Transport-agnostic streaming message body for HTTP implementations.
// A Body is the consumer half of a payload stream: data chunks
// followed by optional trailers. It is backed by one of a fixed set
// of variants (empty, channel-fed, protocol receive stream) behind a
// single uniform contract, with backpressure between the paired
// Sender and the Body and bounded buffering throughout.
package body
