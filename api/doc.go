// Package api
// Author: momentics <momentics@gmail.com>
//
// Capability contracts and shared value types for hioload-body.
// The body core consumes a protocol receive stream, its flow-control
// handle and a keepalive recorder through the interfaces defined here,
// and exposes errors and size hints through the same package.
package api
