// Package api
// Author: momentics
//
// Keepalive accounting capability. The protocol layer's ping/idle
// timers are fed through this recorder as the body observes frames.

package api

// Recorder receives activity events from a protocol-backed body.
// RecordData fires per data frame with the byte count; RecordNonData
// fires for trailers and other non-data frames so idle timers reset
// on those too.
type Recorder interface {
	RecordData(n int)
	RecordNonData()
}
