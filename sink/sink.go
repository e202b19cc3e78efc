// Package sink holds the destinations a notification log is mirrored to.
//
// Every Write receives the complete current document, never a delta. A sink
// that writes through on each call keeps the destination a complete, valid
// snapshot after every successful write; Buffered trades that for fewer writes.
package sink

import (
	"errors"

	"github.com/reoring/maxslog/document"
)

// Sink receives full document snapshots.
type Sink interface {
	Write(doc *document.KernelNotifications) error
	Close() error
}

// Flusher is implemented by sinks that may hold back a snapshot.
type Flusher interface {
	Flush() error
}

// ErrClosed is returned by writes to a closed sink.
var ErrClosed = errors.New("sink: closed")

// Discard accepts and drops every snapshot.
var Discard Sink = discard{}

type discard struct{}

func (discard) Write(*document.KernelNotifications) error { return nil }
func (discard) Close() error                               { return nil }
