package sink

import (
	"errors"

	"github.com/reoring/maxslog/document"
)

// Buffered forwards every n-th snapshot to the next sink. The first snapshot
// is always written immediately so that activation still proves the
// destination is writable. Flush and Close push the latest held snapshot.
type Buffered struct {
	next    Sink
	every   int
	count   int
	wrote   bool
	pending *document.KernelNotifications
}

// NewBuffered wraps next. Values of every below 1 behave like 1.
func NewBuffered(next Sink, every int) *Buffered {
	if every < 1 {
		every = 1
	}
	return &Buffered{next: next, every: every}
}

func (b *Buffered) Write(doc *document.KernelNotifications) error {
	b.count++
	if !b.wrote || b.count >= b.every {
		return b.forward(doc)
	}
	b.pending = doc
	return nil
}

// Pending reports whether a snapshot is held back.
func (b *Buffered) Pending() bool { return b.pending != nil }

func (b *Buffered) Flush() error {
	if b.pending == nil {
		return nil
	}
	return b.forward(b.pending)
}

func (b *Buffered) Close() error {
	return errors.Join(b.Flush(), b.next.Close())
}

func (b *Buffered) forward(doc *document.KernelNotifications) error {
	b.pending = nil
	b.count = 0
	if err := b.next.Write(doc); err != nil {
		return err
	}
	b.wrote = true
	return nil
}
