// Package supplier decouples a frame-capture loop from the conversion
// loop with a single-slot, latest-frame-only mailbox.
//
// Drop frames, never queue: for live rendering a stale frame is worth
// less than no frame, so Publish overwrites an unconsumed frame instead
// of queuing behind it, and the consumer always receives the newest
// frame available. Publish never blocks; Next blocks until a frame
// arrives, the context is done, or the supplier is closed.
package supplier

import (
	"context"
	"sync"

	"github.com/wbrown/vid2ascii"
)

// Stats is a snapshot of supplier counters.
type Stats struct {
	// Published counts all frames handed to Publish.
	Published uint64

	// Dropped counts frames overwritten before the consumer took them.
	// A persistently high drop rate means conversion is slower than
	// capture; the stream stays live regardless.
	Dropped uint64

	// Consumed counts frames returned by Next.
	Consumed uint64
}

// Supplier is the mailbox between one producer and one consumer.
// All methods are safe for concurrent use.
type Supplier struct {
	mu     sync.Mutex
	cond   *sync.Cond
	frame  *vid2ascii.FrameBuffer
	closed bool
	stats  Stats
}

// New creates an empty supplier.
func New() *Supplier {
	s := &Supplier{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Publish offers a frame to the consumer, replacing any unconsumed
// one. Never blocks. The frame must not be mutated after publishing;
// it is shared by reference. Publishing to a closed supplier is a
// no-op.
func (s *Supplier) Publish(frame *vid2ascii.FrameBuffer) {
	if frame == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.stats.Published++
	if s.frame != nil {
		s.stats.Dropped++
	}
	s.frame = frame
	s.cond.Signal()
}

// Next blocks until a frame is available and returns it, emptying the
// slot. It returns (nil, false) once the context is done or the
// supplier is closed and drained.
func (s *Supplier) Next(ctx context.Context) (*vid2ascii.FrameBuffer, bool) {
	stop := context.AfterFunc(ctx, func() {
		s.mu.Lock()
		s.cond.Broadcast()
		s.mu.Unlock()
	})
	defer stop()

	s.mu.Lock()
	defer s.mu.Unlock()

	for s.frame == nil && !s.closed && ctx.Err() == nil {
		s.cond.Wait()
	}
	if s.frame == nil {
		return nil, false
	}

	frame := s.frame
	s.frame = nil
	s.stats.Consumed++
	return frame, true
}

// Close wakes any blocked consumer and turns further Publish calls
// into no-ops. A frame already in the slot is still delivered.
// Idempotent.
func (s *Supplier) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.cond.Broadcast()
}

// Stats returns a snapshot of the supplier counters.
func (s *Supplier) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
