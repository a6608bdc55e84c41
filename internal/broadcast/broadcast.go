// Package broadcast implements the bounded, lossy fan-out channel between
// the capture goroutine and the delivery sessions: one writer, any number of
// readers, and the writer never waits on a reader.
//
// Actions live in a fixed-depth ring addressed by a monotonic sequence
// number. Each subscription keeps its own read cursor; when the ring laps a
// slow cursor the subscriber observes how many actions it missed and resumes
// from the oldest still retained one. Fresh beats complete for live input.
package broadcast

import (
	"context"
	"errors"
	"sync"

	"inputcast/internal/types"
)

// ErrClosed is returned by Next once the bus is closed and drained, and by
// Next on a closed subscription.
var ErrClosed = errors.New("broadcast: closed")

// DefaultDepth is the retained history size. Sized for a short burst; beyond
// it, lagging subscribers skip ahead rather than slow the producer.
const DefaultDepth = 1024

// Bus is the single-producer broadcast channel.
type Bus struct {
	mu     sync.Mutex
	ring   []types.Action
	head   uint64 // sequence number of the next publish
	closed bool
	subs   map[*Subscription]struct{}
}

// New creates a Bus retaining up to depth actions. depth <= 0 selects
// DefaultDepth.
func New(depth int) *Bus {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Bus{
		ring: make([]types.Action, depth),
		subs: make(map[*Subscription]struct{}),
	}
}

// Publish appends one action to the stream. It never blocks: the ring slot is
// overwritten regardless of reader progress and waiting readers get a
// non-blocking wake. Publishing with no subscribers, or on a closed bus, is a
// no-op.
func (b *Bus) Publish(a types.Action) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.ring[b.head%uint64(len(b.ring))] = a
	b.head++
	for s := range b.subs {
		select {
		case s.wake <- struct{}{}:
		default:
		}
	}
}

// Subscribe registers a new reader positioned at the current head, so it
// observes only actions published after this call.
func (b *Bus) Subscribe() *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := &Subscription{
		bus:  b,
		next: b.head,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	if !b.closed {
		b.subs[s] = struct{}{}
	}
	return s
}

// Close shuts the bus down. Subscribers drain whatever is still retained and
// then receive ErrClosed. Close is idempotent.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for s := range b.subs {
		select {
		case s.wake <- struct{}{}:
		default:
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (b *Bus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Subscription is one reader's cursor into the bus. Not safe for concurrent
// use by multiple goroutines; each delivery session owns exactly one.
type Subscription struct {
	bus  *Bus
	next uint64
	wake chan struct{}
	done chan struct{}
	once sync.Once
}

// Next returns the next action in publish order. If the ring advanced past
// this reader's cursor, missed reports how many actions were skipped and the
// returned action is the oldest still retained. Next blocks until an action
// is available, the context is done, or the bus or subscription is closed.
func (s *Subscription) Next(ctx context.Context) (a types.Action, missed uint64, err error) {
	b := s.bus
	for {
		b.mu.Lock()
		if s.next < b.head {
			depth := uint64(len(b.ring))
			if b.head-s.next > depth {
				oldest := b.head - depth
				missed = oldest - s.next
				s.next = oldest
			}
			a = b.ring[s.next%depth]
			s.next++
			b.mu.Unlock()
			return a, missed, nil
		}
		closed := b.closed
		b.mu.Unlock()
		if closed {
			return types.Action{}, 0, ErrClosed
		}

		select {
		case <-s.wake:
		case <-s.done:
			return types.Action{}, 0, ErrClosed
		case <-ctx.Done():
			return types.Action{}, 0, ctx.Err()
		}
	}
}

// Close drops the subscription. Idempotent; a blocked Next returns ErrClosed.
func (s *Subscription) Close() {
	s.once.Do(func() {
		close(s.done)
		s.bus.mu.Lock()
		delete(s.bus.subs, s)
		s.bus.mu.Unlock()
	})
}
