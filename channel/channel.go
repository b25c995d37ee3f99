package channel

import (
	"sync"

	"github.com/BluAtlas/Picross-W-WASM/errors"
)

// DefaultCapacity bounds queues constructed without an explicit capacity.
const DefaultCapacity = 64

// Queue is a bounded FIFO shared between the host's callback context and the
// simulation tick loop. Producers call Send from host completions at any
// time; the consumer calls Drain once per tick. Both are O(1) amortized and
// never block: when the queue is at capacity, Send fails fast instead of
// stalling the host's event loop.
type Queue[T any] struct {
	mu   sync.Mutex
	buf  []T
	head int
	n    int
}

// New creates a queue holding at most capacity items. Non-positive
// capacities fall back to DefaultCapacity.
func New[T any](capacity int) *Queue[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue[T]{
		buf: make([]T, capacity),
	}
}

// Send enqueues v. It returns a channel_full error and leaves the queue
// unchanged when occupancy equals capacity; the producer decides whether to
// retry, coalesce, or drop.
func (q *Queue[T]) Send(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.n == len(q.buf) {
		return errors.ChannelFull(len(q.buf))
	}

	q.buf[(q.head+q.n)%len(q.buf)] = v
	q.n++
	return nil
}

// Drain removes and returns all currently queued items in enqueue order,
// leaving the queue empty. Items enqueued concurrently with a Drain call are
// observed either entirely by this drain or entirely by the next one, never
// split mid-item. Returns nil when the queue is empty.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.n == 0 {
		return nil
	}

	out := make([]T, q.n)
	var zero T
	for i := 0; i < q.n; i++ {
		j := (q.head + i) % len(q.buf)
		out[i] = q.buf[j]
		q.buf[j] = zero
	}
	q.head = 0
	q.n = 0
	return out
}

// Pop removes and returns the oldest item, reporting whether one existed.
// Used on the outbound queue where the host polls one message at a time;
// the inbound bridge channel is consumed exclusively through Drain.
func (q *Queue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if q.n == 0 {
		return zero, false
	}

	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return v, true
}

// Len returns the current occupancy.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.n
}

// Cap returns the fixed capacity.
func (q *Queue[T]) Cap() int {
	return len(q.buf)
}
