// Package channel provides the bounded message channel between the host's
// event-driven context and the tick-driven simulation.
//
// The queue is mutex-guarded rather than lock-free: producers and the
// consumer share one underlying thread in the browser (host completions run
// between ticks, never inside one), so the lock is uncontended in practice
// and exists to keep the structure correct under any scheduling.
//
// The contract the bridge relies on:
//
//   - FIFO: Drain returns items in exactly the order they were sent.
//   - Non-blocking: Send fails fast with a channel_full error at capacity.
//   - Snapshot-per-tick: everything a Drain returns was enqueued before it
//     ran; later sends are visible only to the next drain.
package channel
