package bridge

import (
	"go.uber.org/zap"

	"github.com/BluAtlas/Picross-W-WASM/channel"
	"github.com/BluAtlas/Picross-W-WASM/errors"
	"github.com/BluAtlas/Picross-W-WASM/event"
	"github.com/BluAtlas/Picross-W-WASM/puzzle"
)

// Scheduler folds host events into the bootstrap state machine once per
// simulation tick. It is the only consumer of the inbound message channel
// and the only writer of the bridge state; everything else reads the state
// through the Result returned by Tick.
type Scheduler struct {
	queue   *channel.Queue[event.Event]
	session puzzle.Session
	log     *zap.Logger

	state    State
	reason   string
	surface  any
	viewport Viewport

	snapshot  puzzle.Snapshot
	handedOff bool
	dropped   uint64
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the diagnostic logger. Defaults to a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a scheduler draining q and handing the puzzle snapshot to
// session once bootstrap completes.
func New(q *channel.Queue[event.Event], session puzzle.Session, opts ...Option) *Scheduler {
	s := &Scheduler{
		queue:   q,
		session: session,
		log:     zap.NewNop(),
		state:   StateUninitialized,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is the per-tick view of the bridge handed to the simulation's
// update systems. Commands holds the external commands forwarded this tick,
// in arrival order; it is empty unless State is ready.
type Result struct {
	State     State
	Viewport  Viewport
	Commands  []event.ExternalCommand
	HandedOff bool
}

// Begin records that the host adapter has started watching for the canvas.
// Optional: CanvasReady is accepted from the uninitialized state too, so
// hosts that attach the canvas synchronously never observe awaiting_canvas.
func (s *Scheduler) Begin() {
	if s.state == StateUninitialized {
		s.state = StateAwaitingCanvas
	}
}

// Tick drains the channel and applies every event in enqueue order, then
// performs the one-time session handoff if bootstrap just completed. All
// events visible to this tick were enqueued before the drain; later sends
// wait for the next tick.
func (s *Scheduler) Tick() Result {
	events := s.queue.Drain()

	var commands []event.ExternalCommand
	for _, e := range events {
		if cmd, forwarded := s.apply(e); forwarded {
			commands = append(commands, cmd)
		}
	}

	handedOff := false
	if s.state == StateReady && !s.handedOff {
		s.handedOff = true
		if err := s.session.Init(s.snapshot); err != nil {
			s.log.Error("puzzle session rejected snapshot", zap.Error(err))
			s.fail(err.Error())
		} else {
			handedOff = true
			s.log.Info("puzzle session initialized",
				zap.Int("width", s.snapshot.Width),
				zap.Int("height", s.snapshot.Height))
		}
	}

	return Result{
		State:     s.state,
		Viewport:  s.viewport,
		Commands:  commands,
		HandedOff: handedOff,
	}
}

// apply folds one event into the state machine. Unlisted state/event pairs
// are dropped with a diagnostic, never faulted.
func (s *Scheduler) apply(e event.Event) (event.ExternalCommand, bool) {
	switch ev := e.(type) {
	case event.CanvasReady:
		if s.state == StateUninitialized || s.state == StateAwaitingCanvas {
			s.surface = ev.Handle
			s.viewport = Viewport{Width: ev.Width, Height: ev.Height}
			s.state = StateAwaitingPuzzleData
			s.log.Info("canvas attached",
				zap.Int("width", ev.Width),
				zap.Int("height", ev.Height))
			return event.ExternalCommand{}, false
		}

	case event.PuzzleDataLoaded:
		if s.state == StateAwaitingPuzzleData {
			snap, err := puzzle.Parse(ev.Data)
			if err != nil {
				s.log.Error("puzzle data unusable", zap.Error(err))
				s.fail(err.Error())
				return event.ExternalCommand{}, false
			}
			s.snapshot = snap
			s.state = StateReady
			return event.ExternalCommand{}, false
		}

	case event.LoadFailed:
		if !s.state.Terminal() && s.state != StateReady {
			s.fail(ev.Reason)
			return event.ExternalCommand{}, false
		}

	case event.HostResize:
		if s.state == StateReady {
			s.viewport = Viewport{Width: ev.Width, Height: ev.Height}
			return event.ExternalCommand{}, false
		}

	case event.ExternalCommand:
		if s.state == StateReady {
			return ev, true
		}
	}

	s.drop(e)
	return event.ExternalCommand{}, false
}

func (s *Scheduler) fail(reason string) {
	if s.state.Terminal() {
		return
	}
	s.state = StateFailed
	s.reason = reason
	s.log.Warn("bootstrap failed", zap.String("reason", reason))
}

func (s *Scheduler) drop(e event.Event) {
	s.dropped++
	err := errors.OutOfOrder(s.state.String(), string(e.Kind()))
	s.log.Warn("dropping host event", zap.Error(err))
}

// State returns the current bridge state.
func (s *Scheduler) State() State {
	return s.state
}

// Viewport returns the last known render surface size.
func (s *Scheduler) Viewport() Viewport {
	return s.viewport
}

// Surface returns the opaque render surface handle delivered by CanvasReady,
// or nil before canvas attach.
func (s *Scheduler) Surface() any {
	return s.surface
}

// Snapshot returns the parsed puzzle snapshot. Valid once State is ready.
func (s *Scheduler) Snapshot() puzzle.Snapshot {
	return s.snapshot
}

// FailureReason returns the reason recorded when the bridge failed.
func (s *Scheduler) FailureReason() string {
	return s.reason
}

// Dropped returns how many events were discarded as out-of-order or
// unrecognized. Diagnostic only.
func (s *Scheduler) Dropped() uint64 {
	return s.dropped
}
