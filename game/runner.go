package game

import (
	"strings"

	"go.uber.org/zap"

	"github.com/BluAtlas/Picross-W-WASM/bridge"
	"github.com/BluAtlas/Picross-W-WASM/channel"
	"github.com/BluAtlas/Picross-W-WASM/errors"
	"github.com/BluAtlas/Picross-W-WASM/event"
	"github.com/BluAtlas/Picross-W-WASM/puzzle"
)

// Runner drives one simulation tick: the bridge scheduler runs first, then
// the board systems react to the resulting state, forwarded commands, and
// viewport changes. Front ends call Tick from their frame callback and draw
// from Board and State afterwards.
type Runner struct {
	sched   *bridge.Scheduler
	session puzzle.Session
	outbox  *channel.Queue[Message]
	log     *zap.Logger

	board    *Board
	viewport bridge.Viewport
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRunnerLogger sets the diagnostic logger. Defaults to a nop logger.
func WithRunnerLogger(l *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// NewRunner wires the scheduler, session, and outbound queue into a tick
// loop.
func NewRunner(sched *bridge.Scheduler, session puzzle.Session, outbox *channel.Queue[Message], opts ...RunnerOption) *Runner {
	r := &Runner{
		sched:   sched,
		session: session,
		outbox:  outbox,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Tick advances the simulation by one frame and returns the bridge state
// systems should render against.
func (r *Runner) Tick() bridge.State {
	res := r.sched.Tick()

	if res.HandedOff {
		r.viewport = res.Viewport
		r.board = NewBoard(r.session, r.sched.Snapshot(), res.Viewport, r.outbox, r.log)
	}

	if r.board != nil && res.Viewport != r.viewport {
		r.viewport = res.Viewport
		r.board.Resize(res.Viewport)
	}

	for _, cmd := range res.Commands {
		r.handleCommand(cmd)
	}

	return res.State
}

// Board returns the active input system, or nil before bootstrap completes.
func (r *Runner) Board() *Board {
	return r.board
}

// State returns the current bridge state.
func (r *Runner) State() bridge.State {
	return r.sched.State()
}

// FailureReason returns the bootstrap failure reason, if any.
func (r *Runner) FailureReason() string {
	return r.sched.FailureReason()
}

// Solved reports whether the session considers the puzzle complete.
func (r *Runner) Solved() bool {
	return r.session.Solved()
}

func (r *Runner) handleCommand(cmd event.ExternalCommand) {
	switch cmd.Verb {
	case VerbJoin:
		r.handleJoin(cmd.Data)
	case VerbUpdate:
		r.handleUpdate(cmd.Data)
	default:
		r.log.Warn("ignoring host command",
			zap.Error(errors.InvalidCommand(cmd.Verb)))
	}
}

// handleJoin installs a new board mid-session: clue text and an optional
// flat cell string separated by the split marker. This is the host-driven
// path for switching puzzles after bootstrap; the bootstrap handoff itself
// stays exactly-once.
func (r *Runner) handleJoin(data string) {
	clues, cells, _ := strings.Cut(data, SplitMarker)

	snap, err := puzzle.Parse([]byte(clues))
	if err != nil {
		r.log.Warn("join carried an unusable board", zap.Error(err))
		return
	}
	if err := r.session.Init(snap); err != nil {
		r.log.Warn("session rejected joined board", zap.Error(err))
		return
	}

	r.board = NewBoard(r.session, snap, r.viewport, r.outbox, r.log)
	if cells != "" {
		r.applyCells(snap, cells)
	}
	r.log.Info("joined board",
		zap.Int("width", snap.Width),
		zap.Int("height", snap.Height))
}

// handleUpdate applies a bulk board update: a row-major glyph string
// covering the whole grid. Updates are host-originated, so no cell-change
// messages are echoed back.
func (r *Runner) handleUpdate(data string) {
	if r.board == nil {
		r.log.Warn("board update before any board was installed")
		return
	}
	r.applyCells(r.board.Snapshot(), data)
}

func (r *Runner) applyCells(snap puzzle.Snapshot, cells string) {
	if len(cells) != snap.Width*snap.Height {
		r.log.Warn("board update size mismatch",
			zap.Int("got", len(cells)),
			zap.Int("want", snap.Width*snap.Height))
		return
	}

	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			c, ok := puzzle.CellFromGlyph(cells[snap.Pos(x, y)])
			if !ok {
				r.log.Warn("board update carried an unknown glyph",
					zap.Int("pos", snap.Pos(x, y)))
				continue
			}
			if err := r.session.SetCell(x, y, c); err != nil {
				r.log.Warn("board update cell rejected", zap.Error(err))
			}
		}
	}
}
