package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/BluAtlas/Picross-W-WASM/bridge"
	"github.com/BluAtlas/Picross-W-WASM/channel"
	"github.com/BluAtlas/Picross-W-WASM/puzzle"
)

// Action is what an input applies to a tile.
type Action uint8

const (
	ActionFill Action = iota
	ActionCross
	ActionEmpty
)

// Cell returns the cell state the action writes.
func (a Action) Cell() puzzle.Cell {
	switch a {
	case ActionFill:
		return puzzle.CellFilled
	case ActionCross:
		return puzzle.CellCrossed
	default:
		return puzzle.CellEmpty
	}
}

// Button identifies the pressed pointer button.
type Button uint8

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Mark is a player annotation on a clue tile.
type Mark uint8

const (
	MarkNone Mark = iota
	MarkFill
	MarkCross
)

// Board is the simulation-side input system for one puzzle: it maps pointer
// input to cell updates on the session, tracks clue marks and the touch
// control action, and reports player-originated changes to the outbound
// queue.
type Board struct {
	session puzzle.Session
	snap    puzzle.Snapshot
	layout  Layout
	outbox  *channel.Queue[Message]
	log     *zap.Logger

	control Action // action bound to the primary button
	current Action // action carried through an in-progress drag
	marks   map[[2]int]Mark
}

// NewBoard creates the input system for an installed puzzle.
func NewBoard(session puzzle.Session, snap puzzle.Snapshot, vp bridge.Viewport, outbox *channel.Queue[Message], log *zap.Logger) *Board {
	if log == nil {
		log = zap.NewNop()
	}
	return &Board{
		session: session,
		snap:    snap,
		layout:  ComputeLayout(vp, snap),
		outbox:  outbox,
		log:     log,
		control: ActionFill,
		current: ActionFill,
		marks:   make(map[[2]int]Mark),
	}
}

// Resize recomputes the layout for new viewport dimensions.
func (b *Board) Resize(vp bridge.Viewport) {
	b.layout = ComputeLayout(vp, b.snap)
}

// Layout returns the current board placement.
func (b *Board) Layout() Layout {
	return b.layout
}

// Snapshot returns the puzzle definition the board was built for.
func (b *Board) Snapshot() puzzle.Snapshot {
	return b.snap
}

// ControlAction returns the action currently bound to the primary button.
func (b *Board) ControlAction() Action {
	return b.control
}

// MarkAt returns the player mark on a clue tile, keyed by board coordinates.
func (b *Board) MarkAt(x, y int) Mark {
	return b.marks[[2]int{x, y}]
}

// PointerInput feeds one pointer sample at host pixel coordinates.
// justPressed marks the initial press, which resolves the action for the
// drag that follows; further samples with the button held paint with that
// resolved action. The control tile reacts only to the initial press.
func (b *Board) PointerInput(px, py float64, btn Button, justPressed bool) {
	x, y, ok := b.layout.TileAt(px, py)
	if !ok {
		return
	}

	if justPressed {
		b.current = b.Resolve(x, y, btn)
		if b.layout.RegionAt(x, y) == RegionControl {
			b.Apply(x, y, b.current, true)
			return
		}
	}
	if b.layout.RegionAt(x, y) == RegionControl {
		return
	}
	b.Apply(x, y, b.current, true)
}

// Resolve maps a just-pressed button to the action to apply at a tile.
// Re-applying the action a tile already shows resolves to empty, so a press
// on a filled cell with the fill action clears it.
func (b *Board) Resolve(x, y int, btn Button) Action {
	action := b.control
	switch btn {
	case ButtonSecondary:
		action = ActionCross
	case ButtonMiddle:
		action = ActionEmpty
	}

	switch b.layout.RegionAt(x, y) {
	case RegionGrid:
		gx, gy := b.layout.GridCell(x, y)
		current, err := b.session.CellAt(gx, gy)
		if err != nil {
			return action
		}
		if action != ActionEmpty && current == action.Cell() {
			return ActionEmpty
		}
	case RegionClue:
		mark := b.MarkAt(x, y)
		if (action == ActionFill && mark == MarkFill) ||
			(action == ActionCross && mark == MarkCross) {
			return ActionEmpty
		}
	}
	return action
}

// Apply performs one action at board coordinates. fromPlayer gates the
// outbound cell-change message: host-originated updates are applied
// silently.
func (b *Board) Apply(x, y int, a Action, fromPlayer bool) {
	switch b.layout.RegionAt(x, y) {
	case RegionControl:
		if !fromPlayer {
			return
		}
		// the control tile flips the touch action between fill and cross
		if b.control == ActionFill {
			b.control = ActionCross
		} else {
			b.control = ActionFill
		}

	case RegionClue:
		key := [2]int{x, y}
		switch a {
		case ActionFill:
			b.marks[key] = MarkFill
		case ActionCross:
			b.marks[key] = MarkCross
		default:
			delete(b.marks, key)
		}

	case RegionGrid:
		gx, gy := b.layout.GridCell(x, y)
		current, err := b.session.CellAt(gx, gy)
		if err != nil {
			b.log.Warn("cell query failed", zap.Error(err))
			return
		}
		next := a.Cell()
		if current == next {
			return
		}
		if err := b.session.SetCell(gx, gy, next); err != nil {
			b.log.Warn("cell update failed", zap.Error(err))
			return
		}
		if fromPlayer {
			b.reportCellChange(gx, gy, next)
		}
	}
}

// reportCellChange queues an outbound c message carrying the linear cell
// position and the new cell glyph. A full outbox drops the message; the
// host-side protocol tolerates lost updates and resyncs on the next board
// update.
func (b *Board) reportCellChange(gx, gy int, c puzzle.Cell) {
	if b.outbox == nil {
		return
	}
	msg := Message{
		Verb: VerbCellChange,
		Data: fmt.Sprintf("%d,%c", b.snap.Pos(gx, gy), c.Glyph()),
	}
	if err := b.outbox.Send(msg); err != nil {
		b.log.Warn("outbound queue full, dropping cell change",
			zap.Int("pos", b.snap.Pos(gx, gy)))
	}
}
