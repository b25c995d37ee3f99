package game

import (
	"testing"

	"github.com/BluAtlas/Picross-W-WASM/bridge"
	"github.com/BluAtlas/Picross-W-WASM/channel"
	"github.com/BluAtlas/Picross-W-WASM/puzzle"
)

// 2x2 grid, top row filled: one clue column, one clue row, 3x3 extent.
func smallSnapshot() puzzle.Snapshot {
	return puzzle.Snapshot{
		Width:       2,
		Height:      2,
		RowClues:    [][]int{{2}, nil},
		ColumnClues: [][]int{{1}, {1}},
	}
}

func newTestBoard(t *testing.T) (*Board, *puzzle.Grid, *channel.Queue[Message]) {
	t.Helper()
	grid := puzzle.NewGrid()
	if err := grid.Init(smallSnapshot()); err != nil {
		t.Fatalf("grid init failed: %v", err)
	}
	outbox := channel.New[Message](8)
	b := NewBoard(grid, grid.Snapshot(), bridge.Viewport{Width: 300, Height: 300}, outbox, nil)
	return b, grid, outbox
}

func TestBoard_ApplyFillReportsChange(t *testing.T) {
	b, grid, outbox := newTestBoard(t)

	// board (1,1) is grid (0,0)
	b.Apply(1, 1, ActionFill, true)

	c, err := grid.CellAt(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if c != puzzle.CellFilled {
		t.Fatalf("cell = %v, want filled", c)
	}

	msgs := outbox.Drain()
	if len(msgs) != 1 {
		t.Fatalf("outbox has %d messages, want 1", len(msgs))
	}
	if msgs[0].Verb != VerbCellChange || msgs[0].Data != "0,1" {
		t.Errorf("message = %+v, want c/0,1", msgs[0])
	}
}

func TestBoard_ApplyNoChangeNoEcho(t *testing.T) {
	b, _, outbox := newTestBoard(t)

	b.Apply(1, 1, ActionFill, true)
	outbox.Drain()

	// same action again: cell already matches, nothing changes
	b.Apply(1, 1, ActionFill, true)
	if msgs := outbox.Drain(); len(msgs) != 0 {
		t.Errorf("unchanged cell produced %d messages", len(msgs))
	}
}

func TestBoard_HostUpdateSilent(t *testing.T) {
	b, grid, outbox := newTestBoard(t)

	b.Apply(2, 1, ActionCross, false)

	c, _ := grid.CellAt(1, 0)
	if c != puzzle.CellCrossed {
		t.Fatalf("cell = %v, want crossed", c)
	}
	if msgs := outbox.Drain(); len(msgs) != 0 {
		t.Error("host-originated change must not echo a cell-change message")
	}
}

func TestBoard_ResolveToggleToEmpty(t *testing.T) {
	b, _, _ := newTestBoard(t)

	if got := b.Resolve(1, 1, ButtonPrimary); got != ActionFill {
		t.Fatalf("Resolve on empty cell = %v, want fill", got)
	}

	b.Apply(1, 1, ActionFill, true)
	if got := b.Resolve(1, 1, ButtonPrimary); got != ActionEmpty {
		t.Errorf("Resolve on matching cell = %v, want empty", got)
	}
	if got := b.Resolve(1, 1, ButtonSecondary); got != ActionCross {
		t.Errorf("Resolve secondary on filled cell = %v, want cross", got)
	}

	b.Apply(1, 1, ActionCross, true)
	if got := b.Resolve(1, 1, ButtonSecondary); got != ActionEmpty {
		t.Errorf("Resolve secondary on crossed cell = %v, want empty", got)
	}
}

func TestBoard_ClueMarks(t *testing.T) {
	b, _, _ := newTestBoard(t)

	// board (0,1) is in the row clue band
	b.Apply(0, 1, ActionFill, true)
	if b.MarkAt(0, 1) != MarkFill {
		t.Fatal("fill action should mark the clue")
	}

	if got := b.Resolve(0, 1, ButtonPrimary); got != ActionEmpty {
		t.Errorf("Resolve on matching mark = %v, want empty", got)
	}

	b.Apply(0, 1, ActionCross, true)
	if b.MarkAt(0, 1) != MarkCross {
		t.Error("cross action should re-mark the clue")
	}

	b.Apply(0, 1, ActionEmpty, true)
	if b.MarkAt(0, 1) != MarkNone {
		t.Error("empty action should clear the mark")
	}
}

func TestBoard_ControlToggle(t *testing.T) {
	b, _, _ := newTestBoard(t)

	if b.ControlAction() != ActionFill {
		t.Fatal("control action should start as fill")
	}

	b.Apply(0, 0, ActionFill, true)
	if b.ControlAction() != ActionCross {
		t.Error("control tile press should flip to cross")
	}
	b.Apply(0, 0, ActionFill, true)
	if b.ControlAction() != ActionFill {
		t.Error("second press should flip back to fill")
	}

	b.Apply(0, 0, ActionFill, false)
	if b.ControlAction() != ActionFill {
		t.Error("host-originated input must not touch the control action")
	}
}

func TestBoard_PointerDragPaints(t *testing.T) {
	b, grid, _ := newTestBoard(t)

	// press on grid (0,0), drag to grid (1,0); 100px tiles
	b.PointerInput(150, 150, ButtonPrimary, true)
	b.PointerInput(250, 150, ButtonPrimary, false)

	for x := 0; x < 2; x++ {
		c, _ := grid.CellAt(x, 0)
		if c != puzzle.CellFilled {
			t.Errorf("cell (%d,0) = %v, want filled after drag", x, c)
		}
	}
}

func TestBoard_PointerDragCarriesResolvedAction(t *testing.T) {
	b, grid, _ := newTestBoard(t)

	// pre-fill the press target so the press resolves to empty, then drag:
	// the drag must erase, not fill
	b.Apply(1, 1, ActionFill, false)
	b.Apply(2, 1, ActionFill, false)

	b.PointerInput(150, 150, ButtonPrimary, true)
	b.PointerInput(250, 150, ButtonPrimary, false)

	for x := 0; x < 2; x++ {
		c, _ := grid.CellAt(x, 0)
		if c != puzzle.CellEmpty {
			t.Errorf("cell (%d,0) = %v, want empty after erase drag", x, c)
		}
	}
}

func TestBoard_PointerOutsideIgnored(t *testing.T) {
	b, _, outbox := newTestBoard(t)

	b.PointerInput(-50, -50, ButtonPrimary, true)
	b.PointerInput(1e6, 1e6, ButtonPrimary, true)

	if msgs := outbox.Drain(); len(msgs) != 0 {
		t.Error("out-of-board input produced messages")
	}
}

func TestBoard_OutboxFullDropsQuietly(t *testing.T) {
	grid := puzzle.NewGrid()
	if err := grid.Init(smallSnapshot()); err != nil {
		t.Fatal(err)
	}
	outbox := channel.New[Message](1)
	b := NewBoard(grid, grid.Snapshot(), bridge.Viewport{Width: 300, Height: 300}, outbox, nil)

	b.Apply(1, 1, ActionFill, true)
	b.Apply(2, 1, ActionFill, true) // outbox already full

	msgs := outbox.Drain()
	if len(msgs) != 1 {
		t.Fatalf("outbox has %d messages, want 1", len(msgs))
	}

	// both cells still updated locally
	for x := 0; x < 2; x++ {
		c, _ := grid.CellAt(x, 0)
		if c != puzzle.CellFilled {
			t.Errorf("cell (%d,0) = %v, want filled", x, c)
		}
	}
}

func TestBoard_Resize(t *testing.T) {
	b, _, _ := newTestBoard(t)

	before := b.Layout().PixelsPerTile
	b.Resize(bridge.Viewport{Width: 600, Height: 600})
	after := b.Layout().PixelsPerTile

	if !almostEqual(before*2, after) {
		t.Errorf("PixelsPerTile %v -> %v, want doubled", before, after)
	}
}
