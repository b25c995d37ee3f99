package puzzle

import (
	"strings"

	"github.com/BluAtlas/Picross-W-WASM/errors"
)

// Session owns nonogram grid semantics once the bridge hands it a snapshot.
// The bridge delivers the snapshot through Init exactly once during
// bootstrap; the simulation's input and render systems use the per-tick
// query and update operations afterwards. A later board join re-initializes
// the session through the same call.
type Session interface {
	Init(Snapshot) error
	SetCell(x, y int, c Cell) error
	CellAt(x, y int) (Cell, error)
	Solved() bool
}

// Grid is the in-process Session used by the dev harness and tests. The
// production game binds the external puzzle handler behind the same
// interface.
type Grid struct {
	snap  Snapshot
	cells []Cell
	ready bool
}

// NewGrid returns an uninitialized grid session.
func NewGrid() *Grid {
	return &Grid{}
}

// Init installs a new board. Any previous board is discarded.
func (g *Grid) Init(s Snapshot) error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.InvalidData(errors.PhaseSession, "snapshot has no grid")
	}
	if len(s.RowClues) != s.Height || len(s.ColumnClues) != s.Width {
		return errors.InvalidData(errors.PhaseSession, "clue counts do not match dimensions")
	}

	g.snap = s
	g.cells = make([]Cell, s.Width*s.Height)
	g.ready = true
	return nil
}

// Snapshot returns the board definition currently installed.
func (g *Grid) Snapshot() Snapshot {
	return g.snap
}

// SetCell sets the state of one grid square.
func (g *Grid) SetCell(x, y int, c Cell) error {
	i, err := g.index(x, y)
	if err != nil {
		return err
	}
	g.cells[i] = c
	return nil
}

// CellAt returns the state of one grid square.
func (g *Grid) CellAt(x, y int) (Cell, error) {
	i, err := g.index(x, y)
	if err != nil {
		return CellEmpty, err
	}
	return g.cells[i], nil
}

// SetBoard installs cell states from a flat row-major glyph string, as
// carried by board update messages. Length must equal width*height.
func (g *Grid) SetBoard(cells string) error {
	if !g.ready {
		return errors.NotInitialized(errors.PhaseSession, "grid")
	}
	if len(cells) != len(g.cells) {
		return errors.InvalidData(errors.PhaseSession,
			"board string length does not match grid size")
	}
	parsed := make([]Cell, len(cells))
	for i := 0; i < len(cells); i++ {
		c, ok := CellFromGlyph(cells[i])
		if !ok {
			return errors.InvalidData(errors.PhaseSession, "unknown cell glyph")
		}
		parsed[i] = c
	}
	copy(g.cells, parsed)
	return nil
}

// Board exports the current cell states as a flat row-major glyph string.
func (g *Grid) Board() string {
	var b strings.Builder
	b.Grow(len(g.cells))
	for _, c := range g.cells {
		b.WriteByte(c.Glyph())
	}
	return b.String()
}

// Solved reports whether every row's and column's filled runs match the
// clues. Crossed cells count as empty.
func (g *Grid) Solved() bool {
	if !g.ready {
		return false
	}

	for y := 0; y < g.snap.Height; y++ {
		line := make([]Cell, g.snap.Width)
		for x := 0; x < g.snap.Width; x++ {
			line[x] = g.cells[g.snap.Pos(x, y)]
		}
		if !runsMatch(filledRuns(line), g.snap.RowClues[y]) {
			return false
		}
	}
	for x := 0; x < g.snap.Width; x++ {
		line := make([]Cell, g.snap.Height)
		for y := 0; y < g.snap.Height; y++ {
			line[y] = g.cells[g.snap.Pos(x, y)]
		}
		if !runsMatch(filledRuns(line), g.snap.ColumnClues[x]) {
			return false
		}
	}
	return true
}

func (g *Grid) index(x, y int) (int, error) {
	if !g.ready {
		return 0, errors.NotInitialized(errors.PhaseSession, "grid")
	}
	if x < 0 || x >= g.snap.Width {
		return 0, errors.OutOfBounds(errors.PhaseSession, "column", x, g.snap.Width)
	}
	if y < 0 || y >= g.snap.Height {
		return 0, errors.OutOfBounds(errors.PhaseSession, "row", y, g.snap.Height)
	}
	return g.snap.Pos(x, y), nil
}

// filledRuns returns the lengths of consecutive filled segments in a line.
func filledRuns(line []Cell) []int {
	var runs []int
	current := 0
	for _, c := range line {
		if c == CellFilled {
			current++
			continue
		}
		if current > 0 {
			runs = append(runs, current)
			current = 0
		}
	}
	if current > 0 {
		runs = append(runs, current)
	}
	return runs
}

func runsMatch(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
