package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BluAtlas/Picross-W-WASM/errors"
)

// Snapshot is the immutable puzzle definition handed to the session exactly
// once when bootstrap completes: grid dimensions plus ordered clue runs.
// RowClues run top to bottom, ColumnClues left to right; a row or column
// with no filled runs has a nil clue list.
type Snapshot struct {
	Width       int
	Height      int
	RowClues    [][]int
	ColumnClues [][]int
}

// Pos returns the linear (row-major) index of a cell, the position used in
// outbound cell-change messages.
func (s Snapshot) Pos(x, y int) int {
	return y*s.Width + x
}

// LongestRowClue returns the longest row clue run count. This sets the width
// of the clue band to the left of the grid.
func (s Snapshot) LongestRowClue() int {
	longest := 0
	for _, c := range s.RowClues {
		if len(c) > longest {
			longest = len(c)
		}
	}
	return longest
}

// LongestColumnClue returns the longest column clue run count. This sets the
// height of the clue band above the grid.
func (s Snapshot) LongestColumnClue() int {
	longest := 0
	for _, c := range s.ColumnClues {
		if len(c) > longest {
			longest = len(c)
		}
	}
	return longest
}

// Parse builds a Snapshot from puzzle definition text:
//
//	width height
//	<height row-clue lines, top to bottom>
//	<width column-clue lines, left to right>
//
// Each clue line is a comma-separated list of run lengths; "0" or an empty
// line means the row or column has no filled runs. Windows line endings and
// surrounding whitespace are tolerated.
func Parse(data []byte) (Snapshot, error) {
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	// trim trailing blank lines
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return Snapshot{}, errors.InvalidData(errors.PhaseParse, "empty puzzle definition")
	}

	fields := strings.Fields(lines[0])
	if len(fields) != 2 {
		return Snapshot{}, errors.InvalidData(errors.PhaseParse,
			fmt.Sprintf("header %q: want \"width height\"", lines[0]))
	}
	w, errW := strconv.Atoi(fields[0])
	h, errH := strconv.Atoi(fields[1])
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return Snapshot{}, errors.InvalidData(errors.PhaseParse,
			fmt.Sprintf("invalid dimensions %q", lines[0]))
	}

	if got, want := len(lines)-1, h+w; got != want {
		return Snapshot{}, errors.InvalidData(errors.PhaseParse,
			fmt.Sprintf("%d clue lines for %dx%d puzzle, want %d", got, w, h, want))
	}

	snap := Snapshot{Width: w, Height: h}

	for i := 0; i < h; i++ {
		clues, err := parseClueLine(lines[1+i], w)
		if err != nil {
			return Snapshot{}, errors.New(errors.PhaseParse, errors.KindInvalidData).
				Detail("row %d: %v", i, err).
				Build()
		}
		snap.RowClues = append(snap.RowClues, clues)
	}
	for i := 0; i < w; i++ {
		clues, err := parseClueLine(lines[1+h+i], h)
		if err != nil {
			return Snapshot{}, errors.New(errors.PhaseParse, errors.KindInvalidData).
				Detail("column %d: %v", i, err).
				Build()
		}
		snap.ColumnClues = append(snap.ColumnClues, clues)
	}

	return snap, nil
}

// parseClueLine parses one comma-separated run list and checks the runs plus
// mandatory single-cell gaps fit within extent cells.
func parseClueLine(line string, extent int) ([]int, error) {
	line = strings.TrimSpace(line)
	if line == "" || line == "0" {
		return nil, nil
	}

	var runs []int
	total := 0
	for _, part := range strings.Split(line, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("run %q is not a number", part)
		}
		if n <= 0 {
			return nil, fmt.Errorf("run %d must be positive", n)
		}
		runs = append(runs, n)
		total += n
	}

	if total+len(runs)-1 > extent {
		return nil, fmt.Errorf("runs %v do not fit in %d cells", runs, extent)
	}
	return runs, nil
}
