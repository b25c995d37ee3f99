package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BluAtlas/Picross-W-WASM/bridge"
	"github.com/BluAtlas/Picross-W-WASM/game"
	"github.com/BluAtlas/Picross-W-WASM/puzzle"
)

// Tiles render two terminal columns wide and one row tall. The board sits
// below the single header line.
const (
	tileWidth = 2
	boardLeft = 0
	boardTop  = 1
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	solvedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

	controlStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	clueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	markFill     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	markCross    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	filledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	crossedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	cursorStyle  = lipgloss.NewStyle().Background(lipgloss.Color("57"))
)

func (m *model) View() string {
	header := titleStyle.Render("picross") + " " + helpStyle.Render(m.state.String())

	switch m.state {
	case bridge.StateReady:
		return header + "\n" + m.viewBoard() + "\n" + m.viewStatus()
	case bridge.StateFailed:
		return header + "\n" +
			errorStyle.Render("load failed: "+m.sched.FailureReason()) + "\n" +
			helpStyle.Render("q quit")
	default:
		return header + "\n" + m.spin.View() + " waiting for the puzzle..."
	}
}

func (m *model) viewBoard() string {
	board := m.runner.Board()
	if board == nil {
		return ""
	}
	l := board.Layout()
	snap := board.Snapshot()

	var b strings.Builder
	for y := 0; y < l.Rows; y++ {
		for x := 0; x < l.Columns; x++ {
			b.WriteString(m.tile(board, l, snap, x, y))
		}
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *model) tile(board *game.Board, l game.Layout, snap puzzle.Snapshot, x, y int) string {
	switch l.RegionAt(x, y) {
	case game.RegionControl:
		if x == l.ClueCols-1 && y == l.ClueRows-1 {
			if board.ControlAction() == game.ActionCross {
				return controlStyle.Render("╳╳")
			}
			return controlStyle.Render("██")
		}
		return "  "

	case game.RegionClue:
		n, ok := clueNumber(l, snap, x, y)
		if !ok {
			return "  "
		}
		s := fmt.Sprintf("%2d", n)
		switch board.MarkAt(x, y) {
		case game.MarkFill:
			return markFill.Render(s)
		case game.MarkCross:
			return markCross.Render(s)
		default:
			return clueStyle.Render(s)
		}

	case game.RegionGrid:
		gx, gy := l.GridCell(x, y)
		cell, err := m.grid.CellAt(gx, gy)
		if err != nil {
			return "  "
		}
		var s string
		switch cell {
		case puzzle.CellFilled:
			s = filledStyle.Render("██")
		case puzzle.CellCrossed:
			s = crossedStyle.Render("╳╳")
		default:
			s = emptyStyle.Render("··")
		}
		if gx == m.cursorX && gy == m.cursorY {
			s = cursorStyle.Render("[]")
		}
		return s
	}
	return "  "
}

// clueNumber returns the clue run shown on a clue tile. Runs are packed
// against the grid edge of their band.
func clueNumber(l game.Layout, snap puzzle.Snapshot, x, y int) (int, bool) {
	if x < l.ClueCols {
		runs := snap.RowClues[y-l.ClueRows]
		i := x - (l.ClueCols - len(runs))
		if i < 0 {
			return 0, false
		}
		return runs[i], true
	}
	runs := snap.ColumnClues[x-l.ClueCols]
	i := y - (l.ClueRows - len(runs))
	if i < 0 {
		return 0, false
	}
	return runs[i], true
}

func (m *model) viewStatus() string {
	if m.runner.Solved() {
		return solvedStyle.Render("solved!") + " " + helpStyle.Render("q quit")
	}
	action := "fill"
	if b := m.runner.Board(); b != nil && b.ControlAction() == game.ActionCross {
		action = "cross"
	}
	return helpStyle.Render(fmt.Sprintf(
		"action: %s · arrows/hjkl move · space fill · x cross · e erase · tab flip · q quit",
		action))
}
