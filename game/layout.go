package game

import (
	"math"

	"github.com/BluAtlas/Picross-W-WASM/bridge"
	"github.com/BluAtlas/Picross-W-WASM/puzzle"
)

// tileSizePx is the native sprite size; TileScale is relative to it.
const tileSizePx = 100.0

// Region classifies a board tile.
type Region uint8

const (
	RegionOutside Region = iota
	RegionControl        // corner block toggling the touch action
	RegionClue           // clue bands left of and above the grid
	RegionGrid           // playable cells
)

// Layout places the board inside the viewport. Board coordinates are
// top-left origin, y down, matching canvas pixel space: the column clue band
// occupies the top ClueRows rows, the row clue band the left ClueCols
// columns, and the grid fills the rest.
type Layout struct {
	TileScale     float64
	PixelsPerTile float64
	OriginX       float64
	OriginY       float64
	Columns       int // total extent including clue bands
	Rows          int
	ClueCols      int
	ClueRows      int
	GridW         int
	GridH         int
}

// ComputeLayout sizes the board to the viewport: tiles shrink to fit the
// constraining axis and the board is centered along the other one.
func ComputeLayout(vp bridge.Viewport, snap puzzle.Snapshot) Layout {
	l := Layout{
		ClueCols: snap.LongestRowClue(),
		ClueRows: snap.LongestColumnClue(),
		GridW:    snap.Width,
		GridH:    snap.Height,
	}
	l.Columns = l.GridW + l.ClueCols
	l.Rows = l.GridH + l.ClueRows

	if l.Columns == 0 || l.Rows == 0 || vp.Width <= 0 || vp.Height <= 0 {
		return l
	}

	w := float64(vp.Width)
	h := float64(vp.Height)

	if w/float64(l.Columns) < h/float64(l.Rows) {
		l.PixelsPerTile = w / float64(l.Columns)
		l.OriginY = (h - float64(l.Rows)*l.PixelsPerTile) / 2
	} else {
		l.PixelsPerTile = h / float64(l.Rows)
		l.OriginX = (w - float64(l.Columns)*l.PixelsPerTile) / 2
	}
	l.TileScale = l.PixelsPerTile / tileSizePx

	return l
}

// TileAt maps host pixel coordinates to board tile coordinates.
func (l Layout) TileAt(px, py float64) (x, y int, ok bool) {
	if l.PixelsPerTile <= 0 {
		return 0, 0, false
	}
	x = int(math.Floor((px - l.OriginX) / l.PixelsPerTile))
	y = int(math.Floor((py - l.OriginY) / l.PixelsPerTile))
	if x < 0 || x >= l.Columns || y < 0 || y >= l.Rows {
		return 0, 0, false
	}
	return x, y, true
}

// RegionAt classifies a board tile coordinate.
func (l Layout) RegionAt(x, y int) Region {
	if x < 0 || x >= l.Columns || y < 0 || y >= l.Rows {
		return RegionOutside
	}
	inClueCols := x < l.ClueCols
	inClueRows := y < l.ClueRows
	switch {
	case inClueCols && inClueRows:
		return RegionControl
	case inClueCols || inClueRows:
		return RegionClue
	default:
		return RegionGrid
	}
}

// GridCell converts board coordinates inside RegionGrid to grid coordinates.
func (l Layout) GridCell(x, y int) (gx, gy int) {
	return x - l.ClueCols, y - l.ClueRows
}
