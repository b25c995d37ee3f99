package game

import (
	"math"
	"testing"

	"github.com/BluAtlas/Picross-W-WASM/bridge"
	"github.com/BluAtlas/Picross-W-WASM/puzzle"
)

// 5x5 grid with single-run clues on every line: one clue column and one clue
// row, 6x6 total extent.
func crossSnapshot() puzzle.Snapshot {
	return puzzle.Snapshot{
		Width:  5,
		Height: 5,
		RowClues: [][]int{
			{1}, {1}, {5}, {1}, {1},
		},
		ColumnClues: [][]int{
			{1}, {1}, {5}, {1}, {1},
		},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeLayout_Square(t *testing.T) {
	l := ComputeLayout(bridge.Viewport{Width: 600, Height: 600}, crossSnapshot())

	if l.Columns != 6 || l.Rows != 6 {
		t.Fatalf("extent = %dx%d, want 6x6", l.Columns, l.Rows)
	}
	if !almostEqual(l.PixelsPerTile, 100) {
		t.Errorf("PixelsPerTile = %v, want 100", l.PixelsPerTile)
	}
	if !almostEqual(l.TileScale, 1) {
		t.Errorf("TileScale = %v, want 1", l.TileScale)
	}
	if !almostEqual(l.OriginX, 0) || !almostEqual(l.OriginY, 0) {
		t.Errorf("origin = (%v,%v), want (0,0)", l.OriginX, l.OriginY)
	}
}

func TestComputeLayout_WideViewportCenters(t *testing.T) {
	l := ComputeLayout(bridge.Viewport{Width: 1200, Height: 600}, crossSnapshot())

	if !almostEqual(l.PixelsPerTile, 100) {
		t.Errorf("PixelsPerTile = %v, want 100 (height constrained)", l.PixelsPerTile)
	}
	if !almostEqual(l.OriginX, 300) {
		t.Errorf("OriginX = %v, want 300 (centered)", l.OriginX)
	}
	if !almostEqual(l.OriginY, 0) {
		t.Errorf("OriginY = %v, want 0", l.OriginY)
	}
}

func TestComputeLayout_TallViewportCenters(t *testing.T) {
	l := ComputeLayout(bridge.Viewport{Width: 300, Height: 900}, crossSnapshot())

	if !almostEqual(l.PixelsPerTile, 50) {
		t.Errorf("PixelsPerTile = %v, want 50 (width constrained)", l.PixelsPerTile)
	}
	if !almostEqual(l.OriginY, 300) {
		t.Errorf("OriginY = %v, want 300 (centered)", l.OriginY)
	}
}

func TestComputeLayout_DegenerateViewport(t *testing.T) {
	l := ComputeLayout(bridge.Viewport{}, crossSnapshot())
	if l.PixelsPerTile != 0 {
		t.Errorf("PixelsPerTile = %v for empty viewport, want 0", l.PixelsPerTile)
	}
	if _, _, ok := l.TileAt(10, 10); ok {
		t.Error("TileAt should reject an unsized layout")
	}
}

func TestLayout_TileAt(t *testing.T) {
	l := ComputeLayout(bridge.Viewport{Width: 1200, Height: 600}, crossSnapshot())

	tests := []struct {
		px, py float64
		x, y   int
		ok     bool
	}{
		{350, 50, 0, 0, true},
		{899, 599, 5, 5, true},
		{300, 0, 0, 0, true},
		{299, 50, 0, 0, false}, // left of the board
		{901, 50, 6, 0, false}, // right of the board
		{350, -1, 0, 0, false},
	}

	for _, tt := range tests {
		x, y, ok := l.TileAt(tt.px, tt.py)
		if ok != tt.ok {
			t.Errorf("TileAt(%v,%v) ok = %v, want %v", tt.px, tt.py, ok, tt.ok)
			continue
		}
		if ok && (x != tt.x || y != tt.y) {
			t.Errorf("TileAt(%v,%v) = (%d,%d), want (%d,%d)", tt.px, tt.py, x, y, tt.x, tt.y)
		}
	}
}

func TestLayout_Regions(t *testing.T) {
	l := ComputeLayout(bridge.Viewport{Width: 600, Height: 600}, crossSnapshot())

	tests := []struct {
		x, y   int
		region Region
	}{
		{0, 0, RegionControl},
		{0, 3, RegionClue},  // row clue band
		{3, 0, RegionClue},  // column clue band
		{1, 1, RegionGrid},  // top-left grid cell
		{5, 5, RegionGrid},  // bottom-right grid cell
		{6, 0, RegionOutside},
		{-1, 2, RegionOutside},
	}

	for _, tt := range tests {
		if got := l.RegionAt(tt.x, tt.y); got != tt.region {
			t.Errorf("RegionAt(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.region)
		}
	}

	gx, gy := l.GridCell(1, 1)
	if gx != 0 || gy != 0 {
		t.Errorf("GridCell(1,1) = (%d,%d), want (0,0)", gx, gy)
	}
}
