package tui

import (
	"math"

	"github.com/vovakirdan/copybird/internal/core"
)

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2.0

// Viewport maps world coordinates onto a block of terminal cells.
// The world keeps its aspect ratio and is centered in the available area.
type Viewport struct {
	Cols, Rows       int     // Size of the world area in cells
	OffsetX, OffsetY int     // Top-left cell of the world area
	ScaleX, ScaleY   float64 // World units per cell
}

// NewViewport fits a worldW x worldH world into a screenW x screenH cell area.
func NewViewport(worldW, worldH float64, screenW, screenH int) Viewport {
	if screenW <= 0 || screenH <= 0 || worldW <= 0 || worldH <= 0 {
		return Viewport{ScaleX: 1, ScaleY: 1}
	}

	sx := math.Max(worldW/float64(screenW), worldH/(cellAspect*float64(screenH)))
	sy := sx * cellAspect

	cols := core.Min(int(math.Ceil(worldW/sx)), screenW)
	rows := core.Min(int(math.Ceil(worldH/sy)), screenH)

	return Viewport{
		Cols:    cols,
		Rows:    rows,
		OffsetX: (screenW - cols) / 2,
		OffsetY: (screenH - rows) / 2,
		ScaleX:  sx,
		ScaleY:  sy,
	}
}

// Cell returns the screen cell holding world point p.
func (v Viewport) Cell(p core.Vector2) (x, y int) {
	return v.OffsetX + int(math.Floor(p.X/v.ScaleX)), v.OffsetY + int(math.Floor(p.Y/v.ScaleY))
}

// RectCells returns the cell block covering r, at least one cell in each
// direction, clipped to the viewport. ok is false when nothing is visible.
func (v Viewport) RectCells(r core.Rect) (x, y, w, h int, ok bool) {
	x0 := int(math.Floor(r.MinX() / v.ScaleX))
	y0 := int(math.Floor(r.MinY() / v.ScaleY))
	x1 := core.Max(int(math.Ceil(r.MaxX()/v.ScaleX)), x0+1)
	y1 := core.Max(int(math.Ceil(r.MaxY()/v.ScaleY)), y0+1)

	x0, x1 = core.Max(x0, 0), core.Min(x1, v.Cols)
	y0, y1 = core.Max(y0, 0), core.Min(y1, v.Rows)
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false
	}
	return v.OffsetX + x0, v.OffsetY + y0, x1 - x0, y1 - y0, true
}

// Visible reports whether screen cell (x, y) lies inside the world area.
func (v Viewport) Visible(x, y int) bool {
	return x >= v.OffsetX && x < v.OffsetX+v.Cols && y >= v.OffsetY && y < v.OffsetY+v.Rows
}
