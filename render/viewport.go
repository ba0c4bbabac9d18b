package render

import (
	"math"

	"github.com/lixenwraith/zombie-fighter/parameter"
	"github.com/lixenwraith/zombie-fighter/vmath"
)

// Viewport projects logical surface units onto terminal cells
// The play field starts below the HUD rows and spans the rest of the screen
type Viewport struct {
	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Surface units covered by one cell
	CellWidth  float64
	CellHeight float64

	// Play field offset and size in cells
	FieldY      int
	FieldWidth  int
	FieldHeight int
}

// NewViewport creates a viewport for a screenWidth x screenHeight terminal
// Non-positive cell sizes fall back to the defaults
func NewViewport(screenWidth, screenHeight int, cellWidth, cellHeight float64) Viewport {
	if cellWidth <= 0 {
		cellWidth = parameter.CellWidth
	}
	if cellHeight <= 0 {
		cellHeight = parameter.CellHeight
	}

	return Viewport{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		CellWidth:    cellWidth,
		CellHeight:   cellHeight,
		FieldY:       parameter.HUDRows,
		FieldWidth:   max(0, screenWidth),
		FieldHeight:  max(0, screenHeight-parameter.HUDRows),
	}
}

// SurfaceSize returns the logical surface covered by the play field
// Falls back to the default surface when the screen has no usable field
func (v Viewport) SurfaceSize() (width, height float64) {
	if v.FieldWidth <= 0 || v.FieldHeight <= 0 {
		return parameter.FallbackSurfaceWidth, parameter.FallbackSurfaceHeight
	}
	return float64(v.FieldWidth) * v.CellWidth, float64(v.FieldHeight) * v.CellHeight
}

// Project returns the screen cell range [x0,x1] x [y0,y1] covered by r,
// clipped to the play field. Every visible rect covers at least one cell
func (v Viewport) Project(r vmath.Rect) (x0, y0, x1, y1 int, visible bool) {
	if r.W <= 0 || r.H <= 0 || v.FieldWidth <= 0 || v.FieldHeight <= 0 {
		return 0, 0, 0, 0, false
	}

	x0 = int(math.Floor(r.X / v.CellWidth))
	x1 = int(math.Ceil(r.Right()/v.CellWidth)) - 1
	y0 = int(math.Floor(r.Y / v.CellHeight))
	y1 = int(math.Ceil(r.Bottom()/v.CellHeight)) - 1

	x1 = max(x1, x0)
	y1 = max(y1, y0)

	if x1 < 0 || y1 < 0 || x0 >= v.FieldWidth || y0 >= v.FieldHeight {
		return 0, 0, 0, 0, false
	}

	x0 = vmath.ClampInt(x0, 0, v.FieldWidth-1)
	x1 = vmath.ClampInt(x1, 0, v.FieldWidth-1)
	y0 = vmath.ClampInt(y0, 0, v.FieldHeight-1) + v.FieldY
	y1 = vmath.ClampInt(y1, 0, v.FieldHeight-1) + v.FieldY
	return x0, y0, x1, y1, true
}
