// Package surface defines the drawing capability the chart engine depends on.
//
// Layout only needs a [Measurer]; painting needs the full [Surface]. The
// engine never depends on a concrete graphics backend. The raster backend
// lives in pkg/render/raster; [Recorder] is an in-memory implementation
// with deterministic metrics for tests and dry runs.
package surface

import (
	"image/color"

	"github.com/matzehuels/chartframe/pkg/chart/style"
)

// TextBounds is the pixel box a rendered string occupies.
type TextBounds struct {
	W, H int
}

// Measurer reports text extents.
type Measurer interface {
	MeasureText(text string, f style.Font) TextBounds
}

// Surface is a 2D drawing context.
type Surface interface {
	Measurer
	// DrawText draws text with its top-left corner at (x, y). When
	// vertical is set the text is rotated a quarter turn counter-clockwise
	// and (x, y) is the top-left corner of the rotated box.
	DrawText(text string, f style.Font, c color.RGBA, x, y int, vertical bool)
	DrawLine(x1, y1, x2, y2 int, s style.Stroke)
	DrawRect(r Rect, s style.Stroke)
	FillRect(r Rect, c color.RGBA)
}

// Rect mirrors geom.Rect so backends need not import the layout packages.
type Rect struct {
	X, Y, W, H int
}
