package axis

import (
	"github.com/matzehuels/chartframe/pkg/chart/geom"
	"github.com/matzehuels/chartframe/pkg/chart/style"
	"github.com/matzehuels/chartframe/pkg/chart/surface"
)

// Line is the axis line drawn along the plot edge.
type Line struct {
	Visible bool

	dir    geom.Direction
	bounds geom.Rect
}

func newLine(dir geom.Direction) *Line { return &Line{dir: dir, Visible: true} }

// Bounds returns the rectangle computed by the last layout.
func (l *Line) Bounds() geom.Rect { return l.bounds }

// width is the float stroke width, used where fractional widths are summed
// before truncation.
func (l *Line) width(st style.Style) float64 {
	if !l.Visible {
		return 0
	}
	return st.AxisStroke.Width
}

// Size returns the space the line claims across the axis.
func (l *Line) Size(ctx Context) geom.Size {
	w := int(l.width(ctx.Style))
	if l.dir == geom.Y {
		return geom.Size{W: w}
	}
	return geom.Size{H: w}
}

// layout places the line at the left edge of zone for Y and at its top
// edge for X; zone spans the full axis length.
func (l *Line) layout(ctx Context, zone geom.Rect) {
	sz := l.Size(ctx)
	if l.dir == geom.Y {
		l.bounds = geom.Rect{X: zone.X, Y: zone.Y, W: sz.W, H: zone.H}
		return
	}
	l.bounds = geom.Rect{X: zone.X, Y: zone.Y, W: zone.W, H: sz.H}
}

func (l *Line) paint(s surface.Surface, st style.Style) {
	if !l.Visible {
		return
	}
	b := l.bounds
	if l.dir == geom.Y {
		s.DrawLine(b.X, b.Y, b.X, b.Bottom(), st.AxisStroke)
		return
	}
	s.DrawLine(b.X, b.Y, b.Right(), b.Y, st.AxisStroke)
}
