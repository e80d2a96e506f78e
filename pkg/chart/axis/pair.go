package axis

import "github.com/matzehuels/chartframe/pkg/chart/geom"

// Pair owns the X and Y axes of a chart and sequences their layout.
type Pair struct {
	X *Axis
	Y *Axis
}

// NewPair returns a pair of empty axes.
func NewPair() *Pair {
	return &Pair{X: New(geom.X), Y: New(geom.Y)}
}

// Layout runs the negotiation: X size hint, then the Y axis from that
// hint, then the X axis from the Y axis bounds. It returns the plot area
// left between the axes. The order is fixed; the Y axis never sees the X
// axis bounds and the X axis never sees anything of the Y axis but its
// final bounds.
func (p *Pair) Layout(ctx Context) geom.Rect {
	hint := p.X.SizeHint(ctx)
	p.Y.SizeHint(ctx)

	p.Y.arrangeY(ctx, yInput{xSizeHint: hint})
	p.X.arrangeX(ctx, xInput{yBounds: p.Y.Bounds(), xSizeHint: hint})

	return p.PlotArea()
}

// PlotArea returns the rectangle between the laid out axes: it starts at
// the X axis paint zone and spans the Y axis height.
func (p *Pair) PlotArea() geom.Rect {
	x, y := p.X.PaintZone(), p.Y.Bounds()
	return geom.Rect{X: x.X, Y: y.Y, W: p.X.Bounds().W, H: y.H}
}
