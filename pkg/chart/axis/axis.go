package axis

import (
	"math"

	"github.com/matzehuels/chartframe/pkg/chart/geom"
	"github.com/matzehuels/chartframe/pkg/chart/style"
	"github.com/matzehuels/chartframe/pkg/chart/surface"
	"github.com/matzehuels/chartframe/pkg/chart/ticks"
)

// State is the layout progress of an axis.
type State int

const (
	Unmeasured State = iota
	SizeHintComputed
	PaintZoneComputed
	BoundsComputed
)

func (s State) String() string {
	switch s {
	case SizeHintComputed:
		return "size-hint"
	case PaintZoneComputed:
		return "paint-zone"
	case BoundsComputed:
		return "bounds"
	}
	return "unmeasured"
}

// Axis is one chart axis: a title, a tick block and a line, plus the data
// range accumulated from every series plotted against it.
type Axis struct {
	Title *Title
	Tick  *Tick
	Line  *Line

	dir       geom.Direction
	rng       geom.Range
	state     State
	sizeHint  int
	paintZone geom.Rect
	bounds    geom.Rect
	style     style.Style
}

// New returns an empty axis for dir.
func New(dir geom.Direction) *Axis {
	return &Axis{
		Title: newTitle(dir),
		Tick:  newTick(dir),
		Line:  newLine(dir),
		dir:   dir,
		rng:   geom.EmptyRange(),
	}
}

// Direction returns the axis role.
func (a *Axis) Direction() geom.Direction { return a.dir }

// AddMinMax widens the data range. Callers must reject NaN and Inf first.
func (a *Axis) AddMinMax(min, max float64) { a.rng.AddMinMax(min, max) }

// Range returns the accumulated data range.
func (a *Axis) Range() geom.Range { return a.rng }

// State returns how far the last layout got.
func (a *Axis) State() State { return a.state }

// PaintZone returns the provisional rectangle sub-components laid out into.
func (a *Axis) PaintZone() geom.Rect { return a.paintZone }

// Bounds returns the final rectangle of the axis.
func (a *Axis) Bounds() geom.Rect { return a.bounds }

// Ticks returns the tick values of the last layout.
func (a *Axis) Ticks() ticks.Ticks { return a.Tick.Ticks() }

// SizeHint returns the height the X axis needs, computed from fonts and
// style constants alone. The Y axis always returns 0: its height is derived
// from the canvas, not from its content.
func (a *Axis) SizeHint(ctx Context) int {
	a.state = SizeHintComputed
	if a.dir == geom.Y {
		a.sizeHint = 0
		return 0
	}

	st := ctx.Style
	titleHeight := float64(a.Title.Size(ctx).H)
	labels := 0.0
	if a.Tick.Visible {
		labels = float64(a.Tick.sampleHeight(ctx) + st.TickPadding + st.TickLength)
	}
	lineWidth := a.Line.width(st)
	a.sizeHint = int(titleHeight + labels + lineWidth + float64(st.PlotPadding))
	return a.sizeHint
}

// arrangeY lays out the Y axis. Its paint zone starts with a nominal width
// that the measured title, ticks and line then replace in the final bounds.
func (a *Axis) arrangeY(ctx Context, in yInput) {
	st := ctx.Style
	a.style = st

	y := ctx.TitleBounds.Y + ctx.TitleBounds.H + st.ChartPadding
	a.paintZone = geom.Rect{
		X: st.ChartPadding,
		Y: y,
		W: st.YAxisNominalWidth,
		H: ctx.Canvas.H - y - in.xSizeHint - st.ChartPadding,
	}
	a.state = PaintZoneComputed

	pz := a.paintZone
	a.Tick.generate(ctx, a.rng, pz.H)

	titleW := a.Title.Size(ctx).W
	tickW := a.Tick.Size(ctx).W
	lineW := a.Line.Size(ctx).W

	a.Title.layout(ctx, geom.Rect{X: pz.X, Y: pz.Y, W: titleW, H: pz.H})
	a.Tick.layout(ctx, geom.Rect{X: pz.X + titleW, Y: pz.Y, W: tickW, H: pz.H}, a.Pixel)
	a.Line.layout(ctx, geom.Rect{X: pz.X + titleW + tickW, Y: pz.Y, W: lineW, H: pz.H})

	a.bounds = geom.Rect{X: pz.X, Y: pz.Y, W: titleW + tickW + lineW, H: pz.H}
	a.state = BoundsComputed
}

// arrangeX lays out the X axis below the Y axis. The paint zone starts one
// pixel left of the plot edge so axis and plot border overlap.
func (a *Axis) arrangeX(ctx Context, in xInput) {
	st := ctx.Style
	a.style = st

	yb := in.yBounds
	a.paintZone = geom.Rect{
		X: yb.W + st.PlotPadding + st.ChartPadding - 1,
		Y: yb.Y + yb.H,
		W: ctx.Canvas.W - yb.W - ctx.LegendBounds.W - 3*st.ChartPadding,
		H: in.xSizeHint,
	}
	a.state = PaintZoneComputed

	pz := a.paintZone
	a.Tick.generate(ctx, a.rng, pz.W)

	lineH := a.Line.Size(ctx).H
	tickH := a.Tick.Size(ctx).H
	titleH := a.Title.Size(ctx).H

	a.Line.layout(ctx, geom.Rect{X: pz.X, Y: pz.Y, W: pz.W, H: lineH})
	a.Tick.layout(ctx, geom.Rect{X: pz.X, Y: pz.Y + lineH, W: pz.W, H: tickH}, a.Pixel)
	a.Title.layout(ctx, geom.Rect{X: pz.X, Y: pz.Y + lineH + tickH, W: pz.W, H: titleH})

	h := titleH + tickH + lineH
	if st.LegacyXAxisHeight {
		if a.Title.Visible {
			h = titleH
		} else {
			h = tickH + lineH
		}
	}
	a.bounds = geom.Rect{X: pz.X, Y: pz.Y, W: pz.W, H: h}
	a.state = BoundsComputed
}

// Pixel maps a data value to a pixel coordinate along the axis, spreading
// the tick span over the paint zone. Y grows downwards, so larger values
// map to smaller y.
func (a *Axis) Pixel(v float64) int {
	t := a.Tick.Ticks()
	pz := a.paintZone
	length, origin := pz.W, pz.X
	if a.dir == geom.Y {
		length, origin = pz.H, pz.Y
	}
	if len(t.Values) == 0 {
		return origin
	}
	lo, hi := t.First(), t.Last()
	frac := 0.5
	if hi > lo {
		frac = (v/2 - lo/2) / (hi/2 - lo/2)
	}
	off := int(math.Round(frac * float64(length)))
	if a.dir == geom.Y {
		return origin + length - off
	}
	return origin + off
}

// Paint draws title, ticks and line into the computed geometry. It does
// nothing until the axis has been laid out and never changes the layout.
func (a *Axis) Paint(s surface.Surface) {
	if a.state != BoundsComputed {
		return
	}
	a.Title.paint(s, a.style)
	a.Tick.paint(s, a.style)
	a.Line.paint(s, a.style)
}
