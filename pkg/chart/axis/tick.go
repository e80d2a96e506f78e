package axis

import (
	"github.com/matzehuels/chartframe/pkg/chart/geom"
	"github.com/matzehuels/chartframe/pkg/chart/style"
	"github.com/matzehuels/chartframe/pkg/chart/surface"
	"github.com/matzehuels/chartframe/pkg/chart/ticks"
)

// sampleGlyph stands in for every X tick label when measuring height.
const sampleGlyph = "0"

// Placed is a tick with its pixel position along the axis.
type Placed struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
	Pos   int     `json:"pos"`
}

type tickLabel struct {
	tick ticks.Tick
	box  surface.TextBounds
	pos  int
}

// Tick holds the tick marks and labels of one axis.
type Tick struct {
	Visible bool
	// Font overrides Style.TickLabelFont when its Size is non-zero.
	Font style.Font

	dir    geom.Direction
	ticks  ticks.Ticks
	labels []tickLabel
	bounds geom.Rect
}

func newTick(dir geom.Direction) *Tick { return &Tick{dir: dir, Visible: true} }

// Bounds returns the rectangle covering labels and marks.
func (t *Tick) Bounds() geom.Rect { return t.bounds }

// Ticks returns the values chosen by the last layout.
func (t *Tick) Ticks() ticks.Ticks { return t.ticks }

// Placed returns the ticks with their pixel positions.
func (t *Tick) Placed() []Placed {
	out := make([]Placed, len(t.labels))
	for i, l := range t.labels {
		out[i] = Placed{Value: l.tick.Value, Label: l.tick.Label, Pos: l.pos}
	}
	return out
}

func (t *Tick) font(st style.Style) style.Font {
	if t.Font.Size != 0 {
		return t.Font
	}
	return st.TickLabelFont
}

// sampleHeight is the label height used for X axis sizing.
func (t *Tick) sampleHeight(ctx Context) int {
	if !t.Visible {
		return 0
	}
	return ctx.measure(sampleGlyph, t.font(ctx.Style)).H
}

// generate picks tick values for r over length pixels and measures labels.
func (t *Tick) generate(ctx Context, r geom.Range, length int) {
	g := ticks.Generator{MinSpacing: ctx.Style.TickSpacing}
	t.ticks = g.Generate(r, length)
	t.labels = t.labels[:0]
	f := t.font(ctx.Style)
	for _, tk := range t.ticks.Values {
		t.labels = append(t.labels, tickLabel{tick: tk, box: ctx.measure(tk.Label, f)})
	}
}

// Size returns the space the tick block claims across the axis: the
// widest label plus padding and mark length for Y, the sample glyph
// height plus padding and mark length for X.
func (t *Tick) Size(ctx Context) geom.Size {
	if !t.Visible {
		return geom.Size{}
	}
	marks := ctx.Style.TickPadding + ctx.Style.TickLength
	if t.dir == geom.X {
		return geom.Size{H: t.sampleHeight(ctx) + marks}
	}
	w := 0
	for _, l := range t.labels {
		w = max(w, l.box.W)
	}
	return geom.Size{W: w + marks}
}

// layout places the block inside zone and positions each tick with pixel.
func (t *Tick) layout(ctx Context, zone geom.Rect, pixel func(float64) int) {
	sz := t.Size(ctx)
	if t.dir == geom.Y {
		t.bounds = geom.Rect{X: zone.X, Y: zone.Y, W: sz.W, H: zone.H}
	} else {
		t.bounds = geom.Rect{X: zone.X, Y: zone.Y, W: zone.W, H: sz.H}
	}
	for i := range t.labels {
		t.labels[i].pos = pixel(t.labels[i].tick.Value)
	}
}

func (t *Tick) paint(s surface.Surface, st style.Style) {
	if !t.Visible {
		return
	}
	f := t.font(st)
	b := t.bounds
	for _, l := range t.labels {
		if t.dir == geom.Y {
			right := b.Right()
			s.DrawLine(right-st.TickLength, l.pos, right, l.pos, st.TickStroke)
			x := right - st.TickLength - st.TickPadding - l.box.W
			s.DrawText(l.tick.Label, f, st.AxisStroke.Color, x, l.pos-l.box.H/2, false)
			continue
		}
		s.DrawLine(l.pos, b.Y, l.pos, b.Y+st.TickLength, st.TickStroke)
		y := b.Y + st.TickLength + st.TickPadding
		s.DrawText(l.tick.Label, f, st.AxisStroke.Color, l.pos-l.box.W/2, y, false)
	}
}
