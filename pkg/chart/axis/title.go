package axis

import (
	"github.com/matzehuels/chartframe/pkg/chart/geom"
	"github.com/matzehuels/chartframe/pkg/chart/style"
	"github.com/matzehuels/chartframe/pkg/chart/surface"
)

// Title is the label of an axis. Y titles are drawn rotated.
type Title struct {
	Text    string
	Visible bool
	// Font overrides Style.AxisTitleFont when its Size is non-zero.
	Font style.Font

	dir    geom.Direction
	bounds geom.Rect
}

func newTitle(dir geom.Direction) *Title { return &Title{dir: dir} }

// SetText sets the title text and shows the title if text is non-empty.
func (t *Title) SetText(text string) {
	t.Text = text
	t.Visible = text != ""
}

// Bounds returns the rectangle computed by the last layout.
func (t *Title) Bounds() geom.Rect { return t.bounds }

func (t *Title) font(st style.Style) style.Font {
	if t.Font.Size != 0 {
		return t.Font
	}
	return st.AxisTitleFont
}

// Size returns the space the title claims: the text box plus padding on
// the side facing the ticks. It is zero when the title is hidden.
func (t *Title) Size(ctx Context) geom.Size {
	if !t.Visible {
		return geom.Size{}
	}
	tb := ctx.measure(t.Text, t.font(ctx.Style))
	if t.dir == geom.Y {
		return geom.Size{W: tb.H + ctx.Style.AxisTitlePadding, H: tb.W}
	}
	return geom.Size{W: tb.W, H: tb.H + ctx.Style.AxisTitlePadding}
}

// layout places the title inside zone: left edge for Y, bottom edge for X,
// centred along the axis.
func (t *Title) layout(ctx Context, zone geom.Rect) {
	sz := t.Size(ctx)
	if t.dir == geom.Y {
		t.bounds = geom.Rect{X: zone.X, Y: zone.Y + (zone.H-sz.H)/2, W: sz.W, H: sz.H}
		return
	}
	t.bounds = geom.Rect{X: zone.X + (zone.W-sz.W)/2, Y: zone.Bottom() - sz.H, W: sz.W, H: sz.H}
}

func (t *Title) paint(s surface.Surface, st style.Style) {
	if !t.Visible {
		return
	}
	c := st.AxisStroke.Color
	if t.dir == geom.Y {
		s.DrawText(t.Text, t.font(st), c, t.bounds.X, t.bounds.Y, true)
		return
	}
	s.DrawText(t.Text, t.font(st), c, t.bounds.X, t.bounds.Y+st.AxisTitlePadding, false)
}
