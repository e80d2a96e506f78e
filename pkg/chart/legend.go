package chart

import (
	"image/color"

	"github.com/matzehuels/chartframe/pkg/chart/geom"
	"github.com/matzehuels/chartframe/pkg/chart/style"
	"github.com/matzehuels/chartframe/pkg/chart/surface"
)

// palette colours series that do not set their own.
var palette = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

// LegendItem is one legend row.
type LegendItem struct {
	Name   string     `json:"name"`
	Color  color.RGBA `json:"-"`
	Swatch geom.Rect  `json:"swatch"`
	Label  geom.Rect  `json:"label"`
}

// Legend lists the named series at the right edge of the chart.
type Legend struct {
	Visible bool

	items  []LegendItem
	bounds geom.Rect
}

func (l *Legend) add(name string, c color.RGBA) {
	if c.A == 0 {
		c = palette[len(l.items)%len(palette)]
	}
	l.items = append(l.items, LegendItem{Name: name, Color: c})
}

// Items returns the legend rows from the last layout.
func (l *Legend) Items() []LegendItem { return append([]LegendItem(nil), l.items...) }

// Bounds returns the legend rectangle, zero when hidden or empty.
func (l *Legend) Bounds() geom.Rect { return l.bounds }

// layout stacks one row per item, right-aligned to the canvas and starting
// at y. Each row is a swatch, TickPadding, then the name.
func (l *Legend) layout(m surface.Measurer, st style.Style, canvas geom.Size, y int) {
	if !l.Visible || len(l.items) == 0 {
		l.bounds = geom.Rect{}
		return
	}
	rowH, textW := st.LegendSwatch, 0
	boxes := make([]surface.TextBounds, len(l.items))
	for i, it := range l.items {
		boxes[i] = m.MeasureText(it.Name, st.LegendFont)
		rowH = max(rowH, boxes[i].H)
		textW = max(textW, boxes[i].W)
	}
	w := st.LegendSwatch + st.TickPadding + textW
	h := len(l.items)*rowH + (len(l.items)-1)*st.TickPadding
	l.bounds = geom.Rect{X: canvas.W - st.ChartPadding - w, Y: y, W: w, H: h}

	for i := range l.items {
		top := y + i*(rowH+st.TickPadding)
		l.items[i].Swatch = geom.Rect{
			X: l.bounds.X,
			Y: top + (rowH-st.LegendSwatch)/2,
			W: st.LegendSwatch,
			H: st.LegendSwatch,
		}
		l.items[i].Label = geom.Rect{
			X: l.bounds.X + st.LegendSwatch + st.TickPadding,
			Y: top + (rowH-boxes[i].H)/2,
			W: boxes[i].W,
			H: boxes[i].H,
		}
	}
}

func (l *Legend) paint(s surface.Surface, st style.Style) {
	if l.bounds.Empty() {
		return
	}
	for _, it := range l.items {
		s.FillRect(toSurface(it.Swatch), it.Color)
		s.DrawText(it.Name, st.LegendFont, st.AxisStroke.Color, it.Label.X, it.Label.Y, false)
	}
}

func toSurface(r geom.Rect) surface.Rect {
	return surface.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}
