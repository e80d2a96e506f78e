package chart

import (
	"fmt"
	"image/color"

	"github.com/matzehuels/chartframe/pkg/chart/axis"
	"github.com/matzehuels/chartframe/pkg/chart/geom"
	"github.com/matzehuels/chartframe/pkg/chart/style"
	"github.com/matzehuels/chartframe/pkg/chart/surface"
	"github.com/matzehuels/chartframe/pkg/errors"
)

// Series is one data series. Only its extents and name are kept.
type Series struct {
	Name  string
	X     []float64
	Y     []float64
	Color color.RGBA
}

// Chart is a single Cartesian chart with one X and one Y axis.
type Chart struct {
	// Title is drawn centred above the plot. Empty hides it.
	Title  string
	Axes   *axis.Pair
	Plot   *Plot
	Legend *Legend

	canvas      geom.Size
	style       style.Style
	titleBounds geom.Rect
	laidOut     bool
}

// Option configures a Chart.
type Option func(*Chart)

// WithTitle sets the chart title.
func WithTitle(title string) Option {
	return func(c *Chart) { c.Title = title }
}

// WithStyle replaces the default style. Zero fields fall back to defaults.
func WithStyle(st style.Style) Option {
	return func(c *Chart) { c.style = st.WithDefaults() }
}

// New returns an empty chart for a width x height canvas.
func New(width, height int, opts ...Option) (*Chart, error) {
	if err := errors.ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	c := &Chart{
		Axes:   axis.NewPair(),
		Plot:   &Plot{},
		Legend: &Legend{Visible: true},
		canvas: geom.Size{W: width, H: height},
		style:  style.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Style returns the style used for layout and paint.
func (c *Chart) Style() style.Style { return c.style }

// Canvas returns the canvas size.
func (c *Chart) Canvas() geom.Size { return c.canvas }

// Resize changes the canvas. The next Layout recomputes every rectangle.
func (c *Chart) Resize(width, height int) error {
	if err := errors.ValidateDimensions(width, height); err != nil {
		return err
	}
	c.canvas = geom.Size{W: width, H: height}
	c.laidOut = false
	return nil
}

// AddSeries folds the extents of s into the axis ranges and adds a legend
// entry when s is named. NaN and infinite values are rejected before any
// axis is touched.
func (c *Chart) AddSeries(s Series) error {
	if len(s.X) != len(s.Y) {
		return errors.New(errors.ErrCodeInvalidInput,
			"series %q: %d x values but %d y values", s.Name, len(s.X), len(s.Y))
	}
	if err := errors.ValidateFinite(seriesField(s.Name, "x"), s.X...); err != nil {
		return err
	}
	if err := errors.ValidateFinite(seriesField(s.Name, "y"), s.Y...); err != nil {
		return err
	}
	if len(s.X) > 0 {
		lo, hi := extent(s.X)
		c.Axes.X.AddMinMax(lo, hi)
		lo, hi = extent(s.Y)
		c.Axes.Y.AddMinMax(lo, hi)
	}
	if s.Name != "" {
		c.Legend.add(s.Name, s.Color)
	}
	c.laidOut = false
	return nil
}

// AddExtent widens the axis ranges without a series, e.g. to pin the
// origin into view.
func (c *Chart) AddExtent(xMin, xMax, yMin, yMax float64) error {
	if err := errors.ValidateMinMax("x extent", xMin, xMax); err != nil {
		return err
	}
	if err := errors.ValidateMinMax("y extent", yMin, yMax); err != nil {
		return err
	}
	c.Axes.X.AddMinMax(xMin, xMax)
	c.Axes.Y.AddMinMax(yMin, yMax)
	c.laidOut = false
	return nil
}

// Layout computes every rectangle of the chart and returns a snapshot.
// A nil measurer uses surface.Estimate.
func (c *Chart) Layout(m surface.Measurer) Layout {
	if m == nil {
		m = surface.Estimate{}
	}
	st := c.style
	c.titleBounds = c.layoutTitle(m, st)
	below := st.ChartPadding
	if c.titleBounds.H > 0 {
		below = c.titleBounds.Bottom() + st.ChartPadding
	}
	c.Legend.layout(m, st, c.canvas, below)

	ctx := axis.Context{
		Canvas:       c.canvas,
		TitleBounds:  c.titleBounds,
		LegendBounds: c.Legend.Bounds(),
		Style:        st,
		Measurer:     m,
	}
	c.Plot.layout(c.Axes.Layout(ctx), c.Axes)
	c.laidOut = true
	return c.snapshot()
}

// layoutTitle centres the title horizontally at the top of the canvas.
func (c *Chart) layoutTitle(m surface.Measurer, st style.Style) geom.Rect {
	if c.Title == "" {
		return geom.Rect{}
	}
	tb := m.MeasureText(c.Title, st.ChartTitleFont)
	return geom.Rect{X: (c.canvas.W - tb.W) / 2, Y: st.ChartPadding, W: tb.W, H: tb.H}
}

// TitleBounds returns the chart title rectangle from the last layout.
func (c *Chart) TitleBounds() geom.Rect { return c.titleBounds }

// Paint draws the laid out chart: grid and border first, then axes, title
// and legend.
func (c *Chart) Paint(s surface.Surface) {
	if !c.laidOut {
		return
	}
	st := c.style
	c.Plot.Paint(s, st)
	c.Axes.Y.Paint(s)
	c.Axes.X.Paint(s)
	if c.Title != "" {
		s.DrawText(c.Title, st.ChartTitleFont, st.AxisStroke.Color, c.titleBounds.X, c.titleBounds.Y, false)
	}
	c.Legend.paint(s, st)
}

func seriesField(name, field string) string {
	if name == "" {
		return "series " + field
	}
	return fmt.Sprintf("series %q %s", name, field)
}

func extent(vs []float64) (lo, hi float64) {
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
