package pipeline

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/chartframe/pkg/chart"
	"github.com/matzehuels/chartframe/pkg/chart/axis"
	"github.com/matzehuels/chartframe/pkg/chart/surface"
	"github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/render/raster"
)

// BuildChart turns a validated chart definition into a chart ready for
// layout.
func BuildChart(opts Options) (*chart.Chart, error) {
	c, err := chart.New(opts.Width, opts.Height,
		chart.WithTitle(opts.Title),
		chart.WithStyle(opts.Style),
	)
	if err != nil {
		return nil, err
	}
	applyAxis(c.Axes.X, opts.XAxis)
	applyAxis(c.Axes.Y, opts.YAxis)
	c.Legend.Visible = !opts.HideLegend

	for i, s := range opts.Series {
		col, err := parseColor(s.Color)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "series[%d] %q color", i, s.Name)
		}
		if err := c.AddSeries(chart.Series{Name: s.Name, X: s.X, Y: s.Y, Color: col}); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func applyAxis(a *axis.Axis, o AxisOptions) {
	a.Title.SetText(o.Title)
	a.Tick.Visible = !o.HideTicks
	a.Line.Visible = !o.HideLine
	for _, v := range o.Include {
		a.AddMinMax(v, v)
	}
}

// MeasurerFor returns the text measurer named by m.
func MeasurerFor(m string) surface.Measurer {
	if m == MeasurerEstimate {
		return surface.Estimate{}
	}
	return raster.Measurer(nil)
}

// parseColor parses "#rrggbb". Empty yields the zero colour, which the
// legend replaces with a palette entry.
func parseColor(s string) (color.RGBA, error) {
	if s == "" {
		return color.RGBA{}, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
