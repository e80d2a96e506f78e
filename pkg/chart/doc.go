// Package chart assembles a two-axis Cartesian chart: title, legend, axes
// and plot area.
//
// # Overview
//
// A [Chart] is built once and laid out as often as needed:
//
//	c, err := chart.New(800, 600, chart.WithTitle("Latency"))
//	c.Axes.X.Title.SetText("time (s)")
//	c.Axes.Y.Title.SetText("ms")
//	err = c.AddSeries(chart.Series{Name: "p50", X: xs, Y: ys})
//	l := c.Layout(measurer)
//	c.Paint(surface)
//
// Series points are not retained. [Chart.AddSeries] validates the values,
// folds their extents into the axis ranges and registers a legend entry.
//
// # Layout order
//
// [Chart.Layout] measures the chart title and the legend first, hands their
// bounds to the axis negotiation (see package axis) and finally gives the
// remaining rectangle to the [Plot]. The result is a [Layout] snapshot that
// serialises to JSON.
//
// Painting never triggers layout. A chart that has not been laid out paints
// nothing.
package chart
