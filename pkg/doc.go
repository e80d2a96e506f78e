// Package pkg provides the libraries behind chartframe, a layout engine for
// two-axis Cartesian charts.
//
// # Overview
//
// chartframe turns a chart definition (series, axis titles, canvas size) into
// the pixel geometry of every chart element and paints it onto a surface.
// The pkg directory is organized into four areas:
//
//  1. [chart] - The layout engine (ranges, ticks, axes, plot, legend)
//  2. [render/raster] - A PNG surface backed by fogleman/gg
//  3. [pipeline] - Cached layout and render orchestration
//  4. [cache], [errors], [observability] - Shared infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	chart file (TOML / JSON)
//	         ↓
//	    [chartfile] package (decode + validate)
//	         ↓
//	    [pipeline] package (options, cache lookup)
//	         ↓
//	    [chart] package (Y axis → X axis → plot)
//	         ↓
//	    [render/raster] package (PNG) or layout JSON
//
// # Layout Order
//
// The Y axis is laid out first using only the X axis size hint, the X axis
// next using the final Y axis bounds, and the plot fills what remains:
//
//	c, _ := chart.New(800, 600, chart.WithTitle("Latency"))
//	c.Axes.Y.Title.SetText("ms")
//	_ = c.AddSeries(chart.Series{Name: "p50", X: xs, Y: ys})
//	l := c.Layout(nil)
//	fmt.Println(l.Plot.Rect)
//
// # Main Packages
//
// [chart/geom] - Ranges, rectangles and sizes.
//
// [chart/ticks] - Round-number tick generation ({1, 2, 2.5, 5} x 10^k).
//
// [chart/axis] - Axis components (title, ticks, line) and the two-axis
// negotiation in [axis.Pair].
//
// [chart/style] - The immutable layout constants and fonts.
//
// [chart/surface] - Text measurement and drawing interfaces, with a
// font-free estimate and a recording surface for tests.
//
// [fonts] - Embedded Go fonts parsed with golang/freetype.
//
// [cache] - File, Redis and null caches with a content-addressed keyer.
//
// # Testing
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/chart/...        # Layout engine only
//	go test -run Example ./pkg/... # Examples only
//
// [chart]: https://pkg.go.dev/github.com/matzehuels/chartframe/pkg/chart
// [chart/geom]: https://pkg.go.dev/github.com/matzehuels/chartframe/pkg/chart/geom
// [chart/ticks]: https://pkg.go.dev/github.com/matzehuels/chartframe/pkg/chart/ticks
// [chart/axis]: https://pkg.go.dev/github.com/matzehuels/chartframe/pkg/chart/axis
// [chart/style]: https://pkg.go.dev/github.com/matzehuels/chartframe/pkg/chart/style
// [chart/surface]: https://pkg.go.dev/github.com/matzehuels/chartframe/pkg/chart/surface
// [axis.Pair]: https://pkg.go.dev/github.com/matzehuels/chartframe/pkg/chart/axis#Pair
// [render/raster]: https://pkg.go.dev/github.com/matzehuels/chartframe/pkg/render/raster
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/chartframe/pkg/pipeline
// [fonts]: https://pkg.go.dev/github.com/matzehuels/chartframe/pkg/fonts
// [cache]: https://pkg.go.dev/github.com/matzehuels/chartframe/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/chartframe/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/chartframe/pkg/observability
//
// [chartfile]: https://pkg.go.dev/github.com/matzehuels/chartframe/pkg/chartfile
package pkg
