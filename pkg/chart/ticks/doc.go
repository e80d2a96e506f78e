// Package ticks picks human-readable tick values for an axis.
//
// A [Generator] turns a data [geom.Range] and the pixel length available
// to the axis into a [Ticks] value: round-number positions spaced so that
// labels do not crowd each other, together with the [Format] used to
// print them. Steps are drawn from {1, 2, 2.5, 5} x 10^k.
//
// The ticks always bracket the data: the first value is <= Range.Min and
// the last value is >= Range.Max. Degenerate input (an empty range, a
// single value, non-finite bounds or a non-positive pixel length) yields a
// single tick instead of an error.
//
// Generation is deterministic. Values are computed as index*step rather
// than by repeated addition, so the same input always produces the same
// sequence bit for bit.
//
//	g := ticks.Generator{MinSpacing: 40}
//	t := g.Generate(geom.Range{Min: 0.3, Max: 9.2}, 400)
//	for _, tk := range t.Values {
//	    fmt.Println(tk.Value, tk.Label)
//	}
package ticks
