// Package axis lays out and paints the two axes of a Cartesian chart.
//
// # Negotiation order
//
// Each axis's size depends on the other's: the Y axis needs to know how
// much height the X axis takes, and the X axis needs to know how wide the
// Y axis is. [Pair.Layout] breaks the cycle with a fixed two-pass order:
//
//  1. The X axis computes a size hint from its fonts and style constants
//     only (a sample glyph stands in for the real tick labels).
//  2. The Y axis is laid out using that hint: paint zone first, then its
//     sub-components, then its final bounds.
//  3. The X axis is laid out using the Y axis final bounds.
//
// The plot area is whatever the two axes leave over ([Pair.PlotArea]).
//
// Every step reads chart-level geometry from an immutable [Context]; axes
// never hold references to each other.
//
// # Visibility
//
// Titles, ticks and lines can be hidden. A hidden component has a size of
// exactly zero in every sum; see [Title.Size], [Tick.Size] and [Line.Size].
package axis
