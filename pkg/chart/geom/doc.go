// Package geom holds the value types shared by the chart layout engine:
// integer pixel rectangles, accumulate-only data ranges and the axis
// direction tag.
//
// All types are plain values. A [Rect] is never mutated in place by the
// layout code; every layout pass replaces it wholesale.
package geom
