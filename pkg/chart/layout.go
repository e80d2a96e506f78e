package chart

import (
	"github.com/matzehuels/chartframe/pkg/chart/axis"
	"github.com/matzehuels/chartframe/pkg/chart/geom"
)

// Layout is a snapshot of every rectangle a chart layout produced.
// It contains no floating point infinities and encodes to JSON as is.
type Layout struct {
	Canvas geom.Size    `json:"canvas"`
	Title  geom.Rect    `json:"title"`
	Legend LegendLayout `json:"legend"`
	X      AxisLayout   `json:"x_axis"`
	Y      AxisLayout   `json:"y_axis"`
	Plot   PlotLayout   `json:"plot"`
}

// LegendLayout is the legend part of a Layout.
type LegendLayout struct {
	Bounds geom.Rect    `json:"bounds"`
	Items  []LegendItem `json:"items,omitempty"`
}

// AxisLayout is one axis of a Layout.
type AxisLayout struct {
	Title     string        `json:"title,omitempty"`
	State     string        `json:"state"`
	PaintZone geom.Rect     `json:"paint_zone"`
	Bounds    geom.Rect     `json:"bounds"`
	TitleBox  geom.Rect     `json:"title_box"`
	TickBox   geom.Rect     `json:"tick_box"`
	LineBox   geom.Rect     `json:"line_box"`
	Step      float64       `json:"step"`
	Ticks     []axis.Placed `json:"ticks"`
}

// PlotLayout is the plot part of a Layout.
type PlotLayout struct {
	Rect  geom.Rect `json:"rect"`
	GridX []int     `json:"grid_x,omitempty"`
	GridY []int     `json:"grid_y,omitempty"`
}

func (c *Chart) snapshot() Layout {
	return Layout{
		Canvas: c.canvas,
		Title:  c.titleBounds,
		Legend: LegendLayout{Bounds: c.Legend.Bounds(), Items: c.Legend.Items()},
		X:      axisLayout(c.Axes.X),
		Y:      axisLayout(c.Axes.Y),
		Plot: PlotLayout{
			Rect:  c.Plot.Rect(),
			GridX: append([]int(nil), c.Plot.GridX()...),
			GridY: append([]int(nil), c.Plot.GridY()...),
		},
	}
}

func axisLayout(a *axis.Axis) AxisLayout {
	al := AxisLayout{
		State:     a.State().String(),
		PaintZone: a.PaintZone(),
		Bounds:    a.Bounds(),
		TitleBox:  a.Title.Bounds(),
		TickBox:   a.Tick.Bounds(),
		LineBox:   a.Line.Bounds(),
		Step:      a.Ticks().Step,
		Ticks:     a.Tick.Placed(),
	}
	if a.Title.Visible {
		al.Title = a.Title.Text
	}
	return al
}
