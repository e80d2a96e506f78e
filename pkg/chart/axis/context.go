package axis

import (
	"github.com/matzehuels/chartframe/pkg/chart/geom"
	"github.com/matzehuels/chartframe/pkg/chart/style"
	"github.com/matzehuels/chartframe/pkg/chart/surface"
)

// Context is the chart-level geometry one layout pass reads. It is passed
// by value and never modified by the axes.
type Context struct {
	Canvas       geom.Size
	TitleBounds  geom.Rect
	LegendBounds geom.Rect
	Style        style.Style
	Measurer     surface.Measurer
}

func (c Context) measure(text string, f style.Font) surface.TextBounds {
	if c.Measurer == nil {
		return surface.Estimate{}.MeasureText(text, f)
	}
	return c.Measurer.MeasureText(text, f)
}

// yInput is what the Y axis may know about the X axis.
type yInput struct {
	xSizeHint int
}

// xInput is what the X axis may know about the Y axis.
type xInput struct {
	yBounds   geom.Rect
	xSizeHint int
}
