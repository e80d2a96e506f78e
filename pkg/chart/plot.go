package chart

import (
	"github.com/matzehuels/chartframe/pkg/chart/axis"
	"github.com/matzehuels/chartframe/pkg/chart/geom"
	"github.com/matzehuels/chartframe/pkg/chart/style"
	"github.com/matzehuels/chartframe/pkg/chart/surface"
)

// Plot is the data area between the axes.
type Plot struct {
	rect  geom.Rect
	gridX []int
	gridY []int
}

// Rect returns the plot area from the last layout.
func (p *Plot) Rect() geom.Rect { return p.rect }

// GridX returns the x positions of the vertical grid lines.
func (p *Plot) GridX() []int { return p.gridX }

// GridY returns the y positions of the horizontal grid lines.
func (p *Plot) GridY() []int { return p.gridY }

func (p *Plot) layout(rect geom.Rect, axes *axis.Pair) {
	p.rect = rect
	p.gridX = p.gridX[:0]
	for _, t := range axes.X.Tick.Placed() {
		p.gridX = append(p.gridX, t.Pos)
	}
	p.gridY = p.gridY[:0]
	for _, t := range axes.Y.Tick.Placed() {
		p.gridY = append(p.gridY, t.Pos)
	}
}

// Paint draws the grid, when enabled, and the plot border.
func (p *Plot) Paint(s surface.Surface, st style.Style) {
	if p.rect.Empty() {
		return
	}
	r := p.rect
	if st.ShowGrid {
		for _, x := range p.gridX {
			s.DrawLine(x, r.Y, x, r.Bottom(), st.GridStroke)
		}
		for _, y := range p.gridY {
			s.DrawLine(r.X, y, r.Right(), y, st.GridStroke)
		}
	}
	s.DrawRect(toSurface(r), st.AxisStroke)
}
