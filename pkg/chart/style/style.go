// Package style holds the layout constants and fonts the chart engine reads
// during layout and paint.
//
// A Style is passed by value into every layout call so tests can vary any
// constant without touching package state.
package style

import "image/color"

// Default layout constants.
const (
	DefaultChartPadding      = 10
	DefaultPlotPadding       = 3
	DefaultAxisTitlePadding  = 10
	DefaultTickPadding       = 4
	DefaultTickLength        = 3
	DefaultYAxisNominalWidth = 80
	DefaultTickSpacing       = 40
	DefaultLegendSwatch      = 10
)

// Font selects a face for measuring and drawing text.
type Font struct {
	Family string  `toml:"family" json:"family"`
	Size   float64 `toml:"size" json:"size"`
	Bold   bool    `toml:"bold" json:"bold,omitempty"`
}

// Stroke describes a line.
type Stroke struct {
	Width float64    `toml:"width" json:"width"`
	Color color.RGBA `toml:"-" json:"-"`
}

// Style is the immutable set of constants used by one layout pass.
type Style struct {
	ChartPadding      int `toml:"chart_padding" json:"chart_padding"`
	PlotPadding       int `toml:"plot_padding" json:"plot_padding"`
	AxisTitlePadding  int `toml:"axis_title_padding" json:"axis_title_padding"`
	TickPadding       int `toml:"tick_padding" json:"tick_padding"`
	TickLength        int `toml:"tick_length" json:"tick_length"`
	YAxisNominalWidth int `toml:"y_axis_nominal_width" json:"y_axis_nominal_width"`
	// TickSpacing is the minimum number of pixels between two major ticks.
	TickSpacing  int `toml:"tick_spacing" json:"tick_spacing"`
	LegendSwatch int `toml:"legend_swatch" json:"legend_swatch"`

	ChartTitleFont Font `toml:"chart_title_font" json:"chart_title_font"`
	AxisTitleFont  Font `toml:"axis_title_font" json:"axis_title_font"`
	TickLabelFont  Font `toml:"tick_label_font" json:"tick_label_font"`
	LegendFont     Font `toml:"legend_font" json:"legend_font"`

	AxisStroke Stroke `toml:"axis_stroke" json:"axis_stroke"`
	TickStroke Stroke `toml:"tick_stroke" json:"tick_stroke"`
	GridStroke Stroke `toml:"grid_stroke" json:"grid_stroke"`

	ShowGrid bool `toml:"show_grid" json:"show_grid"`

	// LegacyXAxisHeight computes the X axis height as
	// "title if visible, otherwise tick+line" instead of the full sum.
	LegacyXAxisHeight bool `toml:"legacy_x_axis_height" json:"legacy_x_axis_height,omitempty"`
}

var (
	black     = color.RGBA{A: 0xff}
	lightGray = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
)

// Default returns the stock style.
func Default() Style {
	return Style{
		ChartPadding:      DefaultChartPadding,
		PlotPadding:       DefaultPlotPadding,
		AxisTitlePadding:  DefaultAxisTitlePadding,
		TickPadding:       DefaultTickPadding,
		TickLength:        DefaultTickLength,
		YAxisNominalWidth: DefaultYAxisNominalWidth,
		TickSpacing:       DefaultTickSpacing,
		LegendSwatch:      DefaultLegendSwatch,

		ChartTitleFont: Font{Family: "sans", Size: 14, Bold: true},
		AxisTitleFont:  Font{Family: "sans", Size: 12},
		TickLabelFont:  Font{Family: "sans", Size: 10},
		LegendFont:     Font{Family: "sans", Size: 10},

		AxisStroke: Stroke{Width: 1, Color: black},
		TickStroke: Stroke{Width: 1, Color: black},
		GridStroke: Stroke{Width: 1, Color: lightGray},

		ShowGrid: true,
	}
}

// WithDefaults fills every zero field of s from Default.
// Booleans are left as they are.
func (s Style) WithDefaults() Style {
	d := Default()
	fillInt(&s.ChartPadding, d.ChartPadding)
	fillInt(&s.PlotPadding, d.PlotPadding)
	fillInt(&s.AxisTitlePadding, d.AxisTitlePadding)
	fillInt(&s.TickPadding, d.TickPadding)
	fillInt(&s.TickLength, d.TickLength)
	fillInt(&s.YAxisNominalWidth, d.YAxisNominalWidth)
	fillInt(&s.TickSpacing, d.TickSpacing)
	fillInt(&s.LegendSwatch, d.LegendSwatch)
	fillFont(&s.ChartTitleFont, d.ChartTitleFont)
	fillFont(&s.AxisTitleFont, d.AxisTitleFont)
	fillFont(&s.TickLabelFont, d.TickLabelFont)
	fillFont(&s.LegendFont, d.LegendFont)
	fillStroke(&s.AxisStroke, d.AxisStroke)
	fillStroke(&s.TickStroke, d.TickStroke)
	fillStroke(&s.GridStroke, d.GridStroke)
	return s
}

func fillInt(v *int, d int) {
	if *v == 0 {
		*v = d
	}
}

func fillFont(f *Font, d Font) {
	if f.Family == "" {
		f.Family = d.Family
	}
	if f.Size == 0 {
		f.Size = d.Size
	}
}

func fillStroke(s *Stroke, d Stroke) {
	if s.Width == 0 {
		s.Width = d.Width
	}
	if s.Color == (color.RGBA{}) {
		s.Color = d.Color
	}
}
