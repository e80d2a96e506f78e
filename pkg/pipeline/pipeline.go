// Package pipeline provides the layout and render pipeline for chartframe.
//
// This package implements the decode → layout → render path shared by the
// CLI and the HTTP service, so both entry points produce byte-identical
// output for the same chart definition and share cache entries.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Layout: build a chart from [Options] and compute its geometry
//  2. Render: paint the laid out chart into the requested formats (PNG, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Title:   "Latency",
//	    Series:  []pipeline.SeriesOptions{{Name: "p50", X: xs, Y: ys}},
//	    Formats: []string{"png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
//
// Run individual stages:
//
//	// Layout only
//	layout, err := runner.Layout(ctx, opts)
//
//	// Render a layout computed earlier
//	artifacts, err := runner.Render(ctx, opts, layout)
package pipeline

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartframe/pkg/cache"
	"github.com/matzehuels/chartframe/pkg/chart"
	"github.com/matzehuels/chartframe/pkg/chart/style"
	"github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/fonts"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600

	// DefaultMeasurer is the default text measurer.
	DefaultMeasurer = MeasurerFont
)

// Text measurers. "font" measures with the embedded fonts used for PNG
// output; "estimate" uses glyph ratios and needs no font data.
const (
	MeasurerFont     = "font"
	MeasurerEstimate = "estimate"
)

// Format constants for output formats.
const (
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatPNG:  true,
	FormatJSON: true,
}

// ValidMeasurers is the set of supported text measurers.
var ValidMeasurers = map[string]bool{
	MeasurerFont:     true,
	MeasurerEstimate: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// SeriesOptions is one data series of a chart definition.
type SeriesOptions struct {
	Name string    `json:"name,omitempty" toml:"name"`
	X    []float64 `json:"x" toml:"x"`
	Y    []float64 `json:"y" toml:"y"`
	// Color is a hex colour such as "#1f77b4". Empty picks from the palette.
	Color string `json:"color,omitempty" toml:"color"`
}

// AxisOptions configures one axis.
type AxisOptions struct {
	Title     string `json:"title,omitempty" toml:"title"`
	HideTicks bool   `json:"hide_ticks,omitempty" toml:"hide_ticks"`
	HideLine  bool   `json:"hide_line,omitempty" toml:"hide_line"`
	// Include lists values the axis range must cover, e.g. 0.
	Include []float64 `json:"include,omitempty" toml:"include"`
}

// Options contains all configuration for the chart pipeline.
// This struct supports JSON and TOML serialization for chart files and
// API requests.
type Options struct {
	// Chart definition
	Title      string          `json:"title,omitempty" toml:"title"`
	Width      int             `json:"width,omitempty" toml:"width"`
	Height     int             `json:"height,omitempty" toml:"height"`
	XAxis      AxisOptions     `json:"x_axis" toml:"x_axis"`
	YAxis      AxisOptions     `json:"y_axis" toml:"y_axis"`
	Series     []SeriesOptions `json:"series" toml:"series"`
	HideLegend bool            `json:"hide_legend,omitempty" toml:"hide_legend"`
	Style      style.Style     `json:"style" toml:"style"`

	// Layout options
	Measurer string `json:"measurer,omitempty" toml:"measurer"`

	// Render options
	Formats []string `json:"formats,omitempty" toml:"formats"`

	// Runtime options (not serialized)
	Refresh bool        `json:"-" toml:"-"`
	Logger  *log.Logger `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies this run in logs and response headers.
	ID string

	// ChartHash is the content hash of the chart definition.
	ChartHash string

	// Layout is the computed chart geometry.
	Layout chart.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	SeriesCount int
	TickCount   int
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: png, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateMeasurer checks that a measurer name is valid.
func ValidateMeasurer(m string) error {
	if !ValidMeasurers[m] {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid measurer: %q (must be one of: font, estimate)", m)
	}
	return nil
}

// ParseFormats splits a comma separated format list ("png,json").
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the chart definition and applies defaults
// for the full pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.Measurer == "" {
		o.Measurer = DefaultMeasurer
	}
	// A zero Style is unconfigured, not "grid off".
	if o.Style == (style.Style{}) {
		o.Style = style.Default()
	}
	o.Style = o.Style.WithDefaults()
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := errors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if err := ValidateMeasurer(o.Measurer); err != nil {
		return err
	}
	for _, f := range []style.Font{o.Style.ChartTitleFont, o.Style.AxisTitleFont, o.Style.TickLabelFont, o.Style.LegendFont} {
		if !fonts.Known(f.Family) {
			return errors.New(errors.ErrCodeUnsupported, "unknown font family %q", f.Family)
		}
	}
	if err := errors.ValidateFinite("x_axis.include", o.XAxis.Include...); err != nil {
		return err
	}
	if err := errors.ValidateFinite("y_axis.include", o.YAxis.Include...); err != nil {
		return err
	}
	for i, s := range o.Series {
		if len(s.X) != len(s.Y) {
			return errors.New(errors.ErrCodeInvalidInput, "series[%d] %q: %d x values but %d y values", i, s.Name, len(s.X), len(s.Y))
		}
		if err := errors.ValidateFinite(fmt.Sprintf("series[%d].x", i), s.X...); err != nil {
			return err
		}
		if err := errors.ValidateFinite(fmt.Sprintf("series[%d].y", i), s.Y...); err != nil {
			return err
		}
		if _, err := parseColor(s.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "series[%d] %q color", i, s.Name)
		}
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// definition is the part of Options that determines the layout.
type definition struct {
	Title      string          `json:"title"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	XAxis      AxisOptions     `json:"x_axis"`
	YAxis      AxisOptions     `json:"y_axis"`
	Series     []SeriesOptions `json:"series"`
	HideLegend bool            `json:"hide_legend"`
	Style      style.Style     `json:"style"`
}

// Hash returns the content hash of the chart definition. Render formats
// and runtime options do not contribute.
func (o *Options) Hash() string {
	data, _ := json.Marshal(definition{
		Title:      o.Title,
		Width:      o.Width,
		Height:     o.Height,
		XAxis:      o.XAxis,
		YAxis:      o.YAxis,
		Series:     o.Series,
		HideLegend: o.HideLegend,
		Style:      o.Style,
	})
	return cache.Hash(data)
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Width:    o.Width,
		Height:   o.Height,
		Measurer: o.Measurer,
	}
}

// RenderHash returns the content hash of everything that reaches the
// pixels: the chart definition plus the stroke colours, which chart files
// cannot set and so are left out of Hash.
func (o *Options) RenderHash() string {
	data, _ := json.Marshal(struct {
		Chart   string        `json:"chart"`
		Strokes [3]color.RGBA `json:"strokes"`
	}{
		Chart:   o.Hash(),
		Strokes: [3]color.RGBA{o.Style.AxisStroke.Color, o.Style.TickStroke.Color, o.Style.GridStroke.Color},
	})
	return cache.Hash(data)
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format, RenderHash: o.RenderHash()}
}
