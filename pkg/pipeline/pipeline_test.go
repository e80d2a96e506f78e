package pipeline

import (
	"math"
	"reflect"
	"testing"

	"github.com/matzehuels/chartframe/pkg/chart/style"
	"github.com/matzehuels/chartframe/pkg/errors"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"png", false},
		{"json", false},
		{"svg", true},
		{"PNG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v", tt.format, errors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"png", "json"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"png", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateMeasurer(t *testing.T) {
	tests := []struct {
		measurer string
		wantErr  bool
	}{
		{"font", false},
		{"estimate", false},
		{"invalid", true},
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateMeasurer(tt.measurer)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateMeasurer(%q) error = %v, wantErr %v", tt.measurer, err, tt.wantErr)
		}
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"png", []string{"png"}},
		{"png,json", []string{"png", "json"}},
		{" png , json ,", []string{"png", "json"}},
		{"", nil},
	}

	for _, tt := range tests {
		if got := ParseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSetDefaults(t *testing.T) {
	var o Options
	o.SetLayoutDefaults()
	o.SetRenderDefaults()

	if o.Width != DefaultWidth || o.Height != DefaultHeight {
		t.Errorf("canvas = %dx%d, want %dx%d", o.Width, o.Height, DefaultWidth, DefaultHeight)
	}
	if o.Measurer != DefaultMeasurer {
		t.Errorf("Measurer = %q, want %q", o.Measurer, DefaultMeasurer)
	}
	if !reflect.DeepEqual(o.Formats, []string{FormatPNG}) {
		t.Errorf("Formats = %v, want [png]", o.Formats)
	}
	if o.Style.ChartPadding != style.DefaultChartPadding {
		t.Errorf("Style.ChartPadding = %d, want default", o.Style.ChartPadding)
	}
	if !o.Style.ShowGrid {
		t.Error("an unset Style should show the grid like style.Default")
	}
	if o.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
}

func TestSetDefaultsKeepsExplicitStyle(t *testing.T) {
	o := Options{Style: style.Style{TickPadding: 7}}
	o.SetLayoutDefaults()
	if o.Style.TickPadding != 7 {
		t.Errorf("TickPadding = %d, want 7", o.Style.TickPadding)
	}
	if o.Style.ShowGrid {
		t.Error("an explicit Style keeps ShowGrid as given")
	}
}

func TestValidateForLayout(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{
			name: "valid",
			opts: Options{Series: []SeriesOptions{{Name: "a", X: []float64{1, 2}, Y: []float64{3, 4}, Color: "#ff0000"}}},
		},
		{
			name: "negative width",
			opts: Options{Width: -1},
			code: errors.ErrCodeInvalidDimensions,
		},
		{
			name: "length mismatch",
			opts: Options{Series: []SeriesOptions{{X: []float64{1}, Y: nil}}},
			code: errors.ErrCodeInvalidInput,
		},
		{
			name: "nan",
			opts: Options{Series: []SeriesOptions{{X: []float64{math.NaN()}, Y: []float64{1}}}},
			code: errors.ErrCodeInvalidRange,
		},
		{
			name: "infinite include",
			opts: Options{YAxis: AxisOptions{Include: []float64{math.Inf(-1)}}},
			code: errors.ErrCodeInvalidRange,
		},
		{
			name: "bad color",
			opts: Options{Series: []SeriesOptions{{Color: "red"}}},
			code: errors.ErrCodeInvalidInput,
		},
		{
			name: "bad measurer",
			opts: Options{Measurer: "ruler"},
			code: errors.ErrCodeInvalidConfig,
		},
		{
			name: "unknown font",
			opts: Options{Style: style.Style{TickLabelFont: style.Font{Family: "comic", Size: 10}}},
			code: errors.ErrCodeUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateForLayout()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestValidateForRenderRejectsFormat(t *testing.T) {
	o := Options{Formats: []string{"pdf"}}
	if err := o.ValidateForRender(); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestHashIgnoresRenderOptions(t *testing.T) {
	a := Options{Title: "t", Series: []SeriesOptions{{X: []float64{1}, Y: []float64{2}}}}
	b := a
	b.Formats = []string{"json"}
	b.Refresh = true
	if a.Hash() != b.Hash() {
		t.Error("formats and refresh should not change the chart hash")
	}

	c := a
	c.Title = "other"
	if a.Hash() == c.Hash() {
		t.Error("title should change the chart hash")
	}
}

func TestParseColor(t *testing.T) {
	c, err := parseColor("#1f77b4")
	if err != nil {
		t.Fatalf("parseColor error: %v", err)
	}
	if c.R != 0x1f || c.G != 0x77 || c.B != 0xb4 || c.A != 0xff {
		t.Errorf("parseColor = %+v", c)
	}

	if c, err := parseColor(""); err != nil || c.A != 0 {
		t.Errorf("empty colour = %+v, %v; want zero", c, err)
	}
}
