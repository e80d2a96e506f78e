package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/matzehuels/chartframe/pkg/chart"
	"github.com/matzehuels/chartframe/pkg/render/raster"
)

// MarshalLayout encodes a layout the way the json format and the cache
// store it.
func MarshalLayout(l chart.Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout decodes a layout written by MarshalLayout.
func UnmarshalLayout(data []byte) (chart.Layout, error) {
	var l chart.Layout
	err := json.Unmarshal(data, &l)
	return l, err
}

// RenderChart generates output artifacts for a laid out chart in the
// requested formats.
func RenderChart(c *chart.Chart, l chart.Layout, formats []string) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(formats))
	for _, format := range formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = MarshalLayout(l)
		case FormatPNG:
			data, err = renderPNG(c)
		default:
			err = ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderPNG(c *chart.Chart) ([]byte, error) {
	size := c.Canvas()
	s := raster.New(size.W, size.H)
	c.Paint(s)
	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
