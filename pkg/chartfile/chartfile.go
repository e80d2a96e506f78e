// Package chartfile reads chart definitions from TOML or JSON.
//
// A chart file mirrors [pipeline.Options]:
//
//	title  = "Latency"
//	width  = 800
//	height = 600
//
//	[x_axis]
//	title = "time (s)"
//
//	[y_axis]
//	title   = "ms"
//	include = [0]
//
//	[[series]]
//	name = "p50"
//	x    = [0, 1, 2, 3]
//	y    = [12, 14, 11, 13]
//
//	[style]
//	show_grid = false
//
// Decoding starts from the default style, so a file only lists the
// constants it changes. Unknown keys are rejected.
package chartfile

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartframe/pkg/chart/style"
	"github.com/matzehuels/chartframe/pkg/errors"
	"github.com/matzehuels/chartframe/pkg/observability"
	"github.com/matzehuels/chartframe/pkg/pipeline"
)

// Supported file formats.
const (
	FormatTOML = "toml"
	FormatJSON = "json"
)

// FormatOf returns the chart file format for path from its extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "%s: unknown chart file extension (want .toml or .json)", path)
}

// Load reads and decodes the chart file at path.
func Load(ctx context.Context, path string) (pipeline.Options, error) {
	format, err := FormatOf(path)
	if err != nil {
		return pipeline.Options{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return pipeline.Options{}, errors.Wrap(errors.ErrCodeNotFound, err, "chart file %s", path)
		}
		return pipeline.Options{}, err
	}
	defer f.Close()
	return Decode(ctx, f, format)
}

// Decode reads one chart definition in the given format and validates it
// for layout.
func Decode(ctx context.Context, r io.Reader, format string) (opts pipeline.Options, err error) {
	hooks := observability.Pipeline()
	hooks.OnDecodeStart(ctx, format)
	start := time.Now()
	defer func() {
		hooks.OnDecodeComplete(ctx, format, len(opts.Series), time.Since(start), err)
	}()

	opts.Style = style.Default()
	switch format {
	case FormatTOML:
		err = decodeTOML(r, &opts)
	case FormatJSON:
		err = decodeJSON(r, &opts)
	default:
		err = errors.New(errors.ErrCodeInvalidFormat, "unknown chart file format %q", format)
	}
	if err != nil {
		return pipeline.Options{}, err
	}
	if err = opts.ValidateForLayout(); err != nil {
		return pipeline.Options{}, err
	}
	// Validation installs a discard logger; callers supply their own.
	opts.Logger = nil
	return opts, nil
}

func decodeTOML(r io.Reader, opts *pipeline.Options) error {
	md, err := toml.NewDecoder(r).Decode(opts)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeJSON(r io.Reader, opts *pipeline.Options) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(opts); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode json")
	}
	return nil
}
