// Package fonts provides the font faces used to measure and draw chart text.
//
// The Go font family is compiled into the binary through
// golang.org/x/image/font/gofont, so rendering needs no system fonts and
// text metrics are identical on every machine.
//
// Parsed fonts are read-only and shared by the whole process (see [Parsed]).
// Sized faces are not: a truetype face keeps a glyph buffer it rewrites on
// every measurement, so each [Faces] cache, and every face it returns,
// belongs to one goroutine. Build one per surface or layout.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/matzehuels/chartframe/pkg/chart/style"
	"github.com/matzehuels/chartframe/pkg/errors"
)

// Family names accepted in style.Font.Family. An empty family means Sans.
const (
	Sans = "sans"
	Mono = "mono"
)

// DPI at which faces are built. At 72 DPI one point is one pixel, so
// style.Font.Size is a pixel size.
const DPI = 72

// Known reports whether family names an embedded font.
func Known(family string) bool {
	return family == "" || family == Sans || family == Mono
}

// TTF returns the embedded TrueType data for family.
func TTF(family string, bold bool) ([]byte, error) {
	switch family {
	case "", Sans:
		if bold {
			return gobold.TTF, nil
		}
		return goregular.TTF, nil
	case Mono:
		if bold {
			return gomonobold.TTF, nil
		}
		return gomono.TTF, nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unknown font family %q", family)
}

type fontKey struct {
	family string
	bold   bool
}

type faceKey struct {
	fontKey
	size float64
}

var parsed = struct {
	sync.Mutex
	fonts map[fontKey]*truetype.Font
}{fonts: make(map[fontKey]*truetype.Font)}

// Parsed returns the parsed embedded font for family, parsing it once per
// process. The result is safe to share between goroutines.
func Parsed(family string, bold bool) (*truetype.Font, error) {
	k := fontKey{family: family, bold: bold}
	if k.family == "" {
		k.family = Sans
	}

	parsed.Lock()
	defer parsed.Unlock()
	if ft, ok := parsed.fonts[k]; ok {
		return ft, nil
	}
	data, err := TTF(k.family, k.bold)
	if err != nil {
		return nil, err
	}
	ft, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse font %s", k.family)
	}
	parsed.fonts[k] = ft
	return ft, nil
}

// Faces caches sized faces for one goroutine.
type Faces struct {
	faces map[faceKey]font.Face
}

// NewFaces returns an empty face cache.
func NewFaces() *Faces {
	return &Faces{faces: make(map[faceKey]font.Face)}
}

// Face returns a face for f.
func (c *Faces) Face(f style.Font) (font.Face, error) {
	k := faceKey{fontKey: fontKey{family: f.Family, bold: f.Bold}, size: f.Size}
	if k.family == "" {
		k.family = Sans
	}
	if face, ok := c.faces[k]; ok {
		return face, nil
	}
	ft, err := Parsed(k.family, k.bold)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(ft, &truetype.Options{Size: f.Size, DPI: DPI, Hinting: font.HintingFull})
	c.faces[k] = face
	return face, nil
}
