// Package raster draws charts into an in-memory RGBA image with
// github.com/fogleman/gg and encodes them as PNG.
//
// Text is set in the embedded Go fonts (see pkg/fonts), so the metrics a
// [Surface] reports during layout are the ones it uses when drawing.
package raster

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/matzehuels/chartframe/pkg/chart/style"
	"github.com/matzehuels/chartframe/pkg/chart/surface"
	"github.com/matzehuels/chartframe/pkg/fonts"
)

// Option configures a Surface.
type Option func(*Surface)

// WithBackground sets the fill colour of a new surface (default white).
func WithBackground(c color.Color) Option {
	return func(s *Surface) { s.background = c }
}

// WithFaces uses a specific face cache instead of a fresh one. The cache
// must not be used by another goroutine while the surface is in use.
func WithFaces(f *fonts.Faces) Option {
	return func(s *Surface) { s.faces = f }
}

// Surface is a surface.Surface backed by a gg drawing context.
type Surface struct {
	dc         *gg.Context
	faces      *fonts.Faces
	background color.Color
	err        error
}

var _ surface.Surface = (*Surface)(nil)

// New returns a width x height surface filled with the background colour.
func New(width, height int, opts ...Option) *Surface {
	s := &Surface{
		faces:      fonts.NewFaces(),
		background: color.White,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.dc = gg.NewContext(width, height)
	s.dc.SetColor(s.background)
	s.dc.Clear()
	return s
}

// Measurer returns a measurer using the same fonts as a Surface, for
// layouts computed before any image is allocated. A nil f gets a fresh face
// cache. Like the faces behind it, a measurer belongs to one goroutine.
func Measurer(f *fonts.Faces) surface.Measurer {
	if f == nil {
		f = fonts.NewFaces()
	}
	return faceMeasurer{faces: f}
}

type faceMeasurer struct {
	faces *fonts.Faces
}

func (m faceMeasurer) MeasureText(text string, f style.Font) surface.TextBounds {
	face, err := m.faces.Face(f)
	if err != nil {
		return surface.Estimate{}.MeasureText(text, f)
	}
	return measure(face, text)
}

func measure(face font.Face, text string) surface.TextBounds {
	met := face.Metrics()
	return surface.TextBounds{
		W: font.MeasureString(face, text).Ceil(),
		H: (met.Ascent + met.Descent).Ceil(),
	}
}

// MeasureText implements surface.Measurer.
func (s *Surface) MeasureText(text string, f style.Font) surface.TextBounds {
	return faceMeasurer{faces: s.faces}.MeasureText(text, f)
}

// DrawText implements surface.Surface. gg draws at the baseline, so the
// top-left corner is shifted down by the ascent, or right by it when the
// text is rotated.
func (s *Surface) DrawText(text string, f style.Font, c color.RGBA, x, y int, vertical bool) {
	face, err := s.faces.Face(f)
	if err != nil {
		s.setErr(err)
		return
	}
	s.dc.SetFontFace(face)
	s.dc.SetColor(c)
	ascent := float64(face.Metrics().Ascent.Ceil())
	if !vertical {
		s.dc.DrawString(text, float64(x), float64(y)+ascent)
		return
	}
	w := float64(font.MeasureString(face, text).Ceil())
	px, py := float64(x)+ascent, float64(y)+w
	s.dc.Push()
	s.dc.RotateAbout(gg.Radians(-90), px, py)
	s.dc.DrawString(text, px, py)
	s.dc.Pop()
}

// DrawLine implements surface.Surface.
func (s *Surface) DrawLine(x1, y1, x2, y2 int, st style.Stroke) {
	if st.Width <= 0 {
		return
	}
	o := pixelOffset(st.Width)
	s.dc.SetColor(st.Color)
	s.dc.SetLineWidth(st.Width)
	s.dc.DrawLine(float64(x1)+o, float64(y1)+o, float64(x2)+o, float64(y2)+o)
	s.dc.Stroke()
}

// DrawRect implements surface.Surface.
func (s *Surface) DrawRect(r surface.Rect, st style.Stroke) {
	if st.Width <= 0 {
		return
	}
	o := pixelOffset(st.Width)
	s.dc.SetColor(st.Color)
	s.dc.SetLineWidth(st.Width)
	s.dc.DrawRectangle(float64(r.X)+o, float64(r.Y)+o, float64(r.W), float64(r.H))
	s.dc.Stroke()
}

// FillRect implements surface.Surface.
func (s *Surface) FillRect(r surface.Rect, c color.RGBA) {
	s.dc.SetColor(c)
	s.dc.DrawRectangle(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
	s.dc.Fill()
}

// Image returns the drawn image.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// Err returns the first drawing error, e.g. an unknown font family.
func (s *Surface) Err() error { return s.err }

// EncodePNG writes the image as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.err != nil {
		return s.err
	}
	return s.dc.EncodePNG(w)
}

func (s *Surface) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}

// pixelOffset centres odd-width strokes on pixel centres so 1px lines
// stay crisp.
func pixelOffset(width float64) float64 {
	if int(math.Round(width))%2 == 1 {
		return 0.5
	}
	return 0
}
