package surface

import (
	"math"
	"unicode/utf8"

	"github.com/matzehuels/chartframe/pkg/chart/style"
)

const (
	charWidthRatio   = 0.55
	boldWidthRatio   = 0.6
	glyphHeightRatio = 0.72

	// eps absorbs float error so that exact products do not round up.
	eps = 1e-9
)

// Estimate is a font-free Measurer: every glyph is a fixed fraction of the
// font size wide and tall. It is deterministic across platforms.
type Estimate struct{}

// MeasureText implements Measurer.
func (Estimate) MeasureText(text string, f style.Font) TextBounds {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return TextBounds{}
	}
	ratio := charWidthRatio
	if f.Bold {
		ratio = boldWidthRatio
	}
	return TextBounds{
		W: int(math.Ceil(float64(n)*f.Size*ratio - eps)),
		H: int(math.Ceil(f.Size*glyphHeightRatio - eps)),
	}
}
