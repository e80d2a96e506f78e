package surface

import (
	"image/color"

	"github.com/matzehuels/chartframe/pkg/chart/style"
)

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpText OpKind = iota
	OpLine
	OpRect
	OpFill
)

// Op is one recorded drawing call.
type Op struct {
	Kind     OpKind
	Text     string
	Vertical bool
	X1, Y1   int
	X2, Y2   int
	Rect     Rect
	Width    float64
	Color    color.RGBA
}

// Recorder is a Surface that remembers every call instead of drawing.
// Measurements come from M, or from Estimate when M is nil.
type Recorder struct {
	M   Measurer
	Ops []Op
}

// MeasureText implements Measurer.
func (r *Recorder) MeasureText(text string, f style.Font) TextBounds {
	if r.M != nil {
		return r.M.MeasureText(text, f)
	}
	return Estimate{}.MeasureText(text, f)
}

func (r *Recorder) DrawText(text string, f style.Font, c color.RGBA, x, y int, vertical bool) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: text, Vertical: vertical, X1: x, Y1: y, Color: c})
}

func (r *Recorder) DrawLine(x1, y1, x2, y2 int, s style.Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Width: s.Width, Color: s.Color})
}

func (r *Recorder) DrawRect(rect Rect, s style.Stroke) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Rect: rect, Width: s.Width, Color: s.Color})
}

func (r *Recorder) FillRect(rect Rect, c color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Rect: rect, Color: c})
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Texts returns the recorded strings in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset drops all recorded ops.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

var _ Surface = (*Recorder)(nil)

// Fixed is a Measurer that returns preset bounds per string, falling back
// to Default for anything not listed.
type Fixed struct {
	Bounds  map[string]TextBounds
	Default TextBounds
}

// MeasureText implements Measurer.
func (f Fixed) MeasureText(text string, _ style.Font) TextBounds {
	if b, ok := f.Bounds[text]; ok {
		return b
	}
	return f.Default
}
