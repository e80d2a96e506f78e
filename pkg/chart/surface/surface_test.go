package surface

import (
	"testing"

	"github.com/matzehuels/chartframe/pkg/chart/style"
)

func TestEstimate(t *testing.T) {
	f := style.Font{Size: 10}
	tests := []struct {
		name string
		text string
		font style.Font
		want TextBounds
	}{
		{"empty", "", f, TextBounds{}},
		{"single glyph", "0", f, TextBounds{W: 6, H: 8}},
		{"four glyphs", "1000", f, TextBounds{W: 22, H: 8}},
		{"runes not bytes", "µs", f, TextBounds{W: 11, H: 8}},
		{"bold is wider", "ab", style.Font{Size: 10, Bold: true}, TextBounds{W: 12, H: 8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Estimate{}).MeasureText(tt.text, tt.font); got != tt.want {
				t.Errorf("MeasureText(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.DrawText("hi", style.Font{Size: 10}, style.Default().AxisStroke.Color, 1, 2, false)
	r.DrawLine(0, 0, 10, 0, style.Stroke{Width: 2})
	r.DrawRect(Rect{W: 5, H: 5}, style.Stroke{Width: 1})

	if r.Count(OpText) != 1 || r.Count(OpLine) != 1 || r.Count(OpRect) != 1 {
		t.Errorf("unexpected op counts: %+v", r.Ops)
	}
	if texts := r.Texts(); len(texts) != 1 || texts[0] != "hi" {
		t.Errorf("Texts() = %v", texts)
	}
	r.Reset()
	if len(r.Ops) != 0 {
		t.Error("Reset should drop ops")
	}
}

func TestFixedFallsBack(t *testing.T) {
	m := Fixed{Bounds: map[string]TextBounds{"Title": {W: 40, H: 12}}, Default: TextBounds{W: 5, H: 8}}
	if got := m.MeasureText("Title", style.Font{}); got != (TextBounds{W: 40, H: 12}) {
		t.Errorf("got %+v", got)
	}
	if got := m.MeasureText("other", style.Font{}); got != (TextBounds{W: 5, H: 8}) {
		t.Errorf("got %+v", got)
	}
}
