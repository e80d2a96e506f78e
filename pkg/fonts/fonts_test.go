package fonts

import (
	"sync"
	"testing"

	"golang.org/x/image/font"

	"github.com/matzehuels/chartframe/pkg/chart/style"
	"github.com/matzehuels/chartframe/pkg/errors"
)

func TestTTF(t *testing.T) {
	tests := []struct {
		family  string
		bold    bool
		wantErr bool
	}{
		{"", false, false},
		{Sans, true, false},
		{Mono, false, false},
		{Mono, true, false},
		{"comic", false, true},
	}

	for _, tt := range tests {
		data, err := TTF(tt.family, tt.bold)
		if (err != nil) != tt.wantErr {
			t.Errorf("TTF(%q, %v) error = %v, wantErr %v", tt.family, tt.bold, err, tt.wantErr)
			continue
		}
		if err == nil && len(data) == 0 {
			t.Errorf("TTF(%q, %v) returned no data", tt.family, tt.bold)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Errorf("TTF(%q) code = %v", tt.family, errors.GetCode(err))
		}
	}
}

func TestFaceIsCached(t *testing.T) {
	c := NewFaces()
	f := style.Font{Size: 10}

	a, err := c.Face(f)
	if err != nil {
		t.Fatalf("Face() error = %v", err)
	}
	b, err := c.Face(style.Font{Family: Sans, Size: 10})
	if err != nil {
		t.Fatalf("Face() error = %v", err)
	}
	if a != b {
		t.Error("empty family and sans should share a face")
	}

	big, err := c.Face(style.Font{Size: 20})
	if err != nil {
		t.Fatalf("Face() error = %v", err)
	}
	if big.Metrics().Height <= a.Metrics().Height {
		t.Error("a 20px face should be taller than a 10px face")
	}
}

func TestFaceUnknownFamily(t *testing.T) {
	if _, err := NewFaces().Face(style.Font{Family: "comic", Size: 10}); err == nil {
		t.Error("expected error for unknown family")
	}
}

func TestKnown(t *testing.T) {
	for _, fam := range []string{"", Sans, Mono} {
		if !Known(fam) {
			t.Errorf("Known(%q) = false", fam)
		}
	}
	if Known("serif") {
		t.Error(`Known("serif") = true`)
	}
}

func TestParsedIsShared(t *testing.T) {
	a, err := Parsed("", false)
	if err != nil {
		t.Fatalf("Parsed() error = %v", err)
	}
	b, err := Parsed(Sans, false)
	if err != nil {
		t.Fatalf("Parsed() error = %v", err)
	}
	if a != b {
		t.Error("empty family and sans should share one parsed font")
	}

	// Two caches share the font but never a face.
	fa, _ := NewFaces().Face(style.Font{Size: 10})
	fb, _ := NewFaces().Face(style.Font{Size: 10})
	if fa == fb {
		t.Error("separate Faces caches returned the same face")
	}
}

func TestParsedConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(bold bool) {
			defer wg.Done()
			faces := NewFaces()
			for j := 0; j < 20; j++ {
				face, err := faces.Face(style.Font{Size: 10 + float64(j%3), Bold: bold})
				if err != nil {
					t.Errorf("Face() error = %v", err)
					return
				}
				font.MeasureString(face, "0123456789")
			}
		}(i%2 == 0)
	}
	wg.Wait()
}
