package errors

import (
	"math"
	"testing"
)

func TestValidateFinite(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantErr bool
	}{
		{"empty", nil, false},
		{"finite", []float64{0, -1, 1e300}, false},
		{"nan", []float64{1, math.NaN()}, true},
		{"positive inf", []float64{math.Inf(1)}, true},
		{"negative inf", []float64{3, math.Inf(-1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFinite("v", tt.values...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFinite(%v) error = %v, wantErr %v", tt.values, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRange) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidRange)
			}
		})
	}
}

func TestValidateFiniteNamesIndex(t *testing.T) {
	err := ValidateFinite(`series "p50" y`, 1, 2, math.NaN())
	if err == nil || UserMessage(err) != `series "p50" y[2] is NaN` {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"typical", 800, 600, false},
		{"one pixel", 1, 1, false},
		{"max", MaxCanvasSide, MaxCanvasSide, false},
		{"zero width", 0, 600, true},
		{"negative height", 800, -1, true},
		{"too wide", MaxCanvasSide + 1, 600, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDimensions(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDimensions(%d, %d) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
		})
	}
}

func TestValidateMinMax(t *testing.T) {
	if err := ValidateMinMax("x", 1, 2); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateMinMax("x", 2, 1); !Is(err, ErrCodeInvalidRange) {
		t.Errorf("inverted extent should be INVALID_RANGE, got %v", err)
	}
	if err := ValidateMinMax("x", math.NaN(), 1); err == nil {
		t.Error("NaN extent should fail")
	}
}
