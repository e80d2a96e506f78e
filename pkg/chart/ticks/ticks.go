package ticks

import (
	"math"
	"strconv"

	"github.com/matzehuels/chartframe/pkg/chart/geom"
)

const (
	// DefaultMinSpacing is used when Generator.MinSpacing is zero.
	DefaultMinSpacing = 40

	eps = 1e-9

	// Labels switch to exponent notation outside 10^-expLow .. 10^expHigh.
	expLow  = 4
	expHigh = 7
)

var multipliers = [...]float64{1, 2, 2.5, 5, 10}

// Tick is a single labelled value.
type Tick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// Format describes how tick values are printed.
type Format struct {
	// Precision is the number of digits after the decimal point, or -1
	// for the shortest representation.
	Precision int  `json:"precision"`
	Exponent  bool `json:"exponent,omitempty"`
}

// Label formats v.
func (f Format) Label(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	if f.Exponent {
		return strconv.FormatFloat(v, 'e', f.Precision, 64)
	}
	if f.Precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', f.Precision, 64)
	if isNegativeZero(s) {
		return s[1:]
	}
	return s
}

func isNegativeZero(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	for _, c := range s[1:] {
		if c != '0' && c != '.' {
			return false
		}
	}
	return true
}

// Ticks is the output of Generate.
type Ticks struct {
	Values []Tick  `json:"values"`
	Step   float64 `json:"step"`
	Format Format  `json:"format"`
}

// First returns the smallest tick value.
func (t Ticks) First() float64 { return t.Values[0].Value }

// Last returns the largest tick value.
func (t Ticks) Last() float64 { return t.Values[len(t.Values)-1].Value }

// Generator produces ticks for a range and pixel length.
type Generator struct {
	// MinSpacing is the minimum pixel distance between two ticks.
	MinSpacing int
	// MaxTicks caps the tick count when positive.
	MaxTicks int
}

// Generate returns ticks covering r for an axis pixelLength pixels long.
func (g Generator) Generate(r geom.Range, pixelLength int) Ticks {
	if pixelLength <= 0 || r.IsEmpty() || !r.IsFinite() || r.Min == r.Max {
		return single(pointOf(r))
	}

	spacing := g.MinSpacing
	if spacing <= 0 {
		spacing = DefaultMinSpacing
	}
	target := max(2, pixelLength/spacing)
	if g.MaxTicks > 1 {
		target = min(target, g.MaxTicks)
	}

	// Halved so spans up to twice MaxFloat64 stay finite.
	raw := (r.Max/2 - r.Min/2) / float64(target-1) * 2
	if !isFinite(raw) {
		return endpoints(r)
	}
	step, mult, exp := niceStep(raw)
	if step == 0 || !isFinite(step) {
		return endpoints(r)
	}

	lo := math.Floor(r.Min / step)
	if (lo+1)*step <= r.Min {
		lo++
	}
	hi := math.Ceil(r.Max / step)
	if (hi-1)*step >= r.Max {
		hi--
	}

	f := formatFor(mult, exp)
	decimals := decimalsFor(mult, exp)
	n := int(hi-lo) + 1
	values := make([]Tick, n)
	for i := range values {
		v := roundTo((lo+float64(i))*step, decimals)
		values[i] = Tick{Value: v, Label: f.Label(v)}
	}
	// Rounding must not pull the outer ticks inside the data.
	if values[0].Value > r.Min {
		values[0].Value = lo * step
	}
	if values[n-1].Value < r.Max {
		values[n-1].Value = hi * step
	}
	if !isFinite(values[0].Value) || !isFinite(values[n-1].Value) {
		return endpoints(r)
	}
	return Ticks{Values: values, Step: step, Format: f}
}

// niceStep returns the smallest {1,2,2.5,5}x10^k step >= raw, with the
// chosen multiplier and exponent k.
func niceStep(raw float64) (step, mult float64, exp int) {
	exp = int(math.Floor(math.Log10(raw)))
	mag := math.Pow10(exp)
	for _, m := range multipliers {
		if m*mag >= raw*(1-eps) {
			if m == 10 {
				return mag * 10, 1, exp + 1
			}
			return m * mag, m, exp
		}
	}
	return mag * 10, 1, exp + 1
}

func formatFor(mult float64, exp int) Format {
	if exp >= expHigh || exp <= -expLow {
		p := 0
		if mult == 2.5 {
			p = 1
		}
		return Format{Precision: p, Exponent: true}
	}
	return Format{Precision: decimalsFor(mult, exp)}
}

// decimalsFor returns the digits after the decimal point a step needs.
func decimalsFor(mult float64, exp int) int {
	p := max(0, -exp)
	if mult == 2.5 && exp <= 0 {
		p++
	}
	return p
}

func roundTo(x float64, prec int) float64 {
	if x == 0 || prec < 0 || prec > 15 {
		return x
	}
	pow := math.Pow10(prec)
	r := math.Round(x*pow) / pow
	if math.IsInf(r, 0) || math.IsNaN(r) {
		return x
	}
	if r == 0 {
		return 0
	}
	return r
}

func single(v float64) Ticks {
	f := Format{Precision: -1}
	return Ticks{Values: []Tick{{Value: v, Label: f.Label(v)}}, Format: f}
}

// endpoints returns ticks at exactly Min and Max, for ranges so wide that
// no round step outside them is representable. Step is 0.
func endpoints(r geom.Range) Ticks {
	f := Format{Precision: -1}
	return Ticks{
		Values: []Tick{{Value: r.Min, Label: f.Label(r.Min)}, {Value: r.Max, Label: f.Label(r.Max)}},
		Format: f,
	}
}

func pointOf(r geom.Range) float64 {
	switch {
	case r.IsEmpty():
		return 0
	case isFinite(r.Min):
		return r.Min
	case isFinite(r.Max):
		return r.Max
	}
	return 0
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
