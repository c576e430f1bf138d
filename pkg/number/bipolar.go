package number

import "math"

// BipolarFloat is a float constrained to [-1.0, 1.0], such as a pan position
// or a signed offset. Out-of-range inputs saturate at the nearest bound.
//
// The zero value is BipolarZero.
type BipolarFloat struct {
	v float64
}

var (
	BipolarZero = BipolarFloat{0}
	BipolarOne  = BipolarFloat{1}
)

// NewBipolar clamps v to the bipolar unit range.
func NewBipolar(v float64) BipolarFloat {
	return BipolarFloat{clamp(v, -1, 1)}
}

// Val returns the inner float.
func (b BipolarFloat) Val() float64 { return b.v }

// Abs returns the magnitude of b as a UnipolarFloat.
func (b BipolarFloat) Abs() UnipolarFloat {
	return UnipolarFloat{math.Abs(b.v)}
}

// Invert returns the negation of b.
func (b BipolarFloat) Invert() BipolarFloat {
	return BipolarFloat{-1 * b.v}
}

// InvertIf returns the negation of b when invert is set, otherwise b.
func (b BipolarFloat) InvertIf(invert bool) BipolarFloat {
	if invert {
		return b.Invert()
	}
	return b
}

// Add returns b + o clamped to [-1, 1].
func (b BipolarFloat) Add(o BipolarFloat) BipolarFloat {
	return b.AddFloat(o.v)
}

func (b BipolarFloat) AddFloat(f float64) BipolarFloat {
	return NewBipolar(b.v + f)
}

// Sub returns b - o clamped to [-1, 1].
func (b BipolarFloat) Sub(o BipolarFloat) BipolarFloat {
	return NewBipolar(b.v - o.v)
}

// Scale moves b toward zero by a unit factor, e.g. applying an intensity to
// a direction. Never out of range.
func (b BipolarFloat) Scale(u UnipolarFloat) BipolarFloat {
	return BipolarFloat{b.v * u.v}
}

// Mul returns b * o. Never out of range.
func (b BipolarFloat) Mul(o BipolarFloat) BipolarFloat {
	return BipolarFloat{b.v * o.v}
}

// MulFloat scales a raw float by b and returns the raw product.
func (b BipolarFloat) MulFloat(f float64) float64 {
	return f * b.v
}

func (b BipolarFloat) Equal(o Scalar) bool { return equal(b.v, o) }

func (b BipolarFloat) Less(o Scalar) bool { return less(b.v, o) }

func (b BipolarFloat) Compare(o Scalar) int { return compare(b.v, o) }

func (b BipolarFloat) String() string { return formatFloat(b.v) }
