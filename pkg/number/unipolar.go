package number

// UnipolarFloat is a float constrained to [0.0, 1.0], such as an intensity or
// a mix amount. Out-of-range inputs saturate at the nearest bound.
//
// The zero value is UnipolarZero.
type UnipolarFloat struct {
	v float64
}

// Unipolar bounds.
var (
	UnipolarZero = UnipolarFloat{0}
	UnipolarOne  = UnipolarFloat{1}
)

// NewUnipolar clamps v to the unit range.
func NewUnipolar(v float64) UnipolarFloat {
	return UnipolarFloat{clamp(v, 0, 1)}
}

// Val returns the inner float.
func (u UnipolarFloat) Val() float64 { return u.v }

// Invert maps 1 to 0 and 0 to 1.
func (u UnipolarFloat) Invert() UnipolarFloat {
	return UnipolarFloat{1 - u.v}
}

// Add returns u + o, saturating at 1.
func (u UnipolarFloat) Add(o UnipolarFloat) UnipolarFloat {
	return u.AddFloat(o.v)
}

// AddFloat returns u + f clamped to the unit range.
func (u UnipolarFloat) AddFloat(f float64) UnipolarFloat {
	return NewUnipolar(u.v + f)
}

// Sub returns u - o, saturating at 0.
func (u UnipolarFloat) Sub(o UnipolarFloat) UnipolarFloat {
	return NewUnipolar(u.v - o.v)
}

// Mul returns the product u * o. The product of two unit values is a unit
// value, so the result is not clamped.
func (u UnipolarFloat) Mul(o UnipolarFloat) UnipolarFloat {
	return UnipolarFloat{u.v * o.v}
}

// MulFloat scales a raw float by u. The result is a raw float and is not
// normalized.
func (u UnipolarFloat) MulFloat(f float64) float64 {
	return u.v * f
}

// Equal reports whether u and o hold the same float.
func (u UnipolarFloat) Equal(o Scalar) bool { return equal(u.v, o) }

// Less reports whether u is less than o.
func (u UnipolarFloat) Less(o Scalar) bool { return less(u.v, o) }

// Compare returns -1, 0 or +1 following cmp.Compare on the inner floats.
func (u UnipolarFloat) Compare(o Scalar) int { return compare(u.v, o) }

func (u UnipolarFloat) String() string { return formatFloat(u.v) }
