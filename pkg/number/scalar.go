package number

import "cmp"

// Scalar is any value that exposes a raw float64. UnipolarFloat,
// BipolarFloat, Phase and Float implement it, which lets comparisons mix
// the types without implicit conversion.
type Scalar interface {
	Val() float64
}

// Float adapts a raw float64 to Scalar for comparisons:
//
//	u.Less(number.Float(0.5))
type Float float64

// Val returns f as a float64.
func (f Float) Val() float64 { return float64(f) }

// Comparisons delegate to the inner float and are linear, including for
// Phase. Equal and less are false when either side is NaN; compare follows
// cmp.Compare, which orders NaN before every number.

func equal(a float64, b Scalar) bool { return a == b.Val() }

func less(a float64, b Scalar) bool { return a < b.Val() }

func compare(a float64, b Scalar) int { return cmp.Compare(a, b.Val()) }
