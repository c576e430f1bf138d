package number

// Phase is a unit angular phase: one full turn maps to [0.0, 1.0). Values
// are kept in range by wrapping with a Euclidean modulus, so phase
// arithmetic circles around instead of saturating.
//
// Comparisons are linear on the wrapped value: 0.99 and 0.01 compare as far
// apart even though they are close on the circle.
type Phase struct {
	v float64
}

var (
	PhaseZero = Phase{0}

	// PhaseOne is one full turn. NewPhase(1) wraps to zero, but 1.0 is a
	// valid phase where a full turn must be told apart from no turn, e.g. as
	// an upper bound.
	PhaseOne = Phase{1}
)

// NewPhase wraps v onto the unit circle.
func NewPhase(v float64) Phase {
	return Phase{wrap(v)}
}

// Val returns the inner phase.
func (p Phase) Val() float64 { return p.v }

// Add returns p + o wrapped.
func (p Phase) Add(o Phase) Phase {
	return NewPhase(p.v + o.v)
}

// AddFloat returns p + f wrapped.
func (p Phase) AddFloat(f float64) Phase {
	return NewPhase(p.v + f)
}

// Scale multiplies p by a unit factor. The result cannot leave the range,
// so it is not wrapped.
func (p Phase) Scale(u UnipolarFloat) Phase {
	return Phase{p.v * u.v}
}

// MulFloat multiplies p by an arbitrary factor and wraps the result.
func (p Phase) MulFloat(f float64) Phase {
	return NewPhase(p.v * f)
}

// Div divides p by a unit factor and wraps the result. Dividing by zero
// yields NaN.
func (p Phase) Div(u UnipolarFloat) Phase {
	return NewPhase(p.v / u.v)
}

func (p Phase) Equal(o Scalar) bool { return equal(p.v, o) }

func (p Phase) Less(o Scalar) bool { return less(p.v, o) }

func (p Phase) Compare(o Scalar) int { return compare(p.v, o) }

func (p Phase) String() string { return formatFloat(p.v) }
