// Package number defines self-normalizing float types for bounded control
// quantities: UnipolarFloat on [0, 1], BipolarFloat on [-1, 1] and Phase, a
// circular position on [0, 1).
//
// Every constructor, arithmetic method and decoder returns a value that
// already satisfies the type's range. UnipolarFloat and BipolarFloat clamp
// (saturate at the nearest bound); Phase wraps with a Euclidean modulus.
// Products whose range is closed under multiplication are not normalized
// again. No operation in this package fails on a numeric input.
//
// Each type encodes as the bare number in JSON, YAML, text and database/sql,
// and decoding applies the same normalization as the constructor.
package number
