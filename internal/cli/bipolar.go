package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bounded/pkg/number"
)

type bipolar = number.BipolarFloat

func newBipolarCmd(a *app) *cobra.Command {
	return newTypeCmd(a, "bipolar", "Bipolar values clamped to [-1, 1]", []operation{
		{
			name: "new", short: "Clamp a value", args: []string{"<v>"},
			run: unary((*app).bipolarArg, func(b bipolar) any { return b }),
		},
		{
			name: "abs", short: "Magnitude as a unipolar value", args: []string{"<v>"},
			run: unary((*app).bipolarArg, func(b bipolar) any { return b.Abs() }),
		},
		{
			name: "invert", short: "Negate", args: []string{"<v>"},
			run: unary((*app).bipolarArg, func(b bipolar) any { return b.Invert() }),
		},
		{
			name: "invert-if", short: "Negate when the flag is true", args: []string{"<v>", "<bool>"},
			run: binary((*app).bipolarArg, flagArg, func(b bipolar, invert bool) any { return b.InvertIf(invert) }),
		},
		{
			name: "add", short: "Saturating sum", args: []string{"<a>", "<b>"},
			run: binary((*app).bipolarArg, (*app).bipolarArg, func(l, r bipolar) any { return l.Add(r) }),
		},
		{
			name: "addf", short: "Saturating sum with a raw float", args: []string{"<b>", "<raw>"},
			run: binary((*app).bipolarArg, rawArg, func(l bipolar, r float64) any { return l.AddFloat(r) }),
		},
		{
			name: "sub", short: "Saturating difference", args: []string{"<a>", "<b>"},
			run: binary((*app).bipolarArg, (*app).bipolarArg, func(l, r bipolar) any { return l.Sub(r) }),
		},
		{
			name: "mul", short: "Product of two bipolar values", args: []string{"<a>", "<b>"},
			run: binary((*app).bipolarArg, (*app).bipolarArg, func(l, r bipolar) any { return l.Mul(r) }),
		},
		{
			name: "scale", short: "Scale toward zero by a unipolar factor", args: []string{"<b>", "<u>"},
			run: binary((*app).bipolarArg, (*app).unipolarArg, func(l bipolar, r unipolar) any { return l.Scale(r) }),
		},
		{
			name: "mulf", short: "Scale a raw float by a bipolar value", args: []string{"<b>", "<raw>"},
			run: binary((*app).bipolarArg, rawArg, func(l bipolar, r float64) any { return l.MulFloat(r) }),
		},
	})
}
