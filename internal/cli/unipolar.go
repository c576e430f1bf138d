package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bounded/pkg/number"
)

type unipolar = number.UnipolarFloat

func newUnipolarCmd(a *app) *cobra.Command {
	return newTypeCmd(a, "unipolar", "Unipolar values clamped to [0, 1]", []operation{
		{
			name: "new", short: "Clamp a value", args: []string{"<v>"},
			run: unary((*app).unipolarArg, func(u unipolar) any { return u }),
		},
		{
			name: "invert", short: "Print 1 - v", args: []string{"<v>"},
			run: unary((*app).unipolarArg, func(u unipolar) any { return u.Invert() }),
		},
		{
			name: "add", short: "Saturating sum", args: []string{"<a>", "<b>"},
			run: binary((*app).unipolarArg, (*app).unipolarArg, func(l, r unipolar) any { return l.Add(r) }),
		},
		{
			name: "addf", short: "Saturating sum with a raw float", args: []string{"<u>", "<raw>"},
			run: binary((*app).unipolarArg, rawArg, func(l unipolar, r float64) any { return l.AddFloat(r) }),
		},
		{
			name: "sub", short: "Saturating difference", args: []string{"<a>", "<b>"},
			run: binary((*app).unipolarArg, (*app).unipolarArg, func(l, r unipolar) any { return l.Sub(r) }),
		},
		{
			name: "mul", short: "Product of two unipolar values", args: []string{"<a>", "<b>"},
			run: binary((*app).unipolarArg, (*app).unipolarArg, func(l, r unipolar) any { return l.Mul(r) }),
		},
		{
			name: "mulf", short: "Scale a raw float by a unipolar value", args: []string{"<u>", "<raw>"},
			run: binary((*app).unipolarArg, rawArg, func(l unipolar, r float64) any { return l.MulFloat(r) }),
		},
	})
}
