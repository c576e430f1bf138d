package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bounded/pkg/number"
)

type phase = number.Phase

func newPhaseCmd(a *app) *cobra.Command {
	return newTypeCmd(a, "phase", "Phases wrapped onto [0, 1)", []operation{
		{
			name: "new", short: "Wrap a value", args: []string{"<v>"},
			run: unary((*app).phaseArg, func(p phase) any { return p }),
		},
		{
			name: "add", short: "Wrapping sum", args: []string{"<a>", "<b>"},
			run: binary((*app).phaseArg, (*app).phaseArg, func(l, r phase) any { return l.Add(r) }),
		},
		{
			name: "addf", short: "Wrapping sum with a raw float", args: []string{"<p>", "<raw>"},
			run: binary((*app).phaseArg, rawArg, func(l phase, r float64) any { return l.AddFloat(r) }),
		},
		{
			name: "scale", short: "Scale by a unipolar factor", args: []string{"<p>", "<u>"},
			run: binary((*app).phaseArg, (*app).unipolarArg, func(l phase, r unipolar) any { return l.Scale(r) }),
		},
		{
			name: "mulf", short: "Multiply by a raw float and wrap", args: []string{"<p>", "<raw>"},
			run: binary((*app).phaseArg, rawArg, func(l phase, r float64) any { return l.MulFloat(r) }),
		},
		{
			name: "div", short: "Divide by a unipolar factor and wrap", args: []string{"<p>", "<u>"},
			run: binary((*app).phaseArg, (*app).unipolarArg, func(l phase, r unipolar) any { return l.Div(r) }),
		},
	})
}
