package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/bounded/pkg/number"
)

var errInvalidFlag = errors.New("invalid boolean")

// operation is one subcommand of a value type command. run receives exactly
// len(args) positional arguments.
type operation struct {
	name  string
	short string
	args  []string
	run   func(a *app, args []string) (any, error)
}

// newTypeCmd builds the command for one value type with a subcommand per
// operation.
func newTypeCmd(a *app, use, short string, ops []operation) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <operation> [args]",
		Short: short,
		Args:  cobra.ArbitraryArgs,
		RunE:  unknownOperation,
	}
	for _, op := range ops {
		cmd.AddCommand(&cobra.Command{
			Use:   op.name + " " + strings.Join(op.args, " "),
			Short: op.short,
			Args:  cobra.ExactArgs(len(op.args)),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := op.run(a, args)
				if err != nil {
					a.lggr.Errorw("operation failed", "type", use, "op", op.name, "err", err)
					return err
				}
				return render(cmd.OutOrStdout(), a.cfg.GetString(cfgKeyFormat), v)
			},
		})
	}
	return cmd
}

// parseArg parses s with parse and logs at debug level when the value had
// to be clamped or wrapped.
func parseArg[T number.Scalar](a *app, kind, s string, parse func(string) (T, error)) (T, error) {
	v, err := parse(s)
	if err != nil {
		return v, fmt.Errorf("%s argument: %w", kind, err)
	}
	if raw, _ := strconv.ParseFloat(strings.TrimSpace(s), 64); v.Val() != raw {
		a.lggr.Debugw("input normalized", "type", kind, "raw", raw, "value", v.Val())
	}
	return v, nil
}

func (a *app) unipolarArg(s string) (number.UnipolarFloat, error) {
	return parseArg(a, "unipolar", s, number.ParseUnipolar)
}

func (a *app) bipolarArg(s string) (number.BipolarFloat, error) {
	return parseArg(a, "bipolar", s, number.ParseBipolar)
}

func (a *app) phaseArg(s string) (number.Phase, error) {
	return parseArg(a, "phase", s, number.ParsePhase)
}

func parseRaw(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("raw argument: %w: %q", number.ErrInvalidValue, s)
	}
	return f, nil
}

func parseFlag(s string) (bool, error) {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("%w: %q", errInvalidFlag, s)
	}
	return b, nil
}

// unary adapts a single-argument operation on one value type.
func unary[T any](parse func(*app, string) (T, error), fn func(T) any) func(*app, []string) (any, error) {
	return func(a *app, args []string) (any, error) {
		v, err := parse(a, args[0])
		if err != nil {
			return nil, err
		}
		return fn(v), nil
	}
}

// binary adapts a two-argument operation; the operands may be of different
// types.
func binary[L, R any](
	left func(*app, string) (L, error),
	right func(*app, string) (R, error),
	fn func(L, R) any,
) func(*app, []string) (any, error) {
	return func(a *app, args []string) (any, error) {
		l, err := left(a, args[0])
		if err != nil {
			return nil, err
		}
		r, err := right(a, args[1])
		if err != nil {
			return nil, err
		}
		return fn(l, r), nil
	}
}

func rawArg(_ *app, s string) (float64, error) { return parseRaw(s) }

func flagArg(_ *app, s string) (bool, error) { return parseFlag(s) }
