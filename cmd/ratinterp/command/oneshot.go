package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ratinterp/console"
	"github.com/katalvlaran/ratinterp/interp"
	"github.com/katalvlaran/ratinterp/matrix"
	"github.com/katalvlaran/ratinterp/poly"
	"github.com/katalvlaran/ratinterp/rational"
)

// vectorArg parses a command-line vector. The console's "(a b c)" form is
// accepted, and so are bare "a b c" and "a,b,c". A bare list starting with a
// minus sign needs "--" in front of it or parentheses, or cobra reads a flag.
func vectorArg(s string) (matrix.Vector, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") {
		s = "(" + strings.ReplaceAll(s, ",", " ") + ")"
	}

	return console.ParseVector(s, nil)
}

func newInterpolateCmd(rt *app) *cobra.Command {
	return &cobra.Command{
		Use:     "interpolate XS YS",
		Aliases: []string{"itrp"},
		Short:   "Print the polynomial through the points (xs[i], ys[i]).",
		Example: "ratinterp interpolate '1 2 3 4' '1 3 5 10'",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := vectorArg(args[0])
			if err != nil {
				return err
			}
			ys, err := vectorArg(args[1])
			if err != nil {
				return err
			}
			if err = interp.ValidateSamples(xs, ys); err != nil {
				return err
			}
			coeffs, err := interp.Interpolate(xs, ys)
			if err != nil {
				return err
			}
			rt.log.Debug("interpolated", "points", len(xs), "coefficients", len(coeffs))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, poly.FormatVector(coeffs))
			fmt.Fprintln(out, poly.Format(coeffs))

			return nil
		},
	}
}

func newEvalCmd(rt *app) *cobra.Command {
	return &cobra.Command{
		Use:   "eval COEFFS X...",
		Short: "Evaluate a0+a1*x+...+an*x^n at each X.",
		Example: "ratinterp eval '(-4 15/2 -3 1/2)' 5 1/2\n" +
			"ratinterp eval '1 2' -- -3",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			coeffs, err := vectorArg(args[0])
			if err != nil {
				return err
			}
			for _, arg := range args[1:] {
				x, err := rational.Parse(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), rational.String(poly.Eval(coeffs, x)))
			}
			rt.log.Debug("evaluated", "points", len(args)-1)

			return nil
		},
	}
}

func newSolveCmd(rt *app) *cobra.Command {
	return &cobra.Command{
		Use:     "solve ROW...",
		Short:   "Reduce the matrix given row by row to reduced row-echelon form.",
		Example: "ratinterp solve '1 1 3' '1 -1 1'",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := make(matrix.Matrix, len(args))
			for i, arg := range args {
				row, err := vectorArg(arg)
				if err != nil {
					return fmt.Errorf("row %d: %w", i, err)
				}
				m[i] = row
			}
			reduced, err := matrix.Solve(m)
			if err != nil {
				return err
			}
			rt.log.Debug("solved", "rows", reduced.Rows(), "cols", reduced.Cols(), "triangular", matrix.IsTriangular(reduced))

			out := cmd.OutOrStdout()
			for _, row := range reduced {
				fmt.Fprintln(out, poly.FormatVector(row))
			}

			return nil
		},
	}
}
