package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/ratinterp/interp"
	"github.com/katalvlaran/ratinterp/matrix"
	"github.com/katalvlaran/ratinterp/poly"
	"github.com/katalvlaran/ratinterp/rational"
)

// command is one console verb. run receives the words after the verb and
// returns user errors; output goes to w.
type command struct {
	minArgs int
	help    string
	run     func(c *Console, w io.Writer, args []string) error
}

// helpOrder fixes the listing order of the help command.
var helpOrder = []string{"help", "itrp", "eval", "ls", "print", "add", "rn", "rm", "solve", "plot"}

func builtinCommands() map[string]command {
	return map[string]command{
		"help":  {0, "help -- show the command list.", (*Console).cmdHelp},
		"itrp":  {2, "itrp (x1 x2 ... xn) (y1 y2 ... yn) -- calculate a polynomial, which is evaluated y1, y2, ... yn when x=x1, x2, ..., xn.", (*Console).cmdInterpolate},
		"eval":  {2, "eval (a0 a1 ... an) x -- evaluate the polynomial a0+a1*x+a2*x^2+...+an*x^n.", (*Console).cmdEval},
		"ls":    {0, "ls -- list all polynomials stored in the map.", (*Console).cmdList},
		"print": {1, "print (a0 a1 ... an) -- print a polynomial.", (*Console).cmdPrint},
		"add":   {2, "add name (a0 a1 ... an) -- add a named polynomial in the map.", (*Console).cmdAdd},
		"rn":    {2, "rn old-name new-name -- rename a polynomial in the map.", (*Console).cmdRename},
		"rm":    {1, "rm name -- remove a polynomial from the map.", (*Console).cmdRemove},
		"solve": {1, "solve (r11 ... r1m) ... (rn1 ... rnm) -- reduce a matrix given by rows to reduced row-echelon form.", (*Console).cmdSolve},
		"plot":  {2, "plot (a0 a1 ... an) file [xmin xmax] -- draw a polynomial into an image (.png, .svg, .pdf).", (*Console).cmdPlot},
	}
}

func (c *Console) cmdHelp(w io.Writer, _ []string) error {
	for _, name := range helpOrder {
		fmt.Fprintln(w, c.commands[name].help)
	}
	fmt.Fprintln(w, "quit -- leave the console.")
	fmt.Fprintln(w, "NOTE: names in the map can be used as vectors.")

	return nil
}

// cmdInterpolate checks xs before even looking at ys, so the first problem
// reported is the one a user would see reading left to right.
func (c *Console) cmdInterpolate(w io.Writer, args []string) error {
	xs, err := ParseVector(args[0], c.store)
	if err != nil {
		return err
	}
	if len(xs) == 0 {
		return interp.ErrEmptySamples
	}
	if !interp.Unique(xs) {
		return interp.ErrDuplicateX
	}
	ys, err := ParseVector(args[1], c.store)
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
	name := c.store.Save(coeffs)
	fmt.Fprintln(w, poly.FormatVector(coeffs))
	fmt.Fprintf(w, "saved as '%s' in map.\n", name)

	return nil
}

func (c *Console) cmdEval(w io.Writer, args []string) error {
	coeffs, err := ParseVector(args[0], c.store)
	if err != nil {
		return err
	}
	x, err := rational.Parse(args[1])
	if err != nil {
		return err
	}
	fmt.Fprintln(w, rational.String(poly.Eval(coeffs, x)))

	return nil
}

func (c *Console) cmdList(w io.Writer, _ []string) error {
	names := c.store.Names()
	if len(names) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Name", "Coefficients", "Polynomial"})
	for _, name := range names {
		v, ok := c.store.Get(name)
		if !ok {
			continue // removed concurrently
		}
		if err := table.Append([]string{name, poly.FormatVector(v), poly.Format(v)}); err != nil {
			return err
		}
	}

	return table.Render()
}

func (c *Console) cmdPrint(w io.Writer, args []string) error {
	coeffs, err := ParseVector(args[0], c.store)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, poly.Format(coeffs))

	return nil
}

func (c *Console) cmdAdd(w io.Writer, args []string) error {
	v, err := ParseVector(args[1], c.store)
	if err != nil {
		return err
	}
	c.store.Set(args[0], v)
	fmt.Fprintf(w, "%s: %s\n", args[0], poly.FormatVector(v))

	return nil
}

func (c *Console) cmdRename(w io.Writer, args []string) error {
	v, err := c.store.Rename(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %s\n", args[1], poly.FormatVector(v))

	return nil
}

func (c *Console) cmdRemove(_ io.Writer, args []string) error {
	return c.store.Remove(args[0])
}

func (c *Console) cmdSolve(w io.Writer, args []string) error {
	m := make(matrix.Matrix, len(args))
	for i, tok := range args {
		row, err := ParseVector(tok, c.store)
		if err != nil {
			return err
		}
		m[i] = row
	}

	reduced, err := matrix.Solve(m)
	if err != nil {
		return err
	}
	for _, row := range reduced {
		fmt.Fprintln(w, poly.FormatVector(row))
	}
	if matrix.IsTriangular(reduced) {
		sol, err := reduced.Column(reduced.Rows()) // first constant column
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "solution: %s\n", poly.FormatVector(sol))
	}

	return nil
}

func (c *Console) cmdPlot(w io.Writer, args []string) error {
	coeffs, err := ParseVector(args[0], c.store)
	if err != nil {
		return err
	}
	file := args[1]

	xmin, xmax := defaultPlotMin, defaultPlotMax
	switch {
	case len(args) == 3:
		return errNotEnoughArgs // a range needs both ends
	case len(args) >= 4:
		if xmin, err = parseFloat(args[2]); err != nil {
			return err
		}
		if xmax, err = parseFloat(args[3]); err != nil {
			return err
		}
	}

	if err = savePlot(coeffs, file, xmin, xmax, c.plotW, c.plotH); err != nil {
		return err
	}
	fmt.Fprintf(w, "saved plot of %s to '%s'.\n", strings.TrimPrefix(poly.Format(coeffs), "f(x)="), file)

	return nil
}
