package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/ratinterp/interp"
)

// Banner is the greeting printed by the interactive front end.
const Banner = "a Tiny Polynomial Interpolator. Type 'help' for more information."

// errNotEnoughArgs is returned by dispatch when a command gets too few words.
var errNotEnoughArgs = errors.New("console: not enough arguments")

// Console interprets command lines against a Store.
type Console struct {
	store    *Store
	log      *slog.Logger
	prompt   string
	plotW    vg.Length
	plotH    vg.Length
	commands map[string]command
}

// New returns a Console configured by opts.
func New(opts ...Option) *Console {
	o := gatherOptions(opts...)

	return &Console{
		store:    o.store,
		log:      o.logger,
		prompt:   o.prompt,
		plotW:    vg.Length(o.plotWidth) * vg.Inch,
		plotH:    vg.Length(o.plotHeight) * vg.Inch,
		commands: builtinCommands(),
	}
}

// Store returns the store the console reads and writes.
func (c *Console) Store() *Store { return c.store }

// Run reads commands from r line by line, writing prompts and results to w,
// until EOF, a quit command, or ctx is done. Cancellation is observed between
// lines; a blocked read is not interrupted. Lines have no length limit.
//
// User errors are printed and never end the loop. Run returns ctx.Err() on
// cancellation, the first read or write failure, or nil.
func (c *Console) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	ew := &errWriter{w: w}
	br := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(ew, c.prompt)
		if ew.err != nil {
			return ew.err
		}
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return readErr
		}
		if line == "" && readErr != nil {
			return nil // EOF
		}
		if c.exec(ew, strings.TrimRight(line, "\r\n")) {
			return ew.err
		}
		if ew.err != nil || readErr != nil {
			return ew.err // last line had no newline
		}
	}
}

// Exec runs a single command line, writing its output to w. It reports
// whether the line asked to quit, and returns only write failures.
func (c *Console) Exec(w io.Writer, line string) (quit bool, err error) {
	ew := &errWriter{w: w}
	quit = c.exec(ew, line)

	return quit, ew.err
}

func (c *Console) exec(w io.Writer, line string) (quit bool) {
	words, err := Tokenize(line)
	if err != nil {
		c.log.Info("tokenize failed", "line", line, "err", err)
		fmt.Fprintln(w, err)
		return false
	}
	if len(words) == 0 {
		return false
	}

	name, args := words[0], words[1:]
	if name == "quit" {
		return true
	}
	cmd, ok := c.commands[name]
	if !ok {
		c.log.Info("unknown command", "command", name)
		fmt.Fprintf(w, "Unknown command '%s'.\n", name)
		return false
	}

	c.log.Debug("dispatch", "command", name, "args", len(args))
	if len(args) < cmd.minArgs {
		err = errNotEnoughArgs
	} else {
		err = cmd.run(c, w, args)
	}
	if err != nil {
		c.log.Info("command failed", "command", name, "err", err)
		fmt.Fprintln(w, userMessage(err))
	}

	return false
}

// userMessage turns a command error into the line shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, errNotEnoughArgs):
		return "not enough arguments!"
	case errors.Is(err, ErrUnknownName):
		return "unknown name."
	case errors.Is(err, interp.ErrEmptySamples):
		return "xs should not be empty."
	case errors.Is(err, interp.ErrDuplicateX):
		return "all xs should be unique."
	case errors.Is(err, interp.ErrLengthMismatch):
		return "xs and ys should be in the same length."
	default:
		return err.Error()
	}
}

// errWriter remembers the first write error and drops everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err

	return n, err
}
