// Command ratinterp is an exact polynomial interpolator: an interactive
// console by default, with one-shot subcommands for scripting.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/ratinterp/cmd/ratinterp/command"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := command.New().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
