// Package command holds the cobra command tree of ratinterp.
package command

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/ratinterp/console"
)

// app is shared by the root command and its subcommands once flags,
// environment and config file have been resolved.
type app struct {
	cfg Config
	log *slog.Logger
}

// New returns the root command. Every call builds an independent tree with
// its own viper instance.
func New() *cobra.Command {
	rt := &app{}
	v := viper.New()

	root := &cobra.Command{
		Use:   "ratinterp",
		Short: "ratinterp interpolates polynomials through points with exact rational arithmetic.",
		Long: "`ratinterp` finds the unique polynomial of degree below n through n points, with exact fractions.\n\n" +
			"Without a subcommand it starts an interactive console; type `help` there for the command list.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			rt.cfg, rt.log = cfg, logger
			rt.log.Debug("configuration loaded", "config", v.ConfigFileUsed(), "prompt", cfg.Prompt, "name_prefix", cfg.NamePrefix)

			return nil
		},
		RunE: rt.runConsole,
	}
	registerFlags(root.PersistentFlags())

	root.AddCommand(
		newInterpolateCmd(rt),
		newEvalCmd(rt),
		newSolveCmd(rt),
	)

	return root
}

// runConsole starts the interactive console on the command's streams.
func (rt *app) runConsole(cmd *cobra.Command, _ []string) error {
	c := console.New(
		console.WithPrompt(rt.cfg.Prompt),
		console.WithNamePrefix(rt.cfg.NamePrefix),
		console.WithPlotSize(rt.cfg.PlotWidth, rt.cfg.PlotHeight),
		console.WithLogger(rt.log),
	)

	fmt.Fprintln(cmd.OutOrStdout(), console.Banner)
	rt.log.Info("console started")
	err := c.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	rt.log.Info("console stopped", "polynomials", c.Store().Len())

	return err
}
