package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/ratinterp/console"
)

// Configuration keys. Each is also a flag and, upper-cased with '-' as '_',
// an environment variable under envPrefix (RATINTERP_LOG_LEVEL, ...).
const (
	keyConfig     = "config"
	keyPrompt     = "prompt"
	keyNamePrefix = "name-prefix"
	keyLogLevel   = "log-level"
	keyNoColor    = "no-color"
	keyPlotWidth  = "plot-width"
	keyPlotHeight = "plot-height"

	envPrefix = "RATINTERP"
)

// Config is the resolved app configuration.
type Config struct {
	Prompt     string
	NamePrefix string
	LogLevel   string
	NoColor    bool
	PlotWidth  float64
	PlotHeight float64
}

// registerFlags declares the persistent flags backing Config.
func registerFlags(fs *pflag.FlagSet) {
	fs.String(keyConfig, "", "Path to a config file (yaml, toml or json).")
	fs.String(keyPrompt, console.DefaultPrompt, "Prompt printed by the interactive console.")
	fs.String(keyNamePrefix, console.DefaultNamePrefix, "Prefix of automatically assigned polynomial names.")
	fs.String(keyLogLevel, "warn", "Log level: debug, info, warn or error.")
	fs.Bool(keyNoColor, false, "Disable colored log output.")
	fs.Float64(keyPlotWidth, console.DefaultPlotWidth, "Width of plot images, in inches.")
	fs.Float64(keyPlotHeight, console.DefaultPlotHeight, "Height of plot images, in inches.")
}

// loadConfig merges flags, environment and the optional config file, in that
// order of precedence, into a Config.
func loadConfig(v *viper.Viper, fs *pflag.FlagSet) (Config, error) {
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(keyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		Prompt:     v.GetString(keyPrompt),
		NamePrefix: v.GetString(keyNamePrefix),
		LogLevel:   v.GetString(keyLogLevel),
		NoColor:    v.GetBool(keyNoColor),
		PlotWidth:  v.GetFloat64(keyPlotWidth),
		PlotHeight: v.GetFloat64(keyPlotHeight),
	}

	return cfg, cfg.validate()
}

var errBadPlotSize = errors.New("plot size must be positive")

func (c Config) validate() error {
	if !(c.PlotWidth > 0 && c.PlotHeight > 0) {
		return fmt.Errorf("%s=%g, %s=%g: %w", keyPlotWidth, c.PlotWidth, keyPlotHeight, c.PlotHeight, errBadPlotSize)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}
