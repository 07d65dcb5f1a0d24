package console

import (
	"io"
	"log/slog"
)

// Defaults for a zero-configured Console.
const (
	// DefaultPrompt is printed before every line read by Run.
	DefaultPrompt = ">>"

	// DefaultPlotWidth and DefaultPlotHeight are the plot image size in inches.
	DefaultPlotWidth  = 6.0
	DefaultPlotHeight = 4.0
)

const (
	panicPlotSizeInvalid = "console: WithPlotSize: width and height must be positive"
	panicNilLogger       = "console: WithLogger: logger must not be nil"
	panicNilStore        = "console: WithStore: store must not be nil"
)

// Option configures a Console. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options holds the resolved Console configuration.
type Options struct {
	prompt     string
	namePrefix string
	plotWidth  float64 // inches
	plotHeight float64 // inches
	logger     *slog.Logger
	store      *Store
}

// WithPrompt sets the prompt printed before each input line. An empty prompt
// is allowed and prints nothing.
func WithPrompt(p string) Option {
	return func(o *Options) { o.prompt = p }
}

// WithNamePrefix sets the prefix of automatic names. Ignored with WithStore.
func WithNamePrefix(prefix string) Option {
	return func(o *Options) { o.namePrefix = prefix }
}

// WithPlotSize sets the size, in inches, of images written by the plot command.
func WithPlotSize(width, height float64) Option {
	if !(width > 0 && height > 0) {
		panic(panicPlotSizeInvalid)
	}

	return func(o *Options) {
		o.plotWidth = width
		o.plotHeight = height
	}
}

// WithLogger routes dispatch and failure logs to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithStore shares an existing store instead of creating a fresh one.
func WithStore(s *Store) Option {
	if s == nil {
		panic(panicNilStore)
	}

	return func(o *Options) { o.store = s }
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		prompt:     DefaultPrompt,
		namePrefix: DefaultNamePrefix,
		plotWidth:  DefaultPlotWidth,
		plotHeight: DefaultPlotHeight,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = NewStore(o.namePrefix)
	}

	return o
}
