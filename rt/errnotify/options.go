package errnotify

type config struct {
	logger  Logger
	noStack bool
}

// Option configures a Notifier.
type Option func(*config)

func applyOptions(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// WithLogger sets the diagnostic sink.
//
// If not set (or nil), slog.Default() is used at the time a line is written.
func WithLogger(l Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithStack controls whether PanicError carries the stack of the panicking goroutine.
//
// Default is true.
func WithStack(capture bool) Option {
	return func(c *config) { c.noStack = !capture }
}
