package notification

// Option configures a Dispatcher.
type Option func(*config)

// config contains dispatcher configuration.
type config struct {
	// logger receives debug output; nil disables logging.
	logger *Logger
}

// defaultConfig returns the default dispatcher configuration.
func defaultConfig() config {
	return config{}
}

// WithLogger attaches a debug logger to the dispatcher. A nil logger
// disables logging.
func WithLogger(l *Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
