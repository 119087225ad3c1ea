package options

type config struct {
	logger   Logger
	capacity int
}

// Option is a function that configures a new collection.
type Option func(*config)

// WithLogger sets the logger used to report replaced and deleted entries.
func WithLogger(logger Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCapacity preallocates room for n entries.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

func newConfig(opts ...Option) *config {
	c := &config{logger: NewDefaultLogger()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
