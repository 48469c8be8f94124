package profile

// Config functions return all supported profiling parameters.
type Config func() (mode, path string, quiet bool)

// Stopper stops a running profiler and writes its output.
type Stopper interface{ Stop() }

// Start starts the profiler described by c and returns a [Stopper] for it.
//
// If the build tag pprof is unset, or the mode is empty or unknown, Start
// returns a no-op. Both Start and Stop are always safely callable.
func (c Config) Start() Stopper {
	mode, path, quiet := c()

	if mode == "" {
		return ignore{}
	}

	return start(mode, path, quiet)
}

// WithMode returns a functional option for setting a profiler's mode.
func WithMode(mode string) func(Config) Config {
	return func(c Config) Config {
		_, path, quiet := c()

		return func() (string, string, bool) {
			return mode, path, quiet
		}
	}
}

// WithPath returns a functional option for setting a profiler's output path.
func WithPath(path string) func(Config) Config {
	return func(c Config) Config {
		mode, _, quiet := c()

		return func() (string, string, bool) {
			return mode, path, quiet
		}
	}
}

// WithQuiet returns a functional option for silencing the profiler's own
// status messages.
func WithQuiet(quiet bool) func(Config) Config {
	return func(c Config) Config {
		mode, path, _ := c()

		return func() (string, string, bool) {
			return mode, path, quiet
		}
	}
}

type ignore struct{}

func (ignore) Stop() {}
