package parallel

import "github.com/twoparam-tda/bigraded/reduce"

// DefaultMaxConcurrency bounds how many reduce.Kernel calls Run executes
// in flight at once, when the caller does not specify WithMaxConcurrency.
const DefaultMaxConcurrency = 4

// Options holds Run's resolved configuration.
type Options struct {
	maxConcurrency int64
	kernelOptions  []reduce.Option
}

// Option configures a Run call.
type Option func(*Options)

// WithMaxConcurrency bounds the number of reduce.Kernel calls in flight at
// once. n must be positive.
func WithMaxConcurrency(n int) Option {
	return func(o *Options) { o.maxConcurrency = int64(n) }
}

// WithKernelOptions forwards reduce.Option values (e.g. WithCancellation)
// to every reduce.Kernel call Run makes.
func WithKernelOptions(opts ...reduce.Option) Option {
	return func(o *Options) { o.kernelOptions = opts }
}

func defaultOptions() Options {
	return Options{maxConcurrency: DefaultMaxConcurrency}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
