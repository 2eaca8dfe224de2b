package reduce

// DefaultCheckInterval is the number of bigrades processed between calls to
// a configured cancellation callback, when one is supplied via
// WithCancellation. spec.md requires the checkpoint be evaluated once per
// bigrade; DefaultCheckInterval of 1 honors that literally, while a larger
// interval trades cancellation latency for one fewer function call per
// bigrade on very large inputs.
const DefaultCheckInterval = 1

// Options holds Kernel's resolved configuration. Its fields are unexported;
// callers set them via functional Option values passed to Kernel.
type Options struct {
	shouldContinue func() bool
	checkInterval  int
}

// Option configures a single call to Kernel.
type Option func(*Options)

// WithCancellation registers a cooperative cancellation checkpoint. Kernel
// calls shouldContinue at the start of every checkInterval-th bigrade (see
// WithCheckInterval); if it returns false, Kernel stops and returns
// ErrAbortedByCaller, discarding the partial kernel computed so far.
func WithCancellation(shouldContinue func() bool) Option {
	return func(o *Options) { o.shouldContinue = shouldContinue }
}

// WithCheckInterval overrides DefaultCheckInterval. Has no effect unless
// WithCancellation is also supplied.
func WithCheckInterval(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.checkInterval = n
		}
	}
}

func defaultOptions() Options {
	return Options{checkInterval: DefaultCheckInterval}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
