package ingest

// DefaultValidate controls whether a Builder checks the construction
// boundary constraints (entry uniqueness, bigrade ordering/coverage) by
// default. It is on by default: the whole point of this package is to
// catch the mistakes matrix.Sparse itself trusts the caller not to make.
const DefaultValidate = true

// Options holds a Builder's resolved configuration.
type Options struct {
	validate bool
}

// Option configures a Builder.
type Option func(*Options)

// WithValidation enables or disables entry-uniqueness and bigrade-layout
// checking. Disabling it trades safety for speed when the caller already
// knows its input is well-formed (e.g. round-tripping a matrix this
// package itself produced).
func WithValidation(enabled bool) Option {
	return func(o *Options) { o.validate = enabled }
}

func defaultOptions() Options {
	return Options{validate: DefaultValidate}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
