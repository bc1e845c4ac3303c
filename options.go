package bloomfilter

type options struct {
	hasher Hasher
}

// Option configures a filter at construction.
type Option func(*options)

// WithHasher replaces the default XXHash seed function.
func WithHasher(h Hasher) Option {
	return func(o *options) {
		if h != nil {
			o.hasher = h
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{hasher: XXHash}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
