package kaanon

import "slices"

// Option configures iterator construction.
type Option func(*options)

type options struct {
	categories []string
	source     Source
}

func defaultOptions() *options {
	return &options{
		source: DefaultSource(),
	}
}

// WithCategories restricts the iterator to entries tagged with at least one
// of tags. Without it every entry is visited.
func WithCategories(tags ...string) Option {
	return func(o *options) {
		o.categories = slices.Clone(tags)
	}
}

// WithSource sets the randomness used to order candidates.
// Nil sources are ignored.
func WithSource(src Source) Option {
	return func(o *options) {
		if src != nil {
			o.source = src
		}
	}
}

func applyOptions(base []Option, opts []Option) *options {
	o := defaultOptions()
	for _, opt := range base {
		opt(o)
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
