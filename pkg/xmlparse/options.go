package xmlparse

// Option configures a Parser.
type Option func(*options)

type options struct {
	singleRoot bool
}

// WithSingleRoot makes the parser require exactly one top-level tag.
// Without it the grammar keeps its inherited permissiveness: zero or more
// top-level tags and comments are accepted.
func WithSingleRoot() Option {
	return func(o *options) {
		o.singleRoot = true
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
