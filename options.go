package vector

import "go.uber.org/zap"

// options holds construction settings for a Vector.
type options struct {
	alloc  Allocator
	logger *zap.Logger
	cmp    Comparator
}

// Option configures a Vector at construction time.
type Option func(*options)

// WithAllocator sets the allocator used for every buffer the vector owns:
// storage, swap scratch space and slices taken from it.
// A nil allocator keeps the default HeapAllocator.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.alloc = a
		}
	}
}

// WithLogger sets the diagnostics logger. Pass zap.NewNop() to silence it.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithComparator sets the comparator used by the ordered operations.
func WithComparator(cmp Comparator) Option {
	return func(o *options) {
		o.cmp = cmp
	}
}

func buildOptions(opts []Option) options {
	o := options{
		alloc:  HeapAllocator{},
		logger: defaultLogger,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
