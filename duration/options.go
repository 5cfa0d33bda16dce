package duration

import "github.com/jxs13/niceduration/format"

// DefaultBuilderSize is enough for most formatted durations.
const DefaultBuilderSize = 32

type options struct {
	newAppender func() format.Appender
}

type Option func(*options)

// WithBuilder formats into a byte builder preallocated with size bytes
// instead of a growable text buffer. The output is the same.
func WithBuilder(size int) Option {
	return func(o *options) {
		o.newAppender = func() format.Appender {
			return format.NewBuilder(size)
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		newAppender: func() format.Appender {
			return format.NewTextBuffer()
		},
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
