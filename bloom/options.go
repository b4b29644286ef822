package bloom

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-sieve/hashpair"
)

type Options struct {
	// Log receives construction and saturation events. nil disables logging.
	Log logger.Logger

	// Hasher derives probe positions. Defaults to hashpair.Default().
	Hasher hashpair.Hasher
}

// Option is a generic option type shared by the filter constructors. Each
// option type asserts its target options record and ignores targets it does
// not recognise.
type Option func(any)

func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Log = log
		}
	}
}

func WithHasher(hasher hashpair.Hasher) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Hasher = hasher
		}
	}
}

// WithSeed selects hashpair.Classic with the given murmur seed.
func WithSeed(seed uint64) Option {
	return WithHasher(hashpair.Classic{Seed: seed})
}

func newOptions(opts []Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Hasher == nil {
		o.Hasher = hashpair.Default()
	}
	return o
}
