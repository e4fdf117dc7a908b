package primebag

type options struct {
	seedPrimes []uint64
	logger     *Logger
}

// Option configures registry construction.
type Option func(*options)

// WithSeedPrimes seeds the registry's sieve with an ascending, gap-free
// prime sequence, typically another registry's PrimeNumbers. This lets
// multiple registries pool sieve work instead of each recomputing the
// same prefix.
//
// The input is trusted: seeding with composites or an out-of-order list
// invalidates every later result.
func WithSeedPrimes(primes []uint64) Option {
	return func(o *options) {
		o.seedPrimes = primes
	}
}

// WithLogger configures the logger used for debug events (prefetch
// scheduling, hole reuse).
//
// If nil is passed, logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
