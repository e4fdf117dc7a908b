package primebag

import (
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/primebag/internal/holepool"
	"github.com/hupe1980/primebag/sieve"
)

// Registry assigns a unique prime number to every value added to it and
// maintains the reverse mapping. Primes freed by Remove are pooled and
// reused, largest first. After every fresh allocation the registry
// starts computing the following prime on a background goroutine, so
// the sieve's latency overlaps with the caller's work between inserts.
//
// A Registry is not safe for concurrent use by multiple goroutines; the
// background prefetch is the only internal concurrency, and it touches
// nothing but the sieve (which is internally locked) and its own result
// slot.
type Registry[V comparable] struct {
	sieve   *sieve.Sieve
	forward map[V]uint64
	reverse map[uint64]V
	holes   *holepool.Pool

	// nextFresh is the sieve index of the next never-assigned prime.
	// Holes are reused before fresh primes, so this only advances when
	// the pool is empty.
	nextFresh int

	bg      errgroup.Group
	pending *prefetched // non-nil while a prefetch is in flight or unconsumed

	logger *Logger
}

// prefetched is the result slot of one background prime computation.
// Its prime field is valid only after the errgroup has been waited on.
type prefetched struct {
	prime uint64
}

// NewRegistry creates an empty registry.
func NewRegistry[V comparable](opts ...Option) *Registry[V] {
	o := options{
		logger: NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	var s *sieve.Sieve
	if len(o.seedPrimes) > 0 {
		s = sieve.NewWithPrimes(o.seedPrimes)
	} else {
		s = sieve.New()
	}

	return &Registry[V]{
		sieve:   s,
		forward: make(map[V]uint64),
		reverse: make(map[uint64]V),
		holes:   holepool.New(),
		logger:  o.logger,
	}
}

// Add assigns a unique prime to value and returns it. If value is
// already registered, its existing prime is returned unchanged.
func (r *Registry[V]) Add(value V) uint64 {
	if prime, ok := r.forward[value]; ok {
		return prime
	}

	prime := r.allocate()
	r.forward[value] = prime
	r.reverse[prime] = value

	return prime
}

// allocate produces the next prime to hand out: a recycled hole if one
// exists, otherwise the next fresh prime from the sieve.
func (r *Registry[V]) allocate() uint64 {
	if prime, ok := r.holes.TakeMax(); ok {
		r.logger.WithPrime(prime).Debug("reusing freed prime")
		return prime
	}

	var prime uint64
	if r.pending != nil {
		// The prefetch for this index was already started; join it.
		_ = r.bg.Wait()
		prime = r.pending.prime
		r.pending = nil
	} else {
		// Cold path, normally only the very first insertion.
		prime = r.sieve.Nth(r.nextFresh)
	}
	r.nextFresh++

	// Pipeline the following prime so its sieve cost overlaps with the
	// caller's work between inserts.
	r.startPrefetch()

	return prime
}

// startPrefetch launches the background computation of the prime at
// index r.nextFresh. At most one prefetch is ever in flight; results
// are consumed strictly in the order they were requested.
func (r *Registry[V]) startPrefetch() {
	slot := &prefetched{}
	index := r.nextFresh
	r.pending = slot

	r.logger.WithIndex(index).Debug("prefetching next prime")

	r.bg.Go(func() error {
		slot.prime = r.sieve.Nth(index)
		return nil
	})
}

// Prime returns the prime assigned to value, or 0 if value is not
// registered.
func (r *Registry[V]) Prime(value V) uint64 {
	return r.forward[value]
}

// Remove unregisters value and frees its prime for reuse. It returns
// the freed prime, or 0 if value was never registered.
func (r *Registry[V]) Remove(value V) uint64 {
	prime, ok := r.forward[value]
	if !ok {
		return 0
	}

	delete(r.forward, value)
	delete(r.reverse, prime)
	r.holes.Put(prime)

	return prime
}

// Clear removes every assignment and empties the hole pool. The sieve's
// computed primes are retained, so re-registering values is cheap.
//
// An outstanding prefetch is joined first; its result is discarded.
// Resetting without the join would let the stale background write race
// with the new state.
func (r *Registry[V]) Clear() {
	if r.pending != nil {
		_ = r.bg.Wait()
		r.pending = nil
	}

	r.forward = make(map[V]uint64)
	r.reverse = make(map[uint64]V)
	r.holes.Reset()
	r.nextFresh = 0
}

// ContainsPrime reports whether prime is currently assigned to a value.
func (r *Registry[V]) ContainsPrime(prime uint64) bool {
	_, ok := r.reverse[prime]
	return ok
}

// Value returns the value assigned to prime. It returns
// ErrUnassignedPrime if the prime is not currently assigned.
func (r *Registry[V]) Value(prime uint64) (V, error) {
	value, ok := r.reverse[prime]
	if !ok {
		return value, &ErrUnassignedPrime{Prime: prime}
	}
	return value, nil
}

// value is the comma-ok lookup used on decode paths, where an
// unassigned prime is skipped rather than surfaced.
func (r *Registry[V]) value(prime uint64) (V, bool) {
	v, ok := r.reverse[prime]
	return v, ok
}

// PrimeNumbers returns all primes the registry's sieve has computed so
// far, in ascending order. This includes primes that are pooled or were
// prefetched but never assigned.
func (r *Registry[V]) PrimeNumbers() []uint64 {
	return r.sieve.Primes()
}

// Len returns the number of values currently registered.
func (r *Registry[V]) Len() int {
	return len(r.forward)
}
