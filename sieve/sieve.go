// Package sieve generates prime numbers on demand using a segmented
// Sieve of Eratosthenes.
//
// The sieve is incremental: primes are discovered in ascending order,
// cached forever, and never recomputed. Requesting an index that is
// already known is a constant-time slice read; requesting a higher
// index sieves just enough additional segments to reach it. Per-segment
// scratch space is bounded by the square root of the current sieving
// limit, so arbitrarily deep prime sequences can be generated without
// retaining more than the prime list itself.
package sieve

import (
	"math"
	"slices"
	"sync"

	"github.com/hupe1980/primebag/internal/bitset"
)

// Sieve generates the k-th prime on demand. The zero value is not
// usable; construct with New or NewWithPrimes.
//
// All methods are safe for concurrent use. This matters for one caller
// in particular: a registry's background prefetch may extend the sieve
// while the foreground reads Primes or Count.
type Sieve struct {
	mu            sync.Mutex
	primes        []uint64
	highestTested uint64
	limit         uint64
	field         *bitset.Field // reusable per-segment composite marks
}

// New creates a sieve with no precomputed primes. Counting starts at 2.
func New() *Sieve {
	return &Sieve{
		// 0 and 1 are composite; consider them tested.
		highestTested: 1,
		limit:         1,
		field:         bitset.New(0),
	}
}

// NewWithPrimes creates a sieve seeded with an ascending, gap-free
// prime sequence, typically obtained from another sieve's Primes. The
// input is trusted: seeding with composites or an out-of-order list
// invalidates every later result.
func NewWithPrimes(primes []uint64) *Sieve {
	s := New()
	if len(primes) > 0 {
		s.primes = slices.Clone(primes)
		s.highestTested = s.primes[len(s.primes)-1]
		s.limit = s.highestTested
	}
	return s
}

// Nth returns the prime at the given 0-based index, sieving further
// segments if it has not been computed yet. For large fresh indexes
// this can take proportionally long; there is no cancellation.
func (s *Sieve) Nth(index int) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.grow(index + 1)

	return s.primes[index]
}

// Primes returns a copy of all primes computed so far, in ascending
// order.
func (s *Sieve) Primes() []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.primes)
}

// Count returns the number of primes computed so far.
func (s *Sieve) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.primes)
}

// grow sieves segments until at least n primes are known.
// Caller must hold s.mu.
func (s *Sieve) grow(n int) {
	for len(s.primes) < n {
		lower := s.highestTested + 1

		for s.limit <= lower {
			s.limit *= 2
		}

		// Cap the segment at lower+sqrt(limit) to bound scratch memory.
		root := uint64(math.Sqrt(float64(s.limit)))
		upper := s.limit
		if lower+root < upper {
			upper = lower + root
		}

		span := int(upper - lower + 1)
		s.field.Reset(span)

		// Strike multiples of every known prime, then of each new prime
		// discovered within the segment itself. Unmarked positions are
		// primes, found in increasing order.
		for _, prime := range s.primes {
			s.strike(prime, lower, upper)
		}
		for off := 0; off < span; off++ {
			if s.field.Test(off) {
				continue
			}
			prime := lower + uint64(off)
			s.strike(prime, lower, upper)
			s.primes = append(s.primes, prime)
		}

		s.highestTested = upper
	}
}

// strike marks every multiple of prime within [lower, upper] as
// composite. Striking starts at prime squared; smaller multiples have a
// smaller prime factor and are struck by it instead.
func (s *Sieve) strike(prime, lower, upper uint64) {
	if prime > upper/prime {
		// prime^2 exceeds the segment (or would overflow).
		return
	}
	for multiple := prime * prime; multiple <= upper; multiple += prime {
		if multiple >= lower {
			s.field.Set(int(multiple - lower))
		}
	}
}
