package sieve

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var first20 = []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71}

func TestSieve(t *testing.T) {
	t.Run("Nth", func(t *testing.T) {
		s := New()

		for i, want := range first20 {
			assert.Equal(t, want, s.Nth(i), "prime at index %d", i)
		}
	})

	t.Run("NthOutOfOrder", func(t *testing.T) {
		s := New()

		// Jump ahead first, then read earlier indexes from the cache.
		assert.Equal(t, uint64(71), s.Nth(19))
		assert.Equal(t, uint64(2), s.Nth(0))
		assert.Equal(t, uint64(29), s.Nth(9))
	})

	t.Run("Stability", func(t *testing.T) {
		s := New()

		for i := 0; i < 3; i++ {
			assert.Equal(t, uint64(13), s.Nth(5))
		}
		assert.Equal(t, 6, s.Count())
	})

	t.Run("ManySegments", func(t *testing.T) {
		s := New()

		// The 1000th prime; forces repeated limit doubling and many
		// capped segments.
		assert.Equal(t, uint64(7919), s.Nth(999))
		assert.Equal(t, uint64(104729), s.Nth(9999))
	})

	t.Run("Primes", func(t *testing.T) {
		s := New()
		s.Nth(4)

		primes := s.Primes()
		require.Len(t, primes, 5)
		assert.Equal(t, []uint64{2, 3, 5, 7, 11}, primes)

		// Mutating the returned slice must not corrupt the sieve.
		primes[0] = 4
		assert.Equal(t, uint64(2), s.Nth(0))
	})
}

func TestSieve_Seeded(t *testing.T) {
	t.Run("ContinuesPastSeed", func(t *testing.T) {
		s := NewWithPrimes([]uint64{2, 3, 5, 7})

		assert.Equal(t, 4, s.Count())
		assert.Equal(t, uint64(7), s.Nth(3))
		assert.Equal(t, uint64(11), s.Nth(4))
		assert.Equal(t, uint64(13), s.Nth(5))
	})

	t.Run("SharedWork", func(t *testing.T) {
		a := New()
		a.Nth(99)

		b := NewWithPrimes(a.Primes())
		assert.Equal(t, 100, b.Count())

		for i, want := range first20 {
			assert.Equal(t, want, b.Nth(i))
		}
		assert.Equal(t, a.Nth(100), b.Nth(100))
	})

	t.Run("SingleSeed", func(t *testing.T) {
		s := NewWithPrimes([]uint64{2})

		assert.Equal(t, uint64(3), s.Nth(1))
		assert.Equal(t, uint64(5), s.Nth(2))
	})

	t.Run("EmptySeed", func(t *testing.T) {
		s := NewWithPrimes(nil)

		assert.Equal(t, uint64(2), s.Nth(0))
	})
}

func TestSieve_Concurrent(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				idx := (g*53 + i*7) % 500
				got := s.Nth(idx)
				if got == 0 {
					t.Errorf("Nth(%d) returned 0", idx)
				}
				_ = s.Count()
			}
		}(g)
	}
	wg.Wait()

	for i, want := range first20 {
		require.Equal(t, want, s.Nth(i))
	}
}
