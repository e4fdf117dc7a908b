// Package holepool tracks primes that were assigned to a value and
// later freed, making them available for reuse.
package holepool

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// Pool is a max-ordered pool of freed primes. Taking always yields the
// numerically largest available prime, which biases fresh allocation
// toward keeping low primes in circulation. It wraps a roaring bitmap,
// so duplicate puts collapse into a single entry.
//
// Pool is not safe for concurrent use; the registry serializes access.
type Pool struct {
	rb *roaring64.Bitmap
}

// New creates an empty Pool.
func New() *Pool {
	return &Pool{
		rb: roaring64.New(),
	}
}

// Put adds a freed prime to the pool.
func (p *Pool) Put(prime uint64) {
	p.rb.Add(prime)
}

// TakeMax removes and returns the largest pooled prime. The second
// return value is false when the pool is empty.
func (p *Pool) TakeMax() (uint64, bool) {
	if p.rb.IsEmpty() {
		return 0, false
	}
	prime := p.rb.Maximum()
	p.rb.Remove(prime)
	return prime, true
}

// Contains reports whether a prime is currently pooled.
func (p *Pool) Contains(prime uint64) bool {
	return p.rb.Contains(prime)
}

// Len returns the number of pooled primes.
func (p *Pool) Len() int {
	return int(p.rb.GetCardinality())
}

// Reset empties the pool.
func (p *Pool) Reset() {
	p.rb.Clear()
}
