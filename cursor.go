package primebag

import "math/big"

// Cursor steps through a bag's elements in ascending prime order. It
// operates on an owned snapshot of the bag's encoding and size taken at
// creation, shrinking the snapshot as it advances; the source bag is
// never touched. Mutating the bag after creating a cursor therefore
// does not affect traversal.
//
// A Cursor is not safe for concurrent use.
type Cursor[V comparable] struct {
	registry *Registry[V]
	primes   []uint64 // snapshot of the global prime list at creation

	// Live traversal state: the not-yet-visited remainder.
	encoding *big.Int
	size     uint

	// Origin snapshot, used by Prev to test which primes were consumed.
	originEncoding *big.Int
	originSize     uint

	pos      int // index into primes of the current element
	terminal bool
}

func newCursor[V comparable](b *Bag[V]) *Cursor[V] {
	return &Cursor[V]{
		registry:       b.registry,
		primes:         b.registry.PrimeNumbers(),
		encoding:       new(big.Int).Set(b.encoding),
		size:           b.size,
		originEncoding: new(big.Int).Set(b.encoding),
		originSize:     b.size,
	}
}

// park puts the cursor into its terminal state: snapshot consumed,
// position at the end of the prime list.
func (c *Cursor[V]) park() {
	c.encoding.SetInt64(1)
	c.size = 0
	c.pos = len(c.primes) - 1
	c.terminal = true
}

// Next advances to the next element. Advancing scans the prime list
// forward from the current position for the next prime dividing the
// snapshot, divides it out, and makes it current. Once the snapshot is
// consumed, the next call marks the cursor terminal; Next on a terminal
// cursor does nothing.
func (c *Cursor[V]) Next() {
	if c.terminal {
		return
	}
	if c.size == 0 {
		c.terminal = true
		return
	}

	for c.pos < len(c.primes) {
		quo, rem := new(big.Int).QuoRem(c.encoding, new(big.Int).SetUint64(c.primes[c.pos]), new(big.Int))
		if rem.Sign() == 0 {
			c.encoding.Set(quo)
			c.size--
			return
		}
		c.pos++
	}

	// No factor left in the snapshot's prime list; nothing to visit.
	c.terminal = true
}

// Prev steps back to the previously visited element by multiplying the
// current prime back into the snapshot, then scanning the prime list
// backward for the prime consumed before it (the largest position whose
// prime, multiplied into the snapshot, still divides the origin
// encoding). Retreating is only possible while the cursor has not
// stepped back past the bag's second element.
func (c *Cursor[V]) Prev() {
	if c.size+1 >= c.originSize {
		return
	}

	if c.terminal {
		c.terminal = false
	} else {
		c.encoding.Mul(c.encoding, new(big.Int).SetUint64(c.primes[c.pos]))
		c.size++
	}

	for c.pos >= 0 {
		candidate := new(big.Int).SetUint64(c.primes[c.pos])
		candidate.Mul(candidate, c.encoding)
		if new(big.Int).Mod(c.originEncoding, candidate).Sign() == 0 {
			return
		}
		c.pos--
	}
}

// Value returns the element the cursor is positioned on. It returns
// ErrCursorExhausted for a terminal cursor, and ErrUnassignedPrime if
// the element's prime was unregistered after the snapshot was taken.
func (c *Cursor[V]) Value() (V, error) {
	var zero V
	if c.terminal {
		return zero, ErrCursorExhausted
	}
	if c.pos < 0 || c.pos >= len(c.primes) {
		return zero, ErrCursorExhausted
	}

	prime := c.primes[c.pos]
	value, ok := c.registry.value(prime)
	if !ok {
		return zero, &ErrUnassignedPrime{Prime: prime}
	}

	return value, nil
}

// Done reports whether the cursor is terminal.
func (c *Cursor[V]) Done() bool {
	return c.terminal
}

// Equal reports whether two cursors are at the same position: both
// terminal, or both non-terminal with identical remaining snapshot size
// and encoding. Cursors from different registries are never equal.
func (c *Cursor[V]) Equal(other *Cursor[V]) bool {
	if other == nil || c.registry != other.registry {
		return false
	}
	if c.terminal || other.terminal {
		return c.terminal == other.terminal
	}

	return c.size == other.size &&
		c.encoding.Cmp(other.encoding) == 0
}

// Compare orders two cursors by traversal progress: the cursor with
// fewer remaining elements is further along and compares greater.
// It returns -1, 0, or 1.
func (c *Cursor[V]) Compare(other *Cursor[V]) int {
	switch {
	case c.size > other.size:
		return -1
	case c.size < other.size:
		return 1
	default:
		return 0
	}
}
