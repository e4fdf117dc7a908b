package primebag

import (
	"iter"
	"math/big"
)

// Bag is a multiset of values encoded as a single arbitrary-precision
// integer: the product of each member's prime raised to its
// multiplicity. The empty bag has encoding 1.
//
// Every bag is bound to the registry it was created with; bags bound to
// different registries cannot be combined. A Bag is not safe for
// concurrent use.
type Bag[V comparable] struct {
	registry *Registry[V]
	encoding *big.Int
	size     uint
}

// NewBag creates an empty bag bound to registry.
func NewBag[V comparable](registry *Registry[V]) *Bag[V] {
	return &Bag[V]{
		registry: registry,
		encoding: big.NewInt(1),
	}
}

// Add inserts one occurrence of value, registering it if needed.
func (b *Bag[V]) Add(value V) {
	prime := b.registry.Add(value)

	b.encoding.Mul(b.encoding, new(big.Int).SetUint64(prime))
	b.size++
}

// AddBag inserts every element of other, with multiplicity (multiset
// union). It returns ErrRegistryMismatch if the bags are bound to
// different registries.
func (b *Bag[V]) AddBag(other *Bag[V]) error {
	if other.registry != b.registry {
		return ErrRegistryMismatch
	}

	b.encoding.Mul(b.encoding, other.encoding)
	b.size += other.size

	return nil
}

// Remove deletes one occurrence of value. It reports false, leaving the
// bag unchanged, when value is absent or was never registered.
func (b *Bag[V]) Remove(value V) bool {
	prime := b.registry.Prime(value)
	if prime == 0 {
		return false
	}

	quo, rem := new(big.Int).QuoRem(b.encoding, new(big.Int).SetUint64(prime), new(big.Int))
	if rem.Sign() != 0 {
		return false
	}

	b.encoding.Set(quo)
	b.size--

	return true
}

// RemoveBag deletes every element of other, with multiplicity (multiset
// difference). It succeeds only if other is a sub-multiset of b, i.e.
// b's encoding is exactly divisible by other's; otherwise it reports
// false and leaves b unchanged. It returns ErrRegistryMismatch if the
// bags are bound to different registries.
func (b *Bag[V]) RemoveBag(other *Bag[V]) (bool, error) {
	if other.registry != b.registry {
		return false, ErrRegistryMismatch
	}
	if other.size > b.size {
		return false, nil
	}

	quo, rem := new(big.Int).QuoRem(b.encoding, other.encoding, new(big.Int))
	if rem.Sign() != 0 {
		return false, nil
	}

	b.encoding.Set(quo)
	b.size -= other.size

	return true, nil
}

// Contains reports whether at least one occurrence of value is present.
func (b *Bag[V]) Contains(value V) bool {
	prime := b.registry.Prime(value)
	if prime == 0 {
		return false
	}

	rem := new(big.Int).Mod(b.encoding, new(big.Int).SetUint64(prime))

	return rem.Sign() == 0
}

// Count returns the multiplicity of value, 0 if absent or never
// registered.
func (b *Bag[V]) Count(value V) uint {
	prime := b.registry.Prime(value)
	if prime == 0 {
		return 0
	}

	bigPrime := new(big.Int).SetUint64(prime)
	remaining := new(big.Int).Set(b.encoding)

	var count uint
	for {
		quo, rem := new(big.Int).QuoRem(remaining, bigPrime, new(big.Int))
		if rem.Sign() != 0 {
			return count
		}
		remaining.Set(quo)
		count++
	}
}

// Size returns the number of elements, counted with multiplicity.
func (b *Bag[V]) Size() uint {
	return b.size
}

// Clear empties the bag. The registry is unaffected.
func (b *Bag[V]) Clear() {
	b.encoding.SetInt64(1)
	b.size = 0
}

// Encoding returns a copy of the bag's integer encoding.
func (b *Bag[V]) Encoding() *big.Int {
	return new(big.Int).Set(b.encoding)
}

// All returns an iterator over the bag's elements, each yielded once
// per occurrence. Order follows the ascending order of assigned primes,
// not insertion order. The iteration works on a private copy of the
// encoding taken when the loop starts.
func (b *Bag[V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		remaining := new(big.Int).Set(b.encoding)
		counter := b.size

		for _, prime := range b.registry.PrimeNumbers() {
			if counter == 0 {
				return
			}

			bigPrime := new(big.Int).SetUint64(prime)
			for {
				quo, rem := new(big.Int).QuoRem(remaining, bigPrime, new(big.Int))
				if rem.Sign() != 0 {
					break
				}
				remaining.Set(quo)
				counter--

				// A factor whose prime was unregistered while still
				// encoded in the bag has no value to report; skip it.
				value, ok := b.registry.value(prime)
				if !ok {
					continue
				}
				if !yield(value) {
					return
				}
			}
		}
	}
}

// ToSlice decodes the bag into a slice, in the same order as All.
func (b *Bag[V]) ToSlice() []V {
	result := make([]V, 0, b.size)
	for value := range b.All() {
		result = append(result, value)
	}
	return result
}

// Begin returns a cursor positioned on the bag's first element, or a
// terminal cursor if the bag is empty. The cursor holds a snapshot of
// the bag taken now; later mutation of the bag does not affect it.
func (b *Bag[V]) Begin() *Cursor[V] {
	c := newCursor(b)
	if b.size == 0 {
		c.park()
	} else {
		c.Next()
	}
	return c
}

// End returns a terminal cursor for the bag. Comparing against it with
// Cursor.Equal terminates forward iteration.
func (b *Bag[V]) End() *Cursor[V] {
	c := newCursor(b)
	c.park()
	return c
}
