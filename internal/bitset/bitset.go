// Package bitset provides a dense, reusable bit field sized to one
// sieve segment at a time.
package bitset

// Field is a fixed-window bit field backed by packed uint64 words.
// It is not safe for concurrent use; the sieve serializes access.
type Field struct {
	words []uint64
	n     int
}

// New creates a Field with capacity for n bits.
func New(n int) *Field {
	return &Field{
		words: make([]uint64, (n+63)/64),
		n:     n,
	}
}

// Reset resizes the window to n bits and clears every bit. The backing
// array is reused when it is large enough, so consecutive segments of
// similar width allocate nothing.
func (f *Field) Reset(n int) {
	need := (n + 63) / 64
	if need > len(f.words) {
		f.words = make([]uint64, need)
	} else {
		for i := 0; i < need; i++ {
			f.words[i] = 0
		}
	}
	f.n = n
}

// Set marks the bit at index i. Out-of-window indexes are ignored.
func (f *Field) Set(i int) {
	if i < 0 || i >= f.n {
		return
	}
	f.words[i>>6] |= 1 << (uint(i) & 63)
}

// Test reports whether the bit at index i is set.
func (f *Field) Test(i int) bool {
	if i < 0 || i >= f.n {
		return false
	}
	return f.words[i>>6]&(1<<(uint(i)&63)) != 0
}

// Len returns the current window size in bits.
func (f *Field) Len() int {
	return f.n
}
