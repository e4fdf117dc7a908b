package primebag

import (
	"errors"
	"fmt"
)

var (
	// ErrRegistryMismatch is returned when two bags bound to different
	// registries are combined. Their encodings use unrelated prime
	// assignments, so no multiset interpretation exists.
	ErrRegistryMismatch = errors.New("bags are bound to different registries")

	// ErrCursorExhausted is returned when a terminal cursor is
	// dereferenced.
	ErrCursorExhausted = errors.New("cursor is exhausted")
)

// ErrUnassignedPrime indicates a reverse lookup for a prime that is not
// currently assigned to any value. Callers that cannot rule this out
// should check Registry.ContainsPrime first.
type ErrUnassignedPrime struct {
	Prime uint64
}

func (e *ErrUnassignedPrime) Error() string {
	return fmt.Sprintf("prime %d is not assigned to a value", e.Prime)
}
