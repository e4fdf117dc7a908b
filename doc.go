// Package primebag provides a multiset ("bag") encoded as a single
// arbitrary-precision integer.
//
// Every distinct value is assigned a unique prime number by a Registry,
// and a Bag represents its contents as the product of those primes
// raised to each member's multiplicity. Membership, counting, union and
// difference then reduce to big-integer multiplication, division and
// divisibility tests.
//
// # Quick Start
//
//	registry := primebag.NewRegistry[string]()
//
//	bag := primebag.NewBag(registry)
//	bag.Add("a")
//	bag.Add("a")
//	bag.Add("b")
//
//	bag.Contains("a")  // true
//	bag.Count("a")     // 2
//	bag.Size()         // 3
//	bag.ToSlice()      // [a a b]
//
// # Registries
//
// A Registry owns the value-to-prime bijection shared by every bag
// bound to it. Primes freed by Registry.Remove are recycled, and the
// next fresh prime is precomputed on a background goroutine so that
// sieve latency overlaps with the caller's work. Bags bound to
// different registries cannot be combined; AddBag and RemoveBag return
// ErrRegistryMismatch.
//
// Registries can pool sieve work by seeding from an existing prime
// list:
//
//	r2 := primebag.NewRegistry[int](primebag.WithSeedPrimes(r1.PrimeNumbers()))
//
// # Iteration
//
// Bag.All returns an iter.Seq for range loops. For explicit stepping,
// including backward, use cursors:
//
//	for c := bag.Begin(); !c.Equal(bag.End()); c.Next() {
//	    v, _ := c.Value()
//	    fmt.Println(v)
//	}
//
// A cursor traverses a private snapshot of the bag taken at creation;
// mutating the bag afterwards does not affect cursors already in
// flight. Iteration order follows the ascending order of assigned
// primes, not insertion order.
//
// # Concurrency
//
// A Registry and its bags are not synchronized for concurrent callers;
// serialize mutation of the same object externally. The only internal
// concurrency is the registry's one-ahead prime prefetch, which the
// registry joins before it is consumed and before Clear resets state.
package primebag
