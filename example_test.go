package primebag_test

import (
	"fmt"

	"github.com/hupe1980/primebag"
)

func ExampleBag() {
	registry := primebag.NewRegistry[string]()

	bag := primebag.NewBag(registry)
	bag.Add("a")
	bag.Add("a")
	bag.Add("b")

	fmt.Println(bag.Size())
	fmt.Println(bag.Count("a"))
	fmt.Println(bag.Encoding())
	fmt.Println(bag.ToSlice())
	// Output:
	// 3
	// 2
	// 12
	// [a a b]
}

func ExampleRegistry() {
	registry := primebag.NewRegistry[string]()

	fmt.Println(registry.Add("a"))
	fmt.Println(registry.Add("b"))
	fmt.Println(registry.Add("c"))

	// Freed primes are recycled, largest first.
	registry.Remove("a")
	registry.Remove("b")
	fmt.Println(registry.Add("d"))
	// Output:
	// 2
	// 3
	// 5
	// 3
}

func ExampleBag_Begin() {
	registry := primebag.NewRegistry[string]()

	bag := primebag.NewBag(registry)
	bag.Add("x")
	bag.Add("y")
	bag.Add("x")

	for c := bag.Begin(); !c.Done(); c.Next() {
		v, err := c.Value()
		if err != nil {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// x
	// x
	// y
}

func ExampleBag_All() {
	registry := primebag.NewRegistry[string]()

	bag := primebag.NewBag(registry)
	bag.Add("b")
	bag.Add("a")

	for v := range bag.All() {
		fmt.Println(v)
	}
	// Output:
	// b
	// a
}
