package collections

import (
	"slices"
	"strconv"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// demoList performs every common list operation with plain slices and the
// slices package. There is no List type in Go; []T plus these helpers is the
// idiom.
func demoList(env *catalog.Env) {
	var numbers []int // nil slice: ready to append to

	numbers = append(numbers, 10, 20, 30, 40)
	numbers = append(numbers, []int{50, 60}...) // AddRange
	env.Println("  after append:     ", numbers)

	numbers = slices.Insert(numbers, 2, 25)
	env.Println("  insert 25 at 2:   ", numbers)

	if i := slices.Index(numbers, 40); i >= 0 { // remove by value
		numbers = slices.Delete(numbers, i, i+1)
	}
	numbers = slices.Delete(numbers, 0, 1) // remove at index
	env.Println("  remove 40, [0]:   ", numbers)

	numbers = slices.DeleteFunc(numbers, func(x int) bool { return x > 55 })
	env.Println("  remove all > 55:  ", numbers) // [20 25 30 50]

	env.Println("  contains 30:      ", slices.Contains(numbers, 30))
	env.Println("  index of 25:      ", slices.Index(numbers, 25))
	env.Println("  last index < 30:  ", LastIndexFunc(numbers, func(x int) bool { return x < 30 }))

	if v, ok := Find(numbers, func(x int) bool { return x > 20 }); ok {
		env.Println("  first > 20:       ", v)
	}
	env.Println("  all > 20:         ", Filter(numbers, func(x int) bool { return x > 20 }))
	env.Println("  range [1:4]:      ", numbers[1:4])

	slices.Sort(numbers)
	slices.Reverse(numbers)
	env.Println("  sorted desc:      ", numbers)

	asArray := [4]int(numbers) // slice → array conversion (Go 1.20+), panics if len differs
	env.Println("  as array:         ", asArray)

	strs := Map(numbers, strconv.Itoa)
	env.Printf("  converted:         %q\n", strs)

	env.Println("  elements:")
	for _, n := range numbers {
		env.Println("   ", n)
	}
	env.Println("  len:", len(numbers))

	numbers = numbers[:0] // clear but keep capacity
	env.Printf("  len after clear: %d (cap still %d)\n", len(numbers), cap(numbers))
}

// Find returns the first element matching pred.
func Find[T any](s []T, pred func(T) bool) (T, bool) {
	if i := slices.IndexFunc(s, pred); i >= 0 {
		return s[i], true
	}
	var zero T
	return zero, false
}

// LastIndexFunc returns the index of the last element matching pred, or -1.
func LastIndexFunc[T any](s []T, pred func(T) bool) int {
	for i := len(s) - 1; i >= 0; i-- {
		if pred(s[i]) {
			return i
		}
	}
	return -1
}

// Filter returns a new slice with the elements matching pred.
func Filter[T any](s []T, pred func(T) bool) []T {
	var out []T
	for _, v := range s {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Map converts every element with fn.
func Map[T, U any](s []T, fn func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}
