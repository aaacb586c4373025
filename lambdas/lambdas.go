// Package lambdas demonstrates function literals and closures.
package lambdas

import (
	"context"
	"fmt"
	"strings"

	"github.com/marcodamonte/langtour/internal/catalog"
	"github.com/marcodamonte/langtour/linq"
)

func Demos() []catalog.Demo {
	return []catalog.Demo{{
		Name:  "lambdas",
		Topic: "lambdas",
		Title: "Function literals & closures",
		Run:   demoLambdas,
	}}
}

// Multiplier returns a function that multiplies by factor.
func Multiplier(factor int) func(int) int {
	return func(x int) int { return x * factor }
}

// Power returns a function raising its argument to exponent.
func Power(exponent int) func(int) int {
	return func(base int) int {
		result := 1
		for i := 0; i < exponent; i++ {
			result *= base
		}
		return result
	}
}

// Counter returns a closure that owns its own count.
func Counter() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}

func demoLambdas(_ context.Context, env *catalog.Env) error {
	square := func(x int) int { return x * x }
	env.Println("  square(5):", square(5))

	add := func(a, b int) int { return a + b }
	env.Println("  add(3, 4):", add(3, 4))

	multiplyAndAdd := func(a, b int) int {
		product := a * b
		return product + 10
	}
	env.Println("  3*4 + 10:", multiplyAndAdd(3, 4))

	greet := func() { env.Println("  Hello, func literal!") }
	greet()

	multiplyBy3 := Multiplier(3)
	env.Println("  multiplyBy3(10):", multiplyBy3(10))

	// A closure captures the variable, not its value at creation time.
	factor := 5
	byFactor := func(x int) int { return x * factor }
	env.Println("  captured factor (5):", byFactor(10))
	factor = 10
	env.Println("  after factor = 10: ", byFactor(10))

	numbers := []int{1, 2, 3, 4, 5, 6}
	evens := linq.Where(linq.From(numbers), func(n int) bool { return n%2 == 0 })
	env.Println("  even numbers:", join(linq.ToSlice(evens)))
	squares := linq.Select(linq.From(numbers), square)
	env.Println("  squares:", join(linq.ToSlice(squares)))

	printWithPrefix := func(name string) {
		prefix := "[Name]"
		env.Printf("  %s %s\n", prefix, name)
	}
	printWithPrefix("Alice")

	squareFn, cubeFn := Power(2), Power(3)
	env.Println("  5 squared:", squareFn(5))
	env.Println("  2 cubed:", cubeFn(2))

	next := Counter()
	next()
	next()
	env.Println("  counter after three calls:", next())

	// Each Go 1.22+ loop iteration has its own variable, so these closures
	// see 0, 1, 2 rather than the final value.
	var fns []func() int
	for i := range 3 {
		fns = append(fns, func() int { return i })
	}
	env.Printf("  per-iteration capture: %d %d %d\n", fns[0](), fns[1](), fns[2]())

	// Method values bind the receiver.
	var sb strings.Builder
	write := sb.WriteString
	write("method ")
	write("value")
	env.Println("  method value:", sb.String())
	return nil
}

func join(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
