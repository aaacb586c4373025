package basics

import (
	"fmt"
	"strings"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// demoMethods covers what Go functions can and cannot do:
//
//   - no overloading: use distinct names or a type parameter
//   - no default or named arguments: use a config struct or functional options
//   - no ref/out parameters: pass a pointer, or return multiple values
//   - variadic parameters must come last, just like everywhere else
func demoMethods(env *catalog.Env) {
	greetUser(env)
	printSum(env, 10, 20)
	env.Println("  Square:", Square(5))

	// "Overloading" through a type parameter.
	env.Println("  Multiply int:", Multiply(4, 5))
	env.Println("  Multiply float64:", Multiply(2.5, 3.5))

	// Defaults via functional options.
	env.Println(" ", DisplayUser("Alice"))
	env.Println(" ", DisplayUser("Bob", WithAge(25)))
	env.Println(" ", DisplayUser("Charlie", WithAge(30)))

	// ref → pointer parameter; out → extra return value.
	a := 5
	DoubleIt(&a)
	b := SetValue()
	env.Println("  after pointer param:", a) // 10
	env.Println("  returned value:", b)     // 100

	env.Printf("  variadic: [%s] [%s] [%s]\n", JoinInts(), JoinInts(1, 2, 3), JoinInts(10, 20, 30, 40, 50))
	nums := []int{7, 8, 9}
	env.Printf("  variadic with spread: [%s]\n", JoinInts(nums...))

	env.Println("  Factorial(5):", Factorial(5))
	cube := func(x int) int { return x * x * x } // function literal
	env.Println("  Cube(3):", cube(3))
}

func greetUser(env *catalog.Env) { env.Println("  Hello, User!") }

func printSum(env *catalog.Env, x, y int) { env.Println("  Sum:", x+y) }

func Square(n int) int { return n * n }

// Multiply works for any numeric type.
func Multiply[T ~int | ~int64 | ~float64](x, y T) T { return x * y }

type userOpts struct{ age int }

// UserOption customises DisplayUser.
type UserOption func(*userOpts)

func WithAge(age int) UserOption { return func(o *userOpts) { o.age = age } }

// DisplayUser formats a user line; age defaults to 18.
func DisplayUser(name string, opts ...UserOption) string {
	o := userOpts{age: 18}
	for _, opt := range opts {
		opt(&o)
	}
	return fmt.Sprintf("Name: %s, Age: %d", name, o.age)
}

func DoubleIt(v *int) { *v *= 2 }

func SetValue() int { return 100 }

func JoinInts(nums ...int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, " ")
}

func Factorial(n int) int {
	if n <= 1 {
		return 1
	}
	return n * Factorial(n-1)
}
