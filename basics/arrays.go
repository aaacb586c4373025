package basics

import (
	"slices"

	"github.com/marcodamonte/langtour/internal/catalog"
	"github.com/marcodamonte/langtour/internal/ui"
)

// demoArrays walks through fixed-size arrays and the slices built on them.
//
// An array's length is part of its type ([5]int and [3]int are different
// types) and assigning one copies every element. Slices are the everyday
// tool: a view with length and capacity over a backing array.
func demoArrays(env *catalog.Env) {
	ui.Sub(env.Out, "declaration")
	var zeroed [5]int           // every element is the zero value
	literal := [5]int{1, 2, 3, 4, 5}
	inferred := [...]int{10, 20, 30, 40, 50} // length from the literal
	env.Printf("  zeroed=%v literal=%v\n", zeroed, literal)
	env.Println("  inferred[2]:", inferred[2]) // 30

	ui.Sub(env.Out, "iteration")
	env.Printf("  index loop: ")
	for i := 0; i < len(inferred); i++ {
		env.Printf("%d ", inferred[i])
	}
	env.Printf("\n  range loop: ")
	for _, v := range inferred {
		env.Printf("%d ", v)
	}
	env.Println()

	env.Println("  len:", len(inferred))

	ui.Sub(env.Out, "sort, reverse, search, copy")
	nums := inferred[:] // slice over the whole array, shares storage
	slices.Sort(nums)
	env.Println("  sorted:  ", nums)
	slices.Reverse(nums)
	env.Println("  reversed:", nums)
	env.Println("  index of 30:", slices.Index(nums, 30)) // 2
	env.Println("  array sees the change too:", inferred)

	copied := make([]int, 5)
	n := copy(copied, nums)
	copied[0] = -1
	env.Printf("  copied %d elements: %v (original still %v)\n", n, copied, nums)

	arrCopy := literal // arrays are values: this is a full copy
	arrCopy[0] = 99
	env.Printf("  array assignment copies: literal=%v arrCopy=%v\n", literal, arrCopy)

	ui.Sub(env.Out, "two-dimensional array")
	grid := [2][3]int{{1, 2, 3}, {4, 5, 6}}
	for _, row := range grid {
		env.Printf("  ")
		for _, v := range row {
			env.Printf("%d ", v)
		}
		env.Println()
	}

	ui.Sub(env.Out, "jagged — slice of slices")
	jagged := [][]int{{1, 2, 3}, {4, 5}}
	for _, row := range jagged {
		env.Printf("  ")
		for _, v := range row {
			env.Printf("%d ", v)
		}
		env.Printf(" (len %d)\n", len(row))
	}

	ui.Sub(env.Out, "passing and returning")
	data := GenerateSeq(5)
	env.Println("  returned:", data)
	env.Println("  sum:", Sum(data)) // 15
}

// GenerateSeq returns 1..n.
func GenerateSeq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Sum adds every element.
func Sum(nums []int) int {
	total := 0
	for _, v := range nums {
		total += v
	}
	return total
}
