package basics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/marcodamonte/langtour/internal/catalog"
	"github.com/marcodamonte/langtour/internal/ui"
)

// demoTypeCasting: Go has no implicit numeric conversions at all. Every
// change of type is written T(v); string parsing goes through strconv and
// returns an error instead of throwing.
func demoTypeCasting(_ context.Context, env *catalog.Env) error {
	ui.Sub(env.Out, "widening — still explicit")
	var f1 float32 = 12.34
	d1 := float64(f1) // float32 → float64 exposes the binary rounding
	env.Printf("  %v %T\n", d1, d1)

	ch := 'A' // rune is an alias for int32
	env.Printf("  %v %T\n", int(ch), int(ch))

	small := 1000
	large := int64(small)
	env.Printf("  %v %T\n", large, large)

	active := strconv.FormatBool(true)
	env.Printf("  %v %T\n", active, active)

	xs := strconv.Itoa(100)
	env.Printf("  %v %T\n", xs, xs)

	ui.Sub(env.Out, "narrowing — may lose data")
	a := 3.140934691
	env.Printf("  int(%v) = %d (truncates toward zero)\n", a, int(a))

	d2 := 56.789
	f2 := float32(d2)
	env.Printf("  %v %T\n", f2, f2)

	big := 300
	env.Printf("  uint8(%d) = %d (wraps)\n", big, uint8(big))

	ui.Sub(env.Out, "parsing strings")
	c := []rune("@")[0]
	env.Printf("  %c %T\n", c, c)

	b, err := strconv.ParseBool("true")
	if err != nil {
		return fmt.Errorf("parse bool: %w", err)
	}
	env.Printf("  %v %T\n", b, b)

	num, err := strconv.Atoi("123")
	if err != nil {
		return fmt.Errorf("parse int: %w", err)
	}
	env.Printf("  %v %T\n", num, num)

	if _, err := strconv.Atoi("12x"); err != nil {
		env.Println("  Atoi(\"12x\") error:", err)
	}
	return nil
}
