package basics

import (
	"math"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// Sign returns -1, 0 or 1. The math package has math.Signbit but no Sign.
func Sign(x float64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

func demoMaths(env *catalog.Env) {
	env.Println("  Abs(-20):      ", math.Abs(-20))
	env.Println("  Sign(-7):      ", Sign(-7))
	env.Println("  max(15, 30):   ", max(15, 30)) // builtin since Go 1.21
	env.Println("  min(15, 30):   ", min(15, 30))
	env.Println("  Pow(2, 3):     ", math.Pow(2, 3))
	env.Println("  Sqrt(49):      ", math.Sqrt(49))
	env.Println("  Floor(7.9):    ", math.Floor(7.9))
	env.Println("  Ceil(7.1):     ", math.Ceil(7.1))
	env.Println("  Round(5.6):    ", math.Round(5.6))
	env.Println("  RoundToEven(2.5):", math.RoundToEven(2.5)) // banker's rounding → 2
	env.Println("  Trunc(9.87):   ", math.Trunc(9.87))
	env.Println("  Exp(1):        ", math.Exp(1))
	env.Println("  Log(10):       ", math.Log(10))
	env.Println("  Log10(1000):   ", math.Log10(1000))
	env.Println("  Sin(Pi/2):     ", math.Sin(math.Pi/2))
	env.Println("  Cos(0):        ", math.Cos(0))
	env.Printf("  Tan(Pi/4):      %.15f\n", math.Tan(math.Pi/4)) // not exactly 1
	env.Println("  Asin(1):       ", math.Asin(1))
	env.Println("  Acos(1):       ", math.Acos(1))
	env.Println("  Atan(1):       ", math.Atan(1))
	env.Println("  Pi:            ", math.Pi)
	env.Println("  E:             ", math.E)
}
