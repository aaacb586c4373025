// Package basics covers the building blocks: arrays and slices, strings,
// the math package, functions, random numbers and type conversions.
package basics

import (
	"context"

	"github.com/marcodamonte/langtour/internal/catalog"
)

func Demos() []catalog.Demo {
	return []catalog.Demo{
		{Name: "arrays", Topic: "basics", Title: "Arrays & slices", Run: simple(demoArrays)},
		{Name: "strings", Topic: "basics", Title: "Strings — the everyday API", Run: simple(demoStrings)},
		{Name: "maths", Topic: "basics", Title: "math package", Run: simple(demoMaths)},
		{Name: "methods", Topic: "basics", Title: "Functions — params, returns, variadics, recursion", Run: simple(demoMethods)},
		{Name: "randoms", Topic: "basics", Title: "math/rand/v2", Run: simple(demoRandoms)},
		{Name: "typecasting", Topic: "basics", Title: "Type conversions", Run: demoTypeCasting},
	}
}

func simple(fn func(env *catalog.Env)) func(context.Context, *catalog.Env) error {
	return func(_ context.Context, env *catalog.Env) error {
		fn(env)
		return nil
	}
}
