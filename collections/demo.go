// Package collections tours the built-in containers (slices and maps), a
// generic Set, and a mutable string Builder.
package collections

import (
	"context"

	"github.com/marcodamonte/langtour/internal/catalog"
)

func Demos() []catalog.Demo {
	return []catalog.Demo{
		{Name: "list", Topic: "collections", Title: "Slices as lists — the slices package", Run: noErr(demoList)},
		{Name: "map", Topic: "collections", Title: "Maps — the maps package", Run: noErr(demoMap)},
		{Name: "set", Topic: "collections", Title: "Set[T comparable]", Run: noErr(demoSet)},
		{Name: "stringbuilder", Topic: "collections", Title: "Builder — a mutable string buffer", Run: demoBuilder},
		{Name: "text", Topic: "collections", Title: "Strings — formatting, split/join, raw literals", Run: noErr(demoText)},
	}
}

func noErr(fn func(env *catalog.Env)) func(context.Context, *catalog.Env) error {
	return func(_ context.Context, env *catalog.Env) error {
		fn(env)
		return nil
	}
}
