// Package oop maps the object-oriented pillars onto Go: structs with
// methods, embedding instead of inheritance, implicit interfaces, and type
// parameters.
package oop

import (
	"context"

	"github.com/marcodamonte/langtour/internal/catalog"
)

func Demos() []catalog.Demo {
	return []catalog.Demo{
		{Name: "abstraction", Topic: "oop", Title: "Abstraction — interface plus shared base", Run: noErr(demoAbstraction)},
		{Name: "classes", Topic: "oop", Title: "Structs as classes — visibility, constructors, counters", Run: noErr(demoClasses)},
		{Name: "inheritance", Topic: "oop", Title: "Embedding instead of inheritance", Run: noErr(demoInheritance)},
		{Name: "interfaces", Topic: "oop", Title: "Interfaces — implicit satisfaction, assertions", Run: noErr(demoInterfaces)},
		{Name: "polymorphism", Topic: "oop", Title: "Polymorphism — dynamic dispatch and its limits", Run: noErr(demoPolymorphism)},
		{Name: "generics", Topic: "oop", Title: "Generics — LinkedList[T]", Run: noErr(demoGenerics)},
		{Name: "structs", Topic: "oop", Title: "Structs — value semantics", Run: noErr(demoStructs)},
	}
}

func noErr(fn func(env *catalog.Env)) func(context.Context, *catalog.Env) error {
	return func(_ context.Context, env *catalog.Env) error {
		fn(env)
		return nil
	}
}
