package delegates

import (
	"context"

	"github.com/marcodamonte/langtour/internal/catalog"
	"github.com/marcodamonte/langtour/internal/ui"
)

func Demos() []catalog.Demo {
	return []catalog.Demo{{
		Name:  "delegates",
		Topic: "delegates",
		Title: "Delegates — function values and multicast lists",
		Run:   demoDelegates,
	}}
}

func demoDelegates(_ context.Context, env *catalog.Env) error {
	greet := func(name string) { env.Println("  Greet :", name) }
	farewell := func(name string) { env.Println("  Goodbye,", name) }
	welcome := func(name string) { env.Println("  Welcome,", name) }

	ui.Sub(env.Out, "a plain func value")
	var f func(string) = greet // a func value is already a type-safe function pointer
	f("Prasu")

	ui.Sub(env.Out, "single-cast delegate")
	del := Of("Greet", greet)
	del.Invoke("Prasu")

	ui.Sub(env.Out, "multicast delegate")
	del = del.Add("Farewell", farewell).Add("Welcome", welcome)
	del.Invoke("Ashok")

	del = del.RemoveName("Greet")

	ui.Sub(env.Out, "invocation list")
	env.Println("  number of handlers:", del.Len())
	for _, h := range del.InvocationList() {
		env.Println("  handler:", h.Name)
	}

	ui.Sub(env.Out, "Combine and Remove")
	del1 := Of("Greet", greet)
	del2 := Of("Farewell", farewell)
	combined := Combine(del1, del2)
	combined.Invoke("Combined Delegate")

	combined = combined.Remove(del2)
	env.Println("\n  after removing Farewell:")
	combined.Invoke("After Removal")

	ui.Sub(env.Out, "empty delegate")
	var empty Delegate[string]
	empty.Invoke("nobody") // no-op, no nil check needed
	env.Println("  empty delegate invoked safely; len =", empty.Len())
	return nil
}
