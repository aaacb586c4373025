package oop

import (
	"fmt"
	"io"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// Appliance is satisfied implicitly: no type below names it.
type Appliance interface {
	TurnOn(w io.Writer)
	TurnOff(w io.Writer)
	Status() string
}

// Category is a second, narrower interface a type may also satisfy.
type Category interface {
	Category() string
}

// defaultStatus supplies Status for embedders that have nothing better to
// say, the closest Go gets to a default interface method.
type defaultStatus struct{}

func (defaultStatus) Status() string { return "Status: Unknown" }

type Fan struct {
	defaultStatus
	Speed int
}

func (f *Fan) TurnOn(w io.Writer)  { fmt.Fprintln(w, "  Fan is now ON.") }
func (f *Fan) TurnOff(w io.Writer) { fmt.Fprintln(w, "  Fan is now OFF.") }
func (f *Fan) Category() string    { return "Cooling" }

type Heater struct {
	on bool
}

func (h *Heater) TurnOn(w io.Writer)  { h.on = true; fmt.Fprintln(w, "  Heater is warming up.") }
func (h *Heater) TurnOff(w io.Writer) { h.on = false; fmt.Fprintln(w, "  Heater is cooling down.") }

func (h *Heater) Status() string {
	if h.on {
		return "Status: Heating"
	}
	return "Status: Idle"
}

var (
	_ Appliance = (*Fan)(nil)
	_ Appliance = (*Heater)(nil)
	_ Category  = (*Fan)(nil)
)

// ShowCategory reports a category if the appliance has one.
func ShowCategory(a Appliance) string {
	if c, ok := a.(Category); ok {
		return "Category: " + c.Category()
	}
	return "Category: none"
}

func demoInterfaces(env *catalog.Env) {
	fan := &Fan{Speed: 3}
	appliances := []Appliance{fan, &Heater{}}

	for _, a := range appliances {
		a.TurnOn(env.Out)
		env.Println(" ", a.Status())
		env.Println(" ", ShowCategory(a))
		a.TurnOff(env.Out)
	}

	env.Println("\n  type assertion back to the concrete type:")
	var a Appliance = fan
	if f, ok := a.(*Fan); ok {
		env.Printf("  *Fan with speed %d\n", f.Speed)
	}
	if _, ok := a.(*Heater); !ok {
		env.Println("  not a *Heater (comma-ok form avoids a panic)")
	}

	var none Appliance
	env.Printf("  zero Appliance == nil: %v\n", none == nil)
}
