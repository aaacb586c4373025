package oop

import (
	"fmt"
	"io"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// Vehicle is the abstract contract. Go has no abstract classes: the
// interface lists what each concrete type must provide, and shared
// behaviour lives in an embeddable struct.
type Vehicle interface {
	Model() string
	Wheels() int
	StartEngine(w io.Writer)
	StopEngine(w io.Writer)
	Honk(w io.Writer)
}

// vehicleBase carries the fields and default methods every vehicle shares.
// It does not satisfy Vehicle on its own (no Wheels, no StartEngine), so it
// cannot be used as one.
type vehicleBase struct {
	model string
}

func (v vehicleBase) Model() string { return v.model }

func (v vehicleBase) StopEngine(w io.Writer) { fmt.Fprintln(w, "  Engine stopped.") }

// Honk is the default; embedders may shadow it.
func (v vehicleBase) Honk(w io.Writer) { fmt.Fprintln(w, "  Default horn sound.") }

// VehicleInfo plays the role of a static method: a plain package function.
func VehicleInfo() string { return "Vehicles are used for transportation." }

type Car struct {
	vehicleBase
}

func NewCar(model string) *Car { return &Car{vehicleBase{model: model}} }

func (c *Car) Wheels() int { return 4 }

func (c *Car) StartEngine(w io.Writer) { fmt.Fprintf(w, "  %s car engine started.\n", c.model) }

func (c *Car) Honk(w io.Writer) { fmt.Fprintf(w, "  %s car horn: Beep beep!\n", c.model) }

type Bicycle struct {
	vehicleBase
}

func (b Bicycle) Wheels() int { return 2 }

func (b Bicycle) StartEngine(w io.Writer) { fmt.Fprintln(w, "  No engine: start pedalling.") }

// compile-time checks
var (
	_ Vehicle = (*Car)(nil)
	_ Vehicle = Bicycle{}
)

func demoAbstraction(env *catalog.Env) {
	env.Println(" ", VehicleInfo())

	vehicles := []Vehicle{NewCar("Honda"), Bicycle{vehicleBase{model: "Brompton"}}}
	for _, v := range vehicles {
		env.Printf("  %s has %d wheels.\n", v.Model(), v.Wheels())
		v.StartEngine(env.Out)
		v.Honk(env.Out) // Car shadows Honk, Bicycle uses the default
		v.StopEngine(env.Out)
	}
}
