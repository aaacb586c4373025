package oop

import (
	"fmt"
	"math"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// Shape is dispatched dynamically: the concrete type's Area is called.
type Shape interface {
	Area() float64
	Name() string
}

// shapeBase gives every shape a Describe method. Describe calls
// b.Area on shapeBase itself; embedding never redirects that call to the
// outer type, so there is no "virtual" lookup inside the base.
type shapeBase struct {
	name string
}

func (b shapeBase) Name() string     { return b.name }
func (b shapeBase) Area() float64    { return 0 }
func (b shapeBase) Describe() string { return fmt.Sprintf("%s area via base: %.2f", b.name, b.Area()) }

type Circle struct {
	shapeBase
	Radius float64
}

func NewCircle(r float64) Circle { return Circle{shapeBase{"Circle"}, r} }

func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

type Rectangle struct {
	shapeBase
	Width, Height float64
}

func NewRectangle(w, h float64) Rectangle { return Rectangle{shapeBase{"Rectangle"}, w, h} }

func (r Rectangle) Area() float64 { return r.Width * r.Height }

type Triangle struct {
	shapeBase
	Base, Height float64
}

func NewTriangle(b, h float64) Triangle { return Triangle{shapeBase{"Triangle"}, b, h} }

func (t Triangle) Area() float64 { return 0.5 * t.Base * t.Height }

// TotalArea works over any mix of shapes.
func TotalArea(shapes ...Shape) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}

// Describe picks a message per concrete type.
func Describe(s Shape) string {
	switch v := s.(type) {
	case Circle:
		return fmt.Sprintf("circle of radius %.1f", v.Radius)
	case Rectangle:
		return fmt.Sprintf("%gx%g rectangle", v.Width, v.Height)
	case Triangle:
		return fmt.Sprintf("triangle base %g height %g", v.Base, v.Height)
	default:
		return "unknown shape"
	}
}

func demoPolymorphism(env *catalog.Env) {
	shapes := []Shape{NewCircle(2), NewRectangle(3, 4), NewTriangle(5, 4)}

	env.Println("  interface dispatch:")
	for _, s := range shapes {
		env.Printf("  %-9s area: %.2f  (%s)\n", s.Name(), s.Area(), Describe(s))
	}
	env.Printf("  total area: %.2f\n", TotalArea(shapes...))

	env.Println("\n  embedded base method (no override lookup):")
	t := NewTriangle(5, 4)
	env.Println(" ", t.Describe())
	env.Printf("  t.Area() = %.2f, t.shapeBase.Area() = %.2f\n", t.Area(), t.shapeBase.Area())
}
