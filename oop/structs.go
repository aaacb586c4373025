package oop

import (
	"fmt"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// Employee is a plain value type. Assignment and passing by value copy every
// field; a pointer is needed to share one instance.
type Employee struct {
	ID     int
	Name   string
	Salary float64
}

func (e Employee) String() string {
	return fmt.Sprintf("Employee{ID: %d, Name: %s, Salary: %.2f}", e.ID, e.Name, e.Salary)
}

// Raise has a pointer receiver so the caller's value changes.
func (e *Employee) Raise(pct float64) { e.Salary += e.Salary * pct / 100 }

// raiseCopy takes a value, so the raise is lost when it returns.
func raiseCopy(e Employee, pct float64) Employee {
	e.Raise(pct)
	return e
}

func demoStructs(env *catalog.Env) {
	e1 := Employee{ID: 1, Name: "Alice", Salary: 50000}
	e2 := e1 // copy
	e2.Name = "Bob"

	env.Println("  e1:", e1)
	env.Println("  e2:", e2)

	changed := raiseCopy(e1, 10)
	env.Println("  after raiseCopy, e1:", e1)
	env.Println("  returned copy:      ", changed)

	e1.Raise(10)
	env.Println("  after e1.Raise(10): ", e1)

	env.Printf("  e1 == Employee{1, Alice, 55000}: %v\n", e1 == Employee{ID: 1, Name: "Alice", Salary: 55000})

	var zero Employee
	env.Printf("  zero value: %+v\n", zero)
}
