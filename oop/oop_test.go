package oop

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/langtour/internal/catalog"
)

func run(t *testing.T, name string) string {
	t.Helper()
	var buf bytes.Buffer
	env := catalog.NewEnv(&buf)
	env.Now = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	for _, d := range Demos() {
		if d.Name == name {
			require.NoError(t, d.Run(context.Background(), env))
			return buf.String()
		}
	}
	t.Fatalf("demo %q not registered", name)
	return ""
}

// ── Abstraction ──

func TestAbstraction(t *testing.T) {
	out := run(t, "abstraction")
	assert.Contains(t, out, "Vehicles are used for transportation.")
	assert.Contains(t, out, "Honda has 4 wheels.")
	assert.Contains(t, out, "Honda car horn: Beep beep!")
	assert.Contains(t, out, "Brompton has 2 wheels.")
	assert.Contains(t, out, "Default horn sound.")
	assert.Equal(t, 2, strings.Count(out, "Engine stopped."))
}

// ── Classes ──

func TestRecordConstructorsAndCounter(t *testing.T) {
	now := time.Now()
	before := Created()
	r1 := NewRecord(now)
	r2 := NewRecordWith(now, 7, "seven")

	assert.Equal(t, before+2, Created())
	assert.Equal(t, "default", r1.Text())
	assert.Equal(t, "ID: 7, Text: seven", r2.Summary())
	assert.Equal(t, byte('B'), r2.Grade())
	assert.Equal(t, now, r1.CreatedAt())

	r1.SetText("x")
	r1.SetAmount(1)
	r1.SetGrade('Z')
	assert.Equal(t, "x", r1.Text())
	assert.Equal(t, 1.0, r1.Amount())
	assert.Equal(t, byte('Z'), r1.Grade())
}

func TestClassesDemo(t *testing.T) {
	out := run(t, "classes")
	assert.Contains(t, out, "records created by this demo: 2")
	assert.Contains(t, out, "Created: 2025-01-02 03:04:05")
	assert.Contains(t, out, "Grade: Z")
	assert.Contains(t, out, "Tag: Go")
}

// ── Inheritance ──

func TestConstructorOrder(t *testing.T) {
	var buf bytes.Buffer
	c := NewChild1(&buf)
	assert.Equal(t,
		"  GrandParent constructor called\n  Parent constructor called\n  Child1 constructor called\n",
		buf.String())
	assert.Equal(t, "Hirpara", c.Surname)
	assert.Equal(t, "Remote Car", c.Toy)
}

func TestInheritanceDemo(t *testing.T) {
	out := run(t, "inheritance")
	assert.Contains(t, out, "two levels up, advice: Parent's advice")
	assert.Contains(t, out, "Child2 constructor called")
	assert.Contains(t, out, "inherited House: Owns a House")
}

// ── Interfaces ──

func TestDefaultStatusAndCategory(t *testing.T) {
	fan := &Fan{}
	heater := &Heater{}
	assert.Equal(t, "Status: Unknown", fan.Status())
	assert.Equal(t, "Category: Cooling", ShowCategory(fan))
	assert.Equal(t, "Category: none", ShowCategory(heater))

	var buf bytes.Buffer
	heater.TurnOn(&buf)
	assert.Equal(t, "Status: Heating", heater.Status())
	heater.TurnOff(&buf)
	assert.Equal(t, "Status: Idle", heater.Status())
}

func TestInterfacesDemo(t *testing.T) {
	out := run(t, "interfaces")
	assert.Contains(t, out, "*Fan with speed 3")
	assert.Contains(t, out, "zero Appliance == nil: true")
}

// ── Polymorphism ──

func TestShapes(t *testing.T) {
	t.Parallel()
	tri := NewTriangle(5, 4)
	assert.Equal(t, 10.0, tri.Area())
	assert.Equal(t, 12.0, NewRectangle(3, 4).Area())
	assert.InDelta(t, 12.566, NewCircle(2).Area(), 0.001)
	assert.Equal(t, 22.0, TotalArea(tri, NewRectangle(3, 4)))

	// the base method sees the base Area, not the triangle's
	assert.Equal(t, "Triangle area via base: 0.00", tri.Describe())
	assert.Equal(t, "triangle base 5 height 4", Describe(tri))
}

func TestPolymorphismDemo(t *testing.T) {
	out := run(t, "polymorphism")
	assert.Contains(t, out, "total area: 34.57")
	assert.Contains(t, out, "t.Area() = 10.00, t.shapeBase.Area() = 0.00")
}

// ── Generics ──

func TestLinkedList(t *testing.T) {
	t.Parallel()
	var l LinkedList[int]
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, slices.Collect(l.Each()))

	l.Add(10)
	l.Add(20)
	l.Add(30)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []int{10, 20, 30}, slices.Collect(l.Each()))

	var buf bytes.Buffer
	l.Print(&buf)
	assert.Equal(t, "10 20 30\n", buf.String())
}

func TestLinkedListEarlyBreak(t *testing.T) {
	t.Parallel()
	var l LinkedList[string]
	for _, s := range []string{"a", "b", "c"} {
		l.Add(s)
	}
	var seen []string
	for v := range l.Each() {
		seen = append(seen, v)
		if v == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestStackAndPair(t *testing.T) {
	t.Parallel()
	var s Stack[int]
	_, ok := s.Pop()
	assert.False(t, ok)
	s.Push(1)
	s.Push(2)
	v, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, s.Len())

	p := Swap(Pair[string, int]{"a", 1})
	assert.Equal(t, Pair[int, string]{1, "a"}, p)
	assert.Equal(t, "(1, a)", p.String())
}

func TestGenericsDemo(t *testing.T) {
	out := run(t, "generics")
	assert.Contains(t, out, "int list (3): 10 20 30\n")
	assert.Contains(t, out, "string list (3): Apple Banana Cherry\n")
	assert.Contains(t, out, "reversed through Stack[string]: Cherry Banana Apple\n")
}

// ── Structs ──

func TestEmployeeValueSemantics(t *testing.T) {
	t.Parallel()
	e := Employee{ID: 1, Name: "Alice", Salary: 50000}
	cp := raiseCopy(e, 10)
	assert.Equal(t, 50000.0, e.Salary)
	assert.Equal(t, 55000.0, cp.Salary)
	e.Raise(10)
	assert.Equal(t, cp, e)
	assert.Equal(t, "Employee{ID: 1, Name: Alice, Salary: 55000.00}", e.String())
}

func TestStructsDemo(t *testing.T) {
	out := run(t, "structs")
	assert.Contains(t, out, "e2: Employee{ID: 1, Name: Bob, Salary: 50000.00}")
	assert.Contains(t, out, "e1 == Employee{1, Alice, 55000}: true")
}
