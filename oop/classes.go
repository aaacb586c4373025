package oop

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// Tag is a package constant; constants cannot change after compilation.
const Tag = "Go"

// created counts Record values built through the constructors. It is shared
// by every instance, like a static field.
var created atomic.Int64

// Record shows the two visibility levels Go has. Capitalised identifiers
// are exported from the package; lower-case ones are visible only inside it.
// There is nothing in between: protected, internal and friends do not exist.
type Record struct {
	ID     int    // exported: readable and writable anywhere
	text   string // unexported: use Text/SetText from other packages
	amount float64
	grade  byte
	score  float32

	Number    int64
	createdAt time.Time // set once in the constructor, only a getter is offered
}

// NewRecord is the "default constructor".
func NewRecord(now time.Time) *Record {
	return &Record{
		ID:        1,
		text:      "default",
		amount:    10.5,
		grade:     'A',
		score:     9.5,
		Number:    created.Add(1),
		createdAt: now,
	}
}

// NewRecordWith is the parameterised constructor; Go has no overloading so
// it gets its own name.
func NewRecordWith(now time.Time, id int, text string) *Record {
	r := NewRecord(now)
	r.ID = id
	r.text = text
	r.amount = 99.9
	r.grade = 'B'
	r.score = 7
	return r
}

func (r *Record) Text() string         { return r.text }
func (r *Record) SetText(s string)     { r.text = s }
func (r *Record) Amount() float64      { return r.amount }
func (r *Record) SetAmount(a float64)  { r.amount = a }
func (r *Record) Grade() byte          { return r.grade }
func (r *Record) SetGrade(g byte)      { r.grade = g }
func (r *Record) CreatedAt() time.Time { return r.createdAt }

// Summary is a computed, read-only property.
func (r *Record) Summary() string { return fmt.Sprintf("ID: %d, Text: %s", r.ID, r.text) }

func (r *Record) Show(w io.Writer) {
	fmt.Fprintln(w, "  ID:", r.ID)
	fmt.Fprintln(w, "  Text:", r.text)
	fmt.Fprintln(w, "  Amount:", r.amount)
	fmt.Fprintf(w, "  Grade: %c\n", r.grade)
	fmt.Fprintln(w, "  Score:", r.score)
	fmt.Fprintln(w, "  Tag:", Tag)
	fmt.Fprintln(w, "  Created:", r.createdAt.Format(time.DateTime))
	fmt.Fprintln(w, "  Number:", r.Number)
	fmt.Fprintln(w, "  Summary:", r.Summary())
}

// Created returns how many records the constructors have built.
func Created() int64 { return created.Load() }

func demoClasses(env *catalog.Env) {
	before := Created()
	obj1 := NewRecord(env.Now())
	obj2 := NewRecordWith(env.Now(), 2, "custom")

	obj1.Show(env.Out)
	env.Println()
	obj2.Show(env.Out)

	env.Println("\n  records created by this demo:", Created()-before)

	obj1.SetText("updated")
	obj1.SetAmount(100)
	obj1.SetGrade('Z')

	env.Println("\n  after updates:")
	obj1.Show(env.Out)
}
