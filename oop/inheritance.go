package oop

import (
	"fmt"
	"io"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// Embedding promotes the embedded type's fields and methods to the outer
// type. It is composition: a Child1 HAS a Parent, and a *Child1 is not
// assignable to *Parent.
//
// There are no constructors to chain, so each New function calls the
// embedded type's New first, which reproduces base-before-derived order.

type GrandParent struct {
	Surname    string
	FamilyRule string
	legacy     string
	note       string // reachable only inside this package
}

func NewGrandParent(w io.Writer) GrandParent {
	fmt.Fprintln(w, "  GrandParent constructor called")
	return GrandParent{
		Surname:    "Hirpara",
		FamilyRule: "Rule for the family",
		legacy:     "Legacy",
		note:       "GrandParent's private note",
	}
}

func (g GrandParent) ShowGrandParent(w io.Writer) { fmt.Fprintln(w, "  Method: GrandParent") }

type Parent struct {
	GrandParent
	House  string
	advice string
}

func NewParent(w io.Writer) Parent {
	gp := NewGrandParent(w)
	fmt.Fprintln(w, "  Parent constructor called")
	return Parent{GrandParent: gp, House: "Owns a House", advice: "Parent's advice"}
}

func (p Parent) ShowParent(w io.Writer) {
	fmt.Fprintln(w, "  Method: Parent")
	fmt.Fprintln(w, "  promoted field legacy:", p.legacy)
	fmt.Fprintln(w, "  promoted field FamilyRule:", p.FamilyRule)
	fmt.Fprintln(w, "  promoted field Surname:", p.Surname)
}

// Child1: multilevel, Child1 → Parent → GrandParent.
type Child1 struct {
	Parent
	Toy string
}

func NewChild1(w io.Writer) Child1 {
	p := NewParent(w)
	fmt.Fprintln(w, "  Child1 constructor called")
	return Child1{Parent: p, Toy: "Remote Car"}
}

func (c Child1) ShowChild1(w io.Writer) {
	fmt.Fprintln(w, "  Method: Child1")
	fmt.Fprintln(w, "  two levels up, advice:", c.advice)
	fmt.Fprintln(w, "  explicit path:", c.Parent.GrandParent.Surname)
}

// Child2: hierarchical, a second type embedding Parent.
type Child2 struct {
	Parent
	pet string
}

func NewChild2(w io.Writer) Child2 {
	p := NewParent(w)
	fmt.Fprintln(w, "  Child2 constructor called")
	return Child2{Parent: p, pet: "Buddy"}
}

func (c Child2) ShowChild2(w io.Writer) {
	fmt.Fprintln(w, "  Method: Child2")
	fmt.Fprintln(w, "  pet:", c.pet)
	fmt.Fprintln(w, "  inherited House:", c.House)
}

func demoInheritance(env *catalog.Env) {
	env.Println("  === Child1 (multilevel) ===")
	c1 := NewChild1(env.Out)
	c1.ShowGrandParent(env.Out)
	c1.ShowParent(env.Out)
	c1.ShowChild1(env.Out)

	env.Println("\n  === Child2 (hierarchical) ===")
	c2 := NewChild2(env.Out)
	c2.ShowGrandParent(env.Out)
	c2.ShowParent(env.Out)
	c2.ShowChild2(env.Out)
}
