package oop

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// ── LinkedList[T] ─────────────────────────────────────────────────────────────
// Singly linked list with a tail pointer so Add is O(1). The zero value is
// an empty list ready to use.

type node[T any] struct {
	value T
	next  *node[T]
}

type LinkedList[T any] struct {
	head, tail *node[T]
	n          int
}

func (l *LinkedList[T]) Add(v T) {
	nd := &node[T]{value: v}
	if l.tail == nil {
		l.head = nd
	} else {
		l.tail.next = nd
	}
	l.tail = nd
	l.n++
}

func (l *LinkedList[T]) Len() int { return l.n }

// Each yields values from head to tail.
func (l *LinkedList[T]) Each() iter.Seq[T] {
	return func(yield func(T) bool) {
		for nd := l.head; nd != nil; nd = nd.next {
			if !yield(nd.value) {
				return
			}
		}
	}
}

// Print writes the values space separated on one line.
func (l *LinkedList[T]) Print(w io.Writer) {
	var sb strings.Builder
	for v := range l.Each() {
		fmt.Fprintf(&sb, "%v ", v)
	}
	fmt.Fprintln(w, strings.TrimSpace(sb.String()))
}

// ── Stack[T] ──────────────────────────────────────────────────────────────────
// LIFO on a slice; the zero value is ready to use.

type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return top, true
}

func (s *Stack[T]) Len() int { return len(s.items) }

// Pair has two independent type parameters.
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string { return fmt.Sprintf("(%v, %v)", p.First, p.Second) }

// Swap returns a new pair with the parameters exchanged.
func Swap[A, B any](p Pair[A, B]) Pair[B, A] { return Pair[B, A]{p.Second, p.First} }

func demoGenerics(env *catalog.Env) {
	var ints LinkedList[int]
	for _, v := range []int{10, 20, 30} {
		ints.Add(v)
	}
	env.Printf("  int list (%d): ", ints.Len())
	ints.Print(env.Out)

	var fruits LinkedList[string]
	for _, v := range []string{"Apple", "Banana", "Cherry"} {
		fruits.Add(v)
	}
	env.Printf("  string list (%d): ", fruits.Len())
	fruits.Print(env.Out)

	var s Stack[string]
	for v := range fruits.Each() {
		s.Push(v)
	}
	env.Printf("  reversed through Stack[string]:")
	for v, ok := s.Pop(); ok; v, ok = s.Pop() {
		env.Printf(" %s", v)
	}
	env.Println()

	p := Pair[string, int]{"answer", 42}
	env.Println("  pair:", p, "swapped:", Swap(p))
}
