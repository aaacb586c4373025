package collections

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// Set is an unordered collection of unique values, backed by
// map[T]struct{}. The zero value is ready to use.
type Set[T comparable] struct {
	m map[T]struct{}
}

func NewSet[T comparable](vals ...T) *Set[T] {
	s := &Set[T]{}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

// Add inserts v and reports whether it was new.
func (s *Set[T]) Add(v T) bool {
	if s.m == nil {
		s.m = make(map[T]struct{})
	}
	if _, ok := s.m[v]; ok {
		return false
	}
	s.m[v] = struct{}{}
	return true
}

// Remove deletes v and reports whether it was present.
func (s *Set[T]) Remove(v T) bool {
	if _, ok := s.m[v]; !ok {
		return false
	}
	delete(s.m, v)
	return true
}

func (s *Set[T]) Contains(v T) bool { _, ok := s.m[v]; return ok }
func (s *Set[T]) Len() int          { return len(s.m) }
func (s *Set[T]) Clear()            { clear(s.m) }

// All iterates the members in unspecified order.
func (s *Set[T]) All() iter.Seq[T] { return maps.Keys(s.m) }

// UnionWith adds every value in vals.
func (s *Set[T]) UnionWith(vals ...T) {
	for _, v := range vals {
		s.Add(v)
	}
}

// IntersectWith keeps only members that also appear in vals.
func (s *Set[T]) IntersectWith(vals ...T) {
	keep := NewSet(vals...)
	for v := range s.m {
		if !keep.Contains(v) {
			delete(s.m, v)
		}
	}
}

// ExceptWith removes every value in vals.
func (s *Set[T]) ExceptWith(vals ...T) {
	for _, v := range vals {
		delete(s.m, v)
	}
}

// SymmetricExceptWith keeps the values present in exactly one of s and vals.
func (s *Set[T]) SymmetricExceptWith(vals ...T) {
	other := NewSet(vals...)
	for v := range other.m {
		if !s.Remove(v) {
			s.Add(v)
		}
	}
}

// Sorted returns the members in ascending order.
func Sorted[T cmp.Ordered](s *Set[T]) []T {
	return slices.Sorted(s.All())
}

func demoSet(env *catalog.Env) {
	set := NewSet[int]()
	set.Add(10)
	set.Add(20)
	set.Add(30)
	env.Println("  Add(20) again:", set.Add(20)) // false: duplicate ignored

	env.Println("  contains 20:", set.Contains(20))
	set.Remove(10)
	env.Println("  len:", set.Len())
	set.Clear()
	env.Println("  len after clear:", set.Len())

	set.UnionWith(1, 2, 3, 4, 5)
	other := NewSet(4, 5, 6, 7)
	set.UnionWith(slices.Collect(other.All())...)
	env.Println("  after union:         ", Sorted(set))

	set.IntersectWith(2, 3, 4, 8)
	env.Println("  after intersection:  ", Sorted(set))

	set.ExceptWith(3)
	env.Println("  after except:        ", Sorted(set))

	set.SymmetricExceptWith(2, 9)
	env.Println("  after symmetric diff:", Sorted(set))
}
