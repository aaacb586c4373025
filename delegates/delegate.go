// Package delegates models multicast callbacks: an ordered list of named
// functions invoked together.
//
// Go function values are first-class but not comparable, so a Delegate
// identifies its entries by name. Delegates are immutable values: Add,
// Combine and Remove return a new Delegate and never change the receiver,
// which makes them safe to share between goroutines.
package delegates

// Handler is one entry in an invocation list.
type Handler[T any] struct {
	Name string
	Fn   func(T)
}

// Delegate is an ordered invocation list. The zero value is an empty
// delegate; invoking it does nothing.
type Delegate[T any] struct {
	handlers []Handler[T]
}

// Of returns a single-cast delegate.
func Of[T any](name string, fn func(T)) Delegate[T] {
	return Delegate[T]{handlers: []Handler[T]{{Name: name, Fn: fn}}}
}

// Add returns d with fn appended.
func (d Delegate[T]) Add(name string, fn func(T)) Delegate[T] {
	return Combine(d, Of(name, fn))
}

// Combine concatenates invocation lists in argument order.
func Combine[T any](ds ...Delegate[T]) Delegate[T] {
	var n int
	for _, d := range ds {
		n += len(d.handlers)
	}
	out := make([]Handler[T], 0, n)
	for _, d := range ds {
		out = append(out, d.handlers...)
	}
	return Delegate[T]{handlers: out}
}

// Remove returns d without the last occurrence of other's invocation list,
// matched as a contiguous run of names. If other does not occur, d is
// returned unchanged.
func (d Delegate[T]) Remove(other Delegate[T]) Delegate[T] {
	n := len(other.handlers)
	if n == 0 || n > len(d.handlers) {
		return d
	}
	for start := len(d.handlers) - n; start >= 0; start-- {
		if d.matchesAt(start, other) {
			out := make([]Handler[T], 0, len(d.handlers)-n)
			out = append(out, d.handlers[:start]...)
			out = append(out, d.handlers[start+n:]...)
			return Delegate[T]{handlers: out}
		}
	}
	return d
}

// RemoveName is Remove with a single-cast delegate of that name.
func (d Delegate[T]) RemoveName(name string) Delegate[T] {
	return d.Remove(Of[T](name, nil))
}

func (d Delegate[T]) matchesAt(start int, other Delegate[T]) bool {
	for i, h := range other.handlers {
		if d.handlers[start+i].Name != h.Name {
			return false
		}
	}
	return true
}

// Invoke calls every handler in order with v.
func (d Delegate[T]) Invoke(v T) {
	for _, h := range d.handlers {
		h.Fn(v)
	}
}

// InvocationList returns a copy of the handlers.
func (d Delegate[T]) InvocationList() []Handler[T] {
	return append([]Handler[T](nil), d.handlers...)
}

func (d Delegate[T]) Len() int      { return len(d.handlers) }
func (d Delegate[T]) IsEmpty() bool { return len(d.handlers) == 0 }
