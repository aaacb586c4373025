package collections

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// ErrRange is returned when an index or length falls outside the buffer.
var ErrRange = errors.New("index out of range")

// Builder is a growable byte buffer with in-place editing. strings.Builder
// only appends; Builder adds Insert, Replace, Remove and Substring on top of
// the same append-friendly representation.
//
// Indexes are byte offsets. The zero value is an empty buffer.
type Builder struct {
	buf []byte
}

func (b *Builder) Append(s string) *Builder {
	b.buf = append(b.buf, s...)
	return b
}

func (b *Builder) AppendByte(c byte) *Builder {
	b.buf = append(b.buf, c)
	return b
}

func (b *Builder) AppendLine(s string) *Builder {
	b.buf = append(b.buf, s...)
	b.buf = append(b.buf, '\n')
	return b
}

func (b *Builder) AppendFormat(format string, args ...any) *Builder {
	b.buf = fmt.Appendf(b.buf, format, args...)
	return b
}

// Insert places s before byte offset i; i == Len() appends.
func (b *Builder) Insert(i int, s string) error {
	if i < 0 || i > len(b.buf) {
		return fmt.Errorf("insert at %d (len %d): %w", i, len(b.buf), ErrRange)
	}
	b.buf = append(b.buf[:i], append([]byte(s), b.buf[i:]...)...)
	return nil
}

// Replace substitutes every occurrence of old with new.
func (b *Builder) Replace(old, repl string) *Builder {
	if old == "" {
		return b
	}
	b.buf = []byte(strings.ReplaceAll(string(b.buf), old, repl))
	return b
}

// ReplaceByte substitutes every occurrence of one byte with another.
func (b *Builder) ReplaceByte(old, repl byte) *Builder {
	for i, c := range b.buf {
		if c == old {
			b.buf[i] = repl
		}
	}
	return b
}

// Remove deletes n bytes starting at start.
func (b *Builder) Remove(start, n int) error {
	if start < 0 || n < 0 || start+n > len(b.buf) {
		return fmt.Errorf("remove [%d:%d] (len %d): %w", start, start+n, len(b.buf), ErrRange)
	}
	b.buf = append(b.buf[:start], b.buf[start+n:]...)
	return nil
}

// Substring returns n bytes starting at start.
func (b *Builder) Substring(start, n int) (string, error) {
	if start < 0 || n < 0 || start+n > len(b.buf) {
		return "", fmt.Errorf("substring [%d:%d] (len %d): %w", start, start+n, len(b.buf), ErrRange)
	}
	return string(b.buf[start : start+n]), nil
}

// Grow ensures room for at least n more bytes without reallocating.
func (b *Builder) Grow(n int) {
	if n > cap(b.buf)-len(b.buf) {
		grown := make([]byte, len(b.buf), len(b.buf)+n)
		copy(grown, b.buf)
		b.buf = grown
	}
}

func (b *Builder) Len() int       { return len(b.buf) }
func (b *Builder) Cap() int       { return cap(b.buf) }
func (b *Builder) Clear()         { b.buf = b.buf[:0] }
func (b *Builder) String() string { return string(b.buf) }

func demoBuilder(_ context.Context, env *catalog.Env) error {
	var sb Builder

	sb.Append("Hello").AppendLine(" World!")
	if err := sb.Insert(5, ","); err != nil {
		return err
	}
	sb.Replace("World", "Go")
	if err := sb.Remove(0, 1); err != nil {
		return err
	}
	env.Println("  len:", sb.Len())
	env.Printf("  %q\n", sb.String()) // "ello, Go!\n"

	sb.Clear()
	env.Println("  len after clear:", sb.Len())

	sb.AppendFormat("Number: %d, String: %s", 42, "test")
	env.Println(" ", sb.String())

	sb.Grow(100)
	env.Println("  cap after Grow(100) >= 100:", sb.Cap() >= 100)

	sb.ReplaceByte('t', 'T')
	env.Println(" ", sb.String())

	sb.AppendByte('!')
	env.Println(" ", sb.String())

	chars := []byte{' ', 'A', 'B', 'C'}
	sb.Append(string(chars[1:4]))
	env.Println(" ", sb.String())

	sub, err := sb.Substring(7, 6)
	if err != nil {
		return err
	}
	env.Printf("  substring (7,6): %q\n", sub)

	if _, err := sb.Substring(40, 10); err != nil {
		env.Println("  out of range:", err)
	}

	// strings.Builder is the standard choice when you only append.
	var std strings.Builder
	for i := 0; i < 3; i++ {
		fmt.Fprintf(&std, "[%d]", i)
	}
	env.Println("  strings.Builder:", std.String())
	return nil
}
