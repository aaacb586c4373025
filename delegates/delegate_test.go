package delegates

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/langtour/internal/catalog"
)

// recorder builds handlers that append "name:arg" to calls.
type recorder struct{ calls []string }

func (r *recorder) fn(name string) func(string) {
	return func(v string) { r.calls = append(r.calls, name+":"+v) }
}

func names(d Delegate[string]) []string {
	var out []string
	for _, h := range d.InvocationList() {
		out = append(out, h.Name)
	}
	return out
}

func TestInvokeCallsInOrder(t *testing.T) {
	var r recorder
	d := Of("a", r.fn("a")).Add("b", r.fn("b")).Add("c", r.fn("c"))
	d.Invoke("x")
	assert.Equal(t, []string{"a:x", "b:x", "c:x"}, r.calls)
}

func TestDelegatesAreImmutable(t *testing.T) {
	var r recorder
	base := Of("a", r.fn("a"))
	grown := base.Add("b", r.fn("b"))
	shrunk := grown.RemoveName("a")

	assert.Equal(t, []string{"a"}, names(base))
	assert.Equal(t, []string{"a", "b"}, names(grown))
	assert.Equal(t, []string{"b"}, names(shrunk))
}

func TestRemoveTakesLastOccurrence(t *testing.T) {
	var r recorder
	d := Combine(
		Of("a", r.fn("a")),
		Of("b", r.fn("b")),
		Of("a", r.fn("a")),
		Of("b", r.fn("b")),
		Of("c", r.fn("c")),
	)

	assert.Equal(t, []string{"a", "b", "a", "b"}, names(d.RemoveName("c")))
	assert.Equal(t, []string{"a", "b", "b", "c"}, names(d.RemoveName("a")))

	ab := Combine(Of("a", r.fn("a")), Of("b", r.fn("b")))
	assert.Equal(t, []string{"a", "b", "c"}, names(d.Remove(ab)))

	// A list that only appears non-contiguously is not removed.
	ac := Combine(Of("a", r.fn("a")), Of("c", r.fn("c")))
	assert.Equal(t, names(d), names(d.Remove(ac)))
}

func TestRemoveEdgeCases(t *testing.T) {
	var r recorder
	d := Of("a", r.fn("a"))
	assert.Equal(t, []string{"a"}, names(d.Remove(Delegate[string]{})))
	assert.Equal(t, []string{"a"}, names(d.RemoveName("zzz")))
	assert.True(t, d.RemoveName("a").IsEmpty())
}

func TestEmptyDelegateInvokeIsNoop(t *testing.T) {
	var d Delegate[int]
	assert.NotPanics(t, func() { d.Invoke(1) })
	assert.Zero(t, d.Len())
}

func TestInvocationListIsACopy(t *testing.T) {
	var r recorder
	d := Of("a", r.fn("a"))
	list := d.InvocationList()
	list[0].Name = "changed"
	assert.Equal(t, []string{"a"}, names(d))
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, demoDelegates(context.Background(), catalog.NewEnv(&buf)))
	out := buf.String()

	assert.Contains(t, out, "Greet : Ashok\n  Goodbye, Ashok\n  Welcome, Ashok\n")
	assert.Contains(t, out, "number of handlers: 2\n  handler: Farewell\n  handler: Welcome\n")
	assert.Contains(t, out, "after removing Farewell:\n  Greet : After Removal\n")
	assert.NotContains(t, out, "Goodbye, After Removal")
}
