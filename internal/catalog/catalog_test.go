package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/langtour/internal/catalog"
)

func demo(topic, name string, out *[]string) catalog.Demo {
	return catalog.Demo{
		Name:  name,
		Topic: topic,
		Title: "Title " + name,
		Run: func(ctx context.Context, env *catalog.Env) error {
			*out = append(*out, name)
			env.Printf("ran %s\n", name)
			return nil
		},
	}
}

func names(demos []catalog.Demo) []string {
	out := make([]string, len(demos))
	for i, d := range demos {
		out[i] = d.Name
	}
	return out
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	var ran []string
	r := catalog.New()
	require.NoError(t, r.Register(demo("a", "one", &ran)))

	err := r.Register(demo("b", "two", &ran), demo("b", "one", &ran))
	require.ErrorIs(t, err, catalog.ErrDuplicate)

	// nothing from the failed call was registered
	_, err = r.Lookup("two")
	assert.ErrorIs(t, err, catalog.ErrUnknownDemo)
}

func TestRegisterRequiresRunFunc(t *testing.T) {
	r := catalog.New()
	assert.Error(t, r.Register(catalog.Demo{Name: "x"}))
}

func TestAllOrderedByTopicThenName(t *testing.T) {
	var ran []string
	r := catalog.New()
	require.NoError(t, r.Register(
		demo("oop", "structs", &ran),
		demo("basics", "strings", &ran),
		demo("basics", "arrays", &ran),
	))

	if diff := cmp.Diff([]string{"arrays", "strings", "structs"}, names(r.All())); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"basics", "oop"}, r.Topics())
}

func TestResolveByNameAndTopic(t *testing.T) {
	var ran []string
	r := catalog.New()
	require.NoError(t, r.Register(
		demo("basics", "arrays", &ran),
		demo("basics", "strings", &ran),
		demo("oop", "structs", &ran),
	))

	got, err := r.Resolve("structs", "basics", "arrays")
	require.NoError(t, err)
	assert.Equal(t, []string{"structs", "arrays", "strings"}, names(got))

	_, err = r.Resolve("nope")
	assert.ErrorIs(t, err, catalog.ErrUnknownDemo)
}

func TestRunPrintsBannerAndStopsOnError(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	r := catalog.New()
	require.NoError(t, r.Register(
		demo("t", "first", &ran),
		catalog.Demo{Name: "second", Topic: "t", Title: "Second", Run: func(context.Context, *catalog.Env) error { return boom }},
		demo("t", "third", &ran),
	))

	var buf bytes.Buffer
	err := r.Run(context.Background(), catalog.NewEnv(&buf), "first", "second", "third")
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first"}, ran)
	assert.Contains(t, buf.String(), "━━━ Title first ━━━")
	assert.Contains(t, buf.String(), "ran first")
}

func TestEnvSleepHonoursPaceAndContext(t *testing.T) {
	env := catalog.NewEnv(nil)

	env.Pace = 0
	start := time.Now()
	require.NoError(t, env.Sleep(context.Background(), time.Hour))
	assert.Less(t, time.Since(start), time.Second)

	env.Pace = 1
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, env.Sleep(ctx, time.Hour), context.Canceled)

	assert.Equal(t, 50*time.Millisecond, (&catalog.Env{Pace: 0.5}).Scale(100*time.Millisecond))
}

func TestSharedSerialisesWriters(t *testing.T) {
	var buf bytes.Buffer
	env := catalog.NewEnv(&buf).Shared()
	assert.Same(t, env, env.Shared(), "already shared")

	done := make(chan struct{})
	for i := range 20 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 50 {
				env.Printf("line from %02d\n", i)
			}
		}()
	}
	for range 20 {
		<-done
	}

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1000)
	for _, l := range lines {
		assert.Regexp(t, `^line from \d\d$`, string(l))
	}
}
