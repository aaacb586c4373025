// Package catalog holds the registry of runnable demos.
//
// A demo is a self-contained entry point that prints illustrative output
// for one language feature. Topic packages expose their demos through a
// Demos() function and the CLI registers them all at start-up.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/marcodamonte/langtour/internal/ui"
)

var (
	ErrUnknownDemo = errors.New("unknown demo")
	ErrDuplicate   = errors.New("demo already registered")
)

// Demo is one runnable example.
type Demo struct {
	Name  string // unique, used on the command line
	Topic string // package-level grouping, also accepted by Run
	Title string // printed as the section banner
	Run   func(ctx context.Context, env *Env) error
}

// Env is everything a demo may touch. Demos never write to os.Stdout
// directly so that their output can be captured.
type Env struct {
	Out  io.Writer
	In   io.Reader
	Log  *zap.Logger
	Rand *rand.Rand
	Now  func() time.Time

	// Pace scales every Sleep. 1 keeps the demo's natural timing, 0 skips
	// sleeping altogether.
	Pace float64
}

// NewEnv returns an Env with sane defaults for any nil field.
func NewEnv(out io.Writer) *Env {
	return (&Env{Out: out}).withDefaults()
}

func (e *Env) withDefaults() *Env {
	if e.Out == nil {
		e.Out = io.Discard
	}
	if e.In == nil {
		e.In = eofReader{}
	}
	if e.Log == nil {
		e.Log = zap.NewNop()
	}
	if e.Rand == nil {
		e.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	return e
}

// Scale applies Pace to d.
func (e *Env) Scale(d time.Duration) time.Duration {
	if e.Pace <= 0 {
		return 0
	}
	return time.Duration(float64(d) * e.Pace)
}

// Sleep pauses for d scaled by Pace, returning early with ctx.Err() when
// the context is cancelled.
func (e *Env) Sleep(ctx context.Context, d time.Duration) error {
	d = e.Scale(d)
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Printf is a shorthand for fmt.Fprintf(e.Out, ...).
func (e *Env) Printf(format string, args ...any) {
	fmt.Fprintf(e.Out, format, args...)
}

// Println is a shorthand for fmt.Fprintln(e.Out, ...).
func (e *Env) Println(args ...any) {
	fmt.Fprintln(e.Out, args...)
}

// Shared returns a shallow copy of e whose Out is safe for concurrent
// writers. Each Printf/Println call lands as one unbroken write.
func (e *Env) Shared() *Env {
	if _, ok := e.Out.(*lockedWriter); ok {
		return e
	}
	cp := *e
	cp.Out = &lockedWriter{w: e.Out}
	return &cp
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, io.EOF }

// Registry is an ordered set of demos keyed by name. The zero value is not
// usable; call New.
type Registry struct {
	byName map[string]Demo
}

func New() *Registry {
	return &Registry{byName: make(map[string]Demo)}
}

// Register adds demos. A name collision (with an existing demo or within
// the same call) returns ErrDuplicate and registers nothing from that call.
func (r *Registry) Register(demos ...Demo) error {
	seen := make(map[string]bool, len(demos))
	for _, d := range demos {
		if d.Name == "" || d.Run == nil {
			return fmt.Errorf("register %q: name and run func are required", d.Name)
		}
		if _, ok := r.byName[d.Name]; ok || seen[d.Name] {
			return fmt.Errorf("register %q: %w", d.Name, ErrDuplicate)
		}
		seen[d.Name] = true
	}
	for _, d := range demos {
		r.byName[d.Name] = d
	}
	return nil
}

// Lookup returns the demo with the given name.
func (r *Registry) Lookup(name string) (Demo, error) {
	d, ok := r.byName[name]
	if !ok {
		return Demo{}, fmt.Errorf("%q: %w", name, ErrUnknownDemo)
	}
	return d, nil
}

// All returns every demo ordered by topic, then name.
func (r *Registry) All() []Demo {
	out := make([]Demo, 0, len(r.byName))
	for _, d := range r.byName {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Topic != out[j].Topic {
			return out[i].Topic < out[j].Topic
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Topics returns the distinct topics in sorted order.
func (r *Registry) Topics() []string {
	var topics []string
	for _, d := range r.All() {
		if len(topics) == 0 || topics[len(topics)-1] != d.Topic {
			topics = append(topics, d.Topic)
		}
	}
	return topics
}

// Resolve expands each selector (a demo name or a topic) into demos,
// preserving selector order and dropping repeats.
func (r *Registry) Resolve(selectors ...string) ([]Demo, error) {
	var (
		out  []Demo
		seen = make(map[string]bool)
	)
	add := func(d Demo) {
		if !seen[d.Name] {
			seen[d.Name] = true
			out = append(out, d)
		}
	}

	for _, sel := range selectors {
		if d, ok := r.byName[sel]; ok {
			add(d)
			continue
		}
		matched := false
		for _, d := range r.All() {
			if d.Topic == sel {
				add(d)
				matched = true
			}
		}
		if !matched {
			return nil, fmt.Errorf("%q: %w", sel, ErrUnknownDemo)
		}
	}
	return out, nil
}

// Run executes the selected demos in order, each under its own banner.
// It stops at the first failing demo.
func (r *Registry) Run(ctx context.Context, env *Env, selectors ...string) error {
	demos, err := r.Resolve(selectors...)
	if err != nil {
		return err
	}
	return RunDemos(ctx, env, demos)
}

// RunDemos runs demos in the given order.
func RunDemos(ctx context.Context, env *Env, demos []Demo) error {
	env.withDefaults()
	for _, d := range demos {
		if err := ctx.Err(); err != nil {
			return err
		}

		ui.Section(env.Out, d.Title)
		start := time.Now()
		env.Log.Debug("demo started", zap.String("demo", d.Name))

		if err := d.Run(ctx, env); err != nil {
			env.Log.Error("demo failed", zap.String("demo", d.Name), zap.Error(err))
			return fmt.Errorf("demo %s: %w", d.Name, err)
		}
		env.Log.Debug("demo finished",
			zap.String("demo", d.Name),
			zap.Duration("took", time.Since(start)))
	}
	return nil
}
