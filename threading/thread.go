// Package threading maps managed threads onto goroutines: a Thread wraps a
// goroutine with a name, an observable lifecycle state and an interruptible
// sleep, and a mutex serialises shared output.
package threading

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/marcodamonte/langtour/internal/catalog"
)

var (
	ErrInterrupted    = errors.New("thread interrupted")
	ErrAlreadyStarted = errors.New("thread already started")
	ErrNotStarted     = errors.New("thread not started")
)

// State is a coarse view of where a Thread is in its life.
type State int32

const (
	Unstarted State = iota
	Running
	WaitSleepJoin
	Stopped
)

func (s State) String() string {
	switch s {
	case Unstarted:
		return "Unstarted"
	case Running:
		return "Running"
	case WaitSleepJoin:
		return "WaitSleepJoin"
	case Stopped:
		return "Stopped"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

var lastID atomic.Int64

// Thread runs fn on its own goroutine.
//
// Interrupt is sticky: an interrupt delivered while the thread is not
// sleeping is held and fails the next Sleep.
type Thread struct {
	Name         string
	IsBackground bool

	env       *catalog.Env
	fn        func(ctx context.Context, t *Thread) error
	id        int64
	state     atomic.Int32
	interrupt chan struct{}
	done      chan struct{}
	startOnce sync.Once
	err       error
}

func NewThread(env *catalog.Env, name string, fn func(ctx context.Context, t *Thread) error) *Thread {
	if env == nil {
		env = catalog.NewEnv(nil)
	}
	return &Thread{
		Name:      name,
		env:       env,
		fn:        fn,
		interrupt: make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
}

// Start launches the goroutine. A thread can be started only once.
func (t *Thread) Start(ctx context.Context) error {
	err := ErrAlreadyStarted
	t.startOnce.Do(func() {
		err = nil
		t.id = lastID.Add(1)
		t.state.Store(int32(Running))
		log := t.env.Log.With(zap.String("thread", t.Name), zap.Int64("id", t.id))
		log.Debug("thread started", zap.Bool("background", t.IsBackground))
		go func() {
			defer close(t.done)
			start := time.Now()
			t.err = t.fn(ctx, t)
			t.state.Store(int32(Stopped))
			log.Debug("thread stopped", zap.Duration("elapsed", time.Since(start)), zap.Error(t.err))
		}()
	})
	return err
}

// ID is assigned on Start; zero before.
func (t *Thread) ID() int64 {
	if t.State() == Unstarted {
		return 0
	}
	return t.id
}

func (t *Thread) State() State { return State(t.state.Load()) }

func (t *Thread) IsAlive() bool {
	s := t.State()
	return s == Running || s == WaitSleepJoin
}

// Join blocks until the thread's function returns or ctx is done.
func (t *Thread) Join(ctx context.Context) error {
	if t.State() == Unstarted {
		return ErrNotStarted
	}
	select {
	case <-t.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err is the error fn returned. Only meaningful after Join.
func (t *Thread) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Interrupt wakes the thread from Sleep with ErrInterrupted, or marks it so
// the next Sleep fails immediately.
func (t *Thread) Interrupt() {
	select {
	case t.interrupt <- struct{}{}:
	default:
	}
}

// Sleep pauses the calling thread for d (scaled by the Env pace). It must be
// called from the thread's own function.
func (t *Thread) Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-t.interrupt:
		return ErrInterrupted
	default:
	}
	d = t.env.Scale(d)
	if d <= 0 {
		return ctx.Err()
	}

	t.state.Store(int32(WaitSleepJoin))
	defer t.state.Store(int32(Running))

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-t.interrupt:
		return ErrInterrupted
	case <-ctx.Done():
		return ctx.Err()
	}
}
