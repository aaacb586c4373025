package tasks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

var (
	ErrTaskStarted = errors.New("task already started")
	ErrNoTasks     = errors.New("no tasks to wait for")
)

// PanicError is the error a Task completes with when its function panics.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string { return fmt.Sprintf("task panicked: %v", e.Value) }

// Awaitable is the type-erased view of a Task used by WhenAll and WhenAny.
type Awaitable interface {
	Done() <-chan struct{}
	Err() error
}

// Task is a single-assignment future for a value of type T.
type Task[T any] struct {
	fn      func(context.Context) (T, error)
	started atomic.Bool
	done    chan struct{}
	once    sync.Once

	val T
	err error
}

// NewTask creates a task that runs fn once started.
func NewTask[T any](fn func(context.Context) (T, error)) *Task[T] {
	return &Task[T]{fn: fn, done: make(chan struct{})}
}

// Go creates and starts a task on a new goroutine.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Task[T] {
	t := NewTask(fn)
	_ = t.Start(ctx)
	return t
}

// Submit creates a task and queues it on p. If the pool rejects it the task
// is never started and the error is returned. A task still queued or running
// when the pool is force-cancelled completes with context.Canceled.
func Submit[T any](ctx context.Context, p *Pool, fn func(context.Context) (T, error)) (*Task[T], error) {
	t := NewTask(fn)
	t.started.Store(true)
	stop := context.AfterFunc(p.workerCtx, func() {
		var zero T
		t.complete(zero, fmt.Errorf("pool cancelled: %w", context.Canceled))
	})
	err := p.Submit(ctx, func(poolCtx context.Context) error {
		defer stop()
		t.run(poolCtx)
		_, err := t.Result()
		return err
	})
	if err != nil {
		stop()
		return nil, err
	}
	return t, nil
}

// Start runs the task on its own goroutine.
func (t *Task[T]) Start(ctx context.Context) error {
	if !t.started.CompareAndSwap(false, true) {
		return ErrTaskStarted
	}
	go t.run(ctx)
	return nil
}

func (t *Task[T]) run(ctx context.Context) {
	var (
		val T
		err error
	)
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
		}
		t.complete(val, err)
	}()
	val, err = t.fn(ctx)
}

func (t *Task[T]) complete(val T, err error) {
	t.once.Do(func() {
		t.val, t.err = val, err
		close(t.done)
	})
}

// Done is closed when the task completes, successfully or not.
func (t *Task[T]) Done() <-chan struct{} { return t.done }

func (t *Task[T]) IsCompleted() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

// Err returns the task's error once complete and nil before that.
func (t *Task[T]) Err() error {
	if !t.IsCompleted() {
		return nil
	}
	return t.err
}

// Wait blocks until the task completes or ctx ends. Abandoning the wait does
// not cancel the task.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Result blocks until the task completes.
func (t *Task[T]) Result() (T, error) {
	<-t.done
	return t.val, t.err
}

// WhenAll waits for every task and returns the first error observed. If a
// task fails the wait stops early; the other tasks keep running.
func WhenAll(ctx context.Context, tasks ...Awaitable) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, t := range tasks {
		g.Go(func() error {
			select {
			case <-t.Done():
				return t.Err()
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}
	return g.Wait()
}

// WhenAny returns the index of the first task to complete. Completion
// includes failure; inspect tasks[i].Err().
func WhenAny(ctx context.Context, tasks ...Awaitable) (int, error) {
	if len(tasks) == 0 {
		return -1, ErrNoTasks
	}
	// Fast path keeps the lowest index when several are already done.
	for i, t := range tasks {
		select {
		case <-t.Done():
			return i, nil
		default:
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	first := make(chan int, len(tasks))
	for i, t := range tasks {
		go func() {
			select {
			case <-t.Done():
				first <- i
			case <-ctx.Done():
			}
		}()
	}
	select {
	case i := <-first:
		return i, nil
	case <-ctx.Done():
		return -1, ctx.Err()
	}
}

// Delay returns a task that completes after d, or with ctx's error if ctx
// ends first.
func Delay(ctx context.Context, d time.Duration) *Task[struct{}] {
	return Go(ctx, func(ctx context.Context) (struct{}, error) {
		if d <= 0 {
			return struct{}{}, ctx.Err()
		}
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return struct{}{}, nil
		case <-ctx.Done():
			return struct{}{}, ctx.Err()
		}
	})
}
