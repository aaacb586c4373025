package tasks_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/marcodamonte/langtour/internal/catalog"
	"github.com/marcodamonte/langtour/tasks"
)

// ── Task ─────────────────────────────────────────────────────────────────────

func TestGoAndWait(t *testing.T) {
	t.Parallel()
	task := tasks.Go(context.Background(), func(context.Context) (int, error) { return 42, nil })
	v, err := task.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, task.IsCompleted())
	assert.NoError(t, task.Err())
}

func TestManualStart(t *testing.T) {
	t.Parallel()
	task := tasks.NewTask(func(context.Context) (string, error) { return "ran", nil })
	assert.False(t, task.IsCompleted())

	require.NoError(t, task.Start(context.Background()))
	assert.ErrorIs(t, task.Start(context.Background()), tasks.ErrTaskStarted)

	v, err := task.Result()
	require.NoError(t, err)
	assert.Equal(t, "ran", v)
}

func TestTaskError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	task := tasks.Go(context.Background(), func(context.Context) (int, error) { return 0, boom })
	_, err := task.Wait(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, task.Err(), boom)
}

func TestTaskPanicBecomesError(t *testing.T) {
	t.Parallel()
	task := tasks.Go(context.Background(), func(context.Context) (int, error) { panic("kaboom") })
	_, err := task.Wait(context.Background())

	var pe *tasks.PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "kaboom", pe.Value)
}

func TestWaitHonoursContext(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	task := tasks.Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 1, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := task.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, task.IsCompleted())
	assert.NoError(t, task.Err())

	close(release)
	v, err := task.Result()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

// ── Combinators ──────────────────────────────────────────────────────────────

func TestWhenAll(t *testing.T) {
	t.Parallel()
	a := tasks.Go(context.Background(), func(context.Context) (int, error) { return 1, nil })
	b := tasks.Go(context.Background(), func(context.Context) (string, error) { return "b", nil })
	require.NoError(t, tasks.WhenAll(context.Background(), a, b))
	assert.True(t, a.IsCompleted())
	assert.True(t, b.IsCompleted())

	require.NoError(t, tasks.WhenAll(context.Background()))
}

func TestWhenAllFirstError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	release := make(chan struct{})
	slow := tasks.Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 0, nil
	})
	failing := tasks.Go(context.Background(), func(context.Context) (int, error) { return 0, boom })

	assert.ErrorIs(t, tasks.WhenAll(context.Background(), slow, failing), boom)
	close(release)
	_, _ = slow.Result()
}

func TestWhenAny(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	slow := tasks.Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 0, nil
	})
	fast := tasks.Go(context.Background(), func(context.Context) (int, error) { return 1, nil })

	i, err := tasks.WhenAny(context.Background(), slow, fast)
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	close(release)
	_, _ = slow.Result()

	_, err = tasks.WhenAny(context.Background())
	assert.ErrorIs(t, err, tasks.ErrNoTasks)
}

func TestWhenAnyCancelled(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	task := tasks.Go(context.Background(), func(context.Context) (int, error) {
		<-release
		return 0, nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	i, err := tasks.WhenAny(ctx, task)
	assert.Equal(t, -1, i)
	assert.ErrorIs(t, err, context.Canceled)

	close(release)
	_, _ = task.Result()
}

func TestDelay(t *testing.T) {
	t.Parallel()
	start := time.Now()
	_, err := tasks.Delay(context.Background(), 20*time.Millisecond).Wait(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	d := tasks.Delay(ctx, time.Hour)
	cancel()
	_, err = d.Result()
	assert.ErrorIs(t, err, context.Canceled)
}

// ── Pool-backed tasks ────────────────────────────────────────────────────────

func TestSubmitTask(t *testing.T) {
	t.Parallel()
	pool := newPool(t, tasks.Config{Workers: 2, QueueSize: 4, ShutdownTimeout: time.Second})

	task, err := tasks.Submit(context.Background(), pool, func(context.Context) (int, error) {
		return tasks.CalculateSum(10), nil
	})
	require.NoError(t, err)
	v, err := task.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 55, v)

	require.NoError(t, pool.Shutdown())
	_, err = tasks.Submit(context.Background(), pool, func(context.Context) (int, error) { return 0, nil })
	assert.ErrorIs(t, err, tasks.ErrPoolClosed)
}

func TestSubmitTaskForcedShutdown(t *testing.T) {
	t.Parallel()
	pool := newPool(t, tasks.Config{Workers: 1, QueueSize: 2, ShutdownTimeout: 20 * time.Millisecond})

	running, err := tasks.Submit(context.Background(), pool, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		return 0, ctx.Err()
	})
	require.NoError(t, err)
	queued, err := tasks.Submit(context.Background(), pool, func(context.Context) (int, error) { return 1, nil })
	require.NoError(t, err)

	assert.ErrorIs(t, pool.Shutdown(), tasks.ErrShutdownTimeout)
	_, err = running.Result()
	assert.ErrorIs(t, err, context.Canceled)
	_, err = queued.Result()
	assert.ErrorIs(t, err, context.Canceled)
}

// ── Demos ────────────────────────────────────────────────────────────────────

func TestCalculateSum(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 55, tasks.CalculateSum(10))
	assert.Equal(t, 15, tasks.CalculateSum(5))
	assert.Equal(t, 0, tasks.CalculateSum(0))
}

func runDemo(t *testing.T, name string) string {
	t.Helper()
	var buf bytes.Buffer
	env := catalog.NewEnv(&buf)
	env.Log = zaptest.NewLogger(t)
	for _, d := range tasks.Demos() {
		if d.Name == name {
			require.NoError(t, d.Run(context.Background(), env))
			return buf.String()
		}
	}
	t.Fatalf("demo %q not registered", name)
	return ""
}

func TestAsyncDemo(t *testing.T) {
	out := runDemo(t, "async")
	for _, want := range []string{
		"Main method started",
		"After Delay(500ms)",
		"Task1 completed",
		"Sum result from Task[int]: 55",
		"Both tasks A and B completed",
		"One of the tasks (C or D) completed",
		"IsCompleted: false",
		"IsCompleted after Wait: true",
		"Result of t3: 15",
		"Manual task started",
		"starting it twice: task already started",
	} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.HasSuffix(out, "  Main method completed\n"))
	assert.Less(t, strings.Index(out, "Task1 completed"), strings.Index(out, "Sum result"))
	assert.Less(t, strings.Index(out, "A completed"), strings.Index(out, "Both tasks"))
	assert.Less(t, strings.Index(out, "B completed"), strings.Index(out, "Both tasks"))
}

func TestPoolDemo(t *testing.T) {
	out := runDemo(t, "pool")
	assert.Contains(t, out, "sum(1..10) = 55")
	assert.Contains(t, out, "sum(1..50) = 1275")
	assert.Contains(t, out, "failing task: task panicked: bad job")
	assert.Contains(t, out, "after shutdown, Submit: pool is closed")
	assert.Contains(t, out, "metrics: submitted=6 started=6 succeeded=5 failed=1 dropped=1")
}
