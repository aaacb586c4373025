package threading

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/marcodamonte/langtour/internal/catalog"
)

func Demos() []catalog.Demo {
	return []catalog.Demo{
		{Name: "tablesync", Topic: "threading", Title: "Mutex — two tables that never interleave", Run: demoTableSync},
		{Name: "threads", Topic: "threading", Title: "Threads — names, states, Join and Interrupt", Run: demoThreads},
		{Name: "semaphore", Topic: "threading", Title: "Weighted semaphore — bounded parallelism", Run: demoSemaphore},
	}
}

func demoTableSync(ctx context.Context, env *catalog.Env) error {
	env.Println("  Main thread started")

	table := NewTable(env.Out, env.Sleep)
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, n := range []int{5, 100} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = table.Print(ctx, n)
		}()
	}
	wg.Wait()

	env.Println("  Main thread finished")
	return errors.Join(errs...)
}

// printNumbers counts 1..5 with 500ms naps and reports an interrupt.
func printNumbers(ctx context.Context, t *Thread) error {
	t.env.Printf("  [%s] Started.\n", t.Name)
	for i := 1; i <= 5; i++ {
		t.env.Printf("  [%s] -> %d\n", t.Name, i)
		if err := t.Sleep(ctx, 500*time.Millisecond); err != nil {
			if errors.Is(err, ErrInterrupted) {
				t.env.Printf("  [%s] was interrupted while sleeping.\n", t.Name)
				return nil
			}
			return err
		}
	}
	return nil
}

func demoThreads(ctx context.Context, env *catalog.Env) error {
	shared := env.Shared()

	t1 := NewThread(shared, "WorkerThread-1", printNumbers)
	t2 := NewThread(shared, "LambdaThread", func(ctx context.Context, t *Thread) error {
		t.env.Printf("  [%s] Started.\n", t.Name)
		for i := range 5 {
			t.env.Printf("  [%s] -> %d\n", t.Name, i)
			if err := t.Sleep(ctx, 300*time.Millisecond); err != nil {
				return err
			}
		}
		return nil
	})
	t2.IsBackground = true

	shared.Printf("  Thread1 state before start: %s\n", t1.State())
	shared.Printf("  Thread2 state before start: %s\n", t2.State())

	if err := errors.Join(t1.Start(ctx), t2.Start(ctx)); err != nil {
		return err
	}
	shared.Printf("  Thread1 ID: %d\n", t1.ID())
	shared.Printf("  Thread2 IsBackground: %v\n", t2.IsBackground)

	if err := env.Sleep(ctx, time.Second); err != nil {
		return err
	}
	if t1.IsAlive() {
		shared.Println("\n  Interrupting thread1...")
		t1.Interrupt()
	}

	if err := errors.Join(t1.Join(ctx), t2.Join(ctx)); err != nil {
		return err
	}
	shared.Printf("\n  Thread1 final state: %s\n", t1.State())
	shared.Printf("  Thread2 final state: %s\n", t2.State())
	shared.Println("  Main thread finished.")
	return errors.Join(t1.Err(), t2.Err())
}

// RunBounded runs every job with at most limit running at a time and
// reports the highest concurrency observed.
func RunBounded(ctx context.Context, limit int64, jobs []func(context.Context) error) (int64, error) {
	sem := semaphore.NewWeighted(limit)
	g, ctx := errgroup.WithContext(ctx)
	var active, peak atomic.Int64
	var acquireErr error

	for _, job := range jobs {
		if err := sem.Acquire(ctx, 1); err != nil {
			acquireErr = err
			break
		}
		g.Go(func() error {
			defer sem.Release(1)
			n := active.Add(1)
			defer active.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			return job(ctx)
		})
	}
	err := g.Wait()
	if err == nil {
		err = acquireErr
	}
	return peak.Load(), err
}

func demoSemaphore(ctx context.Context, env *catalog.Env) error {
	shared := env.Shared()

	jobs := make([]func(context.Context) error, 6)
	for i := range jobs {
		jobs[i] = func(ctx context.Context) error {
			shared.Printf("  job %d working\n", i+1)
			return env.Sleep(ctx, 200*time.Millisecond)
		}
	}
	peak, err := RunBounded(ctx, 2, jobs)
	if err != nil {
		return err
	}
	env.Printf("  6 jobs done, never more than 2 at once: %v\n", peak <= 2)
	return nil
}
