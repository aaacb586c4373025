package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/marcodamonte/langtour/internal/catalog"
)

func Demos() []catalog.Demo {
	return []catalog.Demo{
		{Name: "async", Topic: "tasks", Title: "Tasks — futures, WhenAll, WhenAny, Delay", Run: demoAsync},
		{Name: "pool", Topic: "tasks", Title: "Worker pool — bounded workers, graceful shutdown", Run: demoPool},
	}
}

// CalculateSum returns 1 + 2 + ... + n.
func CalculateSum(n int) int {
	sum := 0
	for i := 1; i <= n; i++ {
		sum += i
	}
	return sum
}

// printData announces itself, naps for delay and announces completion.
func printData(env *catalog.Env, name string, delay time.Duration) func(context.Context) (struct{}, error) {
	return func(ctx context.Context) (struct{}, error) {
		env.Printf("  %s started\n", name)
		if err := env.Sleep(ctx, delay); err != nil {
			return struct{}{}, err
		}
		env.Printf("  %s completed\n", name)
		return struct{}{}, nil
	}
}

func sum(n int) func(context.Context) (int, error) {
	return func(context.Context) (int, error) { return CalculateSum(n), nil }
}

func demoAsync(ctx context.Context, env *catalog.Env) error {
	env = env.Shared()
	env.Println("  Main method started")

	t1 := Go(ctx, printData(env, "Task1", time.Second))
	if _, err := Delay(ctx, env.Scale(500*time.Millisecond)).Wait(ctx); err != nil {
		return err
	}
	env.Println("  After Delay(500ms)")
	if _, err := t1.Wait(ctx); err != nil {
		return err
	}

	result, err := Go(ctx, sum(10)).Wait(ctx)
	if err != nil {
		return err
	}
	env.Printf("  Sum result from Task[int]: %d\n", result)

	a := Go(ctx, printData(env, "A", 600*time.Millisecond))
	b := Go(ctx, printData(env, "B", 400*time.Millisecond))
	if err := WhenAll(ctx, a, b); err != nil {
		return err
	}
	env.Println("  Both tasks A and B completed")

	c := Go(ctx, printData(env, "C", time.Second))
	d := Go(ctx, printData(env, "D", 300*time.Millisecond))
	if _, err := WhenAny(ctx, c, d); err != nil {
		return err
	}
	env.Println("  One of the tasks (C or D) completed")
	// C is left running in the original; here it is awaited so nothing
	// outlives the demo.
	if err := WhenAll(ctx, c, d); err != nil {
		return err
	}

	gate := make(chan struct{})
	t3 := Go(ctx, func(ctx context.Context) (int, error) {
		<-gate
		return CalculateSum(5), nil
	})
	env.Printf("  IsCompleted: %v\n", t3.IsCompleted())
	close(gate)
	v3, err := t3.Wait(ctx)
	if err != nil {
		return err
	}
	env.Printf("  IsCompleted after Wait: %v\n", t3.IsCompleted())
	env.Printf("  Result of t3: %d\n", v3)

	t4 := NewTask(func(context.Context) (struct{}, error) {
		env.Println("  Manual task started")
		return struct{}{}, nil
	})
	if err := t4.Start(ctx); err != nil {
		return err
	}
	if _, err := t4.Wait(ctx); err != nil {
		return err
	}
	env.Printf("  starting it twice: %v\n", t4.Start(ctx))

	env.Println("  Main method completed")
	return nil
}

func demoPool(ctx context.Context, env *catalog.Env) error {
	env = env.Shared()
	pool := NewPool(Config{Workers: 2, QueueSize: 4, Logger: env.Log})

	var pending []*Task[int]
	for _, n := range []int{10, 20, 30, 40, 50} {
		t, err := Submit(ctx, pool, func(ctx context.Context) (int, error) {
			if err := env.Sleep(ctx, 100*time.Millisecond); err != nil {
				return 0, err
			}
			return CalculateSum(n), nil
		})
		if err != nil {
			return fmt.Errorf("submit %d: %w", n, err)
		}
		pending = append(pending, t)
	}
	failing, err := Submit(ctx, pool, func(context.Context) (int, error) { panic("bad job") })
	if err != nil {
		return err
	}

	for i, t := range pending {
		v, err := t.Wait(ctx)
		if err != nil {
			return err
		}
		env.Printf("  sum(1..%d) = %d\n", (i+1)*10, v)
	}
	_, err = failing.Wait(ctx)
	env.Println("  failing task:", err)

	if err := pool.Shutdown(); err != nil {
		return err
	}
	env.Printf("  after shutdown, Submit: %v\n", pool.Submit(ctx, func(context.Context) error { return nil }))

	m := pool.Metrics()
	env.Printf("  metrics: submitted=%d started=%d succeeded=%d failed=%d dropped=%d\n",
		m.Submitted, m.Started, m.Succeeded, m.Failed, m.Dropped)
	return nil
}
