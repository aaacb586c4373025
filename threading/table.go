package threading

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// Table prints multiplication tables. The mutex makes each call's five
// lines a single block even when several goroutines print at once.
type Table struct {
	mu    sync.Mutex
	out   io.Writer
	sleep func(context.Context, time.Duration) error
}

func NewTable(out io.Writer, sleep func(context.Context, time.Duration) error) *Table {
	return &Table{out: out, sleep: sleep}
}

// Print writes n x 1 through n x 5, pausing 400ms after each line.
func (t *Table) Print(ctx context.Context, n int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := 1; i <= 5; i++ {
		fmt.Fprintf(t.out, "  %d x %d = %d\n", n, i, n*i)
		if err := t.sleep(ctx, 400*time.Millisecond); err != nil {
			return fmt.Errorf("table of %d: %w", n, err)
		}
	}
	return nil
}
