// Package tasks models asynchronous work on goroutines: a fixed-size Pool
// that executes queued jobs, and Task[T] futures that can be awaited, raced
// with WhenAny or joined with WhenAll.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

var (
	ErrPoolClosed      = errors.New("pool is closed")
	ErrShutdownTimeout = errors.New("shutdown timeout elapsed; in-flight jobs were cancelled")
)

// Job is the unit of work run by a Pool. It receives the pool's context,
// which is cancelled only when a Shutdown times out.
type Job func(ctx context.Context) error

type Config struct {
	// Workers is the number of goroutines consuming jobs. Defaults to 1.
	Workers int

	// QueueSize is the capacity of the job channel. 0 makes Submit block
	// until a worker is free.
	QueueSize int

	// ShutdownTimeout bounds how long Shutdown waits for queued and running
	// jobs before cancelling them. Defaults to 30s.
	ShutdownTimeout time.Duration

	Logger *zap.Logger
}

func (c Config) withDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = 1
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 30 * time.Second
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	return c
}

// Metrics is a point-in-time snapshot of pool counters.
type Metrics struct {
	Submitted int64 // jobs accepted into the queue
	Started   int64 // jobs a worker picked up
	Succeeded int64 // jobs that returned nil
	Failed    int64 // jobs that returned an error or were skipped after cancellation
	Dropped   int64 // submissions rejected because the pool was closed or the caller gave up
}

type counters struct {
	submitted, started, succeeded, failed, dropped atomic.Int64
}

// Pool runs jobs on a fixed set of workers.
//
//	p := tasks.NewPool(cfg)
//	p.Submit(ctx, job)
//	p.Shutdown()
type Pool struct {
	cfg  Config
	log  *zap.Logger
	jobs chan Job
	wg   sync.WaitGroup

	workerCtx     context.Context
	cancelWorkers context.CancelFunc

	// mu guards closed and the send on jobs so that Shutdown never closes
	// the channel under a Submit in progress. closing is closed before mu is
	// taken so that a Submit blocked on a full queue lets go of its read lock.
	mu      sync.RWMutex
	closed  bool
	closing chan struct{}
	once    sync.Once
	errS    error

	m counters
}

// NewPool starts cfg.Workers goroutines that run until Shutdown.
func NewPool(cfg Config) *Pool {
	cfg = cfg.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())

	p := &Pool{
		cfg:           cfg,
		log:           cfg.Logger.Named("pool"),
		jobs:          make(chan Job, cfg.QueueSize),
		workerCtx:     ctx,
		cancelWorkers: cancel,
		closing:       make(chan struct{}),
	}
	p.log.Debug("starting",
		zap.Int("workers", cfg.Workers),
		zap.Int("queue", cfg.QueueSize),
		zap.Duration("shutdown_timeout", cfg.ShutdownTimeout))

	for i := range cfg.Workers {
		p.wg.Add(1)
		go p.runWorker(i)
	}
	return p
}

// Submit enqueues job, blocking while the queue is full. It fails with
// ErrPoolClosed once Shutdown has begun (including while blocked), or with
// the caller's context error if ctx ends first.
func (p *Pool) Submit(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.m.dropped.Add(1)
		return ErrPoolClosed
	}
	select {
	case p.jobs <- job:
		p.m.submitted.Add(1)
		return nil
	case <-ctx.Done():
		p.m.dropped.Add(1)
		return fmt.Errorf("submit cancelled: %w", ctx.Err())
	case <-p.closing:
		p.m.dropped.Add(1)
		return ErrPoolClosed
	}
}

// Shutdown stops accepting jobs, lets workers drain the queue, and after
// ShutdownTimeout cancels whatever is still running. Only the first call
// does any work; later calls return its result.
func (p *Pool) Shutdown() error {
	p.once.Do(func() {
		p.log.Debug("shutdown initiated")
		close(p.closing)

		p.mu.Lock()
		p.closed = true
		close(p.jobs)
		p.mu.Unlock()

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()

		timer := time.NewTimer(p.cfg.ShutdownTimeout)
		defer timer.Stop()

		select {
		case <-done:
			p.log.Debug("shutdown complete")
		case <-timer.C:
			p.log.Warn("shutdown timeout elapsed, cancelling workers", zap.Duration("timeout", p.cfg.ShutdownTimeout))
			p.cancelWorkers()
			<-done
			p.errS = ErrShutdownTimeout
		}
		p.cancelWorkers()
	})
	return p.errS
}

// Metrics fields are individually consistent; the snapshot as a whole is not
// taken under a lock.
func (p *Pool) Metrics() Metrics {
	return Metrics{
		Submitted: p.m.submitted.Load(),
		Started:   p.m.started.Load(),
		Succeeded: p.m.succeeded.Load(),
		Failed:    p.m.failed.Load(),
		Dropped:   p.m.dropped.Load(),
	}
}

func (p *Pool) runWorker(id int) {
	defer p.wg.Done()
	log := p.log.With(zap.Int("worker", id))
	log.Debug("worker started")

	for job := range p.jobs {
		if p.workerCtx.Err() != nil {
			p.m.failed.Add(1)
			log.Debug("skipping job, pool cancelled")
			continue
		}
		p.m.started.Add(1)
		if err := job(p.workerCtx); err != nil {
			p.m.failed.Add(1)
			log.Debug("job failed", zap.Error(err))
			continue
		}
		p.m.succeeded.Add(1)
	}
	log.Debug("worker exited")
}
