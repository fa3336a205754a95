package worker

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"byoa-assistant/src/logutil"
)

// Job runs on a worker goroutine. ctx carries the submitter's deadline.
type Job func(ctx context.Context)

// Pool is a fixed-size worker pool with a bounded input queue (strict back-pressure).
type Pool struct {
	jobs   chan job
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
	log    *slog.Logger
}

type job struct {
	ctx context.Context
	run Job
}

// New creates a worker pool. Size defaults to NumCPU when size<=0; queue defaults to size.
func New(size, queue int, logger *slog.Logger) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	if queue <= 0 {
		queue = size
	}
	p := &Pool{jobs: make(chan job, queue), log: logutil.Component(logger, "worker")}
	p.start(size)
	return p
}

func (p *Pool) start(n int) {
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for j := range p.jobs {
				p.runJob(j)
			}
		}()
	}
}

func (p *Pool) runJob(j job) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error("panic in job", "panic", r)
		}
	}()
	if err := j.ctx.Err(); err != nil {
		p.log.Debug("job started after its context ended", "error", err)
	}
	j.run(j.ctx)
}

// Submit enqueues a job if the queue has room. Returns false if dropped.
func (p *Pool) Submit(ctx context.Context, run Job) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return false
	}
	select {
	case p.jobs <- job{ctx: ctx, run: run}:
		return true
	default:
		return false
	}
}

// Close stops the pool after draining current work. Idempotent.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
