// Package pipeline fans player records out across a bounded worker
// pool for batch analysis. Each record is independent, so order of
// completion is unspecified; callers collect results through the
// handler they provide.
package pipeline

import (
	"context"
	"runtime"
	"sync"

	"github.com/dugoutlabs/fieldscore/internal/domain/model"
	"github.com/dugoutlabs/fieldscore/pkg/logger"
)

// Default pool configuration constants.
const (
	defaultWorkerMultiplier = 2 // multiplier for runtime.NumCPU()
	defaultQueueCapacity    = 64
)

// Handler processes a single player record. Implementations must be
// safe for concurrent use; the pool invokes it from multiple
// goroutines.
type Handler func(ctx context.Context, rec model.PlayerRecord)

// Pool distributes records across a fixed set of workers.
type Pool struct {
	workers  int
	capacity int
	logger   logger.Logger
}

// New creates a pool with configuration options applied.
func New(opts ...Option) *Pool {
	p := &Pool{
		workers:  runtime.NumCPU() * defaultWorkerMultiplier,
		capacity: defaultQueueCapacity,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logger.Get().Named("pipeline")
	}
	if p.workers < 1 {
		p.workers = 1
	}
	if p.capacity < 1 {
		p.capacity = 1
	}
	return p
}

// Workers reports the configured worker count.
func (p *Pool) Workers() int {
	return p.workers
}

// Run feeds every record through fn and blocks until all workers have
// drained or the context is canceled. On cancellation the remaining
// records are skipped and ctx.Err is returned; records already picked
// up still finish.
func (p *Pool) Run(ctx context.Context, records []model.PlayerRecord, fn Handler) error {
	if len(records) == 0 || fn == nil {
		return nil
	}

	jobs := make(chan model.PlayerRecord, p.capacity)

	var wg sync.WaitGroup
	workers := p.workers
	if workers > len(records) {
		workers = len(records)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for rec := range jobs {
				fn(ctx, rec)
			}
		}()
	}

	var err error
feed:
	for _, rec := range records {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			p.logger.Warn(ctx, "batch canceled before all records were queued",
				logger.Error(err))
			break feed
		case jobs <- rec:
		}
	}
	close(jobs)
	wg.Wait()
	return err
}
