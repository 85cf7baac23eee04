package sim

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/timothestes/redemption-probability-simulation/internal/simlog"
)

// Driver plays one full trial with the given random source and returns its
// records. Drivers are not safe for concurrent use: sharded runs give each
// worker its own driver via the factory.
type Driver interface {
	RunTrial(trial int, rng *rand.Rand) ([]simlog.Record, error)
}

// DriverFactory builds a fresh driver owning its own zones. Workers never
// share mutable state; only the immutable deck template is shared.
type DriverFactory func() (Driver, error)

// Runner executes a batch of independent trials, buffers every record in
// memory, and bulk-flushes them to the sink once after the batch completes.
// The sink's header must be written by the caller before Run, so all rows
// appended across runners share one header.
type Runner struct {
	Trials  int
	Workers int   // <= 1 means sequential
	Seed    int64 // 0 means time-seeded
	Sink    simlog.Sink

	NewDriver DriverFactory
}

// Run executes all trials and flushes the buffered records. The context is
// checked between trials: cancellation loses no completed trial, and
// nothing is flushed on error.
func (r *Runner) Run(ctx context.Context) error {
	if r.Trials <= 0 {
		return fmt.Errorf("runner: trial count must be positive, got %d", r.Trials)
	}

	base := r.seedBase()
	var records []simlog.Record
	var err error
	if r.Workers <= 1 {
		records, err = r.runSequential(ctx, base)
	} else {
		records, err = r.runSharded(ctx, base)
	}
	if err != nil {
		return err
	}
	return r.Sink.Append(records)
}

func (r *Runner) runSequential(ctx context.Context, seed int64) ([]simlog.Record, error) {
	driver, err := r.NewDriver()
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(seed))

	var records []simlog.Record
	for trial := 0; trial < r.Trials; trial++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		recs, err := driver.RunTrial(trial, rng)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", trial, err)
		}
		records = append(records, recs...)
	}
	return records, nil
}

// runSharded splits the trial range into contiguous shards, one worker
// each. Every worker owns its own driver and its own seeded random stream,
// and records carry their trial index, so merge order is irrelevant.
func (r *Runner) runSharded(ctx context.Context, base int64) ([]simlog.Record, error) {
	workers := r.Workers
	if workers > r.Trials {
		workers = r.Trials
	}

	out := make([][]simlog.Record, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup

	per := r.Trials / workers
	extra := r.Trials % workers
	start := 0
	for w := 0; w < workers; w++ {
		n := per
		if w < extra {
			n++
		}
		lo, hi := start, start+n
		start = hi

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			driver, err := r.NewDriver()
			if err != nil {
				errs[w] = err
				return
			}
			rng := rand.New(rand.NewSource(base + int64(w)))
			for trial := lo; trial < hi; trial++ {
				if err := ctx.Err(); err != nil {
					errs[w] = err
					return
				}
				recs, err := driver.RunTrial(trial, rng)
				if err != nil {
					errs[w] = fmt.Errorf("trial %d: %w", trial, err)
					return
				}
				out[w] = append(out[w], recs...)
			}
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	var records []simlog.Record
	for _, shard := range out {
		records = append(records, shard...)
	}
	return records, nil
}

// seedBase yields the worker-0 seed. Sampled once per Run so unseeded
// workers get distinct consecutive offsets instead of racing the clock.
func (r *Runner) seedBase() int64 {
	if r.Seed == 0 {
		return time.Now().UnixNano()
	}
	return r.Seed
}
