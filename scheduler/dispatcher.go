package scheduler

import (
	"time"

	"golang.org/x/sync/errgroup"

	"ebiten-gridsim/metrics"
)

// Dispatcher replays a fixed, dependency-respecting execution order
type Dispatcher struct {
	entries  []entry
	order    []int
	stages   [][]int
	parallel bool
	metrics  *metrics.Collector
}

// Dispatch runs every system exactly once. Stages run one after another;
// systems inside a stage have disjoint write sets and may run concurrently.
func (d *Dispatcher) Dispatch(ctx *Context) {
	for _, stage := range d.stages {
		if !d.parallel || len(stage) == 1 {
			for _, i := range stage {
				d.run(ctx, i)
			}
			continue
		}

		var g errgroup.Group
		for _, i := range stage {
			g.Go(func() error {
				d.run(ctx, i)
				return nil
			})
		}
		_ = g.Wait()
	}
	d.metrics.FrameDispatched()
}

func (d *Dispatcher) run(ctx *Context, i int) {
	start := time.Now()
	d.entries[i].system.Run(ctx)
	d.metrics.ObserveSystem(d.entries[i].name, time.Since(start))
}

// Order returns the system names in execution order
func (d *Dispatcher) Order() []string {
	names := make([]string, len(d.order))
	for k, i := range d.order {
		names[k] = d.entries[i].name
	}
	return names
}

// Stages returns the system names grouped by stage
func (d *Dispatcher) Stages() [][]string {
	out := make([][]string, len(d.stages))
	for s, stage := range d.stages {
		for _, i := range stage {
			out[s] = append(out[s], d.entries[i].name)
		}
	}
	return out
}

// Parallel reports whether stages run concurrently
func (d *Dispatcher) Parallel() bool {
	return d.parallel
}
