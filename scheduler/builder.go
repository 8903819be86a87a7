package scheduler

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"ebiten-gridsim/logger"
	"ebiten-gridsim/metrics"
)

// Configuration errors reported by Build
var (
	ErrDuplicateSystem   = errors.New("duplicate system name")
	ErrUnknownDependency = errors.New("unknown system dependency")
	ErrCycle             = errors.New("system dependency cycle")
	ErrMissingResource   = errors.New("missing resource")
)

type entry struct {
	name   string
	system System
	access Access
	deps   []string
}

// Builder collects systems and their dependencies
type Builder struct {
	entries  []entry
	parallel bool
	metrics  *metrics.Collector
}

// NewBuilder creates an empty builder. Parallel stages are off by default.
func NewBuilder() *Builder {
	return &Builder{}
}

// With adds a system that must run after every system named in deps
func (b *Builder) With(sys System, name string, deps ...string) *Builder {
	b.entries = append(b.entries, entry{name: name, system: sys, deps: slices.Clone(deps)})
	return b
}

// Parallel lets systems of one stage run concurrently
func (b *Builder) Parallel(on bool) *Builder {
	b.parallel = on
	return b
}

// Metrics records system timings into c
func (b *Builder) Metrics(c *metrics.Collector) *Builder {
	b.metrics = c
	return b
}

// Build validates the graph against res and computes the execution order.
// Every error is a configuration error; a built dispatcher cannot fail.
func (b *Builder) Build(res ResourceSet) (*Dispatcher, error) {
	entries := slices.Clone(b.entries)
	index := make(map[string]int, len(entries))
	for i := range entries {
		e := &entries[i]
		if e.name == "" {
			return nil, fmt.Errorf("%w: system #%d has no name", ErrDuplicateSystem, i)
		}
		if _, dup := index[e.name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSystem, e.name)
		}
		index[e.name] = i
		e.access = e.system.Access()
	}

	for _, e := range entries {
		for _, dep := range e.deps {
			if _, ok := index[dep]; !ok {
				return nil, fmt.Errorf("%w: %q depends on %q", ErrUnknownDependency, e.name, dep)
			}
		}
		for _, kind := range e.access.resources() {
			if res == nil || !res.Has(kind) {
				return nil, fmt.Errorf("%w: %q requires %s", ErrMissingResource, e.name, kind)
			}
		}
	}

	order, err := topoSort(entries, index)
	if err != nil {
		return nil, err
	}
	stages := pack(entries, index, order)

	d := &Dispatcher{
		entries:  entries,
		order:    order,
		stages:   stages,
		parallel: b.parallel,
		metrics:  b.metrics,
	}
	logger.WithComponent("scheduler").
		WithField("order", strings.Join(d.Order(), ",")).
		WithField("stages", len(stages)).
		Debug("Dispatcher built")
	return d, nil
}

// topoSort runs Kahn's algorithm. Among ready systems the earliest declared
// goes first, so the same declarations always give the same order.
func topoSort(entries []entry, index map[string]int) ([]int, error) {
	indegree := make([]int, len(entries))
	dependents := make([][]int, len(entries))
	for i, e := range entries {
		seen := make(map[int]bool, len(e.deps))
		for _, dep := range e.deps {
			j := index[dep]
			if seen[j] {
				continue
			}
			seen[j] = true
			indegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	done := make([]bool, len(entries))
	order := make([]int, 0, len(entries))
	for len(order) < len(entries) {
		next := -1
		for i := range entries {
			if !done[i] && indegree[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			var stuck []string
			for i, e := range entries {
				if !done[i] {
					stuck = append(stuck, e.name)
				}
			}
			return nil, fmt.Errorf("%w among %s", ErrCycle, strings.Join(stuck, ", "))
		}
		done[next] = true
		order = append(order, next)
		for _, d := range dependents[next] {
			indegree[d]--
		}
	}
	return order, nil
}

// pack groups the ordered systems into stages. A system goes into the
// first stage after all of its dependencies and after every earlier system
// whose access conflicts with its own.
func pack(entries []entry, index map[string]int, order []int) [][]int {
	stageOf := make([]int, len(entries))
	var stages [][]int
	for pos, i := range order {
		s := 0
		for _, dep := range entries[i].deps {
			s = max(s, stageOf[index[dep]]+1)
		}
		for _, j := range order[:pos] {
			if entries[i].access.Conflicts(entries[j].access) {
				s = max(s, stageOf[j]+1)
			}
		}
		stageOf[i] = s
		for len(stages) <= s {
			stages = append(stages, nil)
		}
		stages[s] = append(stages[s], i)
	}
	return stages
}
