// Package scheduler orders a fixed set of systems by their declared
// dependencies and replays that order every frame.
package scheduler

import (
	"slices"

	"ebiten-gridsim/components"
	"ebiten-gridsim/ecs"
	"ebiten-gridsim/resources"
)

// Context is what a system sees while it runs: the scene's component store
// and resource bundle. It is only valid for the duration of one dispatch.
type Context struct {
	World *components.Registry
	Res   *resources.Bundle
}

// Access declares the component and resource kinds a system touches
type Access struct {
	ReadComponents  []ecs.Kind
	WriteComponents []ecs.Kind
	ReadResources   []ecs.Kind
	WriteResources  []ecs.Kind
}

// System is one unit of per-frame logic
type System interface {
	// Access is called once, when the dispatcher is built
	Access() Access
	Run(ctx *Context)
}

// SystemFunc adapts a function and a fixed access set to System
type SystemFunc struct {
	Decl Access
	Fn   func(ctx *Context)
}

// Access implements System
func (f SystemFunc) Access() Access { return f.Decl }

// Run implements System
func (f SystemFunc) Run(ctx *Context) { f.Fn(ctx) }

// ResourceSet reports which resources exist, for build-time validation
type ResourceSet interface {
	Has(kind ecs.Kind) bool
}

// Conflicts reports whether a and b may not run at the same time: one of
// them writes a kind the other reads or writes
func (a Access) Conflicts(b Access) bool {
	return writesInto(a.WriteComponents, b.ReadComponents, b.WriteComponents) ||
		writesInto(b.WriteComponents, a.ReadComponents, a.WriteComponents) ||
		writesInto(a.WriteResources, b.ReadResources, b.WriteResources) ||
		writesInto(b.WriteResources, a.ReadResources, a.WriteResources)
}

func writesInto(writes []ecs.Kind, others ...[]ecs.Kind) bool {
	for _, w := range writes {
		for _, set := range others {
			if slices.Contains(set, w) {
				return true
			}
		}
	}
	return false
}

func (a Access) resources() []ecs.Kind {
	out := make([]ecs.Kind, 0, len(a.ReadResources)+len(a.WriteResources))
	out = append(out, a.ReadResources...)
	return append(out, a.WriteResources...)
}
