package ecs

// Kind names a component or resource kind. Systems declare the kinds they
// read and write, and the scheduler orders them on those declarations.
type Kind string

// Queryable is the type-independent view of a Store used by Query
type Queryable interface {
	Kind() Kind
	Has(id EntityID) bool
	Len() int
	Entities() []EntityID
}

// Remover is implemented by every store so a registry can drop all of an
// entity's components at once
type Remover interface {
	Remove(id EntityID) bool
}
