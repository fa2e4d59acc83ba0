package shelf

// Component represents a mutable data record that can be attached to entities
// Reset is called before an instance goes back to a pool
type Component interface {
	Reset()
}

// Instance constrains a component kind to a pointer type that can deep copy
// itself from another instance of the same kind
type Instance[T any] interface {
	*T
	Component
	CopyFrom(src *T)
}

// OnceComponent tags a kind that callers keep at most one of per entity
// Storage does not enforce the cardinality, it only gates the Once variants
type OnceComponent interface {
	Component
	Once()
}

// OnceInstance is Instance restricted to OnceComponent kinds
type OnceInstance[T any] interface {
	Instance[T]
	Once()
}

// Spawner is implemented by kinds that need setup after fresh construction
type Spawner interface {
	OnSpawn()
}

// Predicate selects instances for RemoveAllPredicate
type Predicate[P any] interface {
	Evaluate(P) bool
}

// PredicateFunc adapts a plain function to Predicate
type PredicateFunc[P any] func(P) bool

func (f PredicateFunc[P]) Evaluate(c P) bool {
	return f(c)
}
