package shelf

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

// EntityID is a dense, externally allocated entity index
type EntityID int

// Pools is the recycling contract the storage allocates through
//
// Spawned arrays have exactly the requested length and zeroed elements.
// SpawnInstance reports false when it has nothing to hand out; the storage
// then constructs a fresh instance itself.
type Pools interface {
	SpawnBuckets(n int) []Bucket
	RecycleBuckets([]Bucket)
	SpawnSlots(n int) []*Sequence
	RecycleSlots([]*Sequence)
	SpawnSequence(capacity int) *Sequence
	RecycleSequence(*Sequence)
	SpawnInstance(*Kind) (Component, bool)
	RecycleInstance(*Kind, Component)
}

// ComponentsBase is the untyped inspection surface used by tooling
type ComponentsBase interface {
	GetData(EntityID) []Component
	GetDataOnce(EntityID) map[KindID]Component
}

// Recyclable is implemented by values an owner returns to its own pool
type Recyclable interface {
	OnRecycle()
}

type Query interface {
	QueryNode
	And(items ...interface{}) QueryNode
	Or(items ...interface{}) QueryNode
	Not(items ...interface{}) QueryNode
}

type QueryNode interface {
	Evaluate(signature mask.Mask, registry *Registry) bool
}

type iCursor interface {
	Entities() iter.Seq[EntityID]
	Next() bool
}
