/*
Package shelf provides the per-entity component storage of an Entity-Component-System
built for deterministic simulations.

Every entity can hold any number of instances of any number of component kinds.
Instances are kept in buckets indexed by a scope-local type id and then by entity id,
which gives constant time access without per-entity maps. Removed instances, arrays and
sequences go back to a recycling pool instead of the garbage collector, and a whole
storage can be deep copied into another for rollback and replay.

Core Concepts:

  - Kind: A component type, described once per process by KindOf.
  - Registry: A scope (entity kind, state kind) assigning dense type ids to kinds.
  - Components: The storage itself, one per simulation state.
  - Pools: The recycling contract the storage allocates through.

Basic Usage:

	// Components need Reset and CopyFrom
	type Health struct{ HP int }

	func (h *Health) Reset()             { *h = Health{} }
	func (h *Health) CopyFrom(o *Health) { *h = *o }

	// Create storage in a scope
	components := shelf.FactoryNewComponents[Unit, GameState](nil)

	// Attach and read
	shelf.Add(components, 3, &Health{HP: 10})
	hp, ok := shelf.GetFirst[Health](components, 3)

	// Snapshot
	snapshot := shelf.Factory.NewComponents(nil, nil)
	snapshot.CopyFrom(components)

Components is single owner: nothing in it is synchronized, and views returned by
ForEach are live.
*/
package shelf
