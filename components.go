package shelf

import (
	"fmt"
	"iter"

	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
	"github.com/kamstrup/intmap"
	"github.com/rotisserie/eris"
)

var (
	_ ComponentsBase = &Components{}
	_ Recyclable     = &Components{}
)

// MaxSignatureBits is the number of type ids an entity signature can carry
const MaxSignatureBits = 256

// Components stores, per entity, any number of instances of any number of
// component kinds
//
// The outer array is indexed by type id, each bucket by entity id. A
// Components value has a single owner; nothing in it is synchronized.
type Components struct {
	registry *Registry
	pools    Pools
	buckets  []Bucket
	typeIDs  *intmap.Map[KindID, int]
	freeze   bool
}

func newComponents(registry *Registry, pools Pools) *Components {
	c := &Components{
		registry: registry,
		pools:    pools,
		typeIDs:  intmap.New[KindID, int](16),
	}
	c.buckets = pools.SpawnBuckets(Config.bucketCapacity)
	return c
}

// Initialize (re)allocates the outer bucket array with the given capacity,
// releasing anything stored before
func (c *Components) Initialize(capacity int) {
	if c.buckets != nil {
		c.cleanUp()
	}
	c.buckets = c.pools.SpawnBuckets(max(capacity, 0))
	Config.Logger().Debug("initialized", bark.KeyOperation, "initialize", "capacity", len(c.buckets))
}

func (c *Components) Registry() *Registry {
	return c.registry
}

func (c *Components) Pools() Pools {
	return c.pools
}

// SetFreeze records the freeze flag. No operation consults it yet.
func (c *Components) SetFreeze(freeze bool) {
	c.freeze = freeze
}

func (c *Components) Frozen() bool {
	return c.freeze
}

// OnRecycle releases every bucket, sequence and instance to the pools before
// the owner reuses this value
func (c *Components) OnRecycle() {
	c.cleanUp()
	c.freeze = false
	Config.Logger().Debug("recycled", bark.KeyOperation, "recycle")
}

func (c *Components) cleanUp() {
	for i := range c.buckets {
		b := &c.buckets[i]
		if b.slots == nil {
			continue
		}
		for j, seq := range b.slots {
			if seq == nil {
				continue
			}
			for _, inst := range seq.items {
				c.pools.RecycleInstance(b.kind, inst)
			}
			c.pools.RecycleSequence(seq)
			b.slots[j] = nil
		}
		c.pools.RecycleSlots(b.slots)
		b.slots = nil
		b.kind = nil
	}
	c.pools.RecycleBuckets(c.buckets)
	c.buckets = nil
}

// Count returns the number of allocated (type, entity) sequences, empty ones
// included. It is not the number of instances.
func (c *Components) Count() int {
	count := 0
	for i := range c.buckets {
		for _, seq := range c.buckets[i].slots {
			if seq != nil {
				count++
			}
		}
	}
	return count
}

// Buckets exposes the outer array. Callers must not modify it.
func (c *Components) Buckets() []Bucket {
	return c.buckets
}

// EntityCapacity returns the longest slot array across buckets
func (c *Components) EntityCapacity() int {
	n := 0
	for i := range c.buckets {
		n = max(n, len(c.buckets[i].slots))
	}
	return n
}

func (c *Components) typeID(k *Kind) int {
	if id, ok := c.typeIDs.Get(k.id); ok {
		return id
	}
	id := c.registry.TypeID(k)
	c.typeIDs.Put(k.id, id)
	return id
}

// spawnInstance prefers a pooled instance and falls back to construction
func (c *Components) spawnInstance(k *Kind) Component {
	if inst, ok := c.pools.SpawnInstance(k); ok {
		return inst
	}
	return k.construct()
}

// RemoveAll recycles every instance the entity holds, of every kind, and
// returns how many were removed. Slots stay allocated but empty.
func (c *Components) RemoveAll(id EntityID) int {
	count := 0
	for i := range c.buckets {
		b := &c.buckets[i]
		seq := b.Sequence(id)
		if seq == nil {
			continue
		}
		count += len(seq.items)
		for _, inst := range seq.items {
			c.pools.RecycleInstance(b.kind, inst)
		}
		seq.clear()
	}
	return count
}

// CopyFrom replaces the contents of c with a deep copy of other
//
// Every array, sequence and instance in c is freshly spawned; nothing is
// shared with other afterwards. c adopts other's registry so type ids keep
// their meaning.
func (c *Components) CopyFrom(other *Components) {
	if other == c {
		return
	}
	c.cleanUp()
	if other == nil {
		c.buckets = c.pools.SpawnBuckets(0)
		return
	}
	if other.registry != c.registry {
		c.registry = other.registry
		c.typeIDs.Clear()
	}

	c.buckets = c.pools.SpawnBuckets(len(other.buckets))
	sequences := 0
	for i := range other.buckets {
		src := &other.buckets[i]
		if src.slots == nil {
			continue
		}
		dst := &c.buckets[i]
		dst.kind = src.kind
		dst.slots = c.pools.SpawnSlots(len(src.slots))
		for j, srcSeq := range src.slots {
			if srcSeq == nil {
				continue
			}
			seq := c.pools.SpawnSequence(cap(srcSeq.items))
			for _, srcInst := range srcSeq.items {
				inst := c.spawnInstance(src.kind)
				src.kind.copy(inst, srcInst)
				seq.append(inst)
			}
			dst.slots[j] = seq
			sequences++
		}
	}
	Config.Logger().Debug("copied", bark.KeyOperation, "copy", "buckets", len(c.buckets), "sequences", sequences)
}

// All yields every instance the entity holds, bucket by bucket in type id
// order
func (c *Components) All(id EntityID) iter.Seq[Component] {
	return func(yield func(Component) bool) {
		for i := range c.buckets {
			seq := c.buckets[i].Sequence(id)
			if seq == nil {
				continue
			}
			for _, inst := range seq.items {
				if !yield(inst) {
					return
				}
			}
		}
	}
}

// GetData collects All into a fresh slice for inspection tooling
func (c *Components) GetData(id EntityID) []Component {
	return iter_util.Collect(c.All(id))
}

// GetDataOnce is reserved for a dedicated singleton store and always
// returns nil
func (c *Components) GetDataOnce(id EntityID) map[KindID]Component {
	return nil
}

// Signature marks the type id of every non-empty sequence the entity has
func (c *Components) Signature(id EntityID) mask.Mask {
	var sig mask.Mask
	for i := range c.buckets {
		if i >= MaxSignatureBits {
			break
		}
		if c.buckets[i].Sequence(id).Len() > 0 {
			sig.Mark(uint32(i))
		}
	}
	return sig
}

// Verify walks the storage and reports the first instance that is nil, of
// the wrong kind, or stored in more than one slot
func (c *Components) Verify() error {
	seen := make(map[Component]struct{})
	for i := range c.buckets {
		b := &c.buckets[i]
		for j, seq := range b.slots {
			if seq == nil {
				continue
			}
			for k, inst := range seq.items {
				if inst == nil {
					return eris.Wrapf(ErrNilInstance, "type %d entity %d index %d", i, j, k)
				}
				if !b.kind.owns(inst) {
					Config.Logger().Warn("kind mismatch", bark.KeyOperation, "verify", "kind", b.kind.String(), "instance", fmt.Sprintf("%T", inst))
					return eris.Wrapf(ErrKindMismatch, "type %d entity %d index %d: %T", i, j, k, inst)
				}
				if _, dup := seen[inst]; dup {
					Config.Logger().Warn("duplicate instance", bark.KeyOperation, "verify", "type", i, "entity", j)
					return eris.Wrapf(ErrDuplicateInstance, "type %d entity %d index %d", i, j, k)
				}
				seen[inst] = struct{}{}
			}
		}
	}
	return nil
}
