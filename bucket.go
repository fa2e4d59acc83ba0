package shelf

// Bucket holds every entity's sequence for one component kind, indexed by
// entity id. A bucket with no slot array is absent.
type Bucket struct {
	kind  *Kind
	slots []*Sequence
}

// Kind returns the kind stored in the bucket, nil while absent
func (b *Bucket) Kind() *Kind {
	return b.kind
}

// Len returns the length of the slot array
func (b *Bucket) Len() int {
	return len(b.slots)
}

// Present reports whether the bucket has a slot array
func (b *Bucket) Present() bool {
	return b.slots != nil
}

// Sequence returns the slot for entity id, nil when absent or out of range
func (b *Bucket) Sequence(id EntityID) *Sequence {
	if id < 0 || int(id) >= len(b.slots) {
		return nil
	}
	return b.slots[id]
}

// grownLength returns the length an array of length current needs to make
// index valid: unchanged when it already is, otherwise doubled or exactly
// index+1, whichever is larger
func grownLength(current, index int) int {
	if index < current {
		return current
	}
	return max(index+1, 2*current)
}

// ensureCapacityForType grows the outer array so typeID is a valid index
func (c *Components) ensureCapacityForType(typeID int) {
	newLen := grownLength(len(c.buckets), typeID)
	if newLen == len(c.buckets) {
		return
	}
	grown := c.pools.SpawnBuckets(newLen)
	copy(grown, c.buckets)
	c.pools.RecycleBuckets(c.buckets)
	c.buckets = grown
}

// ensureCapacityForEntity grows the bucket's slot array so id is valid
func (c *Components) ensureCapacityForEntity(b *Bucket, id EntityID) {
	newLen := grownLength(len(b.slots), int(id))
	if newLen == len(b.slots) {
		return
	}
	grown := c.pools.SpawnSlots(newLen)
	copy(grown, b.slots)
	c.pools.RecycleSlots(b.slots)
	b.slots = grown
}

// bucketFor returns the bucket at typeID without growing, nil when absent
func (c *Components) bucketFor(typeID int) *Bucket {
	if typeID < 0 || typeID >= len(c.buckets) {
		return nil
	}
	b := &c.buckets[typeID]
	if b.slots == nil {
		return nil
	}
	return b
}

// sequenceFor returns the slot at (typeID, id) without growing
func (c *Components) sequenceFor(typeID int, id EntityID) *Sequence {
	b := c.bucketFor(typeID)
	if b == nil {
		return nil
	}
	return b.Sequence(id)
}
