package shelf

import "github.com/TheBitDrifter/bark"

// Spawn returns an instance of T ready to be added: a recycled one when the
// pool has it, otherwise a freshly constructed one
func Spawn[T any, PT Instance[T]](c *Components) PT {
	return c.spawnInstance(KindOf[T, PT]()).(PT)
}

// Add appends comp to the entity's sequence for T, growing storage as
// needed. Negative ids and nil instances are ignored.
func Add[T any, PT Instance[T]](c *Components, id EntityID, comp PT) {
	k := KindOf[T, PT]()
	if id < 0 || comp == nil {
		Config.Logger().Debug("add ignored", bark.KeyOperation, "add", "kind", k.String(), "entity", int(id))
		return
	}
	typeID := c.typeID(k)
	c.ensureCapacityForType(typeID)

	b := &c.buckets[typeID]
	b.kind = k
	c.ensureCapacityForEntity(b, id)
	if b.slots[id] == nil {
		b.slots[id] = c.pools.SpawnSequence(Config.sequenceCapacity)
	}
	b.slots[id].append(comp)
}

func sequenceOf[T any, PT Instance[T]](c *Components, id EntityID) *Sequence {
	return c.sequenceFor(c.typeID(KindOf[T, PT]()), id)
}

// GetFirst returns the first T the entity holds
func GetFirst[T any, PT Instance[T]](c *Components, id EntityID) (PT, bool) {
	seq := sequenceOf[T, PT](c, id)
	if seq.Len() == 0 {
		return nil, false
	}
	return seq.items[0].(PT), true
}

// GetFirstOnce returns the entity's only T
func GetFirstOnce[T any, PT OnceInstance[T]](c *Components, id EntityID) (PT, bool) {
	return GetFirst[T, PT](c, id)
}

// ForEach returns a live view of the entity's T instances. The view is only
// valid until the slot is next mutated.
func ForEach[T any, PT Instance[T]](c *Components, id EntityID) (View[T, PT], bool) {
	seq := sequenceOf[T, PT](c, id)
	if seq == nil {
		return View[T, PT]{}, false
	}
	return View[T, PT]{seq: seq}, true
}

func Contains[T any, PT Instance[T]](c *Components, id EntityID) bool {
	return sequenceOf[T, PT](c, id).Len() > 0
}

func ContainsOnce[T any, PT OnceInstance[T]](c *Components, id EntityID) bool {
	return Contains[T, PT](c, id)
}

// RemoveAllOf recycles every T the entity holds and returns the count
func RemoveAllOf[T any, PT Instance[T]](c *Components, id EntityID) int {
	k := KindOf[T, PT]()
	seq := c.sequenceFor(c.typeID(k), id)
	if seq == nil {
		return 0
	}
	count := 0
	for i := len(seq.items) - 1; i >= 0; i-- {
		c.pools.RecycleInstance(k, seq.items[i])
		seq.removeAt(i)
		count++
	}
	return count
}

func RemoveAllOnceOf[T any, PT OnceInstance[T]](c *Components, id EntityID) int {
	return RemoveAllOf[T, PT](c, id)
}

// RemoveEverywhere recycles every T on every entity and returns the count
//
// Every bucket is scanned and instances are matched by their dynamic type,
// not by the type id T resolves to.
func RemoveEverywhere[T any, PT Instance[T]](c *Components) int {
	k := KindOf[T, PT]()
	count := 0
	for i := range c.buckets {
		for _, seq := range c.buckets[i].slots {
			if seq == nil {
				continue
			}
			for j := len(seq.items) - 1; j >= 0; j-- {
				if !k.owns(seq.items[j]) {
					continue
				}
				c.pools.RecycleInstance(k, seq.items[j])
				seq.removeAt(j)
				count++
			}
		}
	}
	return count
}

func RemoveEverywhereOnce[T any, PT OnceInstance[T]](c *Components) int {
	return RemoveEverywhere[T, PT](c)
}

// RemoveAllPredicate recycles the entity's T instances for which pred
// holds. Survivors keep their relative order.
func RemoveAllPredicate[T any, PT Instance[T]](c *Components, id EntityID, pred Predicate[PT]) int {
	k := KindOf[T, PT]()
	seq := c.sequenceFor(c.typeID(k), id)
	if seq == nil {
		return 0
	}
	count := 0
	for i := len(seq.items) - 1; i >= 0; i-- {
		inst := seq.items[i].(PT)
		if !pred.Evaluate(inst) {
			continue
		}
		c.pools.RecycleInstance(k, inst)
		seq.removeAt(i)
		count++
	}
	return count
}
