package shelf

import (
	"iter"

	"github.com/TheBitDrifter/mask"
)

var _ iCursor = &Cursor{}

// Cursor walks the entity ids of a Components whose signature matches a
// query
type Cursor struct {
	query      QueryNode
	components *Components

	entityIndex EntityID
	limit       EntityID
	initialized bool
}

func newCursor(query QueryNode, components *Components) *Cursor {
	return &Cursor{
		query:      query,
		components: components,
	}
}

// Next advances to the next matching entity
func (c *Cursor) Next() bool {
	if !c.initialized {
		c.initialize()
	} else {
		c.entityIndex++
	}
	for c.entityIndex < c.limit {
		if c.matches(c.entityIndex) {
			return true
		}
		c.entityIndex++
	}
	c.Reset()
	return false
}

// EntityID returns the entity the cursor is positioned on
func (c *Cursor) EntityID() EntityID {
	return c.entityIndex
}

func (c *Cursor) Entities() iter.Seq[EntityID] {
	return func(yield func(EntityID) bool) {
		c.Reset()
		for c.Next() {
			if !yield(c.entityIndex) {
				c.Reset()
				return
			}
		}
	}
}

func (c *Cursor) initialize() {
	c.entityIndex = 0
	c.limit = EntityID(c.components.EntityCapacity())
	c.initialized = true
	c.prepare()
}

// prepare resolves the query's kinds against the storage's scope once per
// pass. Kinds first stored mid pass are seen from the next pass on.
func (c *Cursor) prepare() {
	if p, ok := c.query.(preparer); ok {
		p.prepare(c.components.registry)
	}
}

// matches skips entities holding nothing, so Not queries only see live ones
func (c *Cursor) matches(id EntityID) bool {
	var empty mask.Mask
	sig := c.components.Signature(id)
	if sig == empty {
		return false
	}
	return c.query.Evaluate(sig, c.components.registry)
}

func (c *Cursor) Reset() {
	c.entityIndex = 0
	c.limit = 0
	c.initialized = false
}

// TotalMatched counts matching entities without moving the cursor
func (c *Cursor) TotalMatched() int {
	total := 0
	c.prepare()
	limit := EntityID(c.components.EntityCapacity())
	for id := EntityID(0); id < limit; id++ {
		if c.matches(id) {
			total++
		}
	}
	return total
}
