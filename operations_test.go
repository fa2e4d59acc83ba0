package shelf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test component kinds
type Health struct {
	HP int
}

func (h *Health) Reset()             { *h = Health{} }
func (h *Health) CopyFrom(o *Health) { *h = *o }

type Position struct {
	X, Y float64
}

func (p *Position) Reset()               { *p = Position{} }
func (p *Position) CopyFrom(o *Position) { *p = *o }

type Velocity struct {
	X, Y float64
}

func (v *Velocity) Reset()               { *v = Velocity{} }
func (v *Velocity) CopyFrom(o *Velocity) { *v = *o }

type Inventory struct {
	Items []string
}

func (i *Inventory) Reset() { i.Items = i.Items[:0] }
func (i *Inventory) CopyFrom(o *Inventory) {
	i.Items = append(i.Items[:0], o.Items...)
}

// Leader is a once kind
type Leader struct {
	Rank int
}

func (l *Leader) Reset()             { *l = Leader{} }
func (l *Leader) CopyFrom(o *Leader) { *l = *o }
func (l *Leader) Once()              {}

// Tracer records whether its spawn hook ran
type Tracer struct {
	Spawned bool
	Value   int
}

func (tr *Tracer) Reset()             { tr.Value = 0 }
func (tr *Tracer) CopyFrom(o *Tracer) { tr.Value = o.Value }
func (tr *Tracer) OnSpawn()           { tr.Spawned = true }

func newTestComponents() *Components {
	return Factory.NewComponents(nil, nil)
}

func TestAddGetFirst(t *testing.T) {
	tests := []struct {
		name   string
		entity EntityID
		hp     []int
	}{
		{"Single instance", 0, []int{10}},
		{"Many instances keep order", 3, []int{10, 5, 7}},
		{"Far entity", 1000, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestComponents()
			for _, hp := range tt.hp {
				Add(c, tt.entity, &Health{HP: hp})
			}

			first, ok := GetFirst[Health](c, tt.entity)
			require.True(t, ok)
			assert.Equal(t, Health{HP: tt.hp[0]}, *first)
			assert.True(t, Contains[Health](c, tt.entity))

			view, ok := ForEach[Health](c, tt.entity)
			require.True(t, ok)
			require.Equal(t, len(tt.hp), view.Len())
			for i, h := range view.All() {
				assert.Equal(t, tt.hp[i], h.HP)
			}
		})
	}
}

func TestQueriesOnAbsentState(t *testing.T) {
	c := newTestComponents()
	Add(c, 2, &Health{HP: 1})

	tests := []struct {
		name   string
		entity EntityID
	}{
		{"Entity below stored range", 1},
		{"Entity past capacity", 500},
		{"Negative entity", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := GetFirst[Health](c, tt.entity)
			assert.False(t, ok)
			assert.False(t, Contains[Health](c, tt.entity))
			_, ok = ForEach[Health](c, tt.entity)
			assert.False(t, ok)
			assert.Equal(t, 0, RemoveAllOf[Health](c, tt.entity))
			assert.Empty(t, c.GetData(tt.entity))
		})
	}

	t.Run("Kind never added", func(t *testing.T) {
		_, ok := GetFirst[Velocity](c, 2)
		assert.False(t, ok)
		assert.False(t, Contains[Velocity](c, 2))
		assert.Equal(t, 0, RemoveAllOf[Velocity](c, 2))
		assert.Equal(t, 0, RemoveEverywhere[Velocity](c))
	})
}

func TestAddIgnoresInvalidInput(t *testing.T) {
	c := newTestComponents()
	Add(c, -4, &Health{HP: 1})
	Add[Health](c, 1, nil)

	assert.Equal(t, 0, c.Count())
	assert.False(t, Contains[Health](c, 1))
}

func TestContainsMatchesGetFirst(t *testing.T) {
	c := newTestComponents()
	Add(c, 0, &Health{HP: 1})
	Add(c, 2, &Position{X: 1})
	Add(c, 2, &Health{HP: 2})
	Add(c, 4, &Health{HP: 3})
	RemoveAllOf[Health](c, 4)

	for id := EntityID(0); id < 6; id++ {
		_, hasHealth := GetFirst[Health](c, id)
		assert.Equal(t, hasHealth, Contains[Health](c, id), "health entity %d", id)
		_, hasPos := GetFirst[Position](c, id)
		assert.Equal(t, hasPos, Contains[Position](c, id), "position entity %d", id)
	}
}

func TestOnceComponents(t *testing.T) {
	c := newTestComponents()
	assert.False(t, ContainsOnce[Leader](c, 1))

	Add(c, 1, &Leader{Rank: 3})
	assert.True(t, ContainsOnce[Leader](c, 1))
	leader, ok := GetFirstOnce[Leader](c, 1)
	require.True(t, ok)
	assert.Equal(t, 3, leader.Rank)
	assert.True(t, KindOf[Leader]().IsOnce())
	assert.False(t, KindOf[Health]().IsOnce())

	assert.Equal(t, 1, RemoveAllOnceOf[Leader](c, 1))
	assert.False(t, ContainsOnce[Leader](c, 1))

	Add(c, 1, &Leader{Rank: 1})
	Add(c, 2, &Leader{Rank: 2})
	assert.Equal(t, 2, RemoveEverywhereOnce[Leader](c))
}

func TestRemoveAllOf(t *testing.T) {
	tests := []struct {
		name  string
		count int
	}{
		{"One", 1},
		{"Several", 5},
		{"Many", 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestComponents()
			for i := 0; i < tt.count; i++ {
				Add(c, 7, &Health{HP: i})
			}
			Add(c, 7, &Position{X: 1})

			assert.Equal(t, tt.count, RemoveAllOf[Health](c, 7))
			_, ok := GetFirst[Health](c, 7)
			assert.False(t, ok)
			assert.True(t, Contains[Position](c, 7))

			view, ok := ForEach[Health](c, 7)
			require.True(t, ok, "slot stays allocated")
			assert.Equal(t, 0, view.Len())
		})
	}
}

func TestRemoveAllPredicate(t *testing.T) {
	tests := []struct {
		name      string
		hp        []int
		threshold int
		removed   int
		remaining []int
	}{
		{"None match", []int{10, 12}, 8, 0, []int{10, 12}},
		{"All match", []int{1, 2, 3}, 8, 3, nil},
		{"Alternating", []int{1, 10, 2, 11, 3, 12}, 8, 3, []int{10, 11, 12}},
		{"Adjacent matches", []int{9, 1, 2, 9, 3}, 8, 3, []int{9, 9}},
		{"Tail match", []int{10, 5}, 8, 1, []int{10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestComponents()
			for _, hp := range tt.hp {
				Add(c, 3, &Health{HP: hp})
			}

			removed := RemoveAllPredicate[Health](c, 3, PredicateFunc[*Health](func(h *Health) bool {
				return h.HP < tt.threshold
			}))
			assert.Equal(t, tt.removed, removed)

			view, _ := ForEach[Health](c, 3)
			var got []int
			for _, h := range view.All() {
				got = append(got, h.HP)
			}
			assert.Equal(t, tt.remaining, got)
		})
	}

	t.Run("Absent slot", func(t *testing.T) {
		c := newTestComponents()
		assert.Equal(t, 0, RemoveAllPredicate[Health](c, 3, PredicateFunc[*Health](func(*Health) bool { return true })))
	})
}

func TestRemoveEverywhere(t *testing.T) {
	c := newTestComponents()
	for id := EntityID(0); id < 10; id++ {
		Add(c, id, &Health{HP: int(id)})
		Add(c, id, &Health{HP: int(id) + 100})
		Add(c, id, &Position{X: float64(id)})
	}

	assert.Equal(t, 20, RemoveEverywhere[Health](c))
	for id := EntityID(0); id < 10; id++ {
		assert.False(t, Contains[Health](c, id))
		pos, ok := GetFirst[Position](c, id)
		require.True(t, ok)
		assert.Equal(t, float64(id), pos.X)
	}
	assert.Equal(t, 0, RemoveEverywhere[Health](c))
}

func TestSpawnReusesPooledInstances(t *testing.T) {
	pool := Factory.NewPool()
	c := Factory.NewComponents(nil, pool)

	added := &Health{HP: 42}
	Add(c, 1, added)
	require.Equal(t, 1, RemoveAllOf[Health](c, 1))
	assert.Equal(t, 1, pool.FreeInstances(KindOf[Health]()))

	spawned := Spawn[Health](c)
	assert.Same(t, added, spawned)
	assert.Equal(t, 0, spawned.HP, "recycled instances are reset")
	assert.Equal(t, 0, pool.FreeInstances(KindOf[Health]()))
}

func TestSpawnRunsHookOnFreshInstances(t *testing.T) {
	c := newTestComponents()

	fresh := Spawn[Tracer](c)
	assert.True(t, fresh.Spawned)

	fresh.Value = 9
	Add(c, 0, fresh)
	RemoveAllOf[Tracer](c, 0)

	reused := Spawn[Tracer](c)
	assert.Same(t, fresh, reused)
	assert.Equal(t, 0, reused.Value)
}

func TestGrowthPreservesEntities(t *testing.T) {
	c := newTestComponents()
	for id := EntityID(0); id < 10; id++ {
		Add(c, id, &Health{HP: int(id)})
	}

	Add(c, 1000, &Health{HP: 1000})
	Add(c, 1000, &Inventory{Items: []string{"key"}})

	for id := EntityID(0); id < 10; id++ {
		h, ok := GetFirst[Health](c, id)
		require.True(t, ok, "entity %d", id)
		assert.Equal(t, int(id), h.HP)
	}
	h, ok := GetFirst[Health](c, 1000)
	require.True(t, ok)
	assert.Equal(t, 1000, h.HP)
	assert.GreaterOrEqual(t, c.EntityCapacity(), 1001)
}

// TestHealthScenario walks the end to end scenario of a two instance slot
func TestHealthScenario(t *testing.T) {
	c := newTestComponents()
	before := c.Count()

	Add(c, 3, &Health{HP: 10})
	Add(c, 3, &Health{HP: 5})
	assert.Equal(t, before+1, c.Count())

	first, ok := GetFirst[Health](c, 3)
	require.True(t, ok)
	assert.Equal(t, 10, first.HP)

	removed := RemoveAllPredicate[Health](c, 3, PredicateFunc[*Health](func(h *Health) bool {
		return h.HP < 8
	}))
	assert.Equal(t, 1, removed)

	first, ok = GetFirst[Health](c, 3)
	require.True(t, ok)
	assert.Equal(t, 10, first.HP)
	view, _ := ForEach[Health](c, 3)
	assert.Equal(t, 1, view.Len())
}
