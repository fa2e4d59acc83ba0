package shelf

import (
	"fmt"
	"reflect"

	"github.com/TheBitDrifter/table"
)

// KindID is the process-wide index of a component kind
type KindID uint32

// MaxKinds bounds the number of distinct component kinds in a process
const MaxKinds = 1 << 16

var kinds = newCatalog[reflect.Type, *Kind](MaxKinds)

// Kind describes one component kind: its table element identity plus the
// constructor and copy operations the storage needs without knowing T
type Kind struct {
	elem      table.ElementType
	id        KindID
	typ       reflect.Type
	once      bool
	construct func() Component
	copy      func(dst, src Component)
	owns      func(Component) bool
}

// KindOf returns the descriptor for T, creating it on first use
func KindOf[T any, PT Instance[T]]() *Kind {
	typ := reflect.TypeFor[T]()
	k, _, err := kinds.getOrRegister(typ, func(index int) *Kind {
		_, once := any(PT(nil)).(OnceComponent)
		return &Kind{
			elem: table.FactoryNewElementType[T](),
			id:   KindID(index),
			typ:  typ,
			once: once,
			construct: func() Component {
				c := PT(new(T))
				if s, ok := any(c).(Spawner); ok {
					s.OnSpawn()
				}
				return c
			},
			copy: func(dst, src Component) {
				dst.(PT).CopyFrom(src.(PT))
			},
			owns: func(c Component) bool {
				_, ok := c.(PT)
				return ok
			},
		}
	})
	if err != nil {
		panic(fmt.Sprintf("cannot register component kind %s: %v", typ, err))
	}
	return k
}

// Element returns the table element type identifying the kind in a schema
func (k *Kind) Element() table.ElementType {
	return k.elem
}

// ID returns the process-wide index of the kind
func (k *Kind) ID() KindID {
	return k.id
}

// Type returns the Go type of the kind's records
func (k *Kind) Type() reflect.Type {
	return k.typ
}

// IsOnce reports whether the kind is tagged as a OnceComponent
func (k *Kind) IsOnce() bool {
	return k.once
}

// New constructs a fresh instance and runs its OnSpawn hook
func (k *Kind) New() Component {
	return k.construct()
}

func (k *Kind) String() string {
	return k.typ.String()
}
