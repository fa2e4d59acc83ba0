package shelf

import (
	"reflect"
	"sync"

	"github.com/kamstrup/intmap"
)

// Registry assigns dense type ids to component kinds within one scope
//
// A scope is the (entity kind, state kind) pair a storage belongs to. Ids are
// handed out in request order starting at zero and stay stable for the life
// of the registry.
type Registry struct {
	mu    sync.RWMutex
	ids   *intmap.Map[KindID, int]
	kinds []*Kind
}

type scopeKey struct {
	entity reflect.Type
	state  reflect.Type
}

// MaxScopes bounds the number of (entity kind, state kind) pairs in a process
const MaxScopes = 1 << 10

var scopes = newCatalog[scopeKey, *Registry](MaxScopes)

func newRegistry() *Registry {
	return &Registry{ids: intmap.New[KindID, int](16)}
}

// ScopeOf returns the process-wide registry for the entity kind E and the
// state kind S
func ScopeOf[E, S any]() *Registry {
	key := scopeKey{entity: reflect.TypeFor[E](), state: reflect.TypeFor[S]()}
	r, _, err := scopes.getOrRegister(key, func(int) *Registry {
		return newRegistry()
	})
	if err != nil {
		panic(err)
	}
	return r
}

// TypeID returns the id of kind k in this scope, assigning the next free one
// on first request
func (r *Registry) TypeID(k *Kind) int {
	if id, ok := r.Lookup(k); ok {
		return id
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if id, ok := r.ids.Get(k.id); ok {
		return id
	}
	id := len(r.kinds)
	r.ids.Put(k.id, id)
	r.kinds = append(r.kinds, k)
	return id
}

// Lookup returns the id of k without assigning one
func (r *Registry) Lookup(k *Kind) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ids.Get(k.id)
}

// Kind returns the kind holding id, nil when unassigned
func (r *Registry) Kind(id int) *Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id < 0 || id >= len(r.kinds) {
		return nil
	}
	return r.kinds[id]
}

// Len returns the number of ids assigned so far
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.kinds)
}

// TypeIDOf is TypeID for a statically known kind
func TypeIDOf[T any, PT Instance[T]](r *Registry) int {
	return r.TypeID(KindOf[T, PT]())
}
