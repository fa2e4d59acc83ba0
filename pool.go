package shelf

import "github.com/kamstrup/intmap"

var _ Pools = &Pool{}

// Pool is the default free-list implementation of Pools
//
// Arrays are kept per exact length, instances per kind. A Pool is not safe
// for concurrent use; give each worker its own.
type Pool struct {
	buckets   *intmap.Map[int, [][]Bucket]
	slots     *intmap.Map[int, [][]*Sequence]
	sequences []*Sequence
	instances *intmap.Map[KindID, []Component]
}

func newPool() *Pool {
	return &Pool{
		buckets:   intmap.New[int, [][]Bucket](16),
		slots:     intmap.New[int, [][]*Sequence](16),
		instances: intmap.New[KindID, []Component](16),
	}
}

func (p *Pool) SpawnBuckets(n int) []Bucket {
	if free, ok := p.buckets.Get(n); ok && len(free) > 0 {
		arr := free[len(free)-1]
		p.buckets.Put(n, free[:len(free)-1])
		return arr
	}
	return make([]Bucket, n)
}

func (p *Pool) RecycleBuckets(arr []Bucket) {
	if arr == nil {
		return
	}
	clear(arr)
	free, _ := p.buckets.Get(len(arr))
	p.buckets.Put(len(arr), append(free, arr))
}

func (p *Pool) SpawnSlots(n int) []*Sequence {
	if free, ok := p.slots.Get(n); ok && len(free) > 0 {
		arr := free[len(free)-1]
		p.slots.Put(n, free[:len(free)-1])
		return arr
	}
	return make([]*Sequence, n)
}

func (p *Pool) RecycleSlots(arr []*Sequence) {
	if arr == nil {
		return
	}
	clear(arr)
	free, _ := p.slots.Get(len(arr))
	p.slots.Put(len(arr), append(free, arr))
}

func (p *Pool) SpawnSequence(capacity int) *Sequence {
	if n := len(p.sequences); n > 0 {
		seq := p.sequences[n-1]
		p.sequences[n-1] = nil
		p.sequences = p.sequences[:n-1]
		return seq
	}
	return &Sequence{items: make([]Component, 0, max(capacity, 1))}
}

func (p *Pool) RecycleSequence(seq *Sequence) {
	if seq == nil {
		return
	}
	seq.clear()
	p.sequences = append(p.sequences, seq)
}

func (p *Pool) SpawnInstance(k *Kind) (Component, bool) {
	free, ok := p.instances.Get(k.id)
	if !ok || len(free) == 0 {
		return nil, false
	}
	c := free[len(free)-1]
	free[len(free)-1] = nil
	p.instances.Put(k.id, free[:len(free)-1])
	return c, true
}

func (p *Pool) RecycleInstance(k *Kind, c Component) {
	if c == nil {
		return
	}
	c.Reset()
	free, _ := p.instances.Get(k.id)
	p.instances.Put(k.id, append(free, c))
}

// FreeInstances returns how many instances of k are waiting for reuse
func (p *Pool) FreeInstances(k *Kind) int {
	free, _ := p.instances.Get(k.id)
	return len(free)
}

// FreeSequences returns how many sequences are waiting for reuse
func (p *Pool) FreeSequences() int {
	return len(p.sequences)
}

// FreeSlots returns how many slot arrays of length n are waiting for reuse
func (p *Pool) FreeSlots(n int) int {
	free, _ := p.slots.Get(n)
	return len(free)
}

// Clear drops every pooled object
func (p *Pool) Clear() {
	p.buckets.Clear()
	p.slots.Clear()
	p.instances.Clear()
	clear(p.sequences)
	p.sequences = p.sequences[:0]
}
