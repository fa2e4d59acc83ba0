package shelf

import "iter"

// View is a typed, read-only window onto the live sequence of one
// (kind, entity) slot
//
// A View is not a snapshot: adding or removing instances of the same kind on
// the same entity while ranging over it is undefined. Copy what you need
// first when the loop body mutates storage.
type View[T any, PT Instance[T]] struct {
	seq *Sequence
}

// Len returns the number of instances currently in the slot
func (v View[T, PT]) Len() int {
	return v.seq.Len()
}

// At returns the instance at index i
func (v View[T, PT]) At(i int) PT {
	return v.seq.At(i).(PT)
}

// First returns the first instance, if any
func (v View[T, PT]) First() (PT, bool) {
	if v.seq.Len() == 0 {
		return nil, false
	}
	return v.At(0), true
}

// All yields every instance in slot order
func (v View[T, PT]) All() iter.Seq2[int, PT] {
	return func(yield func(int, PT) bool) {
		for i, c := range v.seq.All() {
			if !yield(i, c.(PT)) {
				return
			}
		}
	}
}
