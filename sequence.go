package shelf

import "iter"

// Sequence is the ordered list of instances one entity holds for one kind
type Sequence struct {
	items []Component
}

// Len returns the number of instances; a nil sequence has none
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Cap returns the capacity of the backing slice
func (s *Sequence) Cap() int {
	if s == nil {
		return 0
	}
	return cap(s.items)
}

// At returns the instance at index i
func (s *Sequence) At(i int) Component {
	return s.items[i]
}

// All yields every instance in order
func (s *Sequence) All() iter.Seq2[int, Component] {
	return func(yield func(int, Component) bool) {
		if s == nil {
			return
		}
		for i, c := range s.items {
			if !yield(i, c) {
				return
			}
		}
	}
}

func (s *Sequence) append(c Component) {
	s.items = append(s.items, c)
}

// removeAt drops index i keeping the order of the rest
func (s *Sequence) removeAt(i int) {
	last := len(s.items) - 1
	copy(s.items[i:], s.items[i+1:])
	s.items[last] = nil
	s.items = s.items[:last]
}

func (s *Sequence) clear() {
	clear(s.items)
	s.items = s.items[:0]
}
