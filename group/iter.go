package group

import "iter"

// All returns an iterator over every item as (absolute index, item) in buffer order.
//
// The Array must not be mutated while the iterator is running.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Group returns an iterator over the items of group g as (absolute index, item).
//
// Example:
//
//	seq, err := arr.Group(1)
//	if err != nil {
//	    return err
//	}
//	for i, v := range seq {
//	    fmt.Printf("%d: %v\n", i, v)
//	}
func (a *Array[T]) Group(g int) (iter.Seq2[int, T], error) {
	if err := a.checkGroup(g); err != nil {
		return nil, err
	}

	return func(yield func(int, T) bool) {
		for i := a.left(g); i < a.right(g); i++ {
			if !yield(i, a.items[i]) {
				return
			}
		}
	}, nil
}

// Grouped returns an iterator over every item as (owning group, item) in buffer
// order. Group resolution resumes from the previous item's group, so a full
// traversal is O(Len() + Groups()).
func (a *Array[T]) Grouped() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		g := 0
		for i, v := range a.items {
			g = a.groupOf(i, g)
			if !yield(g, v) {
				return
			}
		}
	}
}
