package group

import (
	"fmt"
	"slices"
	"unsafe"

	"github.com/arloliu/gca/errs"
)

// SetRegion replaces the whole content of group g with data.
//
// The buffer tail after g shifts by len(data) minus the old group length and
// every later split slides by the same amount. data may be empty, which empties
// the group.
func (a *Array[T]) SetRegion(g int, data []T) error {
	return a.modify(g, data, true)
}

// AppendRegion appends data to the end of group g.
func (a *Array[T]) AppendRegion(g int, data []T) error {
	return a.modify(g, data, false)
}

// AppendItem appends a single item to the end of group g.
func (a *Array[T]) AppendItem(g int, v T) error {
	return a.modify(g, []T{v}, false)
}

// RemoveRegion empties group g. The group stays addressable with a zero-length
// region; removing an already empty group changes nothing.
func (a *Array[T]) RemoveRegion(g int) error {
	return a.modify(g, nil, true)
}

// RemoveItem deletes the item at absolute index i from its group and returns it.
func (a *Array[T]) RemoveItem(i int) (T, error) {
	var zero T
	if err := a.checkItem(i); err != nil {
		return zero, err
	}

	g := a.groupOf(i, 0)
	if err := a.checkOffset(-1, g, a.groups, len(a.items)-1); err != nil {
		return zero, err
	}

	v := a.items[i]
	a.offsetSplits(-1, g, a.groups)
	a.items = slices.Delete(a.items, i, i+1)

	return v, nil
}

// MoveItemToGroup moves the item at absolute index i into group target and
// returns its new index.
//
// The item lands on the edge of target nearest to its old position: the first
// slot when moving right, the last slot when moving left. Only the items lying
// between the old and the new position shift, each by one slot, and the relative
// order of all other items is preserved. Moving an item to its own group is a
// no-op that returns i.
func (a *Array[T]) MoveItemToGroup(i, target int) (int, error) {
	if err := a.checkGroup(target); err != nil {
		return NotFound, err
	}
	if err := a.checkItem(i); err != nil {
		return NotFound, err
	}

	src := a.groupOf(i, 0)
	switch {
	case target > src:
		if err := a.checkOffset(-1, src, target+1, len(a.items)); err != nil {
			return NotFound, err
		}
		a.offsetSplits(-1, src, target+1)

		dst := a.left(target)
		v := a.items[i]
		copy(a.items[i:dst], a.items[i+1:dst+1])
		a.items[dst] = v

		return dst, nil
	case target < src:
		if err := a.checkOffset(1, target, src+1, len(a.items)); err != nil {
			return NotFound, err
		}
		a.offsetSplits(1, target, src+1)

		dst := a.right(target) - 1
		v := a.items[i]
		copy(a.items[dst+1:i+1], a.items[dst:i])
		a.items[dst] = v

		return dst, nil
	default:
		return i, nil
	}
}

// modify is the single primitive behind every region mutation. With replace it
// overwrites group g from its left edge, otherwise it writes after its right
// edge. The tail after g is shifted once by the size delta before data is written.
func (a *Array[T]) modify(g int, data []T, replace bool) error {
	if err := a.checkGroup(g); err != nil {
		return err
	}

	l, r := a.left(g), a.right(g)
	delta := len(data)
	if replace {
		delta -= r - l
	}

	n := len(a.items)
	if err := a.checkOffset(delta, g, a.groups, n+delta); err != nil {
		return err
	}

	// data may be a view of this buffer; shifting would clobber it.
	if overlaps(a.items, data) {
		data = slices.Clone(data)
	}

	switch {
	case delta > 0:
		a.items = slices.Grow(a.items, delta)[:n+delta]
		copy(a.items[r+delta:], a.items[r:n])
	case delta < 0:
		copy(a.items[r+delta:], a.items[r:n])
		clear(a.items[n+delta : n])
		a.items = a.items[:n+delta]
	}

	if replace {
		copy(a.items[l:], data)
	} else {
		copy(a.items[r:], data)
	}

	a.offsetSplits(delta, g, a.groups)

	return nil
}

// offsetSplits adds offset to the splits that close groups [start, end-1),
// i.e. splits[start:end-1] clipped to the split array.
func (a *Array[T]) offsetSplits(offset, start, end int) {
	last := min(end-1, len(a.splits))
	for i := start; i < last; i++ {
		a.splits[i] += offset
	}
}

// checkOffset reports whether offsetSplits(offset, start, end) keeps the splits
// ordered and inside [0, newLen]. Shifted splits move together, so only the two
// outer ones need checking against their unshifted neighbours.
func (a *Array[T]) checkOffset(offset, start, end, newLen int) error {
	last := min(end-1, len(a.splits))
	if start >= last {
		return nil
	}

	lo := 0
	if start > 0 {
		lo = a.splits[start-1]
	}
	hi := newLen
	if last < len(a.splits) {
		hi = a.splits[last]
	}

	if a.splits[start]+offset < lo || a.splits[last-1]+offset > hi {
		return fmt.Errorf("%w: offset %d on splits [%d, %d) leaves [%d, %d]",
			errs.ErrInvariantViolation, offset, start, last, lo, hi)
	}

	return nil
}

// overlaps reports whether data shares memory with the backing array of buf.
func overlaps[T any](buf, data []T) bool {
	if cap(buf) == 0 || len(data) == 0 {
		return false
	}

	size := unsafe.Sizeof(*new(T))
	if size == 0 {
		return false
	}

	bufStart := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	bufEnd := bufStart + uintptr(cap(buf))*size
	dataStart := uintptr(unsafe.Pointer(unsafe.SliceData(data)))
	dataEnd := dataStart + uintptr(len(data))*size

	return dataStart < bufEnd && bufStart < dataEnd
}
