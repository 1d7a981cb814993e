package group

import (
	"fmt"
	"slices"

	"github.com/arloliu/gca/errs"
	"github.com/arloliu/gca/internal/options"
)

// NotFound is returned by IndexFunc when no item matches.
const NotFound = -1

// Array is a grouped contiguous array of T with a group count fixed at construction.
//
// The zero value is not usable; create Arrays with New or FromParts.
type Array[T any] struct {
	items  []T
	splits []int // len(splits) == groups-1, non-decreasing, each in [0, len(items)]
	groups int
}

type config struct {
	capacity int
}

// Option configures an Array created by New.
type Option = options.Option[*config]

// WithCapacity pre-allocates room for n items.
func WithCapacity(n int) Option {
	return options.New(func(c *config) error {
		if n < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCapacity, n)
		}
		c.capacity = n

		return nil
	})
}

// New creates an empty Array with the given number of groups.
//
// Parameters:
//   - groups: number of groups, at least 1
//   - opts: optional configuration (WithCapacity)
//
// Returns:
//   - *Array[T]: an empty array with every split at 0
//   - error: errs.ErrInvalidGroupCount or an option error
//
// Example:
//
//	arr, err := group.New[int](3, group.WithCapacity(64))
//	if err != nil {
//	    return err
//	}
//	_ = arr.AppendItem(1, 42)
func New[T any](groups int, opts ...Option) (*Array[T], error) {
	if groups < 1 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidGroupCount, groups)
	}

	cfg := &config{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Array[T]{
		items:  make([]T, 0, cfg.capacity),
		splits: make([]int, groups-1),
		groups: groups,
	}, nil
}

// Groups returns the fixed number of groups.
func (a *Array[T]) Groups() int {
	return a.groups
}

// Len returns the total number of items across all groups.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Cap returns the capacity of the underlying buffer.
func (a *Array[T]) Cap() int {
	return cap(a.items)
}

// Region returns the index range group g occupies.
func (a *Array[T]) Region(g int) (Region, error) {
	if err := a.checkGroup(g); err != nil {
		return Region{}, err
	}

	return Region{Start: a.left(g), End: a.right(g)}, nil
}

// GroupLen returns the number of items in group g.
func (a *Array[T]) GroupLen(g int) (int, error) {
	if err := a.checkGroup(g); err != nil {
		return 0, err
	}

	return a.right(g) - a.left(g), nil
}

// At returns the item at absolute index i.
func (a *Array[T]) At(i int) (T, error) {
	if err := a.checkItem(i); err != nil {
		var zero T
		return zero, err
	}

	return a.items[i], nil
}

// Set overwrites the item at absolute index i without moving anything.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.checkItem(i); err != nil {
		return err
	}
	a.items[i] = v

	return nil
}

// IndexFunc returns the index of the first item, scanning left to right, for
// which pred returns true, or NotFound.
func (a *Array[T]) IndexFunc(pred func(T) bool) int {
	return slices.IndexFunc(a.items, pred)
}

// Items returns the items of group g as a slice view into the buffer.
//
// The view is capacity-clipped so appending to it never overwrites the next
// group, but writes through it are visible in the Array. It is invalidated by
// the next mutating call.
func (a *Array[T]) Items(g int) ([]T, error) {
	if err := a.checkGroup(g); err != nil {
		return nil, err
	}
	l, r := a.left(g), a.right(g)

	return a.items[l:r:r], nil
}

// Values returns the whole buffer as a capacity-clipped view, valid until the
// next mutating call.
func (a *Array[T]) Values() []T {
	return a.items[:len(a.items):len(a.items)]
}

// Splits returns a copy of the G-1 split boundaries.
func (a *Array[T]) Splits() []int {
	return slices.Clone(a.splits)
}

// GroupOf returns the group that owns item i, scanning forward from group from.
//
// The from hint lets sequential scans resume where the previous lookup ended so
// a full traversal stays linear. It must not be past the owning group: the scan
// never looks backwards, so a hint beyond the owner returns the hint itself.
//
// Returns errs.ErrOutOfRange for a negative index or an invalid hint and
// errs.ErrNotFound when i is at or beyond Len().
func (a *Array[T]) GroupOf(i, from int) (int, error) {
	if err := a.checkGroup(from); err != nil {
		return NotFound, err
	}
	if i < 0 {
		return NotFound, fmt.Errorf("%w: item %d is negative", errs.ErrOutOfRange, i)
	}
	if i >= len(a.items) {
		return NotFound, fmt.Errorf("%w: item %d, length %d", errs.ErrNotFound, i, len(a.items))
	}

	return a.groupOf(i, from), nil
}

// Clear removes every item and resets all splits to 0. Capacity is kept.
func (a *Array[T]) Clear() {
	clear(a.items)
	a.items = a.items[:0]
	clear(a.splits)
}

// Clone returns an independent copy of the Array.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		items:  slices.Clone(a.items),
		splits: slices.Clone(a.splits),
		groups: a.groups,
	}
}

func (a *Array[T]) left(g int) int {
	if g == 0 {
		return 0
	}

	return a.splits[g-1]
}

func (a *Array[T]) right(g int) int {
	if g == a.groups-1 {
		return len(a.items)
	}

	return a.splits[g]
}

func (a *Array[T]) groupOf(i, from int) int {
	for g := from; g < a.groups; g++ {
		if i < a.right(g) {
			return g
		}
	}

	return NotFound
}

func (a *Array[T]) checkGroup(g int) error {
	if g < 0 || g >= a.groups {
		return fmt.Errorf("%w: group %d not in [0, %d)", errs.ErrOutOfRange, g, a.groups)
	}

	return nil
}

func (a *Array[T]) checkItem(i int) error {
	if i < 0 || i >= len(a.items) {
		return fmt.Errorf("%w: item %d not in [0, %d)", errs.ErrOutOfRange, i, len(a.items))
	}

	return nil
}
