package group

import (
	"fmt"

	"github.com/arloliu/gca/errs"
)

// FromParts builds an Array from an item buffer and its G-1 split boundaries,
// for example when restoring a checkpoint.
//
// The Array takes ownership of items; splits are copied. The splits must be
// non-decreasing and inside [0, len(items)], otherwise errs.ErrInvariantViolation
// is returned.
func FromParts[T any](groups int, items []T, splits []int) (*Array[T], error) {
	a, err := New[T](groups)
	if err != nil {
		return nil, err
	}
	if err := a.Reset(items, splits); err != nil {
		return nil, err
	}

	return a, nil
}

// Reset replaces the whole content of the Array with items partitioned by
// splits. The Array takes ownership of items. On error the Array is unchanged.
func (a *Array[T]) Reset(items []T, splits []int) error {
	if err := ValidateSplits(a.groups, len(items), splits); err != nil {
		return err
	}

	if items == nil {
		items = make([]T, 0)
	}
	a.items = items
	copy(a.splits, splits)

	return nil
}

// ValidateSplits checks that splits partitions a buffer of length n into groups
// groups: exactly groups-1 boundaries, non-decreasing, each inside [0, n].
func ValidateSplits(groups, n int, splits []int) error {
	if groups < 1 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidGroupCount, groups)
	}
	if len(splits) != groups-1 {
		return fmt.Errorf("%w: %d splits for %d groups", errs.ErrInvariantViolation, len(splits), groups)
	}

	prev := 0
	for i, s := range splits {
		if s < prev || s > n {
			return fmt.Errorf("%w: split %d = %d not in [%d, %d]", errs.ErrInvariantViolation, i, s, prev, n)
		}
		prev = s
	}

	return nil
}
