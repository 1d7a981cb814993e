// Package group implements a grouped contiguous array: one linear buffer of
// elements partitioned into a fixed number of variable-length groups, where every
// group's elements stay contiguous in the buffer at all times.
//
// # Layout
//
// An Array with G groups keeps G-1 split boundaries. Group 0 occupies
// [0, splits[0]), group i occupies [splits[i-1], splits[i]) and the last group
// occupies [splits[G-2], Len()):
//
//	arr, _ := group.New[byte](4)
//	arr.AppendRegion(0, []byte("data_array_one"))
//	arr.AppendRegion(1, []byte("data_array_two"))
//	arr.AppendRegion(2, []byte("data_array_three"))
//	arr.AppendRegion(3, []byte("data_array_four"))
//
//	0          split 0       split 1         split 2      Len()
//	|             |             |               |              |
//	data_array_onedata_array_twodata_array_threedata_array_four
//
// Splits never decrease from left to right and never leave [0, Len()], so the
// groups always partition the buffer exactly. Groups are views, not objects: a
// group exists as soon as the Array does, and emptying it (RemoveRegion) leaves an
// addressable zero-length region.
//
// # Mutation cost
//
// Every region mutation shifts only the tail of the buffer that follows the
// modified group, then slides the later boundaries by the size delta. Moving one
// item between groups shifts only the items that lie between its old and new
// position.
//
// # Errors and validity
//
// Bad group or item indices return errs.ErrOutOfRange; lookups past the end
// return errs.ErrNotFound. A failed call leaves the Array unchanged.
//
// Slices and indices obtained from an Array are invalidated by the next mutating
// call. The Array is not safe for concurrent use; guard it with a sync.RWMutex
// (one writer, no readers during a write) if it is shared.
package group
