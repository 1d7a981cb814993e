package group

// Region is the half-open index range [Start, End) a group occupies in the buffer.
type Region struct {
	Start int
	End   int
}

// Len returns the number of items in the region.
func (r Region) Len() int {
	return r.End - r.Start
}

// Empty reports whether the region holds no items.
func (r Region) Empty() bool {
	return r.End == r.Start
}

// Contains reports whether index i lies inside the region.
func (r Region) Contains(i int) bool {
	return i >= r.Start && i < r.End
}
