package group

import (
	"testing"

	"github.com/arloliu/gca/errs"
	"github.com/stretchr/testify/require"
)

func TestValidateSplits(t *testing.T) {
	tests := []struct {
		name   string
		groups int
		n      int
		splits []int
		err    error
	}{
		{"single group", 1, 5, nil, nil},
		{"all empty", 3, 0, []int{0, 0}, nil},
		{"partition", 3, 8, []int{4, 8}, nil},
		{"equal neighbours", 4, 6, []int{2, 2, 6}, nil},
		{"too few splits", 3, 8, []int{4}, errs.ErrInvariantViolation},
		{"too many splits", 2, 8, []int{4, 6}, errs.ErrInvariantViolation},
		{"decreasing", 3, 8, []int{5, 4}, errs.ErrInvariantViolation},
		{"negative", 2, 8, []int{-1}, errs.ErrInvariantViolation},
		{"past the end", 2, 8, []int{9}, errs.ErrInvariantViolation},
		{"no groups", 0, 0, nil, errs.ErrInvalidGroupCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSplits(tt.groups, tt.n, tt.splits)
			if tt.err == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.err)
			}
		})
	}
}

func TestFromParts(t *testing.T) {
	t.Run("valid parts", func(t *testing.T) {
		a, err := FromParts(3, []byte("ABCDEFGHIJKL"), []int{4, 8})
		require.NoError(t, err)
		require.Equal(t, []string{"ABCD", "EFGH", "IJKL"}, textGroups(t, a))
		requireInvariants(t, a)
	})

	t.Run("nil items", func(t *testing.T) {
		a, err := FromParts[int](2, nil, []int{0})
		require.NoError(t, err)
		require.Equal(t, 0, a.Len())
		require.NoError(t, a.AppendItem(1, 7))
		require.Equal(t, [][]int{{}, {7}}, contents(t, a))
	})

	t.Run("splits are copied", func(t *testing.T) {
		splits := []int{1, 2}
		a, err := FromParts(3, []int{1, 2, 3}, splits)
		require.NoError(t, err)

		splits[0] = 3
		require.Equal(t, []int{1, 2}, a.Splits())
	})

	t.Run("rejects broken splits", func(t *testing.T) {
		a, err := FromParts(3, []byte("ABCD"), []int{3, 2})
		require.ErrorIs(t, err, errs.ErrInvariantViolation)
		require.Nil(t, a)
	})

	t.Run("rejects bad group count", func(t *testing.T) {
		_, err := FromParts(0, []byte("AB"), nil)
		require.ErrorIs(t, err, errs.ErrInvalidGroupCount)
	})
}

func TestArray_Reset(t *testing.T) {
	a := newBytes(t, nil, "AB", "CD")

	require.NoError(t, a.Reset([]byte("WXYZ"), []int{1}))
	require.Equal(t, []string{"W", "XYZ"}, textGroups(t, a))

	err := a.Reset([]byte("12"), []int{5})
	require.ErrorIs(t, err, errs.ErrInvariantViolation)
	require.Equal(t, []string{"W", "XYZ"}, textGroups(t, a), "failed reset keeps old content")
}
