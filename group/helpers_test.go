package group

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// requireInvariants fails the test if the splits stop partitioning the buffer.
func requireInvariants[T any](t *testing.T, a *Array[T]) {
	t.Helper()

	require.Len(t, a.splits, a.groups-1)
	require.NoError(t, ValidateSplits(a.groups, len(a.items), a.splits))

	total := 0
	for g := range a.groups {
		r, err := a.Region(g)
		require.NoError(t, err)
		require.Equal(t, total, r.Start, "group %d must start where group %d ended", g, g-1)
		require.GreaterOrEqual(t, r.Len(), 0)
		total = r.End
	}
	require.Equal(t, a.Len(), total)
}

// contents returns a copy of every group's items.
func contents[T any](t *testing.T, a *Array[T]) [][]T {
	t.Helper()

	out := make([][]T, a.Groups())
	for g := range a.Groups() {
		items, err := a.Items(g)
		require.NoError(t, err)
		out[g] = append([]T{}, items...)
	}

	return out
}

// textGroups renders byte groups as strings for readable assertions.
func textGroups(t *testing.T, a *Array[byte]) []string {
	t.Helper()

	out := make([]string, 0, a.Groups())
	for _, items := range contents(t, a) {
		out = append(out, string(items))
	}

	return out
}

func newBytes(t *testing.T, opts []Option, groups ...string) *Array[byte] {
	t.Helper()

	a, err := New[byte](len(groups), opts...)
	require.NoError(t, err)
	for g, s := range groups {
		require.NoError(t, a.AppendRegion(g, []byte(s)))
	}
	requireInvariants(t, a)

	return a
}
