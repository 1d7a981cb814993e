package group

import "testing"

func benchArray(b *testing.B, groups, perGroup int) *Array[int] {
	b.Helper()

	a, err := New[int](groups, WithCapacity(groups*perGroup+1))
	if err != nil {
		b.Fatal(err)
	}
	data := make([]int, perGroup)
	for g := range groups {
		if err := a.AppendRegion(g, data); err != nil {
			b.Fatal(err)
		}
	}

	return a
}

func BenchmarkArray_AppendItemFirstGroup(b *testing.B) {
	a := benchArray(b, 8, 1024)

	for b.Loop() {
		_ = a.AppendItem(0, 1)
		_, _ = a.RemoveItem(0)
	}
}

func BenchmarkArray_AppendItemLastGroup(b *testing.B) {
	a := benchArray(b, 8, 1024)

	for b.Loop() {
		_ = a.AppendItem(7, 1)
		_, _ = a.RemoveItem(a.Len() - 1)
	}
}

func BenchmarkArray_MoveItemAdjacent(b *testing.B) {
	a := benchArray(b, 8, 1024)

	for b.Loop() {
		pos, _ := a.MoveItemToGroup(1023, 1)
		_, _ = a.MoveItemToGroup(pos, 0)
	}
}

func BenchmarkArray_SetRegion(b *testing.B) {
	a := benchArray(b, 8, 1024)
	small := make([]int, 512)
	large := make([]int, 2048)

	for b.Loop() {
		_ = a.SetRegion(3, small)
		_ = a.SetRegion(3, large)
	}
}

func BenchmarkArray_Grouped(b *testing.B) {
	a := benchArray(b, 64, 128)

	for b.Loop() {
		sum := 0
		for g := range a.Grouped() {
			sum += g
		}
		_ = sum
	}
}
