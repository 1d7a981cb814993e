package group_test

import (
	"fmt"

	"github.com/arloliu/gca/group"
)

func Example() {
	arr, err := group.New[string](3)
	if err != nil {
		panic(err)
	}

	_ = arr.AppendRegion(0, []string{"a1", "a2"})
	_ = arr.AppendRegion(2, []string{"c1"})
	_ = arr.AppendItem(1, "b1")

	pos, _ := arr.MoveItemToGroup(0, 2)

	for g := range arr.Groups() {
		items, _ := arr.Items(g)
		fmt.Println(g, items)
	}
	fmt.Println("moved to", pos, "splits", arr.Splits())

	// Output:
	// 0 [a2]
	// 1 [b1]
	// 2 [a1 c1]
	// moved to 2 splits [1 2]
}
