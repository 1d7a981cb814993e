// Package text specializes group.Array for bytes and C-style strings.
//
// A text.Array is a group.Array[byte] with string helpers on top: every
// inherited operation (SetRegion, MoveItemToGroup, GroupOf, ...) still works on
// raw bytes, while SetText and AddText take strings whose stored length is
// decided by a terminator Mode.
//
//	arr, _ := text.New(3)
//	_ = arr.AddText(0, "ABCD", text.Bare)
//	_ = arr.AddText(1, "EFGH", text.Bare)
//	fmt.Println(arr.String()) // ABCDEFGH
//
// Strings are cut at their first NUL byte before they are stored, so a Go
// string carrying an embedded terminator behaves like its C counterpart.
package text
