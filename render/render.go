// Package render draws diagnostic dumps of grouped byte buffers.
//
// Renderers are presentation only: they receive the buffer already cut into
// per-group segments and never influence the container. Use ANSI for terminals
// and Plain for logs, tests and anything non-interactive.
package render

import (
	"fmt"
	"io"
	"strings"
)

// Segment is the contiguous run of bytes owned by one group.
type Segment struct {
	Group int
	Data  []byte
}

// Renderer writes a human-readable dump of a grouped buffer to w.
//
// segments are given in buffer order, one per group (empty groups included),
// and total is the buffer length.
type Renderer interface {
	Render(w io.Writer, segments []Segment, total int) error
}

// Plain renders every group as group:"quoted content" on a single line.
//
//	0:"ABCD" 1:"" 2:"IJKL"   arrayLen: 8
type Plain struct{}

var _ Renderer = Plain{}

func (Plain) Render(w io.Writer, segments []Segment, total int) error {
	var sb strings.Builder
	for i, seg := range segments {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d:%q", seg.Group, seg.Data)
	}
	fmt.Fprintf(&sb, "   arrayLen: %d\n", total)

	_, err := io.WriteString(w, sb.String())

	return err
}

// Splits writes the split boundaries as "Splits: 0: 4,  1: 8".
func Splits(w io.Writer, splits []int) error {
	var sb strings.Builder
	sb.WriteString("Splits: ")
	for i, s := range splits {
		if i > 0 {
			sb.WriteString(",  ")
		}
		fmt.Fprintf(&sb, "%d: %d", i, s)
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())

	return err
}
