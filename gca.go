// Package gca provides a grouped contiguous array: one flat buffer partitioned
// into a fixed number of ordered groups by split boundaries.
//
// Every group is a view over the shared buffer, so growing or shrinking one
// group shifts the ones after it in place and only rewrites the split
// boundaries in between. Moving an item between groups slides it across the
// intervening boundaries instead of shuffling whole groups, which keeps
// frequent group reassignment cheap.
//
// # Core Features
//
//   - Generic container (group.Array[T]) with checked, error-returning operations
//   - Byte and C-string specialization (text.Array) with terminator modes
//   - Pluggable diagnostic rendering (plain or ANSI colored)
//   - Checkpoints with optional compression (None, Zstd, S2, LZ4) and xxHash64 checksums
//
// # Basic Usage
//
//	arr, _ := gca.NewText(3)
//	_ = arr.AddText(0, "ABCD", text.Bare)
//	_ = arr.AddText(1, "EFGH", text.Bare)
//	_ = arr.SetText(0, "1", text.Bare)
//	fmt.Println(arr.String(), arr.Splits()) // 1EFGH [1 5]
//
// Rolling back a batch of edits:
//
//	snap, _ := gca.Snapshot(arr.Array, checkpoint.Byte)
//	// ... edits ...
//	_ = gca.Rollback(arr.Array, snap, checkpoint.Byte)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the group, text
// and checkpoint packages. For fine-grained control use those packages directly.
package gca

import (
	"github.com/arloliu/gca/checkpoint"
	"github.com/arloliu/gca/format"
	"github.com/arloliu/gca/group"
	"github.com/arloliu/gca/internal/hash"
	"github.com/arloliu/gca/render"
	"github.com/arloliu/gca/text"
)

var defaultCheckpointOptions = []checkpoint.Option{
	checkpoint.WithLittleEndian(),
	checkpoint.WithCompression(format.CompressionZstd),
}

// New creates an empty grouped array of T.
//
// Parameters:
//   - groups: number of groups, at least 1
//   - opts: group options such as group.WithCapacity
//
// Returns:
//   - *group.Array[T]: the array
//   - error: errs.ErrInvalidGroupCount or an option error
func New[T any](groups int, opts ...group.Option) (*group.Array[T], error) {
	return group.New[T](groups, opts...)
}

// NewText creates an empty text array rendered with render.Plain.
func NewText(groups int, opts ...text.Option) (*text.Array, error) {
	return text.New(groups, opts...)
}

// NewColorText creates an empty text array whose Render output is colored
// per group. Colors follow the terminal unless forced by opts.
//
// Example:
//
//	arr, _ := gca.NewColorText(4, render.WithColor(true))
//	_ = arr.SetText(1, "hello", text.NullTerminated)
//	_ = arr.Render(os.Stdout)
func NewColorText(groups int, opts ...render.ANSIOption) (*text.Array, error) {
	r, err := render.NewANSI(opts...)
	if err != nil {
		return nil, err
	}

	return text.New(groups, text.WithRenderer(r))
}

// Snapshot takes a little-endian, zstd compressed checkpoint of a.
// Options passed in opts are applied after the defaults.
func Snapshot[T any](a *group.Array[T], codec checkpoint.ElementCodec[T], opts ...checkpoint.Option) ([]byte, error) {
	all := make([]checkpoint.Option, 0, len(defaultCheckpointOptions)+len(opts))
	all = append(all, defaultCheckpointOptions...)
	all = append(all, opts...)

	return checkpoint.Take(a, codec, all...)
}

// Rollback restores a to the state captured by Snapshot. On error a is unchanged.
func Rollback[T any](a *group.Array[T], snapshot []byte, codec checkpoint.ElementCodec[T]) error {
	return checkpoint.RestoreInto(a, snapshot, codec)
}

// Fingerprint returns the xxHash64 of s, matching text.Array.Fingerprint for a
// group holding the same bytes.
func Fingerprint(s string) uint64 {
	return hash.String(s)
}
