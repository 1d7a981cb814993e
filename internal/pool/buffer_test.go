package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(128)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 128, cap(bb.B))
}

func TestByteBuffer_AppendAndReset(t *testing.T) {
	bb := NewByteBuffer(4)
	bb.B = append(bb.B, "ABCD"...)
	bb.B = append(bb.B, "EFGH"...)

	require.Equal(t, []byte("ABCDEFGH"), bb.Bytes())
	require.Equal(t, 8, bb.Len())

	capBefore := cap(bb.B)
	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.Equal(t, capBefore, cap(bb.B))
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("no-op with enough room", func(t *testing.T) {
		bb := NewByteBuffer(64)
		bb.B = append(bb.B, "xy"...)
		before := &bb.B[0]

		bb.Grow(10)

		require.Equal(t, 64, cap(bb.B))
		require.Same(t, before, &bb.B[0])
	})

	t.Run("small buffer grows by default step", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.B = append(bb.B, "12345678"...)

		bb.Grow(1)

		require.Equal(t, 8+CheckpointBufferDefaultSize, cap(bb.B))
		require.Equal(t, []byte("12345678"), bb.Bytes())
	})

	t.Run("large request wins", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(CheckpointBufferDefaultSize * 3)

		require.GreaterOrEqual(t, cap(bb.B), CheckpointBufferDefaultSize*3)
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		size := CheckpointBufferDefaultSize * 8
		bb := NewByteBuffer(size)
		bb.B = bb.B[:size]

		bb.Grow(1)

		require.Equal(t, size+size/4, cap(bb.B))
	})
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.B = append(bb.B, "checkpoint"...)
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len(), "pooled buffers come back empty")

	require.NotPanics(t, func() { p.Put(nil) })

	big := NewByteBuffer(1024)
	require.NotPanics(t, func() { p.Put(big) })
}

func TestCheckpointPool(t *testing.T) {
	bb := GetCheckpointBuffer()
	require.NotNil(t, bb)
	bb.B = append(bb.B, []byte{1, 2, 3}...)
	PutCheckpointBuffer(bb)
}
