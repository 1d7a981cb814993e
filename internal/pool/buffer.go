// Package pool provides reusable byte buffers for checkpoint encoding.
package pool

import "sync"

// Checkpoint buffer sizing.
const (
	CheckpointBufferDefaultSize  = 1024 * 4        // 4KiB
	CheckpointBufferMaxThreshold = 1024 * 1024 * 4 // 4MiB
)

// ByteBuffer is an append-only byte slice with an amortized growth policy.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates an empty ByteBuffer with the given capacity.
func NewByteBuffer(size int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, size)}
}

// Bytes returns the written bytes. The slice is only valid until the next write.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer and keeps its capacity.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the number of written bytes.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Grow makes room for at least n more bytes without another reallocation.
//
// Small buffers grow by CheckpointBufferDefaultSize; once the capacity passes
// four times that, growth switches to 25% of the current capacity.
func (bb *ByteBuffer) Grow(n int) {
	if cap(bb.B)-len(bb.B) >= n {
		return
	}

	growBy := CheckpointBufferDefaultSize
	if cap(bb.B) > 4*CheckpointBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	buf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(buf, bb.B)
	bb.B = buf
}

// ByteBufferPool is a sync.Pool of ByteBuffers that refuses to retain
// buffers larger than maxThreshold.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose new buffers have defaultSize capacity.
// A maxThreshold of zero disables the retention limit.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty buffer.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put resets bb and returns it to the pool.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}

	bb.Reset()
	p.pool.Put(bb)
}

var checkpointPool = NewByteBufferPool(CheckpointBufferDefaultSize, CheckpointBufferMaxThreshold)

// GetCheckpointBuffer takes a buffer from the shared checkpoint pool.
func GetCheckpointBuffer() *ByteBuffer {
	return checkpointPool.Get()
}

// PutCheckpointBuffer returns a buffer to the shared checkpoint pool.
func PutCheckpointBuffer(bb *ByteBuffer) {
	checkpointPool.Put(bb)
}
