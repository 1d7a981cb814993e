package checkpoint

import (
	"math"

	"github.com/arloliu/gca/endian"
)

// ElementCodec encodes items of type T as fixed-size records.
type ElementCodec[T any] interface {
	// Size is the encoded size of one item, between 1 and 255 bytes.
	Size() int
	// Append appends the encoding of v to dst.
	Append(dst []byte, e endian.EndianEngine, v T) []byte
	// Decode decodes one item from the first Size() bytes of src.
	Decode(src []byte, e endian.EndianEngine) T
}

// Built-in codecs.
var (
	Byte    ElementCodec[byte]    = ByteCodec{}
	Int32   ElementCodec[int32]   = Int32Codec{}
	Int64   ElementCodec[int64]   = Int64Codec{}
	Uint32  ElementCodec[uint32]  = Uint32Codec{}
	Uint64  ElementCodec[uint64]  = Uint64Codec{}
	Float32 ElementCodec[float32] = Float32Codec{}
	Float64 ElementCodec[float64] = Float64Codec{}
)

type ByteCodec struct{}

func (ByteCodec) Size() int { return 1 }

func (ByteCodec) Append(dst []byte, _ endian.EndianEngine, v byte) []byte {
	return append(dst, v)
}

func (ByteCodec) Decode(src []byte, _ endian.EndianEngine) byte {
	return src[0]
}

type Int32Codec struct{}

func (Int32Codec) Size() int { return 4 }

func (Int32Codec) Append(dst []byte, e endian.EndianEngine, v int32) []byte {
	return e.AppendUint32(dst, uint32(v)) //nolint:gosec
}

func (Int32Codec) Decode(src []byte, e endian.EndianEngine) int32 {
	return int32(e.Uint32(src)) //nolint:gosec
}

type Int64Codec struct{}

func (Int64Codec) Size() int { return 8 }

func (Int64Codec) Append(dst []byte, e endian.EndianEngine, v int64) []byte {
	return e.AppendUint64(dst, uint64(v)) //nolint:gosec
}

func (Int64Codec) Decode(src []byte, e endian.EndianEngine) int64 {
	return int64(e.Uint64(src)) //nolint:gosec
}

type Uint32Codec struct{}

func (Uint32Codec) Size() int { return 4 }

func (Uint32Codec) Append(dst []byte, e endian.EndianEngine, v uint32) []byte {
	return e.AppendUint32(dst, v)
}

func (Uint32Codec) Decode(src []byte, e endian.EndianEngine) uint32 {
	return e.Uint32(src)
}

type Uint64Codec struct{}

func (Uint64Codec) Size() int { return 8 }

func (Uint64Codec) Append(dst []byte, e endian.EndianEngine, v uint64) []byte {
	return e.AppendUint64(dst, v)
}

func (Uint64Codec) Decode(src []byte, e endian.EndianEngine) uint64 {
	return e.Uint64(src)
}

type Float32Codec struct{}

func (Float32Codec) Size() int { return 4 }

func (Float32Codec) Append(dst []byte, e endian.EndianEngine, v float32) []byte {
	return e.AppendUint32(dst, math.Float32bits(v))
}

func (Float32Codec) Decode(src []byte, e endian.EndianEngine) float32 {
	return math.Float32frombits(e.Uint32(src))
}

type Float64Codec struct{}

func (Float64Codec) Size() int { return 8 }

func (Float64Codec) Append(dst []byte, e endian.EndianEngine, v float64) []byte {
	return e.AppendUint64(dst, math.Float64bits(v))
}

func (Float64Codec) Decode(src []byte, e endian.EndianEngine) float64 {
	return math.Float64frombits(e.Uint64(src))
}
