package checkpoint

import (
	"fmt"
	"math"

	"github.com/arloliu/gca/compress"
	"github.com/arloliu/gca/endian"
	"github.com/arloliu/gca/errs"
	"github.com/arloliu/gca/format"
	"github.com/arloliu/gca/group"
	"github.com/arloliu/gca/internal/hash"
	"github.com/arloliu/gca/internal/options"
	"github.com/arloliu/gca/internal/pool"
)

const splitSize = 4

// Take snapshots a into a new checkpoint. a is not modified.
//
// Parameters:
//   - a: the array to snapshot
//   - codec: encodes one item
//   - opts: WithCompression, WithBigEndian, WithLittleEndian
//
// Returns:
//   - []byte: the checkpoint, owned by the caller
//   - error: an option error, errs.ErrElementSizeMismatch for a bad codec, or a compression error
func Take[T any](a *group.Array[T], codec ElementCodec[T], opts ...Option) ([]byte, error) {
	cfg := &config{compression: format.CompressionNone, order: format.LittleEndian}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	size := codec.Size()
	if size < 1 || size > math.MaxUint8 {
		return nil, fmt.Errorf("%w: codec size %d", errs.ErrElementSizeMismatch, size)
	}

	c, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	splits := a.Splits()
	values := a.Values()
	rawSize := uint64(len(splits))*splitSize + uint64(len(values))*uint64(size) //nolint:gosec
	if rawSize > math.MaxUint32 || uint64(a.Groups()) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes exceeds the checkpoint limit", errs.ErrInvalidPayload, rawSize)
	}

	engine := endian.For(cfg.order)

	buf := pool.GetCheckpointBuffer()
	defer pool.PutCheckpointBuffer(buf)

	buf.Grow(int(rawSize))
	for _, s := range splits {
		buf.B = engine.AppendUint32(buf.B, uint32(s)) //nolint:gosec
	}
	for _, v := range values {
		buf.B = codec.Append(buf.B, engine, v)
	}

	if uint64(buf.Len()) != rawSize {
		return nil, fmt.Errorf("%w: codec wrote %d bytes, expected %d", errs.ErrElementSizeMismatch, buf.Len(), rawSize)
	}

	raw := buf.Bytes()
	payload, err := c.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("checkpoint: compress payload: %w", err)
	}

	h := Header{
		Magic:       Magic,
		Version:     Version,
		Compression: cfg.compression,
		ElementSize: uint8(size),
		Groups:      uint32(a.Groups()),   //nolint:gosec
		Items:       uint32(len(values)),  //nolint:gosec
		PayloadSize: uint32(len(payload)), //nolint:gosec
		RawSize:     uint32(rawSize),
		Checksum:    hash.Sum(raw),
	}
	h.SetByteOrder(cfg.order)

	out := make([]byte, 0, HeaderSize+len(payload))
	out = h.AppendTo(out)
	out = append(out, payload...)

	return out, nil
}

// Restore decodes a checkpoint into a new Array.
func Restore[T any](data []byte, codec ElementCodec[T]) (*group.Array[T], error) {
	h, items, splits, err := decode(data, codec)
	if err != nil {
		return nil, err
	}

	return group.FromParts(int(h.Groups), items, splits)
}

// RestoreInto replaces the contents of dst with a checkpoint.
//
// dst must have the group count recorded in the checkpoint, otherwise
// errs.ErrGroupCountMismatch is returned. On any error dst is unchanged.
func RestoreInto[T any](dst *group.Array[T], data []byte, codec ElementCodec[T]) error {
	h, items, splits, err := decode(data, codec)
	if err != nil {
		return err
	}

	if int(h.Groups) != dst.Groups() {
		return fmt.Errorf("%w: checkpoint has %d groups, array has %d", errs.ErrGroupCountMismatch, h.Groups, dst.Groups())
	}

	return dst.Reset(items, splits)
}

// ReadHeader parses and validates the header of a checkpoint without decoding
// its payload.
func ReadHeader(data []byte) (Header, error) {
	var h Header
	if len(data) < HeaderSize {
		return h, fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return h, err
	}

	return h, nil
}

func decode[T any](data []byte, codec ElementCodec[T]) (Header, []T, []int, error) {
	h, err := ReadHeader(data)
	if err != nil {
		return h, nil, nil, err
	}

	size := codec.Size()
	if int(h.ElementSize) != size {
		return h, nil, nil, fmt.Errorf("%w: checkpoint has %d, codec has %d", errs.ErrElementSizeMismatch, h.ElementSize, size)
	}
	if h.Groups < 1 {
		return h, nil, nil, fmt.Errorf("%w: %d groups", errs.ErrInvalidPayload, h.Groups)
	}

	payload := data[HeaderSize:]
	if uint64(len(payload)) != uint64(h.PayloadSize) {
		return h, nil, nil, fmt.Errorf("%w: payload is %d bytes, header says %d", errs.ErrInvalidPayload, len(payload), h.PayloadSize)
	}

	nSplits := int(h.Groups) - 1
	nItems := int(h.Items)
	want := uint64(nSplits)*splitSize + uint64(nItems)*uint64(size) //nolint:gosec
	if want != uint64(h.RawSize) {
		return h, nil, nil, fmt.Errorf("%w: raw size %d, expected %d", errs.ErrInvalidPayload, h.RawSize, want)
	}
	if want > math.MaxInt {
		return h, nil, nil, fmt.Errorf("%w: raw size %d exceeds the platform limit", errs.ErrInvalidPayload, want)
	}

	c, err := compress.GetCodec(h.Compression)
	if err != nil {
		return h, nil, nil, err
	}

	raw, err := c.Decompress(payload, int(h.RawSize))
	if err != nil {
		return h, nil, nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}
	if sum := hash.Sum(raw); sum != h.Checksum {
		return h, nil, nil, fmt.Errorf("%w: got 0x%016x, header says 0x%016x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	engine := h.GetEndianEngine()

	splits := make([]int, nSplits)
	for i := range splits {
		splits[i] = int(engine.Uint32(raw[i*splitSize:]))
	}

	raw = raw[nSplits*splitSize:]
	items := make([]T, nItems)
	for i := range items {
		items[i] = codec.Decode(raw[i*size:], engine)
	}

	return h, items, splits, nil
}
