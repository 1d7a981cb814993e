package checkpoint

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/gca/endian"
	"github.com/arloliu/gca/errs"
	"github.com/arloliu/gca/format"
)

const (
	// HeaderSize is the fixed size of a checkpoint header in bytes.
	HeaderSize = 32
	// Magic identifies a checkpoint. It is always stored little-endian.
	Magic uint16 = 0xCA01
	// Version is the current layout version.
	Version uint8 = 1

	flagBigEndian uint8 = 1 << 0
	flagMask            = flagBigEndian
)

// Header is the fixed-size prefix of every checkpoint.
type Header struct {
	Magic       uint16                 // offset 0-1
	Version     uint8                  // offset 2
	Flags       uint8                  // offset 3, bit 0 is big-endian
	Compression format.CompressionType // offset 4
	ElementSize uint8                  // offset 5
	Reserved    [2]byte                // offset 6-7, must be zero
	Groups      uint32                 // offset 8-11
	Items       uint32                 // offset 12-15
	PayloadSize uint32                 // offset 16-19, bytes after the header
	RawSize     uint32                 // offset 20-23, payload size before compression
	Checksum    uint64                 // offset 24-31, xxHash64 of the raw payload
}

// ByteOrder returns the byte order recorded in the flags.
func (h *Header) ByteOrder() format.ByteOrder {
	if h.Flags&flagBigEndian != 0 {
		return format.BigEndian
	}

	return format.LittleEndian
}

// SetByteOrder records order in the flags.
func (h *Header) SetByteOrder(order format.ByteOrder) {
	if order == format.BigEndian {
		h.Flags |= flagBigEndian
	} else {
		h.Flags &^= flagBigEndian
	}
}

// GetEndianEngine returns the engine for the recorded byte order.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	return endian.For(h.ByteOrder())
}

// AppendTo appends the serialized header to dst.
func (h *Header) AppendTo(dst []byte) []byte {
	engine := h.GetEndianEngine()

	dst = binary.LittleEndian.AppendUint16(dst, h.Magic)
	dst = append(dst, h.Version, h.Flags, uint8(h.Compression), h.ElementSize)
	dst = append(dst, h.Reserved[:]...)
	dst = engine.AppendUint32(dst, h.Groups)
	dst = engine.AppendUint32(dst, h.Items)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint32(dst, h.RawSize)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// Bytes serializes the header.
func (h *Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// Parse parses a header from exactly HeaderSize bytes and validates the
// magic number, version, flags, compression type and reserved bytes.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	h.Magic = binary.LittleEndian.Uint16(data[0:2])
	if h.Magic != Magic {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagic, h.Magic)
	}

	h.Version = data[2]
	if h.Version != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}

	h.Flags = data[3]
	if h.Flags&^flagMask != 0 {
		return fmt.Errorf("%w: unknown flags 0x%02x", errs.ErrInvalidPayload, h.Flags)
	}

	h.Compression = format.CompressionType(data[4])
	if !h.Compression.Valid() {
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, data[4])
	}

	h.ElementSize = data[5]
	copy(h.Reserved[:], data[6:8])
	if h.Reserved != [2]byte{} {
		return fmt.Errorf("%w: reserved bytes 0x%02x%02x", errs.ErrInvalidPayload, h.Reserved[0], h.Reserved[1])
	}

	engine := h.GetEndianEngine()
	h.Groups = engine.Uint32(data[8:12])
	h.Items = engine.Uint32(data[12:16])
	h.PayloadSize = engine.Uint32(data[16:20])
	h.RawSize = engine.Uint32(data[20:24])
	h.Checksum = engine.Uint64(data[24:32])

	return nil
}
