// Package endian selects the byte order used to encode checkpoint headers and elements.
//
// The engine combines binary.ByteOrder and binary.AppendByteOrder so element codecs
// can append straight into a growing buffer:
//
//	engine := endian.For(format.LittleEndian)
//	buf = engine.AppendUint32(buf, split)
package endian

import (
	"encoding/binary"

	"github.com/arloliu/gca/format"
)

// EndianEngine is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// For maps a format.ByteOrder to its engine. Unknown values fall back to little-endian.
func For(order format.ByteOrder) EndianEngine {
	if order == format.BigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}
