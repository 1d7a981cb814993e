// Package format holds the enum types shared by the checkpoint and compress packages.
package format

type (
	CompressionType uint8
	ByteOrder       uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the payload as is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 block compression.

	LittleEndian ByteOrder = 0x0
	BigEndian    ByteOrder = 0x1
)

// Valid reports whether c is one of the defined compression types.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "BigEndian"
	}

	return "LittleEndian"
}
