package compress

import (
	"fmt"

	"github.com/arloliu/gca/errs"
	"github.com/arloliu/gca/format"
)

// Codec compresses and decompresses checkpoint payloads.
type Codec interface {
	// Type reports the algorithm stored in checkpoint headers.
	Type() format.CompressionType

	// Compress returns the compressed form of src. src is not modified.
	Compress(src []byte) ([]byte, error)

	// Decompress restores a payload that was rawSize bytes before compression.
	// It fails if the result has any other length.
	Decompress(src []byte, rawSize int) ([]byte, error)
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NoOpCodec{},
	format.CompressionZstd: ZstdCodec{},
	format.CompressionS2:   S2Codec{},
	format.CompressionLZ4:  LZ4Codec{},
}

// GetCodec returns the built-in codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s (0x%x)", errs.ErrInvalidCompression, compressionType, uint8(compressionType))
}

// Upper bounds on how many raw bytes one compressed byte can produce.
const (
	lz4MaxRatio  = 255
	zstdMaxRatio = 128 << 10 / 4 // a 4-byte RLE block yields a full 128KiB block
	s2MaxRatio   = 1 << 23       // long repeat codes
	ratioSlack   = 16
)

func checkSize(kind format.CompressionType, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s decompressed %d bytes, expected %d", errs.ErrDecompressedSize, kind, got, want)
	}

	return nil
}

// checkExpansion rejects a declared raw size that srcLen compressed bytes
// cannot decode to, before any output buffer is allocated.
func checkExpansion(kind format.CompressionType, srcLen, rawSize int, maxRatio uint64) error {
	limit := uint64(srcLen)*maxRatio + ratioSlack //nolint:gosec
	if rawSize < 0 || uint64(rawSize) > limit {
		return fmt.Errorf("%w: %s payload of %d bytes cannot hold %d raw bytes",
			errs.ErrDecompressedSize, kind, srcLen, rawSize)
	}

	return nil
}
