package compress

import (
	"fmt"

	"github.com/arloliu/gca/format"
	"github.com/klauspost/compress/s2"
)

// S2Codec compresses payloads as S2 blocks.
type S2Codec struct{}

var _ Codec = S2Codec{}

func (S2Codec) Type() format.CompressionType {
	return format.CompressionS2
}

func (S2Codec) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, src), nil
}

func (S2Codec) Decompress(src []byte, rawSize int) ([]byte, error) {
	if len(src) == 0 {
		return nil, checkSize(format.CompressionS2, 0, rawSize)
	}

	if err := checkExpansion(format.CompressionS2, len(src), rawSize, s2MaxRatio); err != nil {
		return nil, err
	}

	n, err := s2.DecodedLen(src)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if err := checkSize(format.CompressionS2, n, rawSize); err != nil {
		return nil, err
	}

	out, err := s2.Decode(make([]byte, rawSize), src)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
