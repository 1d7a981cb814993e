package compress

import (
	"fmt"
	"sync"

	"github.com/arloliu/gca/format"
	"github.com/pierrec/lz4/v4"
)

// lz4.Compressor keeps a hash table that is worth reusing.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec compresses payloads as raw LZ4 blocks.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

func (LZ4Codec) Type() format.CompressionType {
	return format.CompressionLZ4
}

func (LZ4Codec) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(src)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(src, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n], nil
}

func (LZ4Codec) Decompress(src []byte, rawSize int) ([]byte, error) {
	if len(src) == 0 {
		return nil, checkSize(format.CompressionLZ4, 0, rawSize)
	}

	if err := checkExpansion(format.CompressionLZ4, len(src), rawSize, lz4MaxRatio); err != nil {
		return nil, err
	}

	dst := make([]byte, rawSize)
	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if err := checkSize(format.CompressionLZ4, n, rawSize); err != nil {
		return nil, err
	}

	return dst[:n], nil
}
