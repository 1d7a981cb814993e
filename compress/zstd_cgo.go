//go:build gozstd

package compress

import (
	"fmt"

	"github.com/arloliu/gca/format"
	"github.com/valyala/gozstd"
)

func (ZstdCodec) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, src, 3), nil
}

func (c ZstdCodec) Decompress(src []byte, rawSize int) ([]byte, error) {
	if len(src) == 0 {
		return nil, checkSize(format.CompressionZstd, 0, rawSize)
	}
	if err := c.checkFrame(src, rawSize); err != nil {
		return nil, err
	}

	out, err := gozstd.Decompress(make([]byte, 0, rawSize), src)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if err := checkSize(format.CompressionZstd, len(out), rawSize); err != nil {
		return nil, err
	}

	return out, nil
}
