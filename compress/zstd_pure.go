//go:build !gozstd

package compress

import (
	"fmt"
	"sync"

	"github.com/arloliu/gca/format"
	"github.com/klauspost/compress/zstd"
)

// Encoders and decoders run allocation-free after warm-up, so they are pooled.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
			zstd.WithDecoderMaxMemory(maxDecodedSize),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder: %v", err))
		}

		return encoder
	},
}

func (ZstdCodec) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(src, nil), nil
}

func (c ZstdCodec) Decompress(src []byte, rawSize int) ([]byte, error) {
	if len(src) == 0 {
		return nil, checkSize(format.CompressionZstd, 0, rawSize)
	}
	if err := c.checkFrame(src, rawSize); err != nil {
		return nil, err
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(src, make([]byte, 0, rawSize))
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if err := checkSize(format.CompressionZstd, len(out), rawSize); err != nil {
		return nil, err
	}

	return out, nil
}
