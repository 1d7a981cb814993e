package compress

import (
	"fmt"

	"github.com/arloliu/gca/errs"
	"github.com/arloliu/gca/format"
	"github.com/klauspost/compress/zstd"
)

// maxDecodedSize matches the largest raw payload a checkpoint header can declare.
const maxDecodedSize = 1<<32 - 1

// ZstdCodec compresses payloads with Zstandard.
//
// The default build uses the pure Go klauspost/compress implementation; building
// with -tags gozstd switches to the cgo bindings from valyala/gozstd.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

func (ZstdCodec) Type() format.CompressionType {
	return format.CompressionZstd
}

// checkFrame validates the declared raw size against the frame header before
// the output buffer is allocated.
func (ZstdCodec) checkFrame(src []byte, rawSize int) error {
	if err := checkExpansion(format.CompressionZstd, len(src), rawSize, zstdMaxRatio); err != nil {
		return err
	}

	var h zstd.Header
	if err := h.Decode(src); err != nil {
		return fmt.Errorf("zstd frame header: %w", err)
	}
	if h.HasFCS && h.FrameContentSize != uint64(rawSize) { //nolint:gosec
		return fmt.Errorf("%w: zstd frame declares %d bytes, expected %d",
			errs.ErrDecompressedSize, h.FrameContentSize, rawSize)
	}

	return nil
}
