package compress

import "github.com/arloliu/gca/format"

// NoOpCodec passes payloads through unchanged. The returned slices alias the input.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func (NoOpCodec) Type() format.CompressionType {
	return format.CompressionNone
}

func (NoOpCodec) Compress(src []byte) ([]byte, error) {
	return src, nil
}

func (NoOpCodec) Decompress(src []byte, rawSize int) ([]byte, error) {
	if err := checkSize(format.CompressionNone, len(src), rawSize); err != nil {
		return nil, err
	}

	return src, nil
}
