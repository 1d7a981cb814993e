package checkpoint

import (
	"fmt"

	"github.com/arloliu/gca/errs"
	"github.com/arloliu/gca/format"
	"github.com/arloliu/gca/internal/options"
)

type config struct {
	compression format.CompressionType
	order       format.ByteOrder
}

// Option configures Take.
type Option = options.Option[*config]

// WithCompression compresses the payload with the given algorithm.
// The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(c *config) error {
		if !compression.Valid() {
			return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(compression))
		}
		c.compression = compression

		return nil
	})
}

// WithLittleEndian encodes the checkpoint little-endian. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *config) {
		c.order = format.LittleEndian
	})
}

// WithBigEndian encodes the checkpoint big-endian.
func WithBigEndian() Option {
	return options.NoError(func(c *config) {
		c.order = format.BigEndian
	})
}
