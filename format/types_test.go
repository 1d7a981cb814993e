package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType(t *testing.T) {
	tests := []struct {
		c     CompressionType
		name  string
		valid bool
	}{
		{CompressionNone, "None", true},
		{CompressionZstd, "Zstd", true},
		{CompressionS2, "S2", true},
		{CompressionLZ4, "LZ4", true},
		{0, "Unknown", false},
		{0x9, "Unknown", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.name, tt.c.String())
			require.Equal(t, tt.valid, tt.c.Valid())
		})
	}
}

func TestByteOrder_String(t *testing.T) {
	require.Equal(t, "LittleEndian", LittleEndian.String())
	require.Equal(t, "BigEndian", BigEndian.String())
}
