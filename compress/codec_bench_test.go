package compress

import (
	"bytes"
	"testing"
)

func BenchmarkCodecs(b *testing.B) {
	payload := bytes.Repeat([]byte("data_array_one\x00data_array_two\x00"), 256)

	for _, codec := range allCodecs() {
		compressed, err := codec.Compress(payload)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(codec.Type().String()+"/Compress", func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				_, _ = codec.Compress(payload)
			}
		})

		b.Run(codec.Type().String()+"/Decompress", func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for b.Loop() {
				_, _ = codec.Decompress(compressed, len(payload))
			}
		})
	}
}
