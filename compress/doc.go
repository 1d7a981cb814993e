// Package compress provides the payload codecs used by checkpoints.
//
// A checkpoint stores the raw payload size in its header, so every codec
// decompresses into a buffer of known size and rejects payloads that expand
// to anything else.
//
// Supported algorithms:
//   - None: payload stored as is
//   - Zstd: best ratio (klauspost/compress by default, valyala/gozstd with the gozstd build tag)
//   - S2: fast, Snappy-compatible framing-free blocks
//   - LZ4: fastest decompression
//
// Codecs are stateless values and safe for concurrent use; heavy encoder and
// decoder state is pooled internally.
package compress
