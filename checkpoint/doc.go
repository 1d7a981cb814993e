// Package checkpoint snapshots a group.Array into a self-describing byte slice
// and restores it later, for in-memory rollback and for moving a container
// between goroutines or processes.
//
// A checkpoint is a 32-byte header followed by an optionally compressed payload:
//
//	+--------+---------+-------+-------------+----------+----------+
//	| magic  | version | flags | compression | elemSize | reserved |
//	| 2 B LE | 1 B     | 1 B   | 1 B         | 1 B      | 2 B      |
//	+--------+---------+-------+-------------+----------+----------+
//	| groups | items   | payloadSize | rawSize | xxHash64(raw)     |
//	| 4 B    | 4 B     | 4 B         | 4 B     | 8 B               |
//	+--------+---------+-------------+---------+-------------------+
//	| payload: G-1 uint32 splits, then items encoded by an ElementCodec |
//	+-------------------------------------------------------------------+
//
// Every field after the flags byte uses the byte order recorded in the flags.
// The checksum covers the uncompressed payload, so corruption is detected no
// matter which compression was used.
//
// Example:
//
//	snap, err := checkpoint.Take(arr, checkpoint.Int64, checkpoint.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	// ... mutate arr ...
//	if err := checkpoint.RestoreInto(arr, snap, checkpoint.Int64); err != nil {
//	    return err
//	}
package checkpoint
