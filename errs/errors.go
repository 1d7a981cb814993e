// Package errs defines the sentinel errors returned by gca packages.
//
// Errors are returned wrapped with call-site context, so callers should match
// them with errors.Is rather than by equality:
//
//	if _, err := arr.At(99); errors.Is(err, errs.ErrOutOfRange) {
//	    // handle a bad index
//	}
package errs

import "errors"

// Container errors.
var (
	// ErrInvalidGroupCount is returned when a container is constructed with fewer than one group.
	ErrInvalidGroupCount = errors.New("invalid group count")
	// ErrInvalidCapacity is returned when a negative initial capacity is requested.
	ErrInvalidCapacity = errors.New("invalid capacity")
	// ErrOutOfRange is returned when an item index or group index falls outside its valid domain.
	ErrOutOfRange = errors.New("index out of range")
	// ErrNotFound is returned when a lookup is well-formed but matches nothing,
	// e.g. resolving the group of an index at or beyond the current length.
	ErrNotFound = errors.New("not found")
	// ErrInvariantViolation is returned when split boundaries would stop partitioning the
	// buffer. A correct caller never observes it from mutation primitives; it is also
	// returned when externally supplied splits are rejected.
	ErrInvariantViolation = errors.New("split invariant violation")
	// ErrInvalidMode is returned when a text operation gets an unknown terminator mode.
	ErrInvalidMode = errors.New("invalid text mode")
	// ErrInvalidOption is returned when a constructor option gets an unusable value.
	ErrInvalidOption = errors.New("invalid option")
)

// Checkpoint errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid checkpoint header size")
	ErrInvalidMagic        = errors.New("invalid checkpoint magic number")
	ErrUnsupportedVersion  = errors.New("unsupported checkpoint version")
	ErrElementSizeMismatch = errors.New("checkpoint element size mismatch")
	ErrGroupCountMismatch  = errors.New("checkpoint group count mismatch")
	ErrChecksumMismatch    = errors.New("checkpoint checksum mismatch")
	ErrInvalidPayload      = errors.New("invalid checkpoint payload")
	ErrInvalidCompression  = errors.New("invalid compression type")
	ErrDecompressedSize    = errors.New("unexpected decompressed size")
)
