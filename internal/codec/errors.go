package codec

import "errors"

// Common errors.
var (
	ErrInvalidMagic        = errors.New("invalid magic bytes")
	ErrUnsupportedVersion  = errors.New("unsupported format version")
	ErrHeaderTooLarge      = errors.New("header exceeds maximum size")
	ErrInvalidHeader       = errors.New("invalid header")
	ErrDTypeMismatch       = errors.New("stored dtype does not match requested element type")
	ErrUnsupportedEncoding = errors.New("unsupported payload encoding")
	ErrTruncated           = errors.New("payload truncated")
)
