package uuid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates that a string matches none of the
	// recognized UUID dialects.
	ErrInvalidFormat = errors.New("uuid: invalid UUID format")

	// ErrInvalidLength indicates that the input has a length no UUID
	// dialect can have, or that a byte slice is not exactly 16 bytes.
	ErrInvalidLength = errors.New("uuid: invalid UUID length")

	// ErrInvalidCharacter indicates a non-hexadecimal digit where a hex
	// digit was required.
	ErrInvalidCharacter = errors.New("uuid: invalid character in UUID")

	// ErrInvalidSeparator indicates a hyphen, brace or URN prefix in the
	// wrong position.
	ErrInvalidSeparator = errors.New("uuid: separator in wrong position")

	// ErrShortBuffer indicates that a destination buffer passed to Encode
	// is smaller than the requested dialect needs.
	ErrShortBuffer = errors.New("uuid: destination buffer too small")
)

// A ParseError describes where and why a UUID string failed to parse.
// It wraps one of the sentinel errors above, so callers can use
// errors.Is to classify the failure and errors.As to recover the offset.
type ParseError struct {
	// Offset is the byte position in the original input at which the
	// failure was detected. For length failures it is the input length.
	Offset int

	// Cause classifies the failure.
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v (offset %d)", e.Cause, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

func parseError(offset int, cause error) error {
	return &ParseError{Offset: offset, Cause: cause}
}
