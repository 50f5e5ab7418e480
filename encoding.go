package uuid

import (
	"encoding/base64"
	"encoding/hex"
)

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens.
func (u UUID) EncodeToHex() string {
	return hex.EncodeToString(u[:])
}

// EncodeToBase64 encodes the UUID to a base64 string (URL-safe, no padding).
func (u UUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(u[:])
}

// EncodeToBase64Std encodes the UUID to a standard base64 string.
func (u UUID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(u[:])
}

// DecodeFromHex decodes a 32-character hexadecimal string to a UUID.
// It is the hyphen-less dialect of Parse, with the same error reporting.
func DecodeFromHex(s string) (UUID, error) {
	if len(s) != EncodedLenSimple {
		return Nil, parseError(len(s), ErrInvalidLength)
	}
	return parseSimple(s, 0)
}

// DecodeFromBase64 decodes a base64 string to a UUID (URL-safe encoding).
func DecodeFromBase64(s string) (UUID, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return Nil, ErrInvalidFormat
	}
	return FromBytes(data)
}

// DecodeFromBase64Std decodes a standard base64 string to a UUID.
func DecodeFromBase64Std(s string) (UUID, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Nil, ErrInvalidFormat
	}
	return FromBytes(data)
}

// FromBytes creates a UUID from a byte slice, which must be exactly 16
// bytes. Any byte pattern is structurally valid; no further validation
// exists or is needed.
func FromBytes(b []byte) (UUID, error) {
	var uuid UUID
	if len(b) != 16 {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], b)
	return uuid, nil
}

// MustFromBytes is like FromBytes but panics on error.
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}
