package uuid

import "encoding/hex"

// Encoded lengths of the textual dialects, in bytes.
const (
	EncodedLenSimple    = 32
	EncodedLenCanonical = 36
	EncodedLenBraced    = 38
	EncodedLenURN       = 45

	// MaxEncodedLen is large enough for any dialect.
	MaxEncodedLen = EncodedLenURN
)

const urnPrefix = "urn:uuid:"

// Format selects a textual UUID dialect for Encode.
type Format int

const (
	// FormatCanonical is the hyphenated 8-4-4-4-12 form.
	FormatCanonical Format = iota

	// FormatSimple is 32 contiguous hex digits.
	FormatSimple

	// FormatBraced is the canonical form wrapped in curly braces.
	FormatBraced

	// FormatURN is the canonical form prefixed with "urn:uuid:".
	FormatURN

	// FormatMixedEndian is the canonical form with the first three fields
	// byte-swapped (legacy "GUID" dialect). It must be requested
	// explicitly on both the format and parse side; nothing in this
	// package ever selects it automatically.
	FormatMixedEndian
)

// EncodedLen returns the exact number of bytes Encode writes for f.
func (f Format) EncodedLen() int {
	switch f {
	case FormatSimple:
		return EncodedLenSimple
	case FormatBraced:
		return EncodedLenBraced
	case FormatURN:
		return EncodedLenURN
	default:
		return EncodedLenCanonical
	}
}

// Encode writes u into dst in the given dialect and case, without
// allocating, and returns the number of bytes written. dst must be at
// least f.EncodedLen() bytes long; otherwise ErrShortBuffer is returned
// and dst is left untouched. Output case is controlled solely by upper,
// never inferred.
func (u UUID) Encode(dst []byte, f Format, upper bool) (int, error) {
	n := f.EncodedLen()
	if len(dst) < n {
		return 0, ErrShortBuffer
	}
	switch f {
	case FormatSimple:
		hex.Encode(dst[:EncodedLenSimple], u[:])
	case FormatBraced:
		dst[0] = '{'
		encodeHex(dst[1:37], u)
		dst[37] = '}'
	case FormatURN:
		copy(dst[:len(urnPrefix)], urnPrefix)
		encodeHex(dst[len(urnPrefix):EncodedLenURN], u)
	case FormatMixedEndian:
		encodeHex(dst[:EncodedLenCanonical], u.swapEndian())
	default:
		encodeHex(dst[:EncodedLenCanonical], u)
	}
	if upper {
		upperASCII(dst[:n])
	}
	return n, nil
}

// encodeHex encodes the UUID into its 36-character canonical hex
// representation.
func encodeHex(dst []byte, u UUID) {
	hex.Encode(dst[0:8], u[0:4])
	dst[8] = '-'
	hex.Encode(dst[9:13], u[4:6])
	dst[13] = '-'
	hex.Encode(dst[14:18], u[6:8])
	dst[18] = '-'
	hex.Encode(dst[19:23], u[8:10])
	dst[23] = '-'
	hex.Encode(dst[24:36], u[10:16])
}

func upperASCII(b []byte) {
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
}

// String returns the canonical lowercase string representation of the
// UUID in the format xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func (u UUID) String() string {
	var buf [EncodedLenCanonical]byte
	encodeHex(buf[:], u)
	return string(buf[:])
}

// StringUpper is String in uppercase.
func (u UUID) StringUpper() string {
	var buf [EncodedLenCanonical]byte
	encodeHex(buf[:], u)
	upperASCII(buf[:])
	return string(buf[:])
}

// URN returns the UUID in RFC 9562 URN form,
// urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func (u UUID) URN() string {
	var buf [EncodedLenURN]byte
	u.Encode(buf[:], FormatURN, false)
	return string(buf[:])
}

// Braced returns the UUID wrapped in curly braces,
// {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}.
func (u UUID) Braced() string {
	var buf [EncodedLenBraced]byte
	u.Encode(buf[:], FormatBraced, false)
	return string(buf[:])
}
