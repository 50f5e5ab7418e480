package uuid

import (
	"fmt"
	"strings"
)

// xvalues maps an ASCII byte to its hexadecimal value, or 0xff for bytes
// that are not hex digits. A table lookup keeps the per-digit cost to one
// load instead of three range comparisons.
var xvalues = [256]byte{
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 255, 255, 255, 255, 255, 255,
	255, 10, 11, 12, 13, 14, 15, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 10, 11, 12, 13, 14, 15, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
	255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255, 255,
}

// xtob converts two hex characters into a byte.
func xtob(x1, x2 byte) (byte, bool) {
	b1 := xvalues[x1]
	b2 := xvalues[x2]
	return (b1 << 4) | b2, b1 != 255 && b2 != 255
}

// canonicalOffsets holds the position of each encoded byte within the
// 36-character canonical form.
var canonicalOffsets = [16]int{
	0, 2, 4, 6,
	9, 11,
	14, 16,
	19, 21,
	24, 26, 28, 30, 32, 34,
}

// Parse parses a UUID from its string representation.
// It accepts the following dialects, selected by length:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
//
// Input is case-insensitive. On failure the returned error is a
// *ParseError carrying the byte offset of the offending character in the
// original input, and the UUID is Nil. The legacy mixed-endian dialect is
// never detected here; use ParseMixedEndian.
func Parse(s string) (UUID, error) {
	switch len(s) {
	case EncodedLenURN:
		if !strings.EqualFold(s[:len(urnPrefix)], urnPrefix) {
			return Nil, parseError(0, ErrInvalidSeparator)
		}
		return parseCanonical(s[len(urnPrefix):], len(urnPrefix))
	case EncodedLenBraced:
		if s[0] != '{' {
			return Nil, parseError(0, ErrInvalidSeparator)
		}
		if s[37] != '}' {
			return Nil, parseError(37, ErrInvalidSeparator)
		}
		return parseCanonical(s[1:37], 1)
	case EncodedLenCanonical:
		return parseCanonical(s, 0)
	case EncodedLenSimple:
		return parseSimple(s, 0)
	default:
		return Nil, parseError(len(s), ErrInvalidLength)
	}
}

// ParseBytes is like Parse, for a byte slice.
func ParseBytes(b []byte) (UUID, error) {
	return Parse(string(b))
}

// ParseMixedEndian parses a UUID whose textual form follows the legacy
// mixed-endian ("GUID") dialect: the first three fields are byte-swapped
// relative to network order. It accepts the same dialect lengths as
// Parse. Applying it to a string that was formatted big-endian yields a
// different, but still structurally valid, value; the two entry points
// are kept separate precisely so that never happens silently.
func ParseMixedEndian(s string) (UUID, error) {
	u, err := Parse(s)
	if err != nil {
		return Nil, err
	}
	return u.swapEndian(), nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("uuid: Parse(%q): %v", s, err))
	}
	return uuid
}

// parseCanonical decodes the 36-character hyphenated form. base is the
// offset of s within the original input, so reported positions point at
// the caller's string even for braced and URN inputs. Separators are
// checked before any hex decoding.
func parseCanonical(s string, base int) (UUID, error) {
	for _, i := range [4]int{8, 13, 18, 23} {
		if s[i] != '-' {
			return Nil, parseError(base+i, ErrInvalidSeparator)
		}
	}
	var u UUID
	for i, x := range canonicalOffsets {
		v, ok := xtob(s[x], s[x+1])
		if !ok {
			return Nil, parseError(base+badDigit(s, x), ErrInvalidCharacter)
		}
		u[i] = v
	}
	return u, nil
}

// parseSimple decodes the 32-character hyphen-less form.
func parseSimple(s string, base int) (UUID, error) {
	var u UUID
	for i := 0; i < 32; i += 2 {
		v, ok := xtob(s[i], s[i+1])
		if !ok {
			return Nil, parseError(base+badDigit(s, i), ErrInvalidCharacter)
		}
		u[i/2] = v
	}
	return u, nil
}

// badDigit returns the position of the first non-hex character of the
// pair starting at x.
func badDigit(s string, x int) int {
	if xvalues[s[x]] == 255 {
		return x
	}
	return x + 1
}
