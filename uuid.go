package uuid

import (
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"time"
)

// UUID represents a Universally Unique Identifier as defined by RFC 9562
// (formerly RFC 4122). The UUID is a 128-bit (16 byte) value stored in
// big-endian (network) field order. It is a value type: copy it freely.
type UUID [16]byte

// Version identifies the generation algorithm encoded in the high nibble
// of byte 6. Nibble 0 and the unassigned nibbles 9-15 all classify as
// VersionReserved; whether a value is the Nil or Max UUID is a property
// of the whole value, not of the version nibble (see IsNil and IsMax).
type Version byte

const (
	VersionReserved     Version = iota // nibble 0, and any nibble above 8
	VersionTimeBased                   // v1, Gregorian time
	VersionDCESecurity                 // v2
	VersionNameBasedMD5                // v3
	VersionRandom                      // v4
	VersionNameBasedSHA1               // v5
	VersionSortedTime                  // v6, v1 fields reordered for sortability
	VersionTimeSorted                  // v7, Unix time ordered
	VersionCustom                      // v8, application defined
)

// String returns a short name for the version.
func (v Version) String() string {
	switch v {
	case VersionTimeBased:
		return "v1"
	case VersionDCESecurity:
		return "v2"
	case VersionNameBasedMD5:
		return "v3"
	case VersionRandom:
		return "v4"
	case VersionNameBasedSHA1:
		return "v5"
	case VersionSortedTime:
		return "v6"
	case VersionTimeSorted:
		return "v7"
	case VersionCustom:
		return "v8"
	default:
		return "reserved"
	}
}

// Variant identifies the structural family encoded in the top bits of
// byte 8.
type Variant byte

const (
	VariantNCS       Variant = iota // 0xx, NCS backward compatibility
	VariantRFC4122                  // 10x, RFC 4122 / RFC 9562
	VariantMicrosoft                // 110, legacy Microsoft GUIDs
	VariantFuture                   // 111, reserved for the future
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantNCS:
		return "NCS"
	case VariantRFC4122:
		return "RFC4122"
	case VariantMicrosoft:
		return "Microsoft"
	default:
		return "Future"
	}
}

// Nil is the nil UUID (all bits zero).
var Nil UUID

// Max is the Max UUID (all bits one), RFC 9562 section 5.10.
var Max = UUID{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// Version returns the version of the UUID. It is defined for every
// possible byte pattern: unassigned nibbles map to VersionReserved.
func (u UUID) Version() Version {
	v := Version(u[6] >> 4)
	if v == VersionReserved || v > VersionCustom {
		return VersionReserved
	}
	return v
}

// Variant returns the variant of the UUID. The bit groups are checked in
// priority order, so the result is defined for every byte pattern.
func (u UUID) Variant() Variant {
	switch {
	case (u[8] & 0x80) == 0x00:
		return VariantNCS
	case (u[8] & 0xc0) == 0x80:
		return VariantRFC4122
	case (u[8] & 0xe0) == 0xc0:
		return VariantMicrosoft
	default:
		return VariantFuture
	}
}

// setVersion overwrites the version nibble, leaving the low nibble of
// byte 6 alone. Generators only; readers never mutate.
func (u *UUID) setVersion(v Version) {
	u[6] = (u[6] & 0x0f) | (byte(v) << 4)
}

// setVariant overwrites only the bits the variant defines, so the
// remaining clock-sequence bits survive.
func (u *UUID) setVariant(v Variant) {
	switch v {
	case VariantNCS:
		u[8] &= 0x7f
	case VariantRFC4122:
		u[8] = (u[8] & 0x3f) | 0x80
	case VariantMicrosoft:
		u[8] = (u[8] & 0x1f) | 0xc0
	default:
		u[8] |= 0xe0
	}
}

// TimeLow returns the time_low field (bytes 0-3). The historical field
// names only carry meaning for time-based layouts; for v4/v8 values the
// bytes are opaque apart from the version and variant bits.
func (u UUID) TimeLow() uint32 {
	return binary.BigEndian.Uint32(u[0:4])
}

// TimeMid returns the time_mid field (bytes 4-5).
func (u UUID) TimeMid() uint16 {
	return binary.BigEndian.Uint16(u[4:6])
}

// TimeHiAndVersion returns the time_hi_and_version field (bytes 6-7),
// version nibble included.
func (u UUID) TimeHiAndVersion() uint16 {
	return binary.BigEndian.Uint16(u[6:8])
}

// ClockSeqHiAndReserved returns byte 8, variant bits included.
func (u UUID) ClockSeqHiAndReserved() byte {
	return u[8]
}

// ClockSeqLow returns byte 9.
func (u UUID) ClockSeqLow() byte {
	return u[9]
}

// NodeID returns the 48-bit node field (bytes 10-15).
func (u UUID) NodeID() [6]byte {
	var node [6]byte
	copy(node[:], u[10:])
	return node
}

// ClockSequence returns the 14-bit clock sequence. Meaningful for v1 and
// v6 UUIDs only; for other versions the bits are whatever the generator
// put there.
func (u UUID) ClockSequence() uint16 {
	return uint16(u[8]&0x3f)<<8 | uint16(u[9])
}

// GregorianTimestamp returns the 60-bit count of 100ns intervals since
// 1582-10-15, reassembled with the field order of the UUID's version.
// A v1 and a v6 UUID built from the same inputs return the same value
// here even though their bytes differ. Returns 0 for other versions.
func (u UUID) GregorianTimestamp() uint64 {
	switch u.Version() {
	case VersionTimeBased:
		return uint64(u.TimeHiAndVersion()&0x0fff)<<48 |
			uint64(u.TimeMid())<<32 |
			uint64(u.TimeLow())
	case VersionSortedTime:
		return uint64(u.TimeLow())<<28 |
			uint64(u.TimeMid())<<12 |
			uint64(u.TimeHiAndVersion()&0x0fff)
	default:
		return 0
	}
}

// swapEndian converts between the big-endian and mixed-endian layouts by
// reversing the bytes of the first three fields. It is its own inverse.
func (u UUID) swapEndian() UUID {
	u[0], u[1], u[2], u[3] = u[3], u[2], u[1], u[0]
	u[4], u[5] = u[5], u[4]
	u[6], u[7] = u[7], u[6]
	return u
}

// FromMixedEndianBytes creates a UUID from 16 bytes laid out in the
// legacy mixed-endian ("GUID") order, where time_low, time_mid and
// time_hi_and_version are little-endian. The result is stored big-endian.
// This conversion is never applied implicitly; see also MixedEndianBytes.
func FromMixedEndianBytes(b []byte) (UUID, error) {
	u, err := FromBytes(b)
	if err != nil {
		return Nil, err
	}
	return u.swapEndian(), nil
}

// MixedEndianBytes returns the UUID in the legacy mixed-endian byte
// order. See FromMixedEndianBytes.
func (u UUID) MixedEndianBytes() [16]byte {
	return [16]byte(u.swapEndian())
}

// Bytes returns the UUID as a byte slice.
func (u UUID) Bytes() []byte {
	return u[:]
}

// IsNil returns true if the UUID is the nil UUID (all zeros).
func (u UUID) IsNil() bool {
	return u == Nil
}

// IsMax returns true if the UUID is the Max UUID (all ones).
func (u UUID) IsMax() bool {
	return u == Max
}

// Time returns the timestamp embedded in a time-based UUID as a
// time.Time, using the extraction rule of the UUID's version. The zero
// time is returned for versions that carry no timestamp.
func (u UUID) Time() time.Time {
	switch u.Version() {
	case VersionTimeBased, VersionSortedTime:
		ns100 := int64(u.GregorianTimestamp()) - gregorianToUnix
		return time.Unix(ns100/1e7, (ns100%1e7)*100)
	case VersionTimeSorted:
		ms := u.Timestamp()
		return time.Unix(ms/1000, (ms%1000)*1000000)
	default:
		return time.Time{}
	}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (u UUID) MarshalText() ([]byte, error) {
	var buf [EncodedLenCanonical]byte
	encodeHex(buf[:], u)
	return buf[:], nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (u *UUID) UnmarshalText(data []byte) error {
	id, err := Parse(string(data))
	if err != nil {
		return err
	}
	*u = id
	return nil
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (u UUID) MarshalBinary() ([]byte, error) {
	return u[:], nil
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (u *UUID) UnmarshalBinary(data []byte) error {
	if len(data) != 16 {
		return ErrInvalidLength
	}
	copy(u[:], data)
	return nil
}

// Scan implements the sql.Scanner interface for database compatibility.
func (u *UUID) Scan(src interface{}) error {
	switch src := src.(type) {
	case nil:
		return nil
	case string:
		id, err := Parse(src)
		if err != nil {
			return err
		}
		*u = id
		return nil
	case []byte:
		if len(src) == 16 {
			copy(u[:], src)
			return nil
		}
		if len(src) == 0 {
			return nil
		}
		id, err := Parse(string(src))
		if err != nil {
			return err
		}
		*u = id
		return nil
	default:
		return fmt.Errorf("uuid: cannot scan type %T into UUID", src)
	}
}

// Value implements the driver.Valuer interface for database compatibility.
func (u UUID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Compare returns an integer comparing two UUIDs lexicographically.
// The result will be 0 if u==other, -1 if u < other, and +1 if u > other.
func (u UUID) Compare(other UUID) int {
	for i := 0; i < 16; i++ {
		if u[i] < other[i] {
			return -1
		}
		if u[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Equal returns true if u and other represent the same UUID.
func (u UUID) Equal(other UUID) bool {
	return u == other
}
