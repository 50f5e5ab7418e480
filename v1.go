package uuid

import (
	"encoding/binary"
	"io"
	"time"
)

// gregorianToUnix is the number of 100ns intervals between the Gregorian
// reform of the calendar (1582-10-15T00:00:00Z, the v1/v6 epoch) and the
// Unix epoch.
const gregorianToUnix = 122192928000000000

// GregorianTicks converts t to the 60-bit count of 100ns intervals since
// 1582-10-15 used by v1 and v6 UUIDs.
func GregorianTicks(t time.Time) uint64 {
	return uint64(t.UnixNano()/100 + gregorianToUnix)
}

// V1FromParts builds a version 1 UUID from a 60-bit Gregorian tick
// count, a 14-bit clock sequence and a 48-bit node, with the timestamp
// split across time_low, time_mid and time_hi in the historical
// interleaved order. The unused high bits of ticks and clockSeq are
// ignored. The function is pure: identical inputs always give identical
// output.
func V1FromParts(ticks uint64, clockSeq uint16, node [6]byte) UUID {
	var u UUID
	binary.BigEndian.PutUint32(u[0:4], uint32(ticks))
	binary.BigEndian.PutUint16(u[4:6], uint16(ticks>>32))
	binary.BigEndian.PutUint16(u[6:8], uint16(ticks>>48)&0x0fff)
	binary.BigEndian.PutUint16(u[8:10], clockSeq&0x3fff)
	copy(u[10:], node[:])
	u.setVersion(VersionTimeBased)
	u.setVariant(VariantRFC4122)
	return u
}

// V6FromParts builds a version 6 UUID from the same inputs as
// V1FromParts. The timestamp is stored most significant bits first, so
// lexicographic byte order matches temporal order. A v6 UUID decodes to
// the same GregorianTimestamp as the v1 UUID built from the same parts.
func V6FromParts(ticks uint64, clockSeq uint16, node [6]byte) UUID {
	var u UUID
	binary.BigEndian.PutUint32(u[0:4], uint32(ticks>>28))
	binary.BigEndian.PutUint16(u[4:6], uint16(ticks>>12))
	binary.BigEndian.PutUint16(u[6:8], uint16(ticks)&0x0fff)
	binary.BigEndian.PutUint16(u[8:10], clockSeq&0x3fff)
	copy(u[10:], node[:])
	u.setVersion(VersionSortedTime)
	u.setVariant(VariantRFC4122)
	return u
}

// NewV1 generates a version 1 UUID with the current timestamp.
func (g *Generator) NewV1() (UUID, error) {
	return g.NewV1At(time.Now())
}

// NewV1At generates a version 1 UUID with the specified timestamp.
func (g *Generator) NewV1At(t time.Time) (UUID, error) {
	ticks, seq, node, err := g.timeParts(t)
	if err != nil {
		return Nil, err
	}
	return V1FromParts(ticks, seq, node), nil
}

// NewV6 generates a version 6 UUID with the current timestamp.
func (g *Generator) NewV6() (UUID, error) {
	return g.NewV6At(time.Now())
}

// NewV6At generates a version 6 UUID with the specified timestamp.
func (g *Generator) NewV6At(t time.Time) (UUID, error) {
	ticks, seq, node, err := g.timeParts(t)
	if err != nil {
		return Nil, err
	}
	return V6FromParts(ticks, seq, node), nil
}

// timeParts advances the shared v1/v6 clock state for one generation.
// The clock sequence starts from entropy and is bumped whenever the tick
// count fails to advance, which disambiguates same-tick generations and
// clock regressions.
func (g *Generator) timeParts(t time.Time) (uint64, uint16, [6]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.nodeInit {
		var b [6]byte
		if _, err := io.ReadFull(g.randReader, b[:]); err != nil {
			return 0, 0, [6]byte{}, err
		}
		// multicast bit marks a node that is not a hardware address
		b[0] |= 0x01
		g.node = b
		g.nodeInit = true
	}

	if !g.seqInit {
		var b [2]byte
		if _, err := io.ReadFull(g.randReader, b[:]); err != nil {
			return 0, 0, [6]byte{}, err
		}
		g.clockSeq = binary.BigEndian.Uint16(b[:]) & 0x3fff
		g.seqInit = true
	}

	ticks := GregorianTicks(t)
	if ticks <= g.lastTicks {
		g.clockSeq = (g.clockSeq + 1) & 0x3fff
	}
	g.lastTicks = ticks

	return ticks, g.clockSeq, g.node, nil
}
