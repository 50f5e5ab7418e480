package uuid

import (
	"encoding/binary"
	"io"
	"time"
)

// V7FromParts builds a version 7 UUID from a 48-bit Unix millisecond
// timestamp, 12 bits of rand_a and 62 bits of rand_b. The unused high
// bits of the inputs are ignored. Like the other *FromParts builders it
// is pure; the stateful monotonic behavior lives in Generator.NewV7.
func V7FromParts(unixMilli uint64, randA uint16, randB uint64) UUID {
	var u UUID
	binary.BigEndian.PutUint64(u[0:8], unixMilli<<16)
	u[6] = 0x70 | byte(randA>>8)&0x0f
	u[7] = byte(randA)
	binary.BigEndian.PutUint64(u[8:16], randB)
	u[8] = (u[8] & 0x3f) | 0x80
	return u
}

// NewV7 generates a new UUIDv7 with the current timestamp. UUIDs
// generated within the same millisecond are monotonically ordered.
func (g *Generator) NewV7() (UUID, error) {
	return g.NewV7At(time.Now())
}

// NewV7At generates a new UUIDv7 with the specified timestamp.
// This method is thread-safe and ensures monotonic ordering.
func (g *Generator) NewV7At(t time.Time) (UUID, error) {
	var uuid UUID

	// Get Unix timestamp in milliseconds (48 bits)
	timestamp := uint64(t.UnixMilli())

	g.mu.Lock()
	defer g.mu.Unlock()

	// Handle monotonicity: if timestamp is same or earlier, increment counter
	if timestamp <= g.lastTimestamp {
		g.counter++
		// If counter overflows (> 12 bits), use last timestamp + 1
		if g.counter > 0xFFF {
			g.counter = 0
			timestamp = g.lastTimestamp + 1
			g.lastTimestamp = timestamp
		}
	} else {
		/*
		 *The 12-bit rand_a field and the 62-bit rand_b field SHOULD be filled with
		 *random data, such as from a cryptographically secure random number generator.
		 */
		// New millisecond, generate a new random counter seed
		var randBytes [2]byte
		if _, err := io.ReadFull(g.randReader, randBytes[:]); err != nil {
			return uuid, err
		}
		g.counter = binary.BigEndian.Uint16(randBytes[:]) & 0xFFF // 12 bits
		g.lastTimestamp = timestamp
	}

	// Encode timestamp (48 bits) - bytes 0-5
	binary.BigEndian.PutUint64(uuid[0:8], timestamp<<16)

	// Encode version (4 bits) and rand_a counter (12 bits) - bytes 6-7
	uuid[6] = byte(0x70 | (g.counter >> 8))
	uuid[7] = byte(g.counter)

	// Generate random data for bytes 8-15 (64 bits)
	if _, err := io.ReadFull(g.randReader, uuid[8:]); err != nil {
		return Nil, err
	}

	// Set variant to RFC 9562 (10xx xxxx)
	uuid.setVariant(VariantRFC4122)

	return uuid, nil
}

// Timestamp extracts the Unix timestamp (in milliseconds) from a UUIDv7.
// It returns 0 for any other version; use GregorianTimestamp for v1/v6.
func (u UUID) Timestamp() int64 {
	if u.Version() != VersionTimeSorted {
		return 0
	}
	// Extract 48-bit timestamp from bytes 0-5
	timestamp := uint64(u[0])<<40 |
		uint64(u[1])<<32 |
		uint64(u[2])<<24 |
		uint64(u[3])<<16 |
		uint64(u[4])<<8 |
		uint64(u[5])
	return int64(timestamp)
}
