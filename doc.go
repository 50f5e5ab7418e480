// Package uuid implements 128-bit Universally Unique Identifiers as
// specified by RFC 9562 (the successor to RFC 4122), covering the full
// version family: time-based (v1), name-based (v3/v5), random (v4),
// reordered time-based (v6), Unix-time-ordered (v7) and custom (v8).
//
// A UUID is a plain 16 byte value. Every possible byte pattern is a
// structurally valid UUID: classification (Version, Variant), parsing and
// formatting are total and never panic, which makes the package usable
// with arbitrary or truncated input. Parsing and formatting work without
// heap allocation on the hot path; Encode writes into a caller-provided
// buffer.
//
// Basic Usage:
//
//	// Generate a new UUIDv7 (time-ordered, sorts by creation time)
//	id, err := uuid.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id.String())
//
//	// Parse a UUID from any supported string dialect
//	id, err := uuid.Parse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
//	id, err = uuid.Parse("urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479")
//	id, err = uuid.Parse("{f47ac10b-58cc-4372-a567-0e02b2c3d479}")
//	id, err = uuid.Parse("f47ac10b58cc4372a5670e02b2c3d479")
//
//	// Name-based UUIDs are deterministic
//	id := uuid.NewV5(uuid.NamespaceDNS, []byte("www.example.com"))
//
// Dialects:
//
// Parse auto-detects the canonical, braced, hyphen-less and URN forms by
// length. The legacy mixed-endian "GUID" dialect, in which the first three
// fields are byte-swapped, is never auto-detected: it must be requested
// explicitly through ParseMixedEndian, FormatMixedEndian and the
// FromMixedEndianBytes/MixedEndianBytes pair, so that one byte sequence
// can never be silently reinterpreted two ways.
//
// Custom Generator:
//
//	// A Generator carries the entropy source and the v1/v6/v7 clock state
//	gen := uuid.NewGenerator()
//	for i := 0; i < 1000; i++ {
//	    id, err := gen.NewV7()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    // Use id...
//	}
//
// Thread Safety:
//
// All operations on UUID values are pure and safe for concurrent use.
// Generators serialize their internal clock state with a mutex; the
// default generator can be shared between goroutines without additional
// synchronization.
//
// Standards Compliance:
//
// Version and variant bits are set exactly as RFC 9562 requires. The
// predefined DNS/URL/OID/X500 namespaces and the Nil and Max UUIDs are
// provided, and name-based generation reproduces the published RFC test
// vectors.
package uuid
