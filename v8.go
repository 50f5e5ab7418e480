package uuid

// NewV8 builds a version 8 UUID from caller-supplied bytes. Version 8 is
// the application-defined format of RFC 9562: only the version nibble
// and the variant bits are overwritten, the remaining 122 bits pass
// through untouched, and their meaning is entirely up to the caller.
func NewV8(data [16]byte) UUID {
	u := UUID(data)
	u.setVersion(VersionCustom)
	u.setVariant(VariantRFC4122)
	return u
}
