package uuid

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"
)

// Predefined namespace UUIDs from RFC 9562 section 6.6.
var (
	// NamespaceDNS is for fully-qualified domain names.
	NamespaceDNS = MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	// NamespaceURL is for URLs.
	NamespaceURL = MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")

	// NamespaceOID is for ISO OIDs.
	NamespaceOID = MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")

	// NamespaceX500 is for X.500 distinguished names.
	NamespaceX500 = MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
)

// NewV3 derives a version 3 UUID from the MD5 hash of the namespace UUID
// concatenated with the name. The same inputs always yield the same
// UUID. MD5 is what the RFC assigns to version 3; prefer NewV5 when
// creating a new namespace.
func NewV3(namespace UUID, name []byte) UUID {
	return hashUUID(md5.New(), namespace, name, VersionNameBasedMD5)
}

// NewV5 derives a version 5 UUID from the SHA-1 hash of the namespace
// UUID concatenated with the name.
func NewV5(namespace UUID, name []byte) UUID {
	return hashUUID(sha1.New(), namespace, name, VersionNameBasedSHA1)
}

// hashUUID takes the first 16 digest bytes and stamps the version and
// variant bits over them.
func hashUUID(h hash.Hash, namespace UUID, name []byte, v Version) UUID {
	h.Write(namespace[:])
	h.Write(name)
	var u UUID
	copy(u[:], h.Sum(nil))
	u.setVersion(v)
	u.setVariant(VariantRFC4122)
	return u
}
