package uuid

import "io"

// NewV4 generates a version 4 UUID: 16 random bytes from the generator's
// entropy source with the version and variant bits overwritten. A read
// failure from the source is returned as-is and no UUID is produced.
func (g *Generator) NewV4() (UUID, error) {
	var u UUID
	if _, err := io.ReadFull(g.randReader, u[:]); err != nil {
		return Nil, err
	}
	u.setVersion(VersionRandom)
	u.setVariant(VariantRFC4122)
	return u, nil
}
