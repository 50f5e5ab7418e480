package uuid

import (
	"crypto/rand"
	"io"
	"sync"
)

// Generator produces UUIDs from an injectable entropy source and the
// wall clock. It carries the only mutable state in this package: the
// monotonic v7 counter and the v1/v6 clock sequence and node identity.
// A Generator is safe for concurrent use.
//
// The entropy source and clock are external concerns: any read failure
// from the source is returned to the caller unchanged, and no UUID is
// produced in that case. The generator never retries.
type Generator struct {
	mu         sync.Mutex
	randReader io.Reader

	// v7 state
	lastTimestamp uint64
	counter       uint16 // 12-bit counter for sub-millisecond ordering

	// v1/v6 state
	lastTicks uint64
	clockSeq  uint16 // 14-bit clock sequence
	seqInit   bool
	node      [6]byte
	nodeInit  bool
}

// NewGenerator creates a new generator with crypto/rand as the random
// source.
func NewGenerator() *Generator {
	return &Generator{
		randReader: rand.Reader,
	}
}

// NewGeneratorWithReader creates a new generator with a custom random
// source. This is primarily useful for testing with deterministic random
// sources, or on targets where crypto/rand is not the right entropy
// provider.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return &Generator{
		randReader: r,
	}
}

// SetNodeID fixes the 48-bit node identifier embedded in v1 and v6
// UUIDs, conventionally a hardware address. If no node is set, the
// first v1/v6 generation draws a random node from the entropy source
// and sets its multicast bit, as RFC 9562 requires for non-hardware
// node IDs.
func (g *Generator) SetNodeID(node [6]byte) {
	g.mu.Lock()
	g.node = node
	g.nodeInit = true
	g.mu.Unlock()
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuid.Must(uuid.New())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

// defaultGenerator is the package-level generator used by the New*
// functions.
var defaultGenerator = NewGenerator()

// New generates a new UUIDv7 using the default generator.
// This is a convenience function that uses the package-level generator.
func New() (UUID, error) {
	return defaultGenerator.NewV7()
}

// NewV1 generates a time-based UUID using the default generator.
func NewV1() (UUID, error) {
	return defaultGenerator.NewV1()
}

// NewV4 generates a random UUID using the default generator.
func NewV4() (UUID, error) {
	return defaultGenerator.NewV4()
}

// NewV6 generates a sortable time-based UUID using the default generator.
func NewV6() (UUID, error) {
	return defaultGenerator.NewV6()
}

// NewV7 generates a Unix-time-ordered UUID using the default generator.
func NewV7() (UUID, error) {
	return defaultGenerator.NewV7()
}
