// Package uuidv7 builds version 7 UUIDs from the wall clock and a
// cryptographically secure entropy source, and converts UUID values between
// their canonical text form and the integer form used by package radix.
//
// Layout of a generated value (RFC 9562):
//
//	bytes 0-5   48-bit Unix timestamp in milliseconds, big-endian
//	byte  6     high nibble 0111 (version 7), low nibble random
//	byte  7     random
//	byte  8     high bits 10 (variant), low 6 bits random
//	bytes 9-15  random
//
// Values from different milliseconds sort by time; values from the same
// millisecond are ordered by their random bits only.
package uuidv7

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// ErrEntropyUnavailable is returned when the entropy source cannot supply 16
// bytes. It is not retried.
var ErrEntropyUnavailable = errors.New("secure entropy unavailable")

// Generator produces UUIDv7 values. It keeps no state between calls and is
// safe for concurrent use as long as its entropy source is.
type Generator struct {
	entropy io.Reader
	now     func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithEntropy replaces crypto/rand.Reader as the source of random bytes.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) { g.entropy = r }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator creates a Generator reading from crypto/rand and time.Now
// unless overridden.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		entropy: rand.Reader,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a new UUIDv7.
func (g *Generator) Generate() (uuid.UUID, error) {
	var u uuid.UUID
	if _, err := io.ReadFull(g.entropy, u[:]); err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	ms := ulid.Timestamp(g.now()) & ulid.MaxTime()
	u[0] = byte(ms >> 40)
	u[1] = byte(ms >> 32)
	u[2] = byte(ms >> 24)
	u[3] = byte(ms >> 16)
	u[4] = byte(ms >> 8)
	u[5] = byte(ms)

	u[6] = 0x70 | (u[6] & 0x0f)
	u[8] = 0x80 | (u[8] & 0x3f)
	return u, nil
}

var defaultGenerator = NewGenerator()

// Generate returns a new UUIDv7 from crypto/rand and the system clock.
func Generate() (uuid.UUID, error) {
	return defaultGenerator.Generate()
}

// Timestamp returns the time embedded in the first 48 bits of u, with
// millisecond precision.
func Timestamp(u uuid.UUID) time.Time {
	ms := uint64(u[0])<<40 | uint64(u[1])<<32 | uint64(u[2])<<24 |
		uint64(u[3])<<16 | uint64(u[4])<<8 | uint64(u[5])
	return ulid.Time(ms)
}
