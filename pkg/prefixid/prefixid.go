// Package prefixid mints and parses type-prefixed, time-ordered identifiers
// of the form <prefix>_<encoded UUIDv7>, for example
//
//	user_01HQR7V2M3NG4K8YXJ9WQBR2FG
//
// The encoded part is the UUID's 128-bit value in the profile's alphabet.
// Neither alphabet contains '_', so an id is always split at its last
// underscore and prefixes may themselves contain underscores.
package prefixid

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/weiawesome/pxid/pkg/uuidv7"
)

const (
	// Separator joins prefix and encoded UUID.
	Separator = "_"

	// MaxBatch bounds GenerateBatch.
	MaxBatch = 1000
)

// ID is a parsed identifier.
type ID struct {
	Prefix string
	UUID   uuid.UUID
}

// UUIDString returns the canonical hyphenated form of the UUID.
func (id ID) UUIDString() string { return uuidv7.Canonical(id.UUID) }

// Time returns the creation time embedded in the UUID.
func (id ID) Time() time.Time { return uuidv7.Timestamp(id.UUID) }

// Generator mints and parses ids under a single Profile.
type Generator struct {
	profile Profile
	uuids   *uuidv7.Generator
}

// Option configures a Generator.
type Option func(*Generator)

// WithUUIDGenerator replaces the default UUIDv7 source.
func WithUUIDGenerator(u *uuidv7.Generator) Option {
	return func(g *Generator) { g.uuids = u }
}

// New creates a Generator for profile.
func New(profile Profile, opts ...Option) *Generator {
	g := &Generator{
		profile: profile,
		uuids:   uuidv7.NewGenerator(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Profile returns the rule set g enforces.
func (g *Generator) Profile() Profile { return g.profile }

// Generate returns a new id for prefix. The length cap is checked after
// composition.
func (g *Generator) Generate(prefix string) (string, error) {
	if err := g.profile.CheckPrefix(prefix); err != nil {
		return "", err
	}
	u, err := g.uuids.Generate()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}
	return g.compose(prefix, u)
}

// GenerateBatch returns count new ids for prefix.
func (g *Generator) GenerateBatch(prefix string, count int) ([]string, error) {
	if count < 1 || count > MaxBatch {
		return nil, fmt.Errorf("count must be between 1 and %d, got %d", MaxBatch, count)
	}
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := g.Generate(prefix)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Format renders an existing UUID under prefix.
func (g *Generator) Format(prefix string, u uuid.UUID) (string, error) {
	if err := g.profile.CheckPrefix(prefix); err != nil {
		return "", err
	}
	return g.compose(prefix, u)
}

func (g *Generator) compose(prefix string, u uuid.UUID) (string, error) {
	id := prefix + Separator + g.profile.Codec.Encode(uuidv7.ToInt(u))
	if err := g.profile.checkLength(id); err != nil {
		return "", err
	}
	return id, nil
}

// Parse splits id at its last underscore and decodes the UUID. An id without
// an underscore fails with ErrMissingSeparator; every later failure is a
// *ParseError.
func (g *Generator) Parse(id string) (ID, error) {
	i := strings.LastIndex(id, Separator)
	if i < 0 {
		return ID{}, fmt.Errorf("%w in %q", ErrMissingSeparator, id)
	}
	prefix, encoded := id[:i], id[i+1:]

	u, err := g.parse(id, prefix, encoded)
	if err != nil {
		return ID{}, &ParseError{ID: id, Err: err}
	}
	return ID{Prefix: prefix, UUID: u}, nil
}

func (g *Generator) parse(id, prefix, encoded string) (uuid.UUID, error) {
	if err := g.profile.checkLength(id); err != nil {
		return uuid.Nil, err
	}
	if err := g.profile.CheckPrefix(prefix); err != nil {
		return uuid.Nil, err
	}
	if encoded == "" {
		return uuid.Nil, ErrEmptyPayload
	}
	n, err := g.profile.Codec.Decode(encoded)
	if err != nil {
		return uuid.Nil, err
	}
	return uuidv7.FromInt(n)
}

// Check returns nil when id parses and, if prefix is non-empty, carries
// exactly that prefix.
func (g *Generator) Check(id, prefix string) error {
	parsed, err := g.Parse(id)
	if err != nil {
		return err
	}
	if prefix != "" && parsed.Prefix != prefix {
		return fmt.Errorf("%w: want %q, got %q", ErrPrefixMismatch, prefix, parsed.Prefix)
	}
	return nil
}

// Validate reports whether id is well formed. An empty prefix accepts any
// prefix; otherwise the parsed prefix must match byte for byte.
func (g *Generator) Validate(id, prefix string) bool {
	return g.Check(id, prefix) == nil
}

// ExtractUUID returns the canonical UUID embedded in id.
func (g *Generator) ExtractUUID(id string) (string, error) {
	parsed, err := g.Parse(id)
	if err != nil {
		return "", err
	}
	return parsed.UUIDString(), nil
}

// ExtractPrefix returns the prefix of id.
func (g *Generator) ExtractPrefix(id string) (string, error) {
	parsed, err := g.Parse(id)
	if err != nil {
		return "", err
	}
	return parsed.Prefix, nil
}

// Timestamp returns the creation time embedded in id.
func (g *Generator) Timestamp(id string) (time.Time, error) {
	parsed, err := g.Parse(id)
	if err != nil {
		return time.Time{}, err
	}
	return parsed.Time(), nil
}

// IsParseError reports whether err came from the parse path, including a
// missing separator.
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse) || errors.Is(err, ErrMissingSeparator)
}
