package prefixid

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/weiawesome/pxid/pkg/radix"
)

// Profile is the rule set a Generator enforces: which alphabet encodes the
// UUID, which prefixes are accepted and how long a full id may be. A
// deployment picks exactly one.
type Profile struct {
	Name string
	// Codec encodes the UUID part.
	Codec *radix.Codec
	// MaxLength caps the whole id in bytes. Zero means no cap.
	MaxLength int

	prefix *regexp.Regexp
}

var strictPrefixRe = regexp.MustCompile(`^[a-z0-9_]{1,40}$`)

var (
	// Permissive accepts any non-empty prefix, encodes with Crockford Base32
	// and caps ids at 255 bytes.
	Permissive = Profile{Name: "permissive", Codec: radix.Base32, MaxLength: 255}

	// Strict accepts prefixes matching [a-z0-9_]{1,40}, encodes with Base62
	// and caps ids at 63 bytes.
	Strict = Profile{Name: "strict", Codec: radix.Base62, MaxLength: 63, prefix: strictPrefixRe}

	// Unbounded accepts any non-empty prefix, encodes with Base62 and does
	// not cap length.
	Unbounded = Profile{Name: "unbounded", Codec: radix.Base62}
)

// Profiles lists the built-in profiles.
func Profiles() []Profile {
	return []Profile{Permissive, Strict, Unbounded}
}

// ProfileByName resolves a configured profile name, ignoring case.
func ProfileByName(name string) (Profile, error) {
	for _, p := range Profiles() {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("unknown id profile %q", name)
}

// CheckPrefix reports whether prefix is acceptable under p.
func (p Profile) CheckPrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("%w: empty", ErrInvalidPrefix)
	}
	if p.prefix != nil && !p.prefix.MatchString(prefix) {
		return fmt.Errorf("%w: %q must match %s", ErrInvalidPrefix, prefix, p.prefix)
	}
	return nil
}

func (p Profile) checkLength(id string) error {
	if p.MaxLength > 0 && len(id) > p.MaxLength {
		return fmt.Errorf("%w: %d bytes exceeds %d", ErrIDTooLong, len(id), p.MaxLength)
	}
	return nil
}
