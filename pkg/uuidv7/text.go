package uuidv7

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"

	"github.com/google/uuid"
)

// ErrMalformedUUID is returned when a value does not form a canonical UUID.
var ErrMalformedUUID = errors.New("malformed uuid")

var canonicalRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// Canonical returns u as 32 lowercase hex digits grouped 8-4-4-4-12.
func Canonical(u uuid.UUID) string {
	return u.String()
}

// ParseCanonical parses the exact form produced by Canonical. Hyphen
// positions and lowercase hex are enforced; version and variant are not.
func ParseCanonical(s string) (uuid.UUID, error) {
	if !canonicalRe.MatchString(s) {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrMalformedUUID, s)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrMalformedUUID, err)
	}
	return u, nil
}

// ToInt reinterprets the 16 bytes of u as a big-endian unsigned integer.
func ToInt(u uuid.UUID) *big.Int {
	return new(big.Int).SetBytes(u[:])
}

// FromInt converts n back to a UUID through its canonical hex form. Values
// that are negative or wider than 128 bits are rejected.
func FromInt(n *big.Int) (uuid.UUID, error) {
	if n.Sign() < 0 {
		return uuid.Nil, fmt.Errorf("%w: negative value", ErrMalformedUUID)
	}
	h := fmt.Sprintf("%032x", n)
	if len(h) != 32 {
		return uuid.Nil, fmt.Errorf("%w: value exceeds 128 bits", ErrMalformedUUID)
	}
	return ParseCanonical(h[0:8] + "-" + h[8:12] + "-" + h[12:16] + "-" + h[16:20] + "-" + h[20:32])
}
