// Package radix encodes non-negative integers of arbitrary width into short
// strings over a fixed alphabet and decodes them back.
//
// Two alphabets are provided:
//
//   - Base32 uses Crockford's alphabet (no I, L, O, U). Decoding is case
//     insensitive and folds the confusable letters I and L to 1 and O to 0.
//   - Base62 uses 0-9A-Za-z. Decoding is case sensitive.
//
// Encoded values carry no leading-zero padding: the canonical form of a value
// is the shortest string that decodes to it, and 0 encodes as "0".
package radix

import (
	"errors"
	"fmt"
	"math/big"
)

const (
	crockfordAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
	base62Alphabet    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	invalid = 0xFF
)

var (
	// ErrInvalidCharacter is returned when a decoded string contains a symbol
	// outside the codec's alphabet.
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrEmptyInput is returned when decoding an empty string.
	ErrEmptyInput = errors.New("empty input")
)

// CharError reports the first character that is not part of an alphabet.
type CharError struct {
	Char   rune
	Offset int
}

func (e *CharError) Error() string {
	return fmt.Sprintf("invalid character %q at offset %d", e.Char, e.Offset)
}

func (e *CharError) Unwrap() error { return ErrInvalidCharacter }

// Codec converts integers to and from a single alphabet. A Codec is
// read-only after construction and safe for concurrent use.
type Codec struct {
	name     string
	alphabet string
	base     *big.Int
	dec      [256]byte
}

var (
	// Base32 is the Crockford Base32 codec.
	Base32 = newCodec("base32", crockfordAlphabet, map[byte]byte{
		'I': 1, 'i': 1,
		'L': 1, 'l': 1,
		'O': 0, 'o': 0,
	}, true)

	// Base62 is the case-sensitive 0-9A-Za-z codec.
	Base62 = newCodec("base62", base62Alphabet, nil, false)
)

func newCodec(name, alphabet string, aliases map[byte]byte, foldCase bool) *Codec {
	c := &Codec{
		name:     name,
		alphabet: alphabet,
		base:     big.NewInt(int64(len(alphabet))),
	}
	for i := range c.dec {
		c.dec[i] = invalid
	}
	for i := 0; i < len(alphabet); i++ {
		sym := alphabet[i]
		c.dec[sym] = byte(i)
		if foldCase && sym >= 'A' && sym <= 'Z' {
			c.dec[sym+('a'-'A')] = byte(i)
		}
	}
	for sym, v := range aliases {
		c.dec[sym] = v
	}
	return c
}

// Name returns the codec name ("base32" or "base62").
func (c *Codec) Name() string { return c.name }

// Base returns the number of symbols in the alphabet.
func (c *Codec) Base() int { return len(c.alphabet) }

// MaxLen returns the number of symbols needed to encode the largest
// bits-wide value.
func (c *Codec) MaxLen(bits int) int {
	top := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	top.Sub(top, big.NewInt(1))
	return len(c.Encode(top))
}

// Encode renders n most-significant digit first. It panics if n is negative.
func (c *Codec) Encode(n *big.Int) string {
	if n.Sign() < 0 {
		panic("radix: cannot encode a negative value")
	}
	if n.Sign() == 0 {
		return c.alphabet[:1]
	}

	var (
		q   = new(big.Int).Set(n)
		r   = new(big.Int)
		out = make([]byte, 0, 32)
	)
	for q.Sign() > 0 {
		q.QuoRem(q, c.base, r)
		out = append(out, c.alphabet[r.Int64()])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Decode parses s left to right. It fails on the first character that the
// alphabet does not define.
func (c *Codec) Decode(s string) (*big.Int, error) {
	if s == "" {
		return nil, ErrEmptyInput
	}

	n := new(big.Int)
	digit := new(big.Int)
	for i, r := range s {
		if r >= 0x80 || c.dec[byte(r)] == invalid {
			return nil, &CharError{Char: r, Offset: i}
		}
		digit.SetInt64(int64(c.dec[byte(r)]))
		n.Mul(n, c.base)
		n.Add(n, digit)
	}
	return n, nil
}

// Valid reports whether every character of s belongs to the alphabet.
func (c *Codec) Valid(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r >= 0x80 || c.dec[byte(r)] == invalid {
			return false
		}
	}
	return true
}
