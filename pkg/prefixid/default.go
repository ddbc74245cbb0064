package prefixid

import "time"

// Default uses the Permissive profile.
var Default = New(Permissive)

// Generate mints an id with Default.
func Generate(prefix string) (string, error) { return Default.Generate(prefix) }

// Parse parses id with Default.
func Parse(id string) (ID, error) { return Default.Parse(id) }

// Validate validates id with Default. An empty prefix accepts any prefix.
func Validate(id, prefix string) bool { return Default.Validate(id, prefix) }

// ExtractUUID returns the canonical UUID of id using Default.
func ExtractUUID(id string) (string, error) { return Default.ExtractUUID(id) }

// ExtractPrefix returns the prefix of id using Default.
func ExtractPrefix(id string) (string, error) { return Default.ExtractPrefix(id) }

// Timestamp returns the creation time of id using Default.
func Timestamp(id string) (time.Time, error) { return Default.Timestamp(id) }
