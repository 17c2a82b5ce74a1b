package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// CompoundDelimiter separates sub-stems in an explicitly compound stem,
// e.g. "run_fast".
const CompoundDelimiter = "_"

// DefaultRole is assumed when a sense key does not encode a grammatical role.
const DefaultRole = "n"

// Sense is one meaning of a stem under one grammatical role, carrying its own
// composition vector. Word is empty until the builder assigns a generated
// wordform; a Sense is never mutated after that.
type Sense struct {
	Key         string
	Stem        string
	Role        string
	SenseIndex  int
	Composition CompositionVector
	Definition  string
	Word        string
	Runic       string
}

// IsCompound reports whether the sense's stem is explicitly compound.
func (s Sense) IsCompound() bool {
	return strings.Contains(s.Stem, CompoundDelimiter)
}

// ParseSenseKey splits a sense key of the form "stem.role.NN" into its parts.
// Parsing is tolerant: a missing role defaults to DefaultRole and a missing
// or malformed index defaults to 1. The stem segment is always the first
// dot-separated segment, so compound stems keep their delimiter intact.
func ParseSenseKey(key string) (stem, role string, index int) {
	parts := strings.Split(key, ".")
	stem = parts[0]
	role = DefaultRole
	index = 1
	if len(parts) > 1 && parts[1] != "" {
		role = parts[1]
	}
	if len(parts) > 2 {
		if n, err := strconv.Atoi(parts[2]); err == nil && n > 0 {
			index = n
		}
	}
	return stem, role, index
}

// FormatSenseKey builds the canonical "stem.role.NN" key.
func FormatSenseKey(stem, role string, index int) string {
	return fmt.Sprintf("%s.%s.%02d", stem, role, index)
}
