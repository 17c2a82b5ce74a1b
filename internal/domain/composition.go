package domain

import "math"

// Categories is the fixed, ordered set of symbolic categories a composition
// vector is defined over. The order is canonical: it defines the Signature
// layout and breaks ties when two categories carry the same intensity.
var Categories = [5]string{"wood", "fire", "earth", "metal", "water"}

const (
	// DefaultCategory is used when a vector carries no signal at all
	// (all-zero or missing composition).
	DefaultCategory = "earth"

	// MaxIntensity is the upper bound of a single category intensity.
	MaxIntensity = 64

	// SynonymThreshold is the Euclidean distance below which two vectors
	// are treated as the same meaning (synonym reuse).
	SynonymThreshold = 15.0
)

// CompositionVector maps category → intensity in [0, MaxIntensity].
// Missing categories count as zero.
type CompositionVector map[string]int

// Signature is the canonical ordered tuple of a vector's intensities,
// in Categories order. It is comparable and used as an equality key.
type Signature [5]int

// Signature returns the canonical tuple form of the vector.
func (v CompositionVector) Signature() Signature {
	var sig Signature
	for i, cat := range Categories {
		sig[i] = v[cat]
	}
	return sig
}

// IsZero reports whether every category intensity is zero.
func (v CompositionVector) IsZero() bool {
	for _, cat := range Categories {
		if v[cat] != 0 {
			return false
		}
	}
	return true
}

// Primary returns the category with the highest intensity. Ties resolve to
// the earlier category in Categories order; an all-zero vector falls back
// to DefaultCategory.
func (v CompositionVector) Primary() string {
	if v.IsZero() {
		return DefaultCategory
	}
	best := Categories[0]
	bestVal := v[best]
	for _, cat := range Categories[1:] {
		if v[cat] > bestVal {
			best = cat
			bestVal = v[cat]
		}
	}
	return best
}

// Secondary returns the category with the second-highest non-zero intensity,
// defaulting to Primary when no other category qualifies.
func (v CompositionVector) Secondary() string {
	primary := v.Primary()
	second := ""
	secondVal := 0
	for _, cat := range Categories {
		if cat == primary {
			continue
		}
		if v[cat] > secondVal {
			second = cat
			secondVal = v[cat]
		}
	}
	if second == "" {
		return primary
	}
	return second
}

// Distance returns the Euclidean distance between two vectors over all
// categories.
func Distance(a, b CompositionVector) float64 {
	sum := 0.0
	for _, cat := range Categories {
		d := float64(a[cat] - b[cat])
		sum += d * d
	}
	return math.Sqrt(sum)
}

// FuzzyEqual reports whether two vectors are close enough to be treated
// as synonyms (distance below SynonymThreshold).
func FuzzyEqual(a, b CompositionVector) bool {
	return Distance(a, b) < SynonymThreshold
}
