package generator

import (
	"fmt"
	"math/rand"

	"github.com/solivagus/runesmith/internal/domain"
	"github.com/solivagus/runesmith/internal/phonology"
)

const (
	// scrambleAttempts bounds the interior-permutation search.
	scrambleAttempts = 250

	// vowelSwapAttempts bounds the vowel-substitution search.
	vowelSwapAttempts = 120

	// maxNumericSuffix caps the numeric disambiguation tail.
	maxNumericSuffix = 99
)

// Resolver turns a colliding wordform into a free one. Strategies are tried
// in order of how much they preserve the original sound shape: interior
// phoneme scramble, then interior vowel substitution, then suffixation.
type Resolver struct {
	phon *phonology.Config
	rng  *rand.Rand
}

// NewResolver creates a Resolver sharing the run-wide random source.
func NewResolver(phon *phonology.Config, rng *rand.Rand) *Resolver {
	return &Resolver{phon: phon, rng: rng}
}

// Resolve returns a variant of word that is not yet in the registry. It does
// not register the result. ErrResolutionFailed is returned when every
// strategy, including suffixation, is exhausted.
func (r *Resolver) Resolve(word string, reg *Registry) (string, error) {
	if v, ok := r.scramble(word, reg); ok {
		return v, nil
	}
	if v, ok := r.swapVowels(word, reg); ok {
		return v, nil
	}
	if v, ok := r.suffix(word, reg); ok {
		return v, nil
	}
	return "", fmt.Errorf("resolve %q: %w", word, domain.ErrResolutionFailed)
}

// acceptable applies the shared candidate filter: long enough, passes the
// rejection constraints and is not already taken.
func (r *Resolver) acceptable(candidate string, reg *Registry) bool {
	if len(candidate) < minWordLength {
		return false
	}
	if _, bad := r.phon.Reject(candidate); bad {
		return false
	}
	return !reg.Contains(candidate)
}

// scramble permutes the interior phoneme tokens while keeping the first and
// last token fixed, so the resolved word still starts and ends like the
// original. Needs more than three tokens to have anything to permute.
func (r *Resolver) scramble(word string, reg *Registry) (string, bool) {
	tokens := r.phon.Tokenize(word)
	if len(tokens) <= 3 {
		return "", false
	}

	seen := map[string]struct{}{word: {}}
	interior := make([]string, len(tokens)-2)

	for i := 0; i < scrambleAttempts; i++ {
		copy(interior, tokens[1:len(tokens)-1])
		r.rng.Shuffle(len(interior), func(a, b int) {
			interior[a], interior[b] = interior[b], interior[a]
		})

		candidate := tokens[0]
		for _, t := range interior {
			candidate += t
		}
		candidate += tokens[len(tokens)-1]
		candidate = r.phon.ApplyOrthography(candidate)

		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}

		if r.acceptable(candidate, reg) {
			return candidate, true
		}
	}
	return "", false
}

// swapVowels substitutes one or two interior vowel tokens with different
// vowels from the pool.
func (r *Resolver) swapVowels(word string, reg *Registry) (string, bool) {
	tokens := r.phon.Tokenize(word)
	pool := r.phon.VowelPool()
	if len(pool) < 2 {
		return "", false
	}

	var interiorVowels []int
	for i := 1; i < len(tokens)-1; i++ {
		if r.phon.IsVowel(tokens[i]) {
			interiorVowels = append(interiorVowels, i)
		}
	}
	if len(interiorVowels) == 0 {
		return "", false
	}

	work := make([]string, len(tokens))
	for i := 0; i < vowelSwapAttempts; i++ {
		copy(work, tokens)

		swaps := 1
		if len(interiorVowels) > 1 && r.rng.Intn(2) == 0 {
			swaps = 2
		}
		for s := 0; s < swaps; s++ {
			pos := interiorVowels[r.rng.Intn(len(interiorVowels))]
			repl := pool[r.rng.Intn(len(pool))]
			if repl == work[pos] {
				continue
			}
			work[pos] = repl
		}

		var candidate string
		for _, t := range work {
			candidate += t
		}
		candidate = r.phon.ApplyOrthography(candidate)
		if candidate == word {
			continue
		}

		if r.acceptable(candidate, reg) {
			return candidate, true
		}
	}
	return "", false
}

// suffix appends morphological suffixes, then numeric tails, until a free
// form appears. Deterministic: it walks the suffix list in order.
func (r *Resolver) suffix(word string, reg *Registry) (string, bool) {
	for _, sfx := range r.phon.Morphology().Suffixes {
		candidate := r.phon.ApplyOrthography(word + sfx)
		if r.acceptable(candidate, reg) {
			return candidate, true
		}
	}
	for n := 2; n <= maxNumericSuffix; n++ {
		candidate := fmt.Sprintf("%s%d", word, n)
		if r.acceptable(candidate, reg) {
			return candidate, true
		}
	}
	return "", false
}
