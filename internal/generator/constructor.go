package generator

import (
	"math/rand"
	"strings"

	"github.com/solivagus/runesmith/internal/domain"
	"github.com/solivagus/runesmith/internal/phonology"
)

// Template slot symbols. Any other character in a template is a literal,
// except a space, which expands to nothing.
const (
	slotOnset    = 'O' // onset inventory for the grammatical role
	slotNucleus  = 'N' // vowel inventory for the primary category
	slotCoda     = 'K' // coda inventory for the secondary category
	slotModifier = 'M' // modifier inventory for the grammatical role
)

// fallbackTemplate combines every slot; it is expanded deterministically
// when the attempt budget runs out. The expansion still has to pass the
// rejection constraints, like every candidate.
const fallbackTemplate = "ONKM"

// constructAttempts bounds the randomized search for a non-colliding
// candidate before falling back.
const constructAttempts = 40

// minWordLength is the shortest acceptable wordform.
const minWordLength = 2

// Constructor builds candidate wordforms from syllable templates. It only
// reads the registry; allocation is the builder's job.
type Constructor struct {
	phon *phonology.Config
	rng  *rand.Rand
}

// NewConstructor creates a Constructor using the given phonology and a
// seeded random source. The rand source must be the run-wide instance so
// repeated runs with one seed reproduce the same lexicon.
func NewConstructor(phon *phonology.Config, rng *rand.Rand) *Constructor {
	return &Constructor{phon: phon, rng: rng}
}

// Build produces a candidate wordform for a role and composition vector.
// Up to constructAttempts template expansions are tried; candidates that
// match a rejection constraint, are too short, or are taken under another
// signature are discarded. A candidate already registered for this exact
// signature is reused, not treated as a collision. When the budget is
// exhausted the maximal template is expanded once; if even that violates
// a constraint or is too short, Build returns "" and the caller skips the
// sense. The fallback may still collide; the caller resolves that.
func (c *Constructor) Build(role string, vec domain.CompositionVector, reg *Registry) string {
	primary := vec.Primary()
	secondary := vec.Secondary()
	sig := vec.Signature()
	templates := c.phon.TemplatesFor(role)

	for i := 0; i < constructAttempts; i++ {
		tpl := templates[c.rng.Intn(len(templates))]
		raw := c.expand(tpl, role, primary, secondary)

		if _, bad := c.phon.Reject(raw); bad {
			continue
		}
		polished := c.phon.ApplyOrthography(raw)
		if len(polished) < minWordLength {
			continue
		}
		if !reg.Contains(polished) || reg.HasSignature(polished, sig) {
			return polished
		}
	}

	fallback := c.phon.ApplyOrthography(c.expand(fallbackTemplate, role, primary, secondary))
	if _, bad := c.phon.Reject(fallback); bad {
		return ""
	}
	if len(fallback) < minWordLength {
		return ""
	}
	return fallback
}

// BuildBanded is the length-constrained variant used by short-stem tuning:
// it assembles onset+vowel+optional tail combinations until one lands inside
// [minLen, maxLen] and is free (or already carries the same signature).
// Returns "" when the attempt budget is exhausted.
func (c *Constructor) BuildBanded(role string, vec domain.CompositionVector, minLen, maxLen int, reg *Registry) string {
	const attempts = 200

	primary := vec.Primary()
	secondary := vec.Secondary()
	sig := vec.Signature()

	onsets := append([]string{""}, c.phon.OnsetsFor(role)...)
	vowels := c.phon.VowelsFor(primary)
	codas := append([]string{""}, c.phon.CodasFor(secondary)...)
	modifiers := append([]string{""}, c.phon.ModifiersFor(role)...)

	for i := 0; i < attempts; i++ {
		var tail string
		switch c.rng.Intn(3) {
		case 0:
			tail = codas[c.rng.Intn(len(codas))]
		case 1:
			tail = modifiers[c.rng.Intn(len(modifiers))]
		default:
			tail = codas[c.rng.Intn(len(codas))] + modifiers[c.rng.Intn(len(modifiers))]
		}

		candidate := onsets[c.rng.Intn(len(onsets))] + vowels[c.rng.Intn(len(vowels))] + tail
		if len(candidate) < minLen || len(candidate) > maxLen {
			continue
		}
		if _, bad := c.phon.Reject(candidate); bad {
			continue
		}
		candidate = c.phon.ApplyOrthography(candidate)
		if len(candidate) < minLen || len(candidate) > maxLen {
			continue
		}
		if !reg.Contains(candidate) || reg.HasSignature(candidate, sig) {
			return candidate
		}
	}
	return ""
}

// expand instantiates a single template. Slot symbols draw from the
// matching inventory; spaces vanish; everything else passes through.
func (c *Constructor) expand(tpl, role, primary, secondary string) string {
	var b strings.Builder
	for _, sym := range tpl {
		switch sym {
		case slotOnset:
			b.WriteString(c.pick(c.phon.OnsetsFor(role)))
		case slotNucleus:
			b.WriteString(c.pick(c.phon.VowelsFor(primary)))
		case slotCoda:
			b.WriteString(c.pick(c.phon.CodasFor(secondary)))
		case slotModifier:
			b.WriteString(c.pick(c.phon.ModifiersFor(role)))
		case ' ':
			// literal space: placeholder only, contributes nothing
		default:
			b.WriteRune(sym)
		}
	}
	return b.String()
}

func (c *Constructor) pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[c.rng.Intn(len(options))]
}
