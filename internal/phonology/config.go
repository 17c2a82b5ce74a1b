// Package phonology holds the read-only phonotactic configuration driving
// word construction: phoneme inventories keyed by grammatical role and
// semantic category, syllable templates, morphological joining rules,
// orthographic rewrites and rejection constraints.
//
// A Config is loaded once (or built from built-in defaults) and never
// mutated afterwards, so it is safe to share without synchronization.
package phonology

import (
	"regexp"
	"sort"
	"strings"

	"github.com/solivagus/runesmith/internal/domain"
)

// DefaultTemplateKey is the template-list key used for unrecognized roles.
const DefaultTemplateKey = "default"

// Morphology describes how compound wordforms are joined.
type Morphology struct {
	Connectors         []string `yaml:"connectors"          json:"connectors"`
	Suffixes           []string `yaml:"suffixes"            json:"suffixes"`
	CompoundStrategies []string `yaml:"compound_strategies" json:"compound_strategies"`
}

// Constraint is a rejection rule: candidates matching Pattern are discarded.
type Constraint struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Reason  string `yaml:"reason"  json:"reason"`

	re *regexp.Regexp
}

// Rewrite is an ordered orthographic rule. Every occurrence of From is
// replaced with To; rules are applied in declared order.
type Rewrite struct {
	From string `yaml:"from" json:"from"`
	To   string `yaml:"to"   json:"to"`
}

// Document mirrors the on-disk phonology file (YAML or JSON).
type Document struct {
	OnsetPhones      map[string][]string `yaml:"onset_phones"      json:"onset_phones"`
	NucleusVowels    map[string][]string `yaml:"nucleus_vowels"    json:"nucleus_vowels"`
	NucleusModifiers map[string][]string `yaml:"nucleus_modifiers" json:"nucleus_modifiers"`
	Coda             map[string][]string `yaml:"coda"              json:"coda"`
	Templates        map[string][]string `yaml:"templates"         json:"templates"`
	Morphology       Morphology          `yaml:"morphology"        json:"morphology"`
	Constraints      []Constraint        `yaml:"constraints"       json:"constraints"`
	Orthography      []Rewrite           `yaml:"orthography"       json:"orthography"`
}

// Config is the compiled, immutable phonology.
type Config struct {
	onsets     map[string][]string
	vowels     map[string][]string
	modifiers  map[string][]string
	codas      map[string][]string
	templates  map[string][]string
	morphology Morphology

	constraints []Constraint
	orthography []Rewrite

	units  []string // full phoneme alphabet, longest-first
	pool   []string // all vowels, longest-first
	vowSet map[string]bool
}

// newConfig compiles a Document into a Config. Fallback keys (default role,
// default category, default template list) are guaranteed non-empty by
// borrowing from the built-in defaults when the document omits them.
// Constraints with patterns that do not compile are dropped.
func newConfig(doc Document) *Config {
	def := defaultDocument()

	cfg := &Config{
		onsets:      withFallbackKey(doc.OnsetPhones, domain.DefaultRole, def.OnsetPhones),
		vowels:      withFallbackKey(doc.NucleusVowels, domain.DefaultCategory, def.NucleusVowels),
		modifiers:   withFallbackKey(doc.NucleusModifiers, domain.DefaultRole, def.NucleusModifiers),
		codas:       withFallbackKey(doc.Coda, domain.DefaultCategory, def.Coda),
		templates:   withFallbackKey(doc.Templates, DefaultTemplateKey, def.Templates),
		morphology:  doc.Morphology,
		orthography: doc.Orthography,
	}

	if len(cfg.morphology.Connectors) == 0 {
		cfg.morphology.Connectors = def.Morphology.Connectors
	}
	if len(cfg.morphology.Suffixes) == 0 {
		cfg.morphology.Suffixes = def.Morphology.Suffixes
	}
	if len(cfg.morphology.CompoundStrategies) == 0 {
		cfg.morphology.CompoundStrategies = def.Morphology.CompoundStrategies
	}

	for _, c := range doc.Constraints {
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			continue
		}
		c.re = re
		cfg.constraints = append(cfg.constraints, c)
	}

	cfg.buildAlphabet()
	return cfg
}

// New compiles a Document into a ready-to-use Config.
func New(doc Document) *Config {
	return newConfig(doc)
}

// withFallbackKey copies m and makes sure m[key] is non-empty, borrowing the
// whole map (or just the key) from the defaults.
func withFallbackKey(m map[string][]string, key string, def map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		if len(v) > 0 {
			out[k] = v
		}
	}
	if len(out[key]) == 0 {
		out[key] = def[key]
	}
	return out
}

func (c *Config) buildAlphabet() {
	unitSet := make(map[string]bool)
	c.vowSet = make(map[string]bool)
	for _, m := range []map[string][]string{c.onsets, c.vowels, c.modifiers, c.codas} {
		for _, list := range m {
			for _, u := range list {
				unitSet[u] = true
			}
		}
	}
	for _, list := range c.vowels {
		for _, v := range list {
			c.vowSet[v] = true
		}
	}

	c.units = sortedLongestFirst(unitSet)
	c.pool = sortedLongestFirst(c.vowSet)
}

// sortedLongestFirst orders units by descending length, then lexicographically,
// so longest-match tokenization and vowel selection are deterministic.
func sortedLongestFirst(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for u := range set {
		if u != "" {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

// OnsetsFor returns the onset inventory for a grammatical role, falling back
// to the default role's inventory for unknown roles. Never empty.
func (c *Config) OnsetsFor(role string) []string {
	if list, ok := c.onsets[role]; ok && len(list) > 0 {
		return list
	}
	return c.onsets[domain.DefaultRole]
}

// VowelsFor returns the nucleus vowel inventory for a semantic category,
// falling back to the default category. Never empty.
func (c *Config) VowelsFor(category string) []string {
	if list, ok := c.vowels[category]; ok && len(list) > 0 {
		return list
	}
	return c.vowels[domain.DefaultCategory]
}

// CodasFor returns the coda inventory for a semantic category, falling back
// to the default category. Never empty.
func (c *Config) CodasFor(category string) []string {
	if list, ok := c.codas[category]; ok && len(list) > 0 {
		return list
	}
	return c.codas[domain.DefaultCategory]
}

// ModifiersFor returns the nucleus modifier inventory for a grammatical role,
// falling back to the default role. Never empty.
func (c *Config) ModifiersFor(role string) []string {
	if list, ok := c.modifiers[role]; ok && len(list) > 0 {
		return list
	}
	return c.modifiers[domain.DefaultRole]
}

// TemplatesFor returns the syllable template list for a grammatical role,
// falling back to the default template list. Never empty.
func (c *Config) TemplatesFor(role string) []string {
	if list, ok := c.templates[role]; ok && len(list) > 0 {
		return list
	}
	return c.templates[DefaultTemplateKey]
}

// Morphology returns the compound joining rules.
func (c *Config) Morphology() Morphology {
	return c.morphology
}

// Reject tests a candidate against every rejection constraint in order and
// returns the first matching rule's reason.
func (c *Config) Reject(word string) (string, bool) {
	for _, rule := range c.constraints {
		if rule.re.MatchString(word) {
			return rule.Reason, true
		}
	}
	return "", false
}

// ApplyOrthography applies the rewrite rules in declared order. Every rule
// replaces all occurrences of its literal From substring.
func (c *Config) ApplyOrthography(word string) string {
	for _, rule := range c.orthography {
		word = strings.ReplaceAll(word, rule.From, rule.To)
	}
	return word
}

// Orthography returns the ordered rewrite rules.
func (c *Config) Orthography() []Rewrite {
	return c.orthography
}

// PhonemeUnits returns the full phoneme alphabet across all inventories,
// longest units first (digraphs before single characters).
func (c *Config) PhonemeUnits() []string {
	return c.units
}

// VowelPool returns every vowel unit across all categories, longest first.
func (c *Config) VowelPool() []string {
	return c.pool
}

// IsVowel reports whether a phoneme unit belongs to any vowel inventory.
func (c *Config) IsVowel(unit string) bool {
	return c.vowSet[unit]
}

// Tokenize splits a word into phoneme units by longest match against the
// full alphabet. Characters outside the alphabet become single-rune tokens.
func (c *Config) Tokenize(word string) []string {
	var tokens []string
	for i := 0; i < len(word); {
		matched := false
		for _, u := range c.units {
			if len(u) > 1 && i+len(u) <= len(word) && word[i:i+len(u)] == u {
				tokens = append(tokens, u)
				i += len(u)
				matched = true
				break
			}
		}
		if !matched {
			tokens = append(tokens, word[i:i+1])
			i++
		}
	}
	return tokens
}
