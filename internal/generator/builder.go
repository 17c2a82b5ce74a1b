// Package generator implements lexicon synthesis: phonotactic word
// construction from composition vectors, a uniqueness registry, collision
// resolution and compound assembly, orchestrated by a phased Builder.
package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"

	"github.com/solivagus/runesmith/internal/domain"
	"github.com/solivagus/runesmith/internal/phonology"
)

// Options tune a builder run. The zero value is a sensible default.
type Options struct {
	// Wordlist holds extra stems to backfill as noun senses when the
	// vocabulary does not already cover them.
	Wordlist []string

	// Runic enables runic transliteration of every assigned wordform.
	Runic bool

	// TuneShortStems enables the pass that shortens wordforms assigned to
	// short stems.
	TuneShortStems bool

	// CompoundRetries bounds join attempts per compound before falling back
	// to collision resolution. Zero means the default.
	CompoundRetries int
}

const defaultCompoundRetries = 20

// shortStemLimit is the longest stem the tuning pass considers short, and
// tuned wordforms may exceed the stem length by at most shortStemSlack.
const (
	shortStemLimit = 4
	shortStemSlack = 2
)

// Stats summarizes a run for logging and callers.
type Stats struct {
	Bases              int
	Compounds          int
	Reused             int
	Skipped            int
	ResolvedCollisions int
	Backfilled         int
	Tuned              int
	Swept              int
}

// Builder runs the synthesis phases over a mutable sense table. Construction
// order is deterministic: senses are always visited in sorted key order and
// all randomness flows through one seeded source.
type Builder struct {
	log  *slog.Logger
	phon *phonology.Config
	rng  *rand.Rand
	opts Options

	cons *Constructor
	res  *Resolver
	asm  *Assembler
	reg  *Registry

	senses map[string]*domain.Sense
	stats  Stats
}

// NewBuilder wires a builder over a sense table.
func NewBuilder(log *slog.Logger, phon *phonology.Config, rng *rand.Rand, senses map[string]*domain.Sense, opts Options) *Builder {
	if opts.CompoundRetries <= 0 {
		opts.CompoundRetries = defaultCompoundRetries
	}
	return &Builder{
		log:    log,
		phon:   phon,
		rng:    rng,
		opts:   opts,
		cons:   NewConstructor(phon, rng),
		res:    NewResolver(phon, rng),
		asm:    NewAssembler(phon, rng, senses),
		reg:    NewRegistry(),
		senses: senses,
	}
}

// Run executes every phase in order and returns the accumulated stats.
// Individual senses that cannot be worded are skipped and counted, never
// fatal; the context is only consulted between senses.
func (b *Builder) Run(ctx context.Context) (Stats, error) {
	phases := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"bases", b.buildBases},
		{"compounds", b.buildCompounds},
		{"backfill", b.backfillWordlist},
		{"tuning", b.tuneShortStems},
		{"homonym_sweep", b.sweepHomonyms},
	}
	for _, ph := range phases {
		if err := ph.fn(ctx); err != nil {
			return b.stats, fmt.Errorf("phase %s: %w", ph.name, err)
		}
		b.log.Info("phase complete",
			slog.String("phase", ph.name),
			slog.Int("registry_size", b.reg.Len()),
		)
	}

	b.log.Info("lexicon build finished",
		slog.Int("bases", b.stats.Bases),
		slog.Int("compounds", b.stats.Compounds),
		slog.Int("reused", b.stats.Reused),
		slog.Int("skipped", b.stats.Skipped),
		slog.Int("collisions_resolved", b.stats.ResolvedCollisions),
		slog.Int("backfilled", b.stats.Backfilled),
		slog.Int("tuned", b.stats.Tuned),
		slog.Int("homonyms_swept", b.stats.Swept),
	)
	return b.stats, nil
}

// sortedKeys returns the sense keys in deterministic order, optionally
// filtered to compound or non-compound stems.
func (b *Builder) sortedKeys(compounds bool) []string {
	keys := make([]string, 0, len(b.senses))
	for k, s := range b.senses {
		if s.IsCompound() == compounds {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// buildBases words every non-compound sense. A sense whose composition sits
// within the synonym threshold of an earlier sense of the same stem reuses
// that earlier wordform instead of minting a new one.
func (b *Builder) buildBases(ctx context.Context) error {
	for _, key := range b.sortedKeys(false) {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := b.senses[key]
		if s.Word != "" {
			continue
		}

		if prior, ok := b.findSynonym(s.Stem, s.Composition); ok {
			b.assign(s, prior)
			b.stats.Reused++
			continue
		}

		word, err := b.mint(s.Role, s.Composition)
		if err != nil {
			b.log.Warn("sense skipped", slog.String("key", key), slog.Any("error", err))
			b.stats.Skipped++
			continue
		}

		b.assign(s, word)
		b.reg.AppendHistory(s.Stem, s.Composition, word)
		b.stats.Bases++
	}
	return nil
}

// findSynonym looks for an earlier allocation of the stem whose composition
// is fuzzily equal to vec.
func (b *Builder) findSynonym(stem string, vec domain.CompositionVector) (string, bool) {
	for _, entry := range b.reg.HistoryFor(stem) {
		if domain.FuzzyEqual(entry.Vector, vec) {
			return entry.Word, true
		}
	}
	return "", false
}

// mint constructs a fresh wordform for a role and vector, resolving the
// collision when even the fallback template lands on a taken form. A form
// already registered for this exact signature is reused as-is.
func (b *Builder) mint(role string, vec domain.CompositionVector) (string, error) {
	word := b.cons.Build(role, vec, b.reg)
	if len(word) < minWordLength {
		return "", fmt.Errorf("role %q: %w", role, domain.ErrConstructionExhausted)
	}
	if b.reg.Contains(word) && !b.reg.HasSignature(word, vec.Signature()) {
		resolved, err := b.res.Resolve(word, b.reg)
		if err != nil {
			return "", err
		}
		word = resolved
		b.stats.ResolvedCollisions++
	}
	return word, nil
}

// assign records a wordform on a sense and in the registry.
func (b *Builder) assign(s *domain.Sense, word string) {
	s.Word = word
	if b.opts.Runic {
		s.Runic = phonology.ToRunes(word)
	}
	b.reg.Register(word, s.Composition.Signature())
}

// buildCompounds words every compound sense from its parts. Join attempts
// that collide retry with the suffix strategy forced; a compound whose parts
// cannot be resolved is skipped.
func (b *Builder) buildCompounds(ctx context.Context) error {
	b.asm.Reindex()
	for _, key := range b.sortedKeys(true) {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := b.senses[key]
		if s.Word != "" {
			continue
		}

		parts, err := b.asm.ResolveParts(s.Stem)
		if err != nil {
			if !errors.Is(err, domain.ErrCompoundUnresolvable) {
				return err
			}
			b.log.Warn("compound skipped", slog.String("key", key), slog.Any("error", err))
			b.stats.Skipped++
			continue
		}

		word := b.joinUnique(parts)
		if b.reg.Contains(word) {
			resolved, rerr := b.res.Resolve(word, b.reg)
			if rerr != nil {
				b.log.Warn("compound skipped", slog.String("key", key), slog.Any("error", rerr))
				b.stats.Skipped++
				continue
			}
			word = resolved
			b.stats.ResolvedCollisions++
		}

		b.assign(s, word)
		b.reg.AppendHistory(s.Stem, s.Composition, word)
		b.stats.Compounds++
	}
	return nil
}

// joinUnique tries the configured strategies for a free join. The first
// attempt uses a random strategy; later attempts force suffixation, which
// has the most variants.
func (b *Builder) joinUnique(parts []string) string {
	word := b.asm.Join(parts, "")
	for i := 1; i < b.opts.CompoundRetries && b.reg.Contains(word); i++ {
		word = b.asm.Join(parts, StrategySuffix)
	}
	return word
}

// backfillWordlist creates a default noun sense for every wordlist stem the
// vocabulary does not cover, with a composition derived deterministically
// from the stem's letters, and words it like a base sense.
func (b *Builder) backfillWordlist(ctx context.Context) error {
	if len(b.opts.Wordlist) == 0 {
		return nil
	}

	covered := make(map[string]struct{}, len(b.senses))
	for _, s := range b.senses {
		covered[s.Stem] = struct{}{}
	}

	stems := make([]string, len(b.opts.Wordlist))
	copy(stems, b.opts.Wordlist)
	sort.Strings(stems)

	for _, raw := range stems {
		if err := ctx.Err(); err != nil {
			return err
		}
		stem := domain.NormalizeStem(raw)
		if stem == "" {
			continue
		}
		if _, ok := covered[stem]; ok {
			continue
		}
		covered[stem] = struct{}{}

		vec := deriveComposition(stem)
		word, err := b.mint(domain.DefaultRole, vec)
		if err != nil {
			b.stats.Skipped++
			continue
		}

		s := &domain.Sense{
			Key:         domain.FormatSenseKey(stem, domain.DefaultRole, 1),
			Stem:        stem,
			Role:        domain.DefaultRole,
			SenseIndex:  1,
			Composition: vec,
		}
		b.assign(s, word)
		b.reg.AppendHistory(stem, vec, word)
		b.senses[s.Key] = s
		b.stats.Backfilled++
	}
	return nil
}

// deriveComposition maps a stem to a stable composition vector by folding
// its bytes into the category slots.
func deriveComposition(stem string) domain.CompositionVector {
	vec := make(domain.CompositionVector, len(domain.Categories))
	for i := 0; i < len(stem); i++ {
		cat := domain.Categories[i%len(domain.Categories)]
		vec[cat] = (vec[cat] + int(stem[i])) % (domain.MaxIntensity + 1)
	}
	return vec
}

// tuneShortStems replaces the wordform of short stems whose assigned form is
// disproportionately long with a length-banded one, then rebuilds the
// registry so freed forms become available again.
func (b *Builder) tuneShortStems(ctx context.Context) error {
	if !b.opts.TuneShortStems {
		return nil
	}

	changed := false
	for _, key := range b.sortedKeys(false) {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := b.senses[key]
		if s.Word == "" || len(s.Stem) > shortStemLimit {
			continue
		}
		maxLen := len(s.Stem) + shortStemSlack
		if len(s.Word) <= maxLen {
			continue
		}

		tuned := b.cons.BuildBanded(s.Role, s.Composition, minWordLength, maxLen, b.reg)
		if tuned == "" || tuned == s.Word {
			continue
		}

		old := s.Word
		s.Word = tuned
		if b.opts.Runic {
			s.Runic = phonology.ToRunes(tuned)
		}
		b.reg.Register(tuned, s.Composition.Signature())
		b.log.Debug("short stem tuned",
			slog.String("key", key),
			slog.String("from", old),
			slog.String("to", tuned),
		)
		b.stats.Tuned++
		changed = true
	}

	if changed {
		b.rebuildRegistry()
	}
	return nil
}

// rebuildRegistry reconstructs the registry from the current sense table,
// dropping wordforms no sense holds anymore.
func (b *Builder) rebuildRegistry() {
	fresh := NewRegistry()
	for _, key := range b.sortedKeys(false) {
		s := b.senses[key]
		if s.Word == "" {
			continue
		}
		fresh.Register(s.Word, s.Composition.Signature())
		fresh.AppendHistory(s.Stem, s.Composition, s.Word)
	}
	for _, key := range b.sortedKeys(true) {
		s := b.senses[key]
		if s.Word == "" {
			continue
		}
		fresh.Register(s.Word, s.Composition.Signature())
		fresh.AppendHistory(s.Stem, s.Composition, s.Word)
	}
	b.reg = fresh
}

// sweepHomonyms walks the finished table and re-words any sense whose
// wordform is also claimed by an earlier stem, unless the two uses share a
// composition signature (deliberate synonym reuse). The first stem to claim
// a form keeps it.
func (b *Builder) sweepHomonyms(ctx context.Context) error {
	claims := make(map[string]string)

	var keys []string
	keys = append(keys, b.sortedKeys(false)...)
	keys = append(keys, b.sortedKeys(true)...)

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := b.senses[key]
		if s.Word == "" {
			continue
		}

		owner, claimed := claims[s.Word]
		if !claimed {
			claims[s.Word] = s.Stem
			continue
		}
		if owner == s.Stem {
			continue
		}
		if b.reg.HasSignature(s.Word, s.Composition.Signature()) && b.sharesSignature(owner, s) {
			continue
		}

		resolved, err := b.res.Resolve(s.Word, b.reg)
		if err != nil {
			b.log.Warn("homonym unresolved", slog.String("key", key), slog.Any("error", err))
			continue
		}
		old := s.Word
		b.assign(s, resolved)
		b.log.Debug("homonym swept",
			slog.String("key", key),
			slog.String("from", old),
			slog.String("to", resolved),
		)
		b.stats.Swept++
	}
	return nil
}

// sharesSignature reports whether the owning stem allocated the sense's
// wordform for a fuzzily equal composition, which makes the sharing an
// intended synonym rather than an accidental homonym.
func (b *Builder) sharesSignature(owner string, s *domain.Sense) bool {
	for _, entry := range b.reg.HistoryFor(owner) {
		if entry.Word == s.Word && domain.FuzzyEqual(entry.Vector, s.Composition) {
			return true
		}
	}
	return false
}
