package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/solivagus/runesmith/internal/domain"
	"github.com/solivagus/runesmith/internal/phonology"
)

// Compound joining strategy names, matched against morphology
// compound_strategies.
const (
	StrategyConnector = "connector"
	StrategySuffix    = "suffix"
	StrategyBoth      = "both"
)

// minImplicitHalf is the shortest stem half considered when splitting an
// implicit compound.
const minImplicitHalf = 3

// Assembler resolves compound stems into the wordforms of their parts and
// joins those wordforms morphologically. It reads the live sense table, so
// parts minted earlier in the run are visible immediately.
type Assembler struct {
	phon   *phonology.Config
	rng    *rand.Rand
	senses map[string]*domain.Sense

	// stemIndex maps each simple stem to its sense keys, best candidate
	// first. Rebuilt by Reindex.
	stemIndex map[string][]string
}

// NewAssembler creates an Assembler over a sense table and indexes it.
func NewAssembler(phon *phonology.Config, rng *rand.Rand, senses map[string]*domain.Sense) *Assembler {
	a := &Assembler{phon: phon, rng: rng, senses: senses}
	a.Reindex()
	return a
}

// Reindex rebuilds the stem index from the sense table. Per stem, sense keys
// are ordered noun senses first, then verb senses, then the rest, each group
// by ascending sense index with the key itself as the final tiebreak.
func (a *Assembler) Reindex() {
	a.stemIndex = make(map[string][]string)
	for key, s := range a.senses {
		if s.IsCompound() {
			continue
		}
		a.stemIndex[s.Stem] = append(a.stemIndex[s.Stem], key)
	}
	for stem, keys := range a.stemIndex {
		sort.Slice(keys, func(i, j int) bool {
			si, sj := a.senses[keys[i]], a.senses[keys[j]]
			ri, rj := rolePriority(si.Role), rolePriority(sj.Role)
			if ri != rj {
				return ri < rj
			}
			if si.SenseIndex != sj.SenseIndex {
				return si.SenseIndex < sj.SenseIndex
			}
			return keys[i] < keys[j]
		})
		a.stemIndex[stem] = keys
	}
}

func rolePriority(role string) int {
	switch role {
	case "n":
		return 0
	case "v":
		return 1
	default:
		return 2
	}
}

// ResolveParts maps a compound stem to the wordforms of its constituents.
//
// A stem containing the delimiter is split on it and every part must resolve
// to an already-worded sense. A delimiter-free stem is split implicitly: the
// leftmost position where both halves are at least minImplicitHalf characters
// and both resolve wins. Failure to find two resolvable parts yields
// ErrCompoundUnresolvable.
func (a *Assembler) ResolveParts(stem string) ([]string, error) {
	if strings.Contains(stem, domain.CompoundDelimiter) {
		parts := strings.Split(stem, domain.CompoundDelimiter)
		words := make([]string, 0, len(parts))
		for _, part := range parts {
			if part == "" {
				continue
			}
			w, ok := a.wordFor(part)
			if !ok {
				return nil, fmt.Errorf("compound %q: part %q has no wordform: %w",
					stem, part, domain.ErrCompoundUnresolvable)
			}
			words = append(words, w)
		}
		if len(words) < 2 {
			return nil, fmt.Errorf("compound %q: fewer than two parts: %w",
				stem, domain.ErrCompoundUnresolvable)
		}
		return words, nil
	}

	for i := minImplicitHalf; i <= len(stem)-minImplicitHalf; i++ {
		left, right := stem[:i], stem[i:]
		lw, lok := a.wordFor(left)
		rw, rok := a.wordFor(right)
		if lok && rok {
			return []string{lw, rw}, nil
		}
	}
	return nil, fmt.Errorf("compound %q: no split into known stems: %w",
		stem, domain.ErrCompoundUnresolvable)
}

// wordFor returns the best available wordform for a simple stem: the first
// indexed sense that already carries a word.
func (a *Assembler) wordFor(stem string) (string, bool) {
	for _, key := range a.stemIndex[stem] {
		if w := a.senses[key].Word; w != "" {
			return w, true
		}
	}
	return "", false
}

// Join merges part wordforms into a single compound form using the named
// strategy. An empty strategy picks one at random from the morphology's
// strategy list. The result passes through the orthographic rewrites.
func (a *Assembler) Join(words []string, strategy string) string {
	m := a.phon.Morphology()
	if strategy == "" && len(m.CompoundStrategies) > 0 {
		strategy = m.CompoundStrategies[a.rng.Intn(len(m.CompoundStrategies))]
	}

	var joined string
	switch strategy {
	case StrategySuffix:
		joined = strings.Join(words, "") + a.pickSuffix()
	case StrategyBoth:
		joined = strings.Join(words, a.pickConnector()) + a.pickSuffix()
	default: // StrategyConnector and anything unrecognized
		joined = strings.Join(words, a.pickConnector())
	}
	return a.phon.ApplyOrthography(joined)
}

func (a *Assembler) pickConnector() string {
	conns := a.phon.Morphology().Connectors
	if len(conns) == 0 {
		return ""
	}
	return conns[a.rng.Intn(len(conns))]
}

func (a *Assembler) pickSuffix() string {
	sfx := a.phon.Morphology().Suffixes
	if len(sfx) == 0 {
		return ""
	}
	return sfx[a.rng.Intn(len(sfx))]
}
