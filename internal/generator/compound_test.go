package generator

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solivagus/runesmith/internal/domain"
	"github.com/solivagus/runesmith/internal/phonology"
)

func mkSense(stem, role string, index int, word string) *domain.Sense {
	return &domain.Sense{
		Key:         domain.FormatSenseKey(stem, role, index),
		Stem:        stem,
		Role:        role,
		SenseIndex:  index,
		Composition: domain.CompositionVector{"earth": 10},
		Word:        word,
	}
}

func senseTable(senses ...*domain.Sense) map[string]*domain.Sense {
	m := make(map[string]*domain.Sense, len(senses))
	for _, s := range senses {
		m[s.Key] = s
	}
	return m
}

// joinPhonology pins morphology down to one connector and one suffix so Join
// output is exact.
func joinPhonology() *phonology.Config {
	return phonology.New(phonology.Document{
		Morphology: phonology.Morphology{
			Connectors:         []string{"a'"},
			Suffixes:           []string{"os"},
			CompoundStrategies: []string{"connector"},
		},
	})
}

func TestAssembler_ResolvePartsExplicit(t *testing.T) {
	asm := NewAssembler(joinPhonology(), rand.New(rand.NewSource(1)), senseTable(
		mkSense("run", "v", 1, "tek"),
		mkSense("fast", "a", 1, "sol"),
	))

	parts, err := asm.ResolveParts("run_fast")
	require.NoError(t, err)
	assert.Equal(t, []string{"tek", "sol"}, parts)
}

func TestAssembler_ExplicitPrefersNounOverVerb(t *testing.T) {
	asm := NewAssembler(joinPhonology(), rand.New(rand.NewSource(1)), senseTable(
		mkSense("run", "v", 1, "tek"),
		mkSense("run", "n", 1, "nura"),
		mkSense("run", "n", 2, "nuri"),
		mkSense("fast", "a", 1, "sol"),
	))

	parts, err := asm.ResolveParts("run_fast")
	require.NoError(t, err)
	assert.Equal(t, []string{"nura", "sol"}, parts, "noun sense with the lowest index wins")
}

func TestAssembler_ExplicitSkipsUnwordedSenses(t *testing.T) {
	asm := NewAssembler(joinPhonology(), rand.New(rand.NewSource(1)), senseTable(
		mkSense("run", "n", 1, ""), // preferred but not worded yet
		mkSense("run", "v", 1, "tek"),
		mkSense("fast", "a", 1, "sol"),
	))

	parts, err := asm.ResolveParts("run_fast")
	require.NoError(t, err)
	assert.Equal(t, []string{"tek", "sol"}, parts)
}

func TestAssembler_ExplicitMissingPartFails(t *testing.T) {
	asm := NewAssembler(joinPhonology(), rand.New(rand.NewSource(1)), senseTable(
		mkSense("run", "v", 1, "tek"),
	))

	_, err := asm.ResolveParts("run_fast")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompoundUnresolvable))
}

func TestAssembler_ImplicitLeftmostSplit(t *testing.T) {
	asm := NewAssembler(joinPhonology(), rand.New(rand.NewSource(1)), senseTable(
		mkSense("sun", "n", 1, "zua"),
		mkSense("fire", "n", 1, "kay"),
		mkSense("sunf", "n", 1, "gua"),
		mkSense("ire", "n", 1, "iru"),
	))

	// Both sun|fire and sunf|ire are valid splits; the leftmost wins.
	parts, err := asm.ResolveParts("sunfire")
	require.NoError(t, err)
	assert.Equal(t, []string{"zua", "kay"}, parts)
}

func TestAssembler_ImplicitRequiresMinimumHalves(t *testing.T) {
	asm := NewAssembler(joinPhonology(), rand.New(rand.NewSource(1)), senseTable(
		mkSense("ab", "n", 1, "zu"),
		mkSense("ember", "n", 1, "kay"),
	))

	// "ab" is shorter than the minimum half, so "abember" has no valid split.
	_, err := asm.ResolveParts("abember")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCompoundUnresolvable))
}

func TestAssembler_JoinStrategies(t *testing.T) {
	asm := NewAssembler(joinPhonology(), rand.New(rand.NewSource(1)), senseTable())
	parts := []string{"tek", "sol"}

	assert.Equal(t, "teka'sol", asm.Join(parts, StrategyConnector))
	assert.Equal(t, "teksolos", asm.Join(parts, StrategySuffix))
	assert.Equal(t, "teka'solos", asm.Join(parts, StrategyBoth))

	// Empty strategy draws from the configured list, which holds only the
	// connector strategy here.
	assert.Equal(t, "teka'sol", asm.Join(parts, ""))
}

func TestAssembler_JoinAppliesOrthography(t *testing.T) {
	phon := phonology.New(phonology.Document{
		Morphology: phonology.Morphology{
			Connectors:         []string{""},
			Suffixes:           []string{"os"},
			CompoundStrategies: []string{"connector"},
		},
		Orthography: []phonology.Rewrite{{From: "aa", To: "ai"}},
	})
	asm := NewAssembler(phon, rand.New(rand.NewSource(1)), senseTable())

	assert.Equal(t, "taira", asm.Join([]string{"ta", "ara"}, StrategyConnector))
}
