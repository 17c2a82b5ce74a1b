package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solivagus/runesmith/internal/domain"
)

func TestRegistry_RegisterAndContains(t *testing.T) {
	reg := NewRegistry()
	assert.False(t, reg.Contains("duna"))

	sig := domain.CompositionVector{"earth": 40}.Signature()
	reg.Register("duna", sig)

	assert.True(t, reg.Contains("duna"))
	assert.True(t, reg.HasSignature("duna", sig))
	assert.False(t, reg.HasSignature("duna", domain.CompositionVector{"fire": 40}.Signature()))
	assert.Equal(t, 1, reg.Len())

	// Re-registering the same pair changes nothing.
	reg.Register("duna", sig)
	assert.Equal(t, 1, reg.Len())
	assert.Len(t, reg.SignaturesFor("duna"), 1)
}

func TestRegistry_MultipleSignaturesPerWord(t *testing.T) {
	reg := NewRegistry()
	a := domain.CompositionVector{"earth": 40}.Signature()
	b := domain.CompositionVector{"fire": 20}.Signature()

	reg.Register("sol", a)
	reg.Register("sol", b)

	assert.Equal(t, 1, reg.Len())
	assert.Len(t, reg.SignaturesFor("sol"), 2)
	assert.True(t, reg.HasSignature("sol", a))
	assert.True(t, reg.HasSignature("sol", b))
}

func TestRegistry_History(t *testing.T) {
	reg := NewRegistry()
	vec := domain.CompositionVector{"water": 30}

	assert.Empty(t, reg.HistoryFor("sea"))

	reg.AppendHistory("sea", vec, "mou")
	entries := reg.HistoryFor("sea")
	assert.Len(t, entries, 1)
	assert.Equal(t, "mou", entries[0].Word)

	// The returned slice is a copy.
	entries[0].Word = "mutated"
	assert.Equal(t, "mou", reg.HistoryFor("sea")[0].Word)
}

func TestRegistry_WordsSorted(t *testing.T) {
	reg := NewRegistry()
	sig := domain.CompositionVector{}.Signature()
	for _, w := range []string{"zu", "du", "ku"} {
		reg.Register(w, sig)
	}
	assert.Equal(t, []string{"du", "ku", "zu"}, reg.Words())
}
