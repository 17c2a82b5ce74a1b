package generator

import (
	"sort"
	"sync"

	"github.com/solivagus/runesmith/internal/domain"
)

// HistoryEntry is one (composition, wordform) pair recorded for a stem.
type HistoryEntry struct {
	Vector domain.CompositionVector
	Word   string
}

// Registry tracks every wordform allocated during a run, the composition
// signatures each wordform was allocated for, and the per-stem allocation
// history used for synonym detection.
//
// The registry is the sole shared mutable state of a run: all methods are
// safe for concurrent use. Once registered, a word is never removed within
// a run.
type Registry struct {
	mu      sync.Mutex
	words   map[string]struct{}
	sigs    map[string]map[domain.Signature]struct{}
	history map[string][]HistoryEntry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		words:   make(map[string]struct{}),
		sigs:    make(map[string]map[domain.Signature]struct{}),
		history: make(map[string][]HistoryEntry),
	}
}

// Contains reports whether a wordform has already been allocated.
func (r *Registry) Contains(word string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.words[word]
	return ok
}

// Register records a wordform under a composition signature. Registering the
// same word+signature pair again is a no-op.
func (r *Registry) Register(word string, sig domain.Signature) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.words[word] = struct{}{}
	set, ok := r.sigs[word]
	if !ok {
		set = make(map[domain.Signature]struct{})
		r.sigs[word] = set
	}
	set[sig] = struct{}{}
}

// HasSignature reports whether a wordform was already allocated for the
// given signature.
func (r *Registry) HasSignature(word string, sig domain.Signature) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.sigs[word]
	if !ok {
		return false
	}
	_, ok = set[sig]
	return ok
}

// SignaturesFor returns a copy of the signatures a wordform was allocated for.
func (r *Registry) SignaturesFor(word string) []domain.Signature {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.sigs[word]
	if !ok {
		return nil
	}
	out := make([]domain.Signature, 0, len(set))
	for sig := range set {
		out = append(out, sig)
	}
	return out
}

// AppendHistory records an allocation for a stem.
func (r *Registry) AppendHistory(stem string, vec domain.CompositionVector, word string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history[stem] = append(r.history[stem], HistoryEntry{Vector: vec, Word: word})
}

// HistoryFor returns a copy of the ordered allocation history for a stem.
func (r *Registry) HistoryFor(stem string) []HistoryEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := r.history[stem]
	out := make([]HistoryEntry, len(entries))
	copy(out, entries)
	return out
}

// Words returns a sorted snapshot of every allocated wordform.
func (r *Registry) Words() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.words))
	for w := range r.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of distinct allocated wordforms.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.words)
}
