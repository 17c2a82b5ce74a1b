package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/solivagus/runesmith/internal/domain"
)

// lexiconEntry is one output record: the input echoed back plus the
// generated wordform.
type lexiconEntry struct {
	Word        string         `json:"word"`
	Runic       string         `json:"runic,omitempty"`
	Definition  string         `json:"definition"`
	Composition map[string]int `json:"composition"`
}

// WriteLexicon writes the generated lexicon as pretty-printed JSON. Senses
// without an assigned wordform are omitted; the builder accounts for them
// separately. Output is deterministic: keys are emitted in sorted order.
func WriteLexicon(path string, senses map[string]*domain.Sense) error {
	entries := make(map[string]lexiconEntry, len(senses))
	for key, s := range senses {
		if s.Word == "" {
			continue
		}
		entries[key] = lexiconEntry{
			Word:        s.Word,
			Runic:       s.Runic,
			Definition:  s.Definition,
			Composition: s.Composition,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal lexicon: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write lexicon %s: %w", path, err)
	}
	return nil
}

// ReadLexicon parses a generated lexicon file back into a sense table, words
// included. Used by the database loader; strict, unlike ReadVocabulary, since
// the file is machine-written.
func ReadLexicon(path string) (map[string]*domain.Sense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}

	var entries map[string]lexiconEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}

	senses := make(map[string]*domain.Sense, len(entries))
	for key, e := range entries {
		stem, role, index := domain.ParseSenseKey(key)
		vec := domain.CompositionVector{}
		for cat, val := range e.Composition {
			vec[cat] = val
		}
		senses[key] = &domain.Sense{
			Key:         key,
			Stem:        stem,
			Role:        role,
			SenseIndex:  index,
			Composition: vec,
			Definition:  e.Definition,
			Word:        e.Word,
			Runic:       e.Runic,
		}
	}
	return senses, nil
}
