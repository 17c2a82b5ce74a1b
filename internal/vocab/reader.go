// Package vocab reads the classified source vocabulary and writes the
// generated lexicon. Both sides speak JSON keyed by sense key.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/solivagus/runesmith/internal/domain"
)

// senseRecord mirrors one vocabulary entry on disk.
type senseRecord struct {
	Composition map[string]int `json:"composition"`
	Definition  string         `json:"definition"`
}

// ReadVocabulary parses a vocabulary file into a sense table keyed by sense
// key. Parsing is tolerant at the entry level (missing composition becomes a
// zero vector, definitions may be empty) but strict at the document level: an
// unreadable file or a non-object document wraps ErrVocabularyMalformed and
// the caller must not produce any output.
func ReadVocabulary(path string) (map[string]*domain.Sense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vocabulary %s: %v: %w", path, err, domain.ErrVocabularyMalformed)
	}

	var records map[string]senseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("vocabulary %s: %v: %w", path, err, domain.ErrVocabularyMalformed)
	}
	// A JSON null unmarshals into a nil map without error.
	if records == nil {
		return nil, fmt.Errorf("vocabulary %s: document is not an object: %w", path, domain.ErrVocabularyMalformed)
	}

	senses := make(map[string]*domain.Sense, len(records))
	for key, rec := range records {
		stem, role, index := domain.ParseSenseKey(key)
		vec := domain.CompositionVector{}
		for cat, val := range rec.Composition {
			vec[cat] = val
		}
		senses[key] = &domain.Sense{
			Key:         key,
			Stem:        stem,
			Role:        role,
			SenseIndex:  index,
			Composition: vec,
			Definition:  rec.Definition,
		}
	}
	return senses, nil
}
