package vocab

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/solivagus/runesmith/internal/domain"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadVocabulary(t *testing.T) {
	path := writeTemp(t, `{
		"cat.n.01": {"composition": {"earth": 60, "wood": 10}, "definition": "a small feline"},
		"run.v.02": {"composition": {"fire": 30}},
		"odd": {"definition": "no role, no composition"}
	}`)

	senses, err := ReadVocabulary(path)
	if err != nil {
		t.Fatalf("ReadVocabulary: %v", err)
	}
	if len(senses) != 3 {
		t.Fatalf("expected 3 senses, got %d", len(senses))
	}

	cat := senses["cat.n.01"]
	if cat.Stem != "cat" || cat.Role != "n" || cat.SenseIndex != 1 {
		t.Errorf("cat key parsed wrong: %+v", cat)
	}
	if cat.Composition["earth"] != 60 {
		t.Errorf("cat composition: %v", cat.Composition)
	}
	if cat.Definition != "a small feline" {
		t.Errorf("cat definition: %q", cat.Definition)
	}

	run := senses["run.v.02"]
	if run.Role != "v" || run.SenseIndex != 2 {
		t.Errorf("run key parsed wrong: %+v", run)
	}
	if run.Definition != "" {
		t.Errorf("missing definition should stay empty, got %q", run.Definition)
	}

	odd := senses["odd"]
	if odd.Role != domain.DefaultRole || odd.SenseIndex != 1 {
		t.Errorf("bare key should get defaults: %+v", odd)
	}
	if !odd.Composition.IsZero() {
		t.Errorf("missing composition should be the zero vector: %v", odd.Composition)
	}
}

func TestReadVocabulary_Malformed(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") },
		},
		{
			name: "invalid json",
			path: func(t *testing.T) string { return writeTemp(t, `{"cat.n.01": `) },
		},
		{
			name: "non-object document",
			path: func(t *testing.T) string { return writeTemp(t, `["cat.n.01"]`) },
		},
		{
			name: "null document",
			path: func(t *testing.T) string { return writeTemp(t, `null`) },
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadVocabulary(tc.path(t))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, domain.ErrVocabularyMalformed) {
				t.Errorf("expected ErrVocabularyMalformed, got %v", err)
			}
		})
	}
}
