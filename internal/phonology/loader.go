package phonology

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads a phonology document (YAML or JSON, chosen by file extension)
// and compiles it. A missing or unparsable file is never fatal: Load then
// returns the built-in default configuration together with a non-nil error
// describing why, so the caller can log the degradation and carry on.
//
// An empty path explicitly requests the defaults and returns no error.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	if _, err := os.Stat(path); err != nil {
		return Default(), fmt.Errorf("phonology: file %s: %w", path, err)
	}

	var doc Document
	if err := cleanenv.ReadConfig(path, &doc); err != nil {
		return Default(), fmt.Errorf("phonology: read %s: %w", path, err)
	}

	return newConfig(doc), nil
}
