package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOnlyDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, int64(1), cfg.Generator.Seed)
	assert.Equal(t, "lexicon.json", cfg.Generator.OutputPath)
	assert.Equal(t, 20, cfg.Generator.CompoundRetries)
	assert.Equal(t, 500, cfg.Database.BatchSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("GENERATOR_SEED", "42")
	t.Setenv("GENERATOR_RUNIC", "true")
	t.Setenv("LOG_FORMAT", "text")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Generator.Seed)
	assert.True(t, cfg.Generator.Runic)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
log:
  level: debug
  format: text
generator:
  seed: 7
  vocab_path: vocab.json
  tune_short_stems: true
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, int64(7), cfg.Generator.Seed)
	assert.Equal(t, "vocab.json", cfg.Generator.VocabPath)
	assert.True(t, cfg.Generator.TuneShortStems)
	// Unset fields still pick up env-defaults.
	assert.Equal(t, 20, cfg.Generator.CompoundRetries)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"zero compound retries", func(c *Config) { c.Generator.CompoundRetries = 0 }, true},
		{"zero batch size", func(c *Config) { c.Database.BatchSize = 0 }, true},
		{"max conns below min conns", func(c *Config) { c.Database.MaxConns = 1; c.Database.MinConns = 5 }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{
				Generator: GeneratorConfig{CompoundRetries: 20},
				Database:  DatabaseConfig{BatchSize: 500, MaxConns: 25, MinConns: 5},
			}
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
