package config

import "time"

// Config is the root application configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Database  DatabaseConfig  `yaml:"database"`
	Generator GeneratorConfig `yaml:"generator"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only the loader
// command needs a DSN; generation runs without a database.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	BatchSize       int           `yaml:"batch_size"         env:"DATABASE_BATCH_SIZE"         env-default:"500"`
}

// GeneratorConfig holds lexicon generation settings. CLI flags override
// every field here.
type GeneratorConfig struct {
	Seed            int64  `yaml:"seed"             env:"GENERATOR_SEED"             env-default:"1"`
	VocabPath       string `yaml:"vocab_path"       env:"GENERATOR_VOCAB_PATH"`
	PhonologyPath   string `yaml:"phonology_path"   env:"GENERATOR_PHONOLOGY_PATH"`
	OutputPath      string `yaml:"output_path"      env:"GENERATOR_OUTPUT_PATH"      env-default:"lexicon.json"`
	WordlistPath    string `yaml:"wordlist_path"    env:"GENERATOR_WORDLIST_PATH"`
	Runic           bool   `yaml:"runic"            env:"GENERATOR_RUNIC"            env-default:"false"`
	TuneShortStems  bool   `yaml:"tune_short_stems" env:"GENERATOR_TUNE_SHORT_STEMS" env-default:"false"`
	CompoundRetries int    `yaml:"compound_retries" env:"GENERATOR_COMPOUND_RETRIES" env-default:"20"`
}
