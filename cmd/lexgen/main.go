// Command lexgen synthesizes a constructed-language lexicon from a
// vocabulary of semantic compositions and writes it as JSON. It runs
// offline; loading the result into PostgreSQL is dbload's job.
//
// Flags (each overrides its GENERATOR_* config counterpart):
//
//	--vocab       path to the vocabulary JSON file (required)
//	--phonology   path to a phonology YAML/JSON file (default: built-in)
//	--out         output lexicon path
//	--seed        random seed for deterministic generation
//	--wordlist    optional plain-text stem list to backfill
//	--runic       emit runic transliterations
//	--tune-short  shorten wordforms of short stems
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/solivagus/runesmith/internal/app"
	"github.com/solivagus/runesmith/internal/config"
	"github.com/solivagus/runesmith/internal/domain"
	"github.com/solivagus/runesmith/internal/generator"
	"github.com/solivagus/runesmith/internal/phonology"
	"github.com/solivagus/runesmith/internal/vocab"
)

func main() {
	vocabFlag := flag.String("vocab", "", "path to vocabulary JSON file")
	phonologyFlag := flag.String("phonology", "", "path to phonology file (default: built-in)")
	outFlag := flag.String("out", "", "output lexicon path")
	seedFlag := flag.Int64("seed", 0, "random seed (default: from config)")
	wordlistFlag := flag.String("wordlist", "", "path to plain-text stem list to backfill")
	runicFlag := flag.Bool("runic", false, "emit runic transliterations")
	tuneFlag := flag.Bool("tune-short", false, "shorten wordforms of short stems")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	// CLI flags override config.
	gen := cfg.Generator
	if *vocabFlag != "" {
		gen.VocabPath = *vocabFlag
	}
	if *phonologyFlag != "" {
		gen.PhonologyPath = *phonologyFlag
	}
	if *outFlag != "" {
		gen.OutputPath = *outFlag
	}
	if *seedFlag != 0 {
		gen.Seed = *seedFlag
	}
	if *wordlistFlag != "" {
		gen.WordlistPath = *wordlistFlag
	}
	if *runicFlag {
		gen.Runic = true
	}
	if *tuneFlag {
		gen.TuneShortStems = true
	}

	if gen.VocabPath == "" {
		logger.Error("no vocabulary file given (use --vocab or GENERATOR_VOCAB_PATH)")
		os.Exit(1)
	}

	phon, err := phonology.Load(gen.PhonologyPath)
	if err != nil {
		// Load falls back to the built-in phonology; note why and continue.
		logger.Warn("phonology degraded to defaults", slog.String("error", err.Error()))
	}

	senses, err := vocab.ReadVocabulary(gen.VocabPath)
	if err != nil {
		if errors.Is(err, domain.ErrVocabularyMalformed) {
			logger.Error("vocabulary malformed, nothing written",
				slog.String("path", gen.VocabPath),
				slog.String("error", err.Error()),
			)
		} else {
			logger.Error("read vocabulary", slog.String("error", err.Error()))
		}
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	builder := generator.NewBuilder(
		logger,
		phon,
		rand.New(rand.NewSource(gen.Seed)),
		senses,
		generator.Options{
			Wordlist:        vocab.ReadWordlist(gen.WordlistPath),
			Runic:           gen.Runic,
			TuneShortStems:  gen.TuneShortStems,
			CompoundRetries: gen.CompoundRetries,
		},
	)

	stats, err := builder.Run(ctx)
	if err != nil {
		logger.Error("lexicon build failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := vocab.WriteLexicon(gen.OutputPath, senses); err != nil {
		logger.Error("write lexicon", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("lexicon written",
		slog.String("path", gen.OutputPath),
		slog.Int64("seed", gen.Seed),
		slog.Int("bases", stats.Bases),
		slog.Int("compounds", stats.Compounds),
		slog.Int("backfilled", stats.Backfilled),
		slog.Int("skipped", stats.Skipped),
	)
}
