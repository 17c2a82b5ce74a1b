// Command dbload loads a generated lexicon JSON file into PostgreSQL.
// It applies pending goose migrations first, then bulk-inserts the
// entries; reruns skip already-loaded sense keys, so the command is
// idempotent.
//
// Flags:
//
//	--lexicon     path to the generated lexicon file (default: from config)
//	--migrations  path to the migrations directory (default: ./migrations)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/solivagus/runesmith/internal/adapter/postgres"
	"github.com/solivagus/runesmith/internal/adapter/postgres/lexicon"
	"github.com/solivagus/runesmith/internal/app"
	"github.com/solivagus/runesmith/internal/config"
	"github.com/solivagus/runesmith/internal/vocab"
)

func main() {
	lexiconFlag := flag.String("lexicon", "", "path to the generated lexicon file")
	migrationsFlag := flag.String("migrations", "./migrations", "path to the migrations directory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Database.DSN == "" {
		logger.Error("no database DSN configured (set DATABASE_DSN)")
		os.Exit(1)
	}

	path := cfg.Generator.OutputPath
	if *lexiconFlag != "" {
		path = *lexiconFlag
	}

	senses, err := vocab.ReadLexicon(path)
	if err != nil {
		logger.Error("read lexicon", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := migrate(ctx, cfg.Database.DSN, *migrationsFlag); err != nil {
		logger.Error("apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	rows := make([]lexicon.Row, 0, len(senses))
	for _, s := range senses {
		rows = append(rows, lexicon.FromSense(s))
	}

	repo := lexicon.New(pool)
	inserted, err := repo.BulkInsert(ctx, rows, cfg.Database.BatchSize)
	if err != nil {
		logger.Error("bulk insert", slog.String("error", err.Error()))
		os.Exit(1)
	}

	total, err := repo.Count(ctx)
	if err != nil {
		logger.Error("count entries", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("lexicon loaded",
		slog.String("path", path),
		slog.Int("read", len(rows)),
		slog.Int("inserted", inserted),
		slog.Int("skipped", len(rows)-inserted),
		slog.Int("total", total),
	)
}

// migrate applies pending goose migrations over database/sql (goose
// requires *sql.DB, the pool is created afterwards).
func migrate(ctx context.Context, dsn, dir string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(dir))
	if err != nil {
		return err
	}
	_, err = provider.Up(ctx)
	return err
}
