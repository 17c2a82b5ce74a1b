// Package lexicon implements the generated-lexicon repository using
// PostgreSQL. Rows are write-once: the loader bulk-inserts a finished
// lexicon and later reruns skip already-loaded sense keys.
package lexicon

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/solivagus/runesmith/internal/adapter/postgres"
	"github.com/solivagus/runesmith/internal/domain"
)

const table = "lexicon_entries"

var columns = []string{
	"id", "sense_key", "stem", "role", "sense_index",
	"word", "runic", "definition", "composition", "created_at",
}

// psql is the shared statement builder with PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Row is one persisted lexicon entry.
type Row struct {
	ID          uuid.UUID
	SenseKey    string
	Stem        string
	Role        string
	SenseIndex  int
	Word        string
	Runic       string
	Definition  string
	Composition domain.CompositionVector
	CreatedAt   time.Time
}

// FromSense builds a Row from a worded sense, minting a fresh row ID.
func FromSense(s *domain.Sense) Row {
	return Row{
		ID:          uuid.New(),
		SenseKey:    s.Key,
		Stem:        s.Stem,
		Role:        s.Role,
		SenseIndex:  s.SenseIndex,
		Word:        s.Word,
		Runic:       s.Runic,
		Definition:  s.Definition,
		Composition: s.Composition,
		CreatedAt:   time.Now().UTC(),
	}
}

// Repo provides lexicon persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new lexicon repository over a pool, transaction or mock.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// BulkInsert inserts rows in chunks of batchSize using multi-row INSERTs.
// Rows whose sense_key is already present are skipped via ON CONFLICT DO
// NOTHING. Returns the number of actually inserted rows.
func (r *Repo) BulkInsert(ctx context.Context, rows []Row, batchSize int) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = len(rows)
	}

	var inserted int
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}

		builder := psql.Insert(table).Columns(columns...)
		for _, row := range rows[start:end] {
			comp, err := json.Marshal(row.Composition)
			if err != nil {
				return inserted, fmt.Errorf("marshal composition for %s: %w", row.SenseKey, err)
			}
			builder = builder.Values(
				row.ID, row.SenseKey, row.Stem, row.Role, row.SenseIndex,
				row.Word, row.Runic, row.Definition, comp, row.CreatedAt,
			)
		}
		builder = builder.Suffix("ON CONFLICT (sense_key) DO NOTHING")

		query, args, err := builder.ToSql()
		if err != nil {
			return inserted, fmt.Errorf("build bulk insert: %w", err)
		}

		tag, err := r.q.Exec(ctx, query, args...)
		if err != nil {
			return inserted, postgres.MapError(err, "lexicon_entry", rows[start].SenseKey)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// GetBySenseKey returns a single entry by its sense key.
// Returns domain.ErrNotFound when the key is not loaded.
func (r *Repo) GetBySenseKey(ctx context.Context, senseKey string) (*Row, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"sense_key": senseKey}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get by sense_key: %w", err)
	}

	row, err := scanRow(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "lexicon_entry", senseKey)
	}
	return row, nil
}

// GetByStem returns all entries sharing a stem, ordered by sense key.
// Returns an empty slice (not nil) when the stem has no entries.
func (r *Repo) GetByStem(ctx context.Context, stem string) ([]Row, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"stem": stem}).
		OrderBy("sense_key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get by stem: %w", err)
	}

	pgxRows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "lexicon_entry", stem)
	}
	defer pgxRows.Close()

	result := []Row{}
	for pgxRows.Next() {
		row, err := scanRow(pgxRows)
		if err != nil {
			return nil, fmt.Errorf("scan lexicon row: %w", err)
		}
		result = append(result, *row)
	}
	if err := pgxRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lexicon rows: %w", err)
	}

	return result, nil
}

// Count returns the total number of loaded entries.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, _, err := psql.Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int
	if err := r.q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count lexicon entries: %w", err)
	}
	return count, nil
}

// CountByRole returns entry counts grouped by grammatical role.
func (r *Repo) CountByRole(ctx context.Context) (map[string]int, error) {
	query, _, err := psql.Select("role", "count(*)").
		From(table).
		GroupBy("role").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by role: %w", err)
	}

	pgxRows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count by role: %w", err)
	}
	defer pgxRows.Close()

	result := make(map[string]int)
	for pgxRows.Next() {
		var role string
		var count int
		if err := pgxRows.Scan(&role, &count); err != nil {
			return nil, fmt.Errorf("scan role count: %w", err)
		}
		result[role] = count
	}
	if err := pgxRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate role counts: %w", err)
	}

	return result, nil
}

// scanRow scans a single row (composition arrives as jsonb bytes).
func scanRow(row interface{ Scan(...any) error }) (*Row, error) {
	var (
		r    Row
		comp []byte
	)
	if err := row.Scan(
		&r.ID, &r.SenseKey, &r.Stem, &r.Role, &r.SenseIndex,
		&r.Word, &r.Runic, &r.Definition, &comp, &r.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(comp) > 0 {
		if err := json.Unmarshal(comp, &r.Composition); err != nil {
			return nil, fmt.Errorf("unmarshal composition: %w", err)
		}
	}
	return &r, nil
}
