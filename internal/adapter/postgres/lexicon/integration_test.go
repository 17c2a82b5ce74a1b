//go:build integration

package lexicon_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solivagus/runesmith/internal/adapter/postgres/lexicon"
	"github.com/solivagus/runesmith/internal/adapter/postgres/testhelper"
	"github.com/solivagus/runesmith/internal/domain"
)

func makeSense(key, word string) *domain.Sense {
	stem, role, index := domain.ParseSenseKey(key)
	return &domain.Sense{
		Key:         key,
		Stem:        stem,
		Role:        role,
		SenseIndex:  index,
		Composition: domain.CompositionVector{"earth": 40, "wood": 10},
		Definition:  "integration test sense",
		Word:        word,
	}
}

func TestLexiconRoundTrip(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := lexicon.New(pool)
	ctx := context.Background()

	suffix := uuid.New().String()[:8]
	rows := []lexicon.Row{
		lexicon.FromSense(makeSense("cat-"+suffix+".n.01", "duna"+suffix)),
		lexicon.FromSense(makeSense("cat-"+suffix+".n.02", "dunu"+suffix)),
		lexicon.FromSense(makeSense("run-"+suffix+".v.01", "tek"+suffix)),
	}

	inserted, err := repo.BulkInsert(ctx, rows, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	// Same keys again: ON CONFLICT DO NOTHING skips them all.
	again := []lexicon.Row{lexicon.FromSense(makeSense("cat-"+suffix+".n.01", "other"))}
	inserted, err = repo.BulkInsert(ctx, again, 500)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	got, err := repo.GetBySenseKey(ctx, "cat-"+suffix+".n.01")
	require.NoError(t, err)
	assert.Equal(t, "duna"+suffix, got.Word)
	assert.Equal(t, 40, got.Composition["earth"])

	byStem, err := repo.GetByStem(ctx, "cat-"+suffix)
	require.NoError(t, err)
	require.Len(t, byStem, 2)
	assert.Equal(t, "cat-"+suffix+".n.01", byStem[0].SenseKey)

	_, err = repo.GetBySenseKey(ctx, "ghost-"+suffix+".n.01")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, count, 3)

	byRole, err := repo.CountByRole(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, byRole["n"], 2)
	assert.GreaterOrEqual(t, byRole["v"], 1)
}
