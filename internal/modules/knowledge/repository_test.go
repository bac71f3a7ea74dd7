package knowledge

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swordenkisk/quantum-matrix/internal/database"
	"github.com/swordenkisk/quantum-matrix/internal/modules/quantum"
)

func setupTestRepository(t *testing.T) *Repository {
	t.Helper()

	// Unique database name per test so shared-cache memory databases do
	// not leak state between tests.
	db, err := database.New(database.Config{
		DSN:  fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
		Name: "knowledge-test",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo, err := NewRepository(db, zerolog.New(nil).Level(zerolog.Disabled))
	require.NoError(t, err)
	return repo
}

func testRecord(concept string, score float64) Record {
	return Record{
		Concept:       concept,
		MasteryLevel:  score * 100,
		LearningScore: score,
		Counts:        quantum.Counts{"00000000": 512, "11111111": 512},
	}
}

func TestRepositoryUpsertAndAll(t *testing.T) {
	repo := setupTestRepository(t)

	require.NoError(t, repo.Upsert(testRecord("gravity", 0.8)))
	require.NoError(t, repo.Upsert(testRecord("entropy", 0.6)))

	records, err := repo.All()
	require.NoError(t, err)
	require.Len(t, records, 2)

	byConcept := map[string]Record{}
	for _, rec := range records {
		byConcept[rec.Concept] = rec
	}

	assert.InDelta(t, 80.0, byConcept["gravity"].MasteryLevel, 1e-9)
	assert.InDelta(t, 0.6, byConcept["entropy"].LearningScore, 1e-9)
	assert.Equal(t, quantum.Counts{"00000000": 512, "11111111": 512}, byConcept["gravity"].Counts)
}

func TestRepositoryLastWriteWins(t *testing.T) {
	repo := setupTestRepository(t)

	require.NoError(t, repo.Upsert(testRecord("gravity", 0.5)))
	require.NoError(t, repo.Upsert(testRecord("gravity", 0.9)))

	records, err := repo.All()
	require.NoError(t, err)
	require.Len(t, records, 1, "overwrite, not accumulation")
	assert.InDelta(t, 0.9, records[0].LearningScore, 1e-9)
}

func TestRepositoryClear(t *testing.T) {
	repo := setupTestRepository(t)

	require.NoError(t, repo.Upsert(testRecord("gravity", 0.8)))
	require.NoError(t, repo.Clear())

	records, err := repo.All()
	require.NoError(t, err)
	assert.Empty(t, records)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestRepositoryAllEmpty(t *testing.T) {
	repo := setupTestRepository(t)

	records, err := repo.All()
	require.NoError(t, err)
	assert.NotNil(t, records, "history must serialize as an empty JSON array, not null")
	assert.Empty(t, records)
}

func TestRepositoryCount(t *testing.T) {
	repo := setupTestRepository(t)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, repo.Upsert(testRecord("gravity", 0.8)))
	require.NoError(t, repo.Upsert(testRecord("gravity", 0.9)))
	require.NoError(t, repo.Upsert(testRecord("osmosis", 0.4)))

	n, err = repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
