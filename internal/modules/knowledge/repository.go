package knowledge

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/swordenkisk/quantum-matrix/internal/database"
	"github.com/swordenkisk/quantum-matrix/internal/modules/quantum"
)

// schema is applied on repository creation. The database is in-memory, so
// every process starts from an empty table.
const schema = `
CREATE TABLE IF NOT EXISTS concepts (
	concept        TEXT PRIMARY KEY,
	mastery_level  REAL NOT NULL,
	learning_score REAL NOT NULL,
	counts         TEXT NOT NULL,
	updated_at     INTEGER NOT NULL
);
`

// Repository handles concept-record storage.
// One row per concept; writes are single-statement upserts, so concurrent
// requests for the same concept resolve to last-write-wins without
// corruption.
type Repository struct {
	db  *database.DB
	log zerolog.Logger
}

// NewRepository creates a new knowledge repository and applies the schema.
func NewRepository(db *database.DB, log zerolog.Logger) (*Repository, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to apply knowledge schema: %w", err)
	}

	return &Repository{
		db:  db,
		log: log.With().Str("repository", "knowledge").Logger(),
	}, nil
}

// Upsert stores a record, overwriting any prior record for the same concept.
func (r *Repository) Upsert(record Record) error {
	countsJSON, err := json.Marshal(record.Counts)
	if err != nil {
		return fmt.Errorf("failed to encode counts for %s: %w", record.Concept, err)
	}

	_, err = r.db.Exec(`
		INSERT INTO concepts (concept, mastery_level, learning_score, counts, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(concept) DO UPDATE SET
			mastery_level = excluded.mastery_level,
			learning_score = excluded.learning_score,
			counts = excluded.counts,
			updated_at = excluded.updated_at
	`, record.Concept, record.MasteryLevel, record.LearningScore, string(countsJSON), time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to upsert concept %s: %w", record.Concept, err)
	}

	return nil
}

// All returns every stored record, most recently updated last.
func (r *Repository) All() ([]Record, error) {
	rows, err := r.db.Query(`
		SELECT concept, mastery_level, learning_score, counts
		FROM concepts
		ORDER BY updated_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query concepts: %w", err)
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var rec Record
		var countsJSON string
		if err := rows.Scan(&rec.Concept, &rec.MasteryLevel, &rec.LearningScore, &countsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan concept row: %w", err)
		}

		rec.Counts = make(quantum.Counts)
		if err := json.Unmarshal([]byte(countsJSON), &rec.Counts); err != nil {
			r.log.Warn().Err(err).Str("concept", rec.Concept).Msg("Failed to decode stored counts")
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate concept rows: %w", err)
	}

	return records, nil
}

// Clear removes all stored records (session reset).
func (r *Repository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM concepts"); err != nil {
		return fmt.Errorf("failed to clear concepts: %w", err)
	}
	return nil
}

// Count returns the number of stored concepts.
func (r *Repository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM concepts").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count concepts: %w", err)
	}
	return n, nil
}
