package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wacaselaw/opinion-indexer/internal/entity"
)

// upsertPhrase refreshes frequency and example chunk on re-extraction;
// identity is (case, phrase).
func (r *caseRepository) upsertPhrase(ctx context.Context, tx *sql.Tx, caseID int64, p entity.Phrase) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO phrases (case_id, phrase, n, frequency, example_chunk)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (case_id, phrase) DO UPDATE
		 SET frequency = excluded.frequency, example_chunk = excluded.example_chunk`,
		caseID, p.Phrase, p.N, p.Frequency, p.ExampleChunk)
	if err != nil {
		return fmt.Errorf("upsert phrase %q: %w", p.Phrase, err)
	}
	return nil
}
