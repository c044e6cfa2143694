package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// ensureWordIDs resolves dictionary ids for a set of tokens: cache first,
// then one batched select, then upserts for whatever is left. Rows already
// in the table are cached immediately; ids minted inside this transaction
// are returned separately so the caller caches them only after commit.
func (r *caseRepository) ensureWordIDs(ctx context.Context, tx *sql.Tx, words map[string]bool) (map[string]int64, map[string]int64, error) {
	all := make(map[string]int64, len(words))
	var missing []string
	for w := range words {
		if id, ok := r.words.Get(w); ok {
			all[w] = id
		} else {
			missing = append(missing, w)
		}
	}
	if len(missing) == 0 {
		return all, nil, nil
	}

	found, err := r.selectWordIDs(ctx, tx, missing)
	if err != nil {
		return nil, nil, err
	}
	for w, id := range found {
		all[w] = id
		r.words.Put(w, id)
	}

	minted := make(map[string]int64)
	for _, w := range missing {
		if _, ok := found[w]; ok {
			continue
		}
		var id int64
		err := tx.QueryRowContext(ctx,
			`INSERT INTO words (word) VALUES ($1)
			 ON CONFLICT (word) DO UPDATE SET word = excluded.word
			 RETURNING id`, w).Scan(&id)
		if err != nil {
			return nil, nil, fmt.Errorf("upsert word %q: %w", w, err)
		}
		all[w] = id
		minted[w] = id
	}
	return all, minted, nil
}

func (r *caseRepository) selectWordIDs(ctx context.Context, tx *sql.Tx, words []string) (map[string]int64, error) {
	var rows *sql.Rows
	var err error
	if r.db.Driver == DriverPostgres {
		rows, err = tx.QueryContext(ctx, `SELECT id, word FROM words WHERE word = ANY($1)`, words)
	} else {
		// sqlite has no array type; expand the placeholder list
		placeholders := make([]string, len(words))
		args := make([]any, len(words))
		for i, w := range words {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
			args[i] = w
		}
		query := "SELECT id, word FROM words WHERE word IN (" + strings.Join(placeholders, ", ") + ")"
		rows, err = tx.QueryContext(ctx, query, args...)
	}
	if err != nil {
		return nil, fmt.Errorf("select word ids: %w", err)
	}
	defer rows.Close()

	found := make(map[string]int64, len(words))
	for rows.Next() {
		var id int64
		var word string
		if err := rows.Scan(&id, &word); err != nil {
			return nil, fmt.Errorf("scan word id: %w", err)
		}
		found[word] = id
	}
	return found, rows.Err()
}
