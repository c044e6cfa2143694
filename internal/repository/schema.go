package repository

import (
	"context"
	"fmt"
	"log/slog"
)

// EnsureSchema creates every table the indexer writes. Idempotent; the
// only driver split is the auto-increment id column.
func EnsureSchema(ctx context.Context, db *DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	id := "BIGSERIAL PRIMARY KEY"
	if db.Driver == DriverSQLite {
		id = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS cases (
			id %s,
			case_file_id TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL DEFAULT '',
			opinion_type TEXT NOT NULL DEFAULT '',
			publication TEXT NOT NULL DEFAULT '',
			published BOOLEAN NOT NULL DEFAULT TRUE,
			decision_year INTEGER NOT NULL DEFAULT 0,
			decision_month TEXT NOT NULL DEFAULT '',
			source_url TEXT NOT NULL DEFAULT '',
			case_info_url TEXT NOT NULL DEFAULT '',
			court_level TEXT NOT NULL DEFAULT '',
			court TEXT NOT NULL DEFAULT '',
			district TEXT NOT NULL DEFAULT '',
			docket_number TEXT NOT NULL DEFAULT '',
			county TEXT NOT NULL DEFAULT '',
			en_banc BOOLEAN NOT NULL DEFAULT FALSE,
			source_docket_number TEXT NOT NULL DEFAULT '',
			trial_court TEXT NOT NULL DEFAULT '',
			trial_judge TEXT NOT NULL DEFAULT '',
			trial_start_date TIMESTAMP,
			trial_end_date TIMESTAMP,
			trial_published_date TIMESTAMP,
			appeal_start_date TIMESTAMP,
			appeal_end_date TIMESTAMP,
			appeal_published_date TIMESTAMP,
			oral_argument_date TIMESTAMP,
			appeal_outcome TEXT NOT NULL DEFAULT '',
			overall_outcome TEXT NOT NULL DEFAULT '',
			outcome_detail TEXT NOT NULL DEFAULT '',
			winner_legal_role TEXT NOT NULL DEFAULT '',
			winner_personal_role TEXT,
			summary TEXT NOT NULL DEFAULT '',
			case_type TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS parties (
			id %s,
			case_id BIGINT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			legal_role TEXT NOT NULL DEFAULT '',
			personal_role TEXT
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS judges (
			id %s,
			case_id BIGINT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT ''
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS attorneys (
			id %s,
			case_id BIGINT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			firm_name TEXT NOT NULL DEFAULT '',
			firm_address TEXT NOT NULL DEFAULT '',
			representing TEXT NOT NULL DEFAULT ''
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS citations (
			id %s,
			case_id BIGINT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
			volume TEXT NOT NULL DEFAULT '',
			reporter TEXT NOT NULL DEFAULT '',
			page TEXT NOT NULL DEFAULT '',
			full_citation TEXT NOT NULL
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS statutes (
			id %s,
			case_id BIGINT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
			rcw_number TEXT NOT NULL,
			full_text TEXT NOT NULL DEFAULT ''
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS issues (
			id %s,
			case_id BIGINT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
			category TEXT NOT NULL DEFAULT '',
			subcategory TEXT NOT NULL DEFAULT '',
			issue_summary TEXT NOT NULL DEFAULT '',
			decision_summary TEXT NOT NULL DEFAULT '',
			appeal_outcome TEXT NOT NULL DEFAULT '',
			winner_legal_role TEXT NOT NULL DEFAULT ''
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS arguments (
			id %s,
			case_id BIGINT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
			side TEXT NOT NULL DEFAULT '',
			text TEXT NOT NULL
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS precedents (
			id %s,
			case_id BIGINT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
			precedent_case TEXT NOT NULL DEFAULT '',
			citation TEXT NOT NULL DEFAULT '',
			relationship TEXT NOT NULL DEFAULT '',
			citation_text TEXT NOT NULL DEFAULT ''
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS chunks (
			id %s,
			case_id BIGINT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
			chunk_order INTEGER NOT NULL,
			text TEXT NOT NULL,
			word_count INTEGER NOT NULL DEFAULT 0,
			char_count INTEGER NOT NULL DEFAULT 0,
			section TEXT NOT NULL DEFAULT '',
			UNIQUE (case_id, chunk_order)
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS sentences (
			id %s,
			chunk_id BIGINT NOT NULL REFERENCES chunks(id) ON DELETE CASCADE,
			case_id BIGINT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
			sentence_order INTEGER NOT NULL,
			global_order INTEGER NOT NULL,
			text TEXT NOT NULL,
			word_count INTEGER NOT NULL DEFAULT 0
		)`, id),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS words (
			id %s,
			word TEXT NOT NULL UNIQUE
		)`, id),
		`CREATE TABLE IF NOT EXISTS word_occurrences (
			word_id BIGINT NOT NULL REFERENCES words(id) ON DELETE CASCADE,
			sentence_id BIGINT NOT NULL REFERENCES sentences(id) ON DELETE CASCADE,
			case_id BIGINT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
			chunk_id BIGINT NOT NULL REFERENCES chunks(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			PRIMARY KEY (word_id, sentence_id, position)
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS phrases (
			id %s,
			case_id BIGINT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
			phrase TEXT NOT NULL,
			n INTEGER NOT NULL,
			frequency INTEGER NOT NULL DEFAULT 0,
			example_chunk INTEGER NOT NULL DEFAULT 0,
			UNIQUE (case_id, phrase)
		)`, id),
		`CREATE TABLE IF NOT EXISTS case_sources (
			case_id BIGINT NOT NULL REFERENCES cases(id) ON DELETE CASCADE,
			field TEXT NOT NULL,
			source TEXT NOT NULL,
			PRIMARY KEY (case_id, field)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sentences_case ON sentences (case_id)`,
		`CREATE INDEX IF NOT EXISTS idx_word_occurrences_sentence ON word_occurrences (sentence_id)`,
		`CREATE INDEX IF NOT EXISTS idx_word_occurrences_case_word ON word_occurrences (case_id, word_id)`,
		`CREATE INDEX IF NOT EXISTS idx_phrases_case ON phrases (case_id)`,
	}

	for _, stmt := range stmts {
		if _, err := db.SQL.ExecContext(ctx, stmt); err != nil {
			logger.Error("db.schema.failed", "error", err)
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	logger.Info("db.schema.ok", "tables", len(stmts))
	return nil
}
