package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/wacaselaw/opinion-indexer/constants"
	"github.com/wacaselaw/opinion-indexer/internal/entity"
	"github.com/wacaselaw/opinion-indexer/internal/lexicon"
)

type CaseRepository interface {
	// InsertBundle writes the whole bundle in one transaction and returns
	// the case id. A prior row for the same case_file_id is replaced.
	InsertBundle(ctx context.Context, b *entity.CaseBundle) (int64, error)
	DeleteByCaseFileID(ctx context.Context, caseFileID string) error
	ListCases(ctx context.Context) ([]entity.CaseRecord, error)
}

type caseRepository struct {
	db     *DB
	words  *lexicon.WordCache
	logger *slog.Logger
}

func NewCaseRepository(db *DB, logger *slog.Logger) CaseRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &caseRepository{
		db:     db,
		words:  lexicon.NewWordCache(),
		logger: logger,
	}
}

func (r *caseRepository) InsertBundle(ctx context.Context, b *entity.CaseBundle) (int64, error) {
	start := time.Now()
	tx, err := r.db.SQL.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin bundle tx: %w", err)
	}
	defer tx.Rollback()

	// reprocessing replaces the previous run wholesale; children cascade
	if _, err := tx.ExecContext(ctx, `DELETE FROM cases WHERE case_file_id = $1`, b.Case.CaseFileID); err != nil {
		return 0, fmt.Errorf("delete prior case: %w", err)
	}

	caseID, err := r.insertCase(ctx, tx, &b.Case)
	if err != nil {
		return 0, err
	}
	if err := r.insertEntities(ctx, tx, caseID, b); err != nil {
		return 0, err
	}

	newWords, err := r.insertIndex(ctx, tx, caseID, b)
	if err != nil {
		return 0, err
	}

	for field, source := range b.Sources {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO case_sources (case_id, field, source) VALUES ($1, $2, $3)`,
			caseID, field, source); err != nil {
			return 0, fmt.Errorf("insert source tag: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit bundle: %w", err)
	}
	// word ids are only trusted once the tx that may have created them
	// is committed
	for word, id := range newWords {
		r.words.Put(word, id)
	}

	r.logger.Info("db.bundle.ok",
		"case_file_id", b.Case.CaseFileID,
		"case_id", caseID,
		"chunks", len(b.Chunks),
		"phrases", len(b.Phrases),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return caseID, nil
}

func (r *caseRepository) insertCase(ctx context.Context, tx *sql.Tx, c *entity.CaseRecord) (int64, error) {
	var personalRole any
	if c.WinnerPersonalRole != nil {
		personalRole = string(*c.WinnerPersonalRole)
	}

	var caseID int64
	err := tx.QueryRowContext(ctx, `
		INSERT INTO cases (
			case_file_id, title, opinion_type, publication, published,
			decision_year, decision_month, source_url, case_info_url,
			court_level, court, district, docket_number, county, en_banc,
			source_docket_number, trial_court, trial_judge,
			trial_start_date, trial_end_date, trial_published_date,
			appeal_start_date, appeal_end_date, appeal_published_date,
			oral_argument_date,
			appeal_outcome, overall_outcome, outcome_detail,
			winner_legal_role, winner_personal_role,
			summary, case_type
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26,
			$27, $28, $29, $30, $31, $32
		) RETURNING id`,
		c.CaseFileID, c.Title, c.OpinionType, string(c.Publication), c.Published,
		c.DecisionYear, c.DecisionMonth, c.SourceURL, c.CaseInfoURL,
		string(c.CourtLevel), c.Court, string(c.District), c.DocketNumber, c.County, c.EnBanc,
		c.SourceDocketNumber, c.TrialCourt, c.TrialJudge,
		c.TrialStartDate, c.TrialEndDate, c.TrialPublishedDate,
		c.AppealStartDate, c.AppealEndDate, c.AppealPublishedDate,
		c.OralArgumentDate,
		string(c.AppealOutcome), string(c.OverallOutcome), c.OutcomeDetail,
		string(c.WinnerLegalRole), personalRole,
		c.Summary, c.CaseType,
	).Scan(&caseID)
	if err != nil {
		return 0, fmt.Errorf("insert case %s: %w", c.CaseFileID, err)
	}
	return caseID, nil
}

func (r *caseRepository) insertEntities(ctx context.Context, tx *sql.Tx, caseID int64, b *entity.CaseBundle) error {
	for _, p := range b.Parties {
		var personal any
		if p.PersonalRole != nil {
			personal = string(*p.PersonalRole)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO parties (case_id, name, legal_role, personal_role) VALUES ($1, $2, $3, $4)`,
			caseID, p.Name, string(p.LegalRole), personal); err != nil {
			return fmt.Errorf("insert party: %w", err)
		}
	}
	for _, j := range b.Judges {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO judges (case_id, name, role) VALUES ($1, $2, $3)`,
			caseID, j.Name, j.Role); err != nil {
			return fmt.Errorf("insert judge: %w", err)
		}
	}
	for _, a := range b.Attorneys {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO attorneys (case_id, name, firm_name, firm_address, representing) VALUES ($1, $2, $3, $4, $5)`,
			caseID, a.Name, a.FirmName, a.FirmAddress, string(a.Representing)); err != nil {
			return fmt.Errorf("insert attorney: %w", err)
		}
	}
	for _, c := range b.Citations {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO citations (case_id, volume, reporter, page, full_citation) VALUES ($1, $2, $3, $4, $5)`,
			caseID, c.Volume, c.Reporter, c.Page, c.FullCitation); err != nil {
			return fmt.Errorf("insert citation: %w", err)
		}
	}
	for _, s := range b.Statutes {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO statutes (case_id, rcw_number, full_text) VALUES ($1, $2, $3)`,
			caseID, s.RCWNumber, s.FullText); err != nil {
			return fmt.Errorf("insert statute: %w", err)
		}
	}
	for _, iss := range b.Issues {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO issues (case_id, category, subcategory, issue_summary, decision_summary, appeal_outcome, winner_legal_role)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			caseID, string(iss.Category), iss.Subcategory, iss.IssueSummary, iss.DecisionSummary,
			string(iss.AppealOutcome), string(iss.WinnerLegalRole)); err != nil {
			return fmt.Errorf("insert issue: %w", err)
		}
	}
	for _, arg := range b.Arguments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO arguments (case_id, side, text) VALUES ($1, $2, $3)`,
			caseID, arg.Side, arg.Text); err != nil {
			return fmt.Errorf("insert argument: %w", err)
		}
	}
	for _, pr := range b.Precedents {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO precedents (case_id, precedent_case, citation, relationship, citation_text) VALUES ($1, $2, $3, $4, $5)`,
			caseID, pr.PrecedentCase, pr.Citation, pr.Relationship, pr.CitationText); err != nil {
			return fmt.Errorf("insert precedent: %w", err)
		}
	}
	return nil
}

// insertIndex writes chunks, sentences, word occurrences and phrases. The
// returned map holds word ids minted inside this transaction; the caller
// promotes them to the shared cache only after commit.
func (r *caseRepository) insertIndex(ctx context.Context, tx *sql.Tx, caseID int64, b *entity.CaseBundle) (map[string]int64, error) {
	// one batched id lookup for every distinct token in the case. Stop
	// words stay in: position is the token's index within the full
	// sentence, so dropping them would shift every later position.
	distinct := make(map[string]bool)
	for _, chunk := range b.Chunks {
		for _, s := range chunk.Sentences {
			for _, tok := range lexicon.Tokenize(s.Text, false) {
				distinct[tok] = true
			}
		}
	}
	wordIDs, newWords, err := r.ensureWordIDs(ctx, tx, distinct)
	if err != nil {
		return nil, err
	}

	for _, chunk := range b.Chunks {
		var chunkID int64
		err := tx.QueryRowContext(ctx,
			`INSERT INTO chunks (case_id, chunk_order, text, word_count, char_count, section)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			caseID, chunk.Order, chunk.Text, chunk.WordCount, chunk.CharCount, chunk.Section,
		).Scan(&chunkID)
		if err != nil {
			return nil, fmt.Errorf("insert chunk %d: %w", chunk.Order, err)
		}

		for _, s := range chunk.Sentences {
			var sentenceID int64
			err := tx.QueryRowContext(ctx,
				`INSERT INTO sentences (chunk_id, case_id, sentence_order, global_order, text, word_count)
				 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
				chunkID, caseID, s.Order, s.GlobalOrder, s.Text, s.WordCount,
			).Scan(&sentenceID)
			if err != nil {
				return nil, fmt.Errorf("insert sentence %d/%d: %w", chunk.Order, s.Order, err)
			}

			for pos, tok := range lexicon.Tokenize(s.Text, false) {
				wordID, ok := wordIDs[tok]
				if !ok {
					continue
				}
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO word_occurrences (word_id, sentence_id, case_id, chunk_id, position) VALUES ($1, $2, $3, $4, $5)
					 ON CONFLICT (word_id, sentence_id, position) DO NOTHING`,
					wordID, sentenceID, caseID, chunkID, pos); err != nil {
					return nil, fmt.Errorf("insert occurrence: %w", err)
				}
			}
		}
	}

	for _, p := range b.Phrases {
		if err := r.upsertPhrase(ctx, tx, caseID, p); err != nil {
			return nil, err
		}
	}
	return newWords, nil
}

func (r *caseRepository) DeleteByCaseFileID(ctx context.Context, caseFileID string) error {
	res, err := r.db.SQL.ExecContext(ctx, `DELETE FROM cases WHERE case_file_id = $1`, caseFileID)
	if err != nil {
		return fmt.Errorf("delete case %s: %w", caseFileID, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		r.logger.Info("db.case.deleted", "case_file_id", caseFileID)
	}
	return nil
}

func (r *caseRepository) ListCases(ctx context.Context) ([]entity.CaseRecord, error) {
	rows, err := r.db.SQL.QueryContext(ctx, `
		SELECT case_file_id, title, opinion_type, publication, published,
		       decision_year, decision_month, source_url, case_info_url,
		       court_level, court, district, docket_number, county, en_banc,
		       source_docket_number, trial_court, trial_judge,
		       appeal_published_date, oral_argument_date,
		       appeal_outcome, overall_outcome, outcome_detail,
		       winner_legal_role, winner_personal_role, summary, case_type
		FROM cases
		ORDER BY decision_year, case_file_id`)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()

	var result []entity.CaseRecord
	for rows.Next() {
		var c entity.CaseRecord
		var publication, courtLevel, district, appealOutcome, overallOutcome, winnerLegal string
		var winnerPersonal sql.NullString
		var appealPublished, oralArgument sql.NullTime
		if err := rows.Scan(
			&c.CaseFileID, &c.Title, &c.OpinionType, &publication, &c.Published,
			&c.DecisionYear, &c.DecisionMonth, &c.SourceURL, &c.CaseInfoURL,
			&courtLevel, &c.Court, &district, &c.DocketNumber, &c.County, &c.EnBanc,
			&c.SourceDocketNumber, &c.TrialCourt, &c.TrialJudge,
			&appealPublished, &oralArgument,
			&appealOutcome, &overallOutcome, &c.OutcomeDetail,
			&winnerLegal, &winnerPersonal, &c.Summary, &c.CaseType,
		); err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		c.Publication = constants.PublicationStatus(publication)
		c.CourtLevel = constants.CourtLevel(courtLevel)
		c.District = constants.Division(district)
		c.AppealOutcome = constants.AppealOutcome(appealOutcome)
		c.OverallOutcome = constants.OverallOutcome(overallOutcome)
		c.WinnerLegalRole = constants.LegalRole(winnerLegal)
		if winnerPersonal.Valid {
			pr := constants.PersonalRole(winnerPersonal.String)
			c.WinnerPersonalRole = &pr
		}
		if appealPublished.Valid {
			t := appealPublished.Time
			c.AppealPublishedDate = &t
		}
		if oralArgument.Valid {
			t := oralArgument.Time
			c.OralArgumentDate = &t
		}
		result = append(result, c)
	}
	return result, rows.Err()
}
