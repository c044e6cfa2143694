package repository

import (
	"context"
	"testing"

	"github.com/wacaselaw/opinion-indexer/constants"
	"github.com/wacaselaw/opinion-indexer/internal/entity"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), Config{Driver: DriverSQLite, DSN: ":memory:"}, nil)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close(nil) })
	if err := EnsureSchema(context.Background(), db, nil); err != nil {
		t.Fatalf("EnsureSchema() error: %v", err)
	}
	return db
}

func testBundle() *entity.CaseBundle {
	return &entity.CaseBundle{
		Case: entity.CaseRecord{
			CaseFileID:     "58234-1",
			Title:          "State of Washington v. Gerald Mayfield",
			CourtLevel:     constants.Appeals,
			Court:          "Washington Court of Appeals Division II",
			District:       constants.DivisionII,
			Publication:    constants.Published,
			Published:      true,
			DecisionYear:   2024,
			DecisionMonth:  "January",
			CaseType:       "criminal",
			County:         "Pierce",
			AppealOutcome:  constants.Affirmed,
			OverallOutcome: constants.OverallAffirmed,
			WinnerLegalRole: constants.Respondent,
			Summary:        "The court affirmed the conviction.",
		},
		Parties: []entity.Party{
			{Name: "State of Washington", LegalRole: constants.Respondent},
			{Name: "Gerald Mayfield", LegalRole: constants.Appellant},
		},
		Judges: []entity.Judge{{Name: "Fearing", Role: "author"}},
		Citations: []entity.Citation{
			{Volume: "173", Reporter: "Wn.2d", Page: "405", FullCitation: "173 Wn.2d 405"},
		},
		Statutes: []entity.Statute{{RCWNumber: "9.94.030", FullText: "RCW 9.94.030"}},
		Chunks: []entity.TextChunk{
			{
				Order: 1, Text: "The trial court denied the motion. The trial court then entered judgment.",
				WordCount: 12, CharCount: 73, Section: "FACTS",
				Sentences: []entity.Sentence{
					{Order: 1, GlobalOrder: 1, Text: "The trial court denied the motion.", WordCount: 6},
					{Order: 2, GlobalOrder: 2, Text: "The trial court then entered judgment.", WordCount: 6},
				},
			},
		},
		Phrases: []entity.Phrase{
			{Phrase: "trial court", N: 2, Frequency: 2, ExampleChunk: 1},
		},
		Sources: entity.SourceMap{"case_file_id": entity.SourceMetadata, "summary": entity.SourceAI},
	}
}

func TestInsertBundleRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewCaseRepository(db, nil)
	ctx := context.Background()

	caseID, err := repo.InsertBundle(ctx, testBundle())
	if err != nil {
		t.Fatalf("InsertBundle() error: %v", err)
	}
	if caseID == 0 {
		t.Fatal("InsertBundle() returned zero id")
	}

	cases, err := repo.ListCases(ctx)
	if err != nil {
		t.Fatalf("ListCases() error: %v", err)
	}
	if len(cases) != 1 {
		t.Fatalf("ListCases() = %d rows, want 1", len(cases))
	}
	got := cases[0]
	if got.CaseFileID != "58234-1" || got.District != constants.DivisionII || got.CaseType != "criminal" {
		t.Errorf("case = %+v", got)
	}

	var n int
	for query, want := range map[string]int{
		`SELECT COUNT(*) FROM parties`:      2,
		`SELECT COUNT(*) FROM judges`:       1,
		`SELECT COUNT(*) FROM citations`:    1,
		`SELECT COUNT(*) FROM sentences`:    2,
		`SELECT COUNT(*) FROM phrases`:      1,
		`SELECT COUNT(*) FROM case_sources`: 2,
		// six tokens per sentence, stop words included
		`SELECT COUNT(*) FROM word_occurrences`: 12,
	} {
		if err := db.SQL.QueryRowContext(ctx, query).Scan(&n); err != nil {
			t.Fatalf("%s: %v", query, err)
		}
		if n != want {
			t.Errorf("%s = %d, want %d", query, n, want)
		}
	}

	// the dictionary dedups across sentences
	if err := db.SQL.QueryRowContext(ctx, `SELECT COUNT(*) FROM words WHERE word = 'trial'`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("words('trial') = %d, want 1", n)
	}
}

func TestInsertBundlePositionalIndex(t *testing.T) {
	db := openTestDB(t)
	repo := NewCaseRepository(db, nil)
	ctx := context.Background()

	caseID, err := repo.InsertBundle(ctx, testBundle())
	if err != nil {
		t.Fatalf("InsertBundle() error: %v", err)
	}

	// stop words are indexed: "the" appears twice in the first sentence
	// and once in the second
	var n int
	if err := db.SQL.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM word_occurrences wo
		JOIN words w ON w.id = wo.word_id
		WHERE w.word = 'the'`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("occurrences of 'the' = %d, want 3", n)
	}

	// position is the token index within the full sentence, so "court" in
	// "The trial court ..." sits at 2 in both sentences
	rows, err := db.SQL.QueryContext(ctx, `
		SELECT wo.position FROM word_occurrences wo
		JOIN words w ON w.id = wo.word_id
		WHERE w.word = 'court'`)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()
	var positions []int
	for rows.Next() {
		var pos int
		if err := rows.Scan(&pos); err != nil {
			t.Fatal(err)
		}
		positions = append(positions, pos)
	}
	if len(positions) != 2 {
		t.Fatalf("occurrences of 'court' = %d, want 2", len(positions))
	}
	for _, pos := range positions {
		if pos != 2 {
			t.Errorf("position of 'court' = %d, want 2", pos)
		}
	}

	// occurrences carry the case directly so per-case word queries skip
	// the sentence join
	if err := db.SQL.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM word_occurrences WHERE case_id = $1`, caseID).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 12 {
		t.Errorf("occurrences for case = %d, want 12", n)
	}
}

func TestInsertBundleReplacesPriorRun(t *testing.T) {
	db := openTestDB(t)
	repo := NewCaseRepository(db, nil)
	ctx := context.Background()

	if _, err := repo.InsertBundle(ctx, testBundle()); err != nil {
		t.Fatalf("first InsertBundle() error: %v", err)
	}

	b := testBundle()
	b.Case.Summary = "Updated on reprocess."
	b.Parties = b.Parties[:1]
	if _, err := repo.InsertBundle(ctx, b); err != nil {
		t.Fatalf("second InsertBundle() error: %v", err)
	}

	cases, err := repo.ListCases(ctx)
	if err != nil {
		t.Fatalf("ListCases() error: %v", err)
	}
	if len(cases) != 1 || cases[0].Summary != "Updated on reprocess." {
		t.Errorf("cases = %+v, want single replaced row", cases)
	}

	var n int
	if err := db.SQL.QueryRowContext(ctx, `SELECT COUNT(*) FROM parties`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("parties = %d, want prior children cascaded away", n)
	}
}

func TestDeleteByCaseFileID(t *testing.T) {
	db := openTestDB(t)
	repo := NewCaseRepository(db, nil)
	ctx := context.Background()

	if _, err := repo.InsertBundle(ctx, testBundle()); err != nil {
		t.Fatalf("InsertBundle() error: %v", err)
	}
	if err := repo.DeleteByCaseFileID(ctx, "58234-1"); err != nil {
		t.Fatalf("DeleteByCaseFileID() error: %v", err)
	}
	cases, err := repo.ListCases(ctx)
	if err != nil {
		t.Fatalf("ListCases() error: %v", err)
	}
	if len(cases) != 0 {
		t.Errorf("cases = %+v, want empty", cases)
	}
}
