package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wacaselaw/opinion-indexer/constants"
	"github.com/wacaselaw/opinion-indexer/internal/entity"
	"github.com/wacaselaw/opinion-indexer/internal/ingest"
	"github.com/wacaselaw/opinion-indexer/internal/repository"
)

const opinionText = `IN THE COURT OF APPEALS OF THE STATE OF WASHINGTON
DIVISION II

STATE OF WASHINGTON, Respondent, v. GERALD MAYFIELD, Appellant.

No. 58234-1-II

Filed January 16, 2024

FACTS

The State charged Gerald Mayfield in Pierce County Superior Court with one count of burglary. The trial court admitted evidence of prior convictions over his objection and the jury convicted. He was sentenced under RCW 9.94A.535 and appealed his conviction to this court.

ANALYSIS

We review evidentiary rulings for abuse of discretion. State v. Gresham, 173 Wn.2d 405, 269 P.3d 207 (2012). The trial court acted within its discretion when it admitted the evidence. The trial court also correctly instructed the jury on every element of the charged offense.

CONCLUSION

We affirm the conviction.

FEARING, J. — I concur in the result reached by the majority opinion.
`

func newTestRepo(t *testing.T) repository.CaseRepository {
	t.Helper()
	db, err := repository.Open(context.Background(), repository.Config{
		Driver: repository.DriverSQLite, DSN: ":memory:",
	}, nil)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close(nil) })
	if err := repository.EnsureSchema(context.Background(), db, nil); err != nil {
		t.Fatalf("EnsureSchema() error: %v", err)
	}
	return repository.NewCaseRepository(db, nil)
}

func TestProcessCaseEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "582341.txt")
	if err := os.WriteFile(path, []byte(opinionText), 0o644); err != nil {
		t.Fatal(err)
	}

	repo := newTestRepo(t)
	proc := NewProcessor(repo, nil) // no model: patterns and metadata only

	meta := &entity.OpinionMetadata{
		OpinionType:       "Court of Appeals Opinion",
		PublicationStatus: "Published",
		Month:             "January",
		CaseNumber:        "58234-1",
		Division:          "II",
		CaseTitle:         "State of Washington v. Gerald Mayfield",
		FileContains:      "Published Opinion",
		Year:              2024,
		FileDate:          "2024-01-16",
	}

	caseID, err := proc.ProcessCase(context.Background(), ingest.CaseInput{Meta: meta, TextPath: path})
	if err != nil {
		t.Fatalf("ProcessCase() error: %v", err)
	}
	if caseID == 0 {
		t.Fatal("ProcessCase() returned zero case id")
	}

	cases, err := repo.ListCases(context.Background())
	if err != nil {
		t.Fatalf("ListCases() error: %v", err)
	}
	if len(cases) != 1 {
		t.Fatalf("cases = %d, want 1", len(cases))
	}
	got := cases[0]
	if got.CaseFileID != "58234-1" {
		t.Errorf("CaseFileID = %q", got.CaseFileID)
	}
	if got.CourtLevel != constants.Appeals || got.District != constants.DivisionII {
		t.Errorf("court = %q %q", got.CourtLevel, got.District)
	}
	if got.County != "Pierce" {
		t.Errorf("County = %q", got.County)
	}
	if got.CaseType != "criminal" {
		t.Errorf("CaseType = %q", got.CaseType)
	}
	if got.AppealOutcome != constants.Affirmed {
		t.Errorf("AppealOutcome = %q", got.AppealOutcome)
	}
	if got.Court != "Washington Court of Appeals Division II" {
		t.Errorf("Court = %q", got.Court)
	}
}

func TestProcessCaseMissingTextPath(t *testing.T) {
	repo := newTestRepo(t)
	proc := NewProcessor(repo, nil)

	_, err := proc.ProcessCase(context.Background(), ingest.CaseInput{
		Meta: &entity.OpinionMetadata{CaseNumber: "58234-1"},
	})
	if err == nil || !strings.Contains(err.Error(), "no text file") {
		t.Errorf("err = %v, want missing-text error", err)
	}
}
