package reconcile

import (
	"testing"

	"github.com/wacaselaw/opinion-indexer/constants"
	"github.com/wacaselaw/opinion-indexer/internal/entity"
	"github.com/wacaselaw/opinion-indexer/internal/extract"
	"github.com/wacaselaw/opinion-indexer/internal/llm"
)

func TestReconcileMetadataIsGroundTruth(t *testing.T) {
	meta := &entity.OpinionMetadata{
		OpinionType:       "Court of Appeals Opinion",
		PublicationStatus: "Published",
		Month:             "January",
		CaseNumber:        "58234-1",
		Division:          "II",
		CaseTitle:         "State of Washington v. John Mayfield",
		FileContains:      "Published Opinion",
		PDFURL:            "https://www.courts.wa.gov/opinions/pdf/582341.pdf",
		CaseInfoURL:       "https://dw.courts.wa.gov/?caseNumber=58234-1",
		Year:              2024,
		FileDate:          "2024-01-16",
	}
	rx := &extract.Result{
		CourtLevel:      constants.Supreme, // contradicts metadata; metadata wins
		CourtLevelFound: true,
		District:        constants.DivisionIII,
		CaseFileID:      "99999-9",
	}

	b := New(nil).Reconcile(meta, rx, nil)

	if b.Case.CaseFileID != "58234-1" {
		t.Errorf("CaseFileID = %q, metadata must win", b.Case.CaseFileID)
	}
	if b.Case.CourtLevel != constants.Appeals {
		t.Errorf("CourtLevel = %q, metadata must win", b.Case.CourtLevel)
	}
	if b.Case.District != constants.DivisionII {
		t.Errorf("District = %q, metadata must win", b.Case.District)
	}
	if b.Case.DocketNumber != "58234-1-II" {
		t.Errorf("DocketNumber = %q", b.Case.DocketNumber)
	}
	if !b.Case.Published {
		t.Error("Published = false, file_contains has no 'unpublished'")
	}
	if b.Case.AppealPublishedDate == nil || b.Case.AppealPublishedDate.Year() != 2024 {
		t.Errorf("AppealPublishedDate = %v", b.Case.AppealPublishedDate)
	}
	if b.Case.Court != "Washington Court of Appeals Division II" {
		t.Errorf("Court = %q", b.Case.Court)
	}
	for _, field := range []string{"case_file_id", "court_level", "district", "published"} {
		if b.Sources[field] != entity.SourceMetadata {
			t.Errorf("Sources[%q] = %q, want metadata", field, b.Sources[field])
		}
	}
}

func TestReconcileUnpublishedFromFileContains(t *testing.T) {
	meta := &entity.OpinionMetadata{
		CaseNumber:   "39482-7",
		FileContains: "Unpublished Opinion",
	}
	b := New(nil).Reconcile(meta, nil, nil)
	if b.Case.Published {
		t.Error("Published = true for unpublished file_contains")
	}
}

func TestReconcilePatternsOverrideModel(t *testing.T) {
	rx := &extract.Result{
		CourtLevel:      constants.Supreme,
		CourtLevelFound: true,
		Publication:     constants.Unpublished,
		CaseFileID:      "101678-3",
		CaseType:        "criminal",
		County:          "Spokane",
		EnBanc:          true,
		Outcome:         constants.Reversed,
		OutcomeFound:    true,
	}
	ai := &llm.CaseExtraction{
		Summary:       "The court reversed the conviction.",
		CaseType:      "civil",
		County:        "King",
		TrialJudge:    "Harold Clarke",
		AppealOutcome: "affirmed",
	}

	b := New(nil).Reconcile(nil, rx, ai)

	if b.Case.CourtLevel != constants.Supreme {
		t.Errorf("CourtLevel = %q, patterns must win", b.Case.CourtLevel)
	}
	if b.Case.CaseType != "criminal" || b.Case.County != "Spokane" {
		t.Errorf("CaseType/County = %q/%q, patterns must win", b.Case.CaseType, b.Case.County)
	}
	if b.Case.AppealOutcome != constants.Reversed {
		t.Errorf("AppealOutcome = %q, patterns must win", b.Case.AppealOutcome)
	}
	if !b.Case.EnBanc {
		t.Error("EnBanc not carried")
	}
	if b.Case.Publication != constants.Unpublished || b.Case.Published {
		t.Errorf("Publication = %q Published = %v", b.Case.Publication, b.Case.Published)
	}
	// model-only fields survive
	if b.Case.Summary != "The court reversed the conviction." || b.Case.TrialJudge != "Harold Clarke" {
		t.Errorf("model fields lost: %+v", b.Case)
	}
	if b.Case.Court != "Washington State Supreme Court" {
		t.Errorf("Court = %q", b.Case.Court)
	}
	if b.Sources["case_type"] != entity.SourceRegex || b.Sources["summary"] != entity.SourceAI {
		t.Errorf("sources = %v", b.Sources)
	}
}

func TestReconcilePlaceholderPartiesReplaced(t *testing.T) {
	rx := &extract.Result{
		Parties: []entity.Party{
			{Name: "State of Washington", LegalRole: constants.Respondent},
			{Name: "Gerald Mayfield", LegalRole: constants.Appellant},
		},
	}
	ai := &llm.CaseExtraction{
		Parties: []llm.PartyFields{
			{Name: "John Doe", Role: "Appellant"},
			{Name: "State of Washington", Role: "Respondent"},
		},
	}

	b := New(nil).Reconcile(nil, rx, ai)

	if len(b.Parties) != 2 || b.Parties[1].Name != "Gerald Mayfield" {
		t.Errorf("Parties = %+v, want wholesale replacement", b.Parties)
	}
	if b.Sources["parties"] != entity.SourceRegex {
		t.Errorf("Sources[parties] = %q", b.Sources["parties"])
	}
}

func TestReconcileRealPartiesKept(t *testing.T) {
	rx := &extract.Result{
		Parties: []entity.Party{{Name: "State of Washington", LegalRole: constants.Respondent}},
	}
	ai := &llm.CaseExtraction{
		Parties: []llm.PartyFields{
			{Name: "Gerald Mayfield", Role: "Appellant", PersonalRole: "Individual"},
		},
	}

	b := New(nil).Reconcile(nil, rx, ai)

	if len(b.Parties) != 1 || b.Parties[0].Name != "Gerald Mayfield" {
		t.Errorf("Parties = %+v, model list should be kept", b.Parties)
	}
	if b.Parties[0].PersonalRole == nil || *b.Parties[0].PersonalRole != constants.Individual {
		t.Errorf("PersonalRole = %v", b.Parties[0].PersonalRole)
	}
}

func TestReconcileJudgeMergeAndDedup(t *testing.T) {
	rx := &extract.Result{
		Judges: []entity.Judge{
			{Name: "Fearing", Role: "author"},
			{Name: "Staab", Role: "concurring"},
		},
	}
	ai := &llm.CaseExtraction{
		Judges: []llm.JudgeFields{
			{Name: "FEARING", Role: "Authored by"},
			{Name: "Pennell", Role: "Dissenting"},
		},
	}

	b := New(nil).Reconcile(nil, rx, ai)

	if len(b.Judges) != 3 {
		t.Fatalf("Judges = %+v, want 3 after merge and dedup", b.Judges)
	}
	byName := map[string]string{}
	for _, j := range b.Judges {
		byName[j.Name] = j.Role
	}
	if byName["FEARING"] != "author" {
		t.Errorf("Fearing role = %q", byName["FEARING"])
	}
	if byName["Pennell"] != "dissenting" {
		t.Errorf("Pennell role = %q, want role_map applied", byName["Pennell"])
	}
	if byName["Staab"] != "concurring" {
		t.Errorf("Staab = %q, pattern judge should supplement", byName["Staab"])
	}
}

func TestReconcileJudgesFillEmptyModelList(t *testing.T) {
	rx := &extract.Result{
		Judges: []entity.Judge{{Name: "Madsen", Role: "dissenting"}},
	}
	b := New(nil).Reconcile(nil, rx, &llm.CaseExtraction{})
	if len(b.Judges) != 1 || b.Judges[0].Name != "Madsen" {
		t.Errorf("Judges = %+v", b.Judges)
	}
	if b.Sources["judges"] != entity.SourceRegex {
		t.Errorf("Sources[judges] = %q", b.Sources["judges"])
	}
}

func TestReconcileStatuteAndCitationDedup(t *testing.T) {
	rx := &extract.Result{
		Citations: []entity.Citation{
			{Volume: "173", Reporter: "Wn.2d", Page: "405", FullCitation: "173 Wn.2d 405"},
			{Volume: "173", Reporter: "Wn.2d", Page: "405", FullCitation: "173 Wn.2d 405"},
		},
		Statutes: []entity.Statute{
			{RCWNumber: "9.94.030", FullText: "RCW 9.94.030"},
		},
	}
	ai := &llm.CaseExtraction{
		Statutes: []llm.StatuteFields{
			{Citation: "RCW 9.94.030"},
			{Citation: "RCW 26.09.060"},
		},
	}

	b := New(nil).Reconcile(nil, rx, ai)

	if len(b.Citations) != 1 {
		t.Errorf("Citations = %+v, want dedup by full citation", b.Citations)
	}
	if len(b.Statutes) != 2 {
		t.Errorf("Statutes = %+v, want dedup by RCW number", b.Statutes)
	}
}

func TestReconcileModelCitationsBecomePrecedents(t *testing.T) {
	ai := &llm.CaseExtraction{
		Citations: []llm.CitationFields{
			{FullCitation: "State v. Gresham, 173 Wn.2d 405 (2012)", CaseName: "State v. Gresham", Relationship: "distinguished"},
		},
	}
	b := New(nil).Reconcile(nil, nil, ai)
	if len(b.Precedents) != 1 || b.Precedents[0].PrecedentCase != "State v. Gresham" {
		t.Errorf("Precedents = %+v", b.Precedents)
	}
	if len(b.Citations) != 0 {
		t.Errorf("Citations = %+v, model citations must not enter the reporter list", b.Citations)
	}
}

func TestReconcileAllNilDefaults(t *testing.T) {
	b := New(nil).Reconcile(nil, nil, nil)

	if b.Case.CourtLevel != constants.Appeals {
		t.Errorf("CourtLevel = %q", b.Case.CourtLevel)
	}
	if b.Case.District != constants.DivisionNA {
		t.Errorf("District = %q", b.Case.District)
	}
	if b.Case.Publication != constants.Published {
		t.Errorf("Publication = %q", b.Case.Publication)
	}
	if b.Case.CaseType != "civil" {
		t.Errorf("CaseType = %q", b.Case.CaseType)
	}
	if b.Case.AppealOutcome != constants.UnknownOutcome {
		t.Errorf("AppealOutcome = %q", b.Case.AppealOutcome)
	}
	if b.Case.WinnerLegalRole != constants.UnknownLegalRole {
		t.Errorf("WinnerLegalRole = %q", b.Case.WinnerLegalRole)
	}
	if b.Case.Court != "Washington Court of Appeals" {
		t.Errorf("Court = %q", b.Case.Court)
	}
}

func TestReconcileIssueCategoryDefaults(t *testing.T) {
	ai := &llm.CaseExtraction{
		Issues: []llm.IssueFields{
			{Category: "Evidence", Summary: "Admission of prior acts", Outcome: "reversed", Winner: "Appellant"},
			{Category: "something the model invented", Summary: "Unclassifiable question"},
		},
	}
	b := New(nil).Reconcile(nil, nil, ai)
	if len(b.Issues) != 2 {
		t.Fatalf("Issues = %+v", b.Issues)
	}
	if b.Issues[0].Category != constants.Evidence || b.Issues[0].AppealOutcome != constants.Reversed {
		t.Errorf("issue 0 = %+v", b.Issues[0])
	}
	if b.Issues[0].WinnerLegalRole != constants.Appellant {
		t.Errorf("issue 0 winner = %q", b.Issues[0].WinnerLegalRole)
	}
	if b.Issues[1].Category != constants.Miscellaneous {
		t.Errorf("issue 1 category = %q, want unclassified default", b.Issues[1].Category)
	}
}
