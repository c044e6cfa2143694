package entity

import (
	"time"

	"github.com/wacaselaw/opinion-indexer/constants"
)

// CaseRecord is the canonical structured record for one opinion. It is
// produced once by the reconciler and not mutated afterward.
type CaseRecord struct {
	CaseFileID   string
	Title        string
	OpinionType  string
	Publication  constants.PublicationStatus
	Published    bool
	DecisionYear int
	DecisionMonth string
	SourceURL    string
	CaseInfoURL  string

	CourtLevel   constants.CourtLevel
	Court        string
	District     constants.Division
	DocketNumber string
	County       string
	EnBanc       bool

	SourceDocketNumber string
	TrialCourt         string
	TrialJudge         string
	TrialStartDate     *time.Time
	TrialEndDate       *time.Time
	TrialPublishedDate *time.Time

	AppealStartDate     *time.Time
	AppealEndDate       *time.Time
	AppealPublishedDate *time.Time
	OralArgumentDate    *time.Time

	AppealOutcome  constants.AppealOutcome
	OverallOutcome constants.OverallOutcome
	OutcomeDetail  string

	WinnerLegalRole    constants.LegalRole
	WinnerPersonalRole *constants.PersonalRole

	Summary  string
	CaseType string
}

type Party struct {
	Name         string
	LegalRole    constants.LegalRole
	PersonalRole *constants.PersonalRole
}

// Judge role is a free-form lowercase tag ("author", "concurring",
// "dissenting", "pro_tempore") because qualifiers combine, e.g.
// "concurring_pro_tempore". Identity key is the case-insensitive name.
type Judge struct {
	Name string
	Role string
}

type Attorney struct {
	Name         string
	FirmName     string
	FirmAddress  string
	Representing constants.LegalRole
	AttorneyType string
}

type Citation struct {
	Volume       string
	Reporter     string
	Page         string
	FullCitation string
}

type Statute struct {
	RCWNumber string
	FullText  string
}

type Issue struct {
	Category        constants.IssueCategory
	Subcategory     string
	IssueSummary    string
	RCWReference    string
	DecisionStage   string
	DecisionSummary string
	AppealOutcome   constants.AppealOutcome
	WinnerLegalRole constants.LegalRole
	WinnerPersonalRole *constants.PersonalRole
}

type Argument struct {
	Side string
	Text string
}

type Precedent struct {
	PrecedentCase string
	Citation      string
	Relationship  string
	CitationText  string
}

// SourceMap records which source (metadata, regex, ai) set each canonical
// field, kept for provenance.
type SourceMap map[string]string

const (
	SourceMetadata = "metadata"
	SourceRegex    = "regex"
	SourceAI       = "ai"
)

// CaseBundle is the full output of one pipeline run: the canonical record,
// its entity lists, and the text index. Persisted as one atomic unit.
type CaseBundle struct {
	Case       CaseRecord
	Parties    []Party
	Judges     []Judge
	Attorneys  []Attorney
	Citations  []Citation
	Statutes   []Statute
	Issues     []Issue
	Arguments  []Argument
	Precedents []Precedent

	Chunks  []TextChunk
	Phrases []Phrase

	Sources SourceMap
}
