package llm

import "context"

// CaseContext is metadata the caller already knows about the opinion. It is
// surfaced to the model as hints, never as ground truth.
type CaseContext struct {
	CaseFileID string `json:"case_file_id,omitempty"`
	Caption    string `json:"caption,omitempty"`
	Year       int    `json:"year,omitempty"`
}

type ExtractRequest struct {
	// Full normalized opinion text. Truncated head-and-tail to MaxChars
	// before prompting.
	Text     string
	MaxChars int

	Context CaseContext
}

// PartyFields, JudgeFields, AttorneyFields, CitationFields, StatuteFields
// and IssueFields mirror the JSON arrays the model returns, after key
// normalization.
type PartyFields struct {
	Name         string `json:"name"`
	Role         string `json:"role,omitempty"`
	PersonalRole string `json:"personal_role,omitempty"`
	PartyType    string `json:"party_type,omitempty"`
}

type JudgeFields struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

type AttorneyFields struct {
	Name         string `json:"name"`
	Representing string `json:"representing,omitempty"`
	FirmName     string `json:"firm_name,omitempty"`
	FirmAddress  string `json:"firm_address,omitempty"`
}

type CitationFields struct {
	FullCitation string `json:"full_citation"`
	CaseName     string `json:"case_name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

type StatuteFields struct {
	Citation string `json:"citation"`
	Title    string `json:"title,omitempty"`
}

type IssueFields struct {
	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	Summary     string `json:"summary"`
	Outcome     string `json:"outcome,omitempty"`
	Winner      string `json:"winner,omitempty"`
}

type ArgumentFields struct {
	Side string `json:"side,omitempty"`
	Text string `json:"text"`
}

// CaseExtraction is the normalized shape we want from the model, after the
// repair and sanitize passes have flattened provider quirks away.
type CaseExtraction struct {
	Summary            string `json:"summary"`
	CaseType           string `json:"case_type,omitempty"`
	County             string `json:"county,omitempty"`
	TrialCourt         string `json:"trial_court,omitempty"`
	TrialJudge         string `json:"trial_judge,omitempty"`
	SourceDocketNumber string `json:"source_docket_number,omitempty"`

	AppealOutcome      string `json:"appeal_outcome,omitempty"`
	OutcomeDetail      string `json:"outcome_detail,omitempty"`
	WinnerLegalRole    string `json:"winner_legal_role,omitempty"`
	WinnerPersonalRole string `json:"winner_personal_role,omitempty"`

	OralArgumentDate string `json:"oral_argument_date,omitempty"` // YYYY-MM-DD
	OpinionFiledDate string `json:"opinion_filed_date,omitempty"` // YYYY-MM-DD

	Parties   []PartyFields    `json:"parties,omitempty"`
	Judges    []JudgeFields    `json:"judges,omitempty"`
	Attorneys []AttorneyFields `json:"attorneys,omitempty"`
	Citations []CitationFields `json:"citations,omitempty"`
	Statutes  []StatuteFields  `json:"statutes,omitempty"`
	Issues    []IssueFields    `json:"issues,omitempty"`
	Arguments []ArgumentFields `json:"arguments,omitempty"`
}

// CaseExtractor is the interface the pipeline depends on. The raw JSON is
// returned alongside the decoded fields for audit storage.
type CaseExtractor interface {
	ExtractCase(ctx context.Context, req ExtractRequest) (CaseExtraction, []byte /*rawJSON*/, error)
	Name() string
}
