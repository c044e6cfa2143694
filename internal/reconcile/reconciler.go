// Package reconcile merges the three extraction sources — CSV metadata,
// pattern extraction, and the LLM — into one canonical CaseBundle.
// Precedence is field-scoped: metadata is ground truth for identifiers and
// publication facts, patterns win over the model for structured fields they
// are reliable on, and the model alone supplies the narrative fields.
package reconcile

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/wacaselaw/opinion-indexer/constants"
	"github.com/wacaselaw/opinion-indexer/internal/entity"
	"github.com/wacaselaw/opinion-indexer/internal/extract"
	"github.com/wacaselaw/opinion-indexer/internal/llm"
)

// placeholderNames are fabricated party names some models emit when they
// cannot find the caption. Their presence discards the whole model party
// list in favor of the pattern-extracted one.
var placeholderNames = map[string]bool{
	"john doe":   true,
	"jane doe":   true,
	"john smith": true,
	"jane smith": true,
	"unknown":    true,
	"n/a":        true,
}

// judgeRoleMap translates the panel-role labels the prompt asks for into
// the lowercase role tags stored on entity.Judge.
var judgeRoleMap = map[string]string{
	"authored by": "author",
	"concurring":  "concurring",
	"dissenting":  "dissenting",
	"joining":     "panelist",
}

type Reconciler struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reconciler{logger: logger}
}

// Reconcile builds the canonical record from whichever sources are present.
// Any of the three inputs may be nil; a bundle is always returned. Every
// field the merge sets is tagged in Sources with the source that set it.
func (r *Reconciler) Reconcile(meta *entity.OpinionMetadata, rx *extract.Result, ai *llm.CaseExtraction) *entity.CaseBundle {
	b := &entity.CaseBundle{Sources: entity.SourceMap{}}

	r.applyMetadata(b, meta)
	r.applyAI(b, ai)
	r.applyPatterns(b, rx)
	r.deriveCourt(b)
	r.finalize(b)

	r.logger.Info("reconcile.case.done",
		"case_file_id", b.Case.CaseFileID,
		"court_level", string(b.Case.CourtLevel),
		"district", string(b.Case.District),
		"parties", len(b.Parties),
		"judges", len(b.Judges),
		"citations", len(b.Citations),
		"issues", len(b.Issues),
	)
	return b
}

// applyMetadata copies the ground-truth identifiers. Metadata never loses
// to either extractor for the fields it carries.
func (r *Reconciler) applyMetadata(b *entity.CaseBundle, meta *entity.OpinionMetadata) {
	if meta == nil {
		return
	}
	c := &b.Case

	set := func(field string) { b.Sources[field] = entity.SourceMetadata }

	if meta.CaseNumber != "" {
		c.CaseFileID = meta.CaseNumber
		set("case_file_id")
	}
	if meta.CaseTitle != "" {
		c.Title = meta.CaseTitle
		set("title")
	}
	if meta.OpinionType != "" {
		c.OpinionType = meta.OpinionType
		if level, ok := courtLevelFromOpinionType(meta.OpinionType); ok {
			c.CourtLevel = level
			set("court_level")
		}
	}
	if meta.PublicationStatus != "" {
		if p, ok := constants.CanonicalizePublication(meta.PublicationStatus); ok {
			c.Publication = p
			set("publication")
		}
	}
	if meta.FileContains != "" {
		c.Published = !strings.Contains(strings.ToLower(meta.FileContains), "unpublished")
		set("published")
	}
	if meta.Year > 0 {
		c.DecisionYear = meta.Year
		set("decision_year")
	}
	if meta.Month != "" {
		c.DecisionMonth = meta.Month
		set("decision_month")
	}
	if meta.PDFURL != "" {
		c.SourceURL = meta.PDFURL
		set("source_url")
	}
	if meta.CaseInfoURL != "" {
		c.CaseInfoURL = meta.CaseInfoURL
		set("case_info_url")
	}
	if meta.FileDate != "" {
		if t := extract.ParseDate(meta.FileDate); t != nil {
			c.AppealPublishedDate = t
			set("appeal_published_date")
		}
	}
	if meta.Division != "" {
		if d, ok := constants.CanonicalizeDivision(meta.Division); ok && d != constants.DivisionNA {
			c.District = d
			set("district")
			if c.CaseFileID != "" {
				c.DocketNumber = fmt.Sprintf("%s-%s", c.CaseFileID, divisionSuffix(d))
				set("docket_number")
			}
		}
	}
}

// applyAI fills the narrative fields only the model produces, and the
// structured fields as a provisional value that applyPatterns may override.
func (r *Reconciler) applyAI(b *entity.CaseBundle, ai *llm.CaseExtraction) {
	if ai == nil {
		return
	}
	c := &b.Case

	set := func(field string) { b.Sources[field] = entity.SourceAI }

	if ai.Summary != "" {
		c.Summary = ai.Summary
		set("summary")
	}
	if ai.CaseType != "" {
		c.CaseType = ai.CaseType
		set("case_type")
	}
	if ai.County != "" {
		c.County = ai.County
		set("county")
	}
	if ai.TrialCourt != "" {
		c.TrialCourt = ai.TrialCourt
		set("trial_court")
	}
	if ai.TrialJudge != "" {
		c.TrialJudge = ai.TrialJudge
		set("trial_judge")
	}
	if ai.SourceDocketNumber != "" {
		c.SourceDocketNumber = ai.SourceDocketNumber
		set("source_docket_number")
	}
	if ai.AppealOutcome != "" {
		if o, ok := constants.CanonicalizeAppealOutcome(ai.AppealOutcome); ok {
			c.AppealOutcome = o
			set("appeal_outcome")
		}
	}
	if ai.OutcomeDetail != "" {
		c.OutcomeDetail = ai.OutcomeDetail
		set("outcome_detail")
	}
	if ai.WinnerLegalRole != "" {
		role, _ := constants.CanonicalizeLegalRole(ai.WinnerLegalRole)
		c.WinnerLegalRole = role
		set("winner_legal_role")
	}
	if ai.WinnerPersonalRole != "" {
		if pr, ok := constants.CanonicalizePersonalRole(ai.WinnerPersonalRole); ok {
			c.WinnerPersonalRole = &pr
			set("winner_personal_role")
		}
	}
	if ai.OralArgumentDate != "" {
		if t := extract.ParseDate(ai.OralArgumentDate); t != nil {
			c.OralArgumentDate = t
			set("oral_argument_date")
		}
	}
	if ai.OpinionFiledDate != "" && c.AppealPublishedDate == nil {
		if t := extract.ParseDate(ai.OpinionFiledDate); t != nil {
			c.AppealPublishedDate = t
			set("appeal_published_date")
		}
	}

	for _, p := range ai.Parties {
		role, _ := constants.CanonicalizeLegalRole(p.Role)
		if role == constants.UnknownLegalRole {
			role = constants.Appellant
		}
		party := entity.Party{Name: p.Name, LegalRole: role}
		if pr, ok := constants.CanonicalizePersonalRole(p.PersonalRole); ok {
			party.PersonalRole = &pr
		}
		b.Parties = append(b.Parties, party)
	}
	if len(ai.Parties) > 0 {
		set("parties")
	}

	for _, j := range ai.Judges {
		role, ok := judgeRoleMap[strings.ToLower(strings.TrimSpace(j.Role))]
		if !ok {
			role = "author"
		}
		b.Judges = append(b.Judges, entity.Judge{Name: j.Name, Role: role})
	}
	if len(ai.Judges) > 0 {
		set("judges")
	}

	for _, a := range ai.Attorneys {
		rep, _ := constants.CanonicalizeLegalRole(a.Representing)
		b.Attorneys = append(b.Attorneys, entity.Attorney{
			Name:         a.Name,
			FirmName:     a.FirmName,
			FirmAddress:  a.FirmAddress,
			Representing: rep,
		})
	}
	if len(ai.Attorneys) > 0 {
		set("attorneys")
	}

	// model-reported citations carry case names and relationships the
	// pattern pass cannot see, so they land in Precedents
	for _, cit := range ai.Citations {
		b.Precedents = append(b.Precedents, entity.Precedent{
			PrecedentCase: cit.CaseName,
			Citation:      cit.FullCitation,
			Relationship:  cit.Relationship,
			CitationText:  cit.FullCitation,
		})
	}
	if len(ai.Citations) > 0 {
		set("precedents")
	}

	for _, s := range ai.Statutes {
		num := strings.TrimSpace(strings.TrimPrefix(s.Citation, "RCW"))
		b.Statutes = append(b.Statutes, entity.Statute{
			RCWNumber: num,
			FullText:  s.Citation,
		})
	}

	for _, iss := range ai.Issues {
		cat, ok := constants.CanonicalizeIssueCategory(iss.Category)
		if !ok {
			cat = constants.Miscellaneous
		}
		issue := entity.Issue{
			Category:     cat,
			Subcategory:  iss.Subcategory,
			IssueSummary: iss.Summary,
		}
		if o, ok := constants.CanonicalizeAppealOutcome(iss.Outcome); ok {
			issue.AppealOutcome = o
		} else {
			issue.AppealOutcome = constants.UnknownOutcome
			issue.DecisionSummary = iss.Outcome
		}
		if w, ok := constants.CanonicalizeLegalRole(iss.Winner); ok {
			issue.WinnerLegalRole = w
		} else {
			issue.WinnerLegalRole = constants.UnknownLegalRole
		}
		b.Issues = append(b.Issues, issue)
	}
	if len(ai.Issues) > 0 {
		set("issues")
	}

	for _, arg := range ai.Arguments {
		b.Arguments = append(b.Arguments, entity.Argument{Side: arg.Side, Text: arg.Text})
	}
	if len(ai.Arguments) > 0 {
		set("arguments")
	}
}

// applyPatterns applies the pattern-extraction pass. For the structured
// fields patterns are reliable on (court level, division, publication, case
// number, case type, county, en banc, outcome) it overrides the model; for
// the identifiers metadata is still ground truth and is never displaced.
func (r *Reconciler) applyPatterns(b *entity.CaseBundle, rx *extract.Result) {
	if rx == nil {
		return
	}
	c := &b.Case

	fromMeta := func(field string) bool { return b.Sources[field] == entity.SourceMetadata }
	set := func(field string) { b.Sources[field] = entity.SourceRegex }

	if rx.CourtLevelFound && !fromMeta("court_level") {
		c.CourtLevel = rx.CourtLevel
		set("court_level")
	}
	if rx.District != "" && rx.District != constants.DivisionNA && !fromMeta("district") {
		c.District = rx.District
		set("district")
	}
	if rx.Publication != "" && !fromMeta("publication") {
		c.Publication = rx.Publication
		set("publication")
	}
	if rx.Publication != "" && !fromMeta("published") {
		c.Published = rx.Publication != constants.Unpublished
		set("published")
	}
	if rx.CaseFileID != "" && !fromMeta("case_file_id") {
		c.CaseFileID = rx.CaseFileID
		set("case_file_id")
	}
	if rx.CaseType != "" {
		c.CaseType = rx.CaseType
		set("case_type")
	}
	if rx.County != "" {
		c.County = rx.County
		set("county")
	}
	if rx.EnBanc {
		c.EnBanc = true
		set("en_banc")
	}
	if rx.FiledDate != nil && c.AppealPublishedDate == nil {
		c.AppealPublishedDate = rx.FiledDate
		set("appeal_published_date")
	}

	if rx.OutcomeFound {
		c.AppealOutcome = rx.Outcome
		set("appeal_outcome")
		if c.OutcomeDetail == "" && rx.OutcomeDetail != "" {
			c.OutcomeDetail = rx.OutcomeDetail
			set("outcome_detail")
		}
	}

	// parties: replace the model's list wholesale when it is empty or
	// contains fabricated placeholder names
	if len(rx.Parties) > 0 && (len(b.Parties) == 0 || hasPlaceholderParty(b.Parties)) {
		b.Parties = append([]entity.Party(nil), rx.Parties...)
		set("parties")
	}

	// judges: fill an empty model list, otherwise supplement by name
	if len(rx.Judges) > 0 {
		if len(b.Judges) == 0 {
			b.Judges = append([]entity.Judge(nil), rx.Judges...)
			set("judges")
		} else {
			known := make(map[string]bool, len(b.Judges))
			for _, j := range b.Judges {
				known[strings.ToLower(j.Name)] = true
			}
			for _, j := range rx.Judges {
				if !known[strings.ToLower(j.Name)] {
					b.Judges = append(b.Judges, j)
				}
			}
		}
	}

	if len(rx.Citations) > 0 {
		b.Citations = append(b.Citations, rx.Citations...)
		set("citations")
	}
	if len(rx.Statutes) > 0 {
		// pattern statutes go first so dedup keeps their parsed numbers
		merged := make([]entity.Statute, 0, len(rx.Statutes)+len(b.Statutes))
		merged = append(merged, rx.Statutes...)
		merged = append(merged, b.Statutes...)
		b.Statutes = merged
		set("statutes")
	}
}

// deriveCourt names the appellate court from the resolved level and
// division. Runs after both extraction phases so it sees the final values.
func (r *Reconciler) deriveCourt(b *entity.CaseBundle) {
	c := &b.Case
	switch {
	case c.CourtLevel == constants.Supreme:
		c.Court = "Washington State Supreme Court"
	case c.District != "" && c.District != constants.DivisionNA:
		c.Court = "Washington Court of Appeals " + string(c.District)
	default:
		c.Court = "Washington Court of Appeals"
	}
}

// finalize applies the closed-set defaults and deduplicates the entity
// lists: judges by case-insensitive name, citations by full citation,
// statutes by RCW number.
func (r *Reconciler) finalize(b *entity.CaseBundle) {
	c := &b.Case
	if c.CourtLevel == "" {
		c.CourtLevel = constants.Appeals
	}
	if c.District == "" {
		c.District = constants.DivisionNA
	}
	if c.Publication == "" {
		c.Publication = constants.Published
	}
	if c.CaseType == "" {
		c.CaseType = "civil"
	}
	if c.AppealOutcome == "" {
		c.AppealOutcome = constants.UnknownOutcome
	}
	if c.WinnerLegalRole == "" {
		c.WinnerLegalRole = constants.UnknownLegalRole
	}
	c.OverallOutcome = overallFromAppeal(c.AppealOutcome)

	seenJudges := make(map[string]bool, len(b.Judges))
	judges := b.Judges[:0]
	for _, j := range b.Judges {
		key := strings.ToLower(j.Name)
		if key == "" || seenJudges[key] {
			continue
		}
		seenJudges[key] = true
		judges = append(judges, j)
	}
	b.Judges = judges

	seenCites := make(map[string]bool, len(b.Citations))
	cites := b.Citations[:0]
	for _, cit := range b.Citations {
		if cit.FullCitation == "" || seenCites[cit.FullCitation] {
			continue
		}
		seenCites[cit.FullCitation] = true
		cites = append(cites, cit)
	}
	b.Citations = cites

	seenStatutes := make(map[string]bool, len(b.Statutes))
	statutes := b.Statutes[:0]
	for _, s := range b.Statutes {
		if s.RCWNumber == "" || seenStatutes[s.RCWNumber] {
			continue
		}
		seenStatutes[s.RCWNumber] = true
		statutes = append(statutes, s)
	}
	b.Statutes = statutes
}

func hasPlaceholderParty(parties []entity.Party) bool {
	for _, p := range parties {
		if placeholderNames[strings.ToLower(strings.TrimSpace(p.Name))] {
			return true
		}
	}
	return false
}

func courtLevelFromOpinionType(opinionType string) (constants.CourtLevel, bool) {
	lower := strings.ToLower(opinionType)
	switch {
	case strings.Contains(lower, "supreme"):
		return constants.Supreme, true
	case strings.Contains(lower, "appeals"):
		return constants.Appeals, true
	}
	return "", false
}

func divisionSuffix(d constants.Division) string {
	switch d {
	case constants.DivisionI:
		return "I"
	case constants.DivisionII:
		return "II"
	case constants.DivisionIII:
		return "III"
	}
	return ""
}

func overallFromAppeal(o constants.AppealOutcome) constants.OverallOutcome {
	switch o {
	case constants.Affirmed:
		return constants.OverallAffirmed
	case constants.Reversed:
		return constants.OverallReversed
	case constants.Remanded:
		return constants.OverallRemandedFull
	case constants.Dismissed:
		return constants.OverallDismissed
	case constants.Partial:
		return constants.OverallPartial
	case constants.Split:
		return constants.OverallSplit
	}
	return constants.OverallOther
}
