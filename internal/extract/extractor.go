// Package extract is the deterministic, regex-driven entity extractor for
// Washington court opinions. All sub-extractors are pure functions of the
// normalized text; a miss yields a zero value, never an error.
package extract

import (
	"log/slog"
	"strings"
	"time"

	"github.com/wacaselaw/opinion-indexer/constants"
	"github.com/wacaselaw/opinion-indexer/internal/entity"
)

// Result is the full output of one pattern-extraction pass.
type Result struct {
	CourtLevel      constants.CourtLevel
	CourtLevelFound bool
	District        constants.Division
	Publication     constants.PublicationStatus
	CaseFileID      string
	CaseType        string
	County          string

	FiledDate *time.Time
	EnBanc    bool

	Outcome       constants.AppealOutcome
	OutcomeFound  bool
	OutcomeDetail string

	Judges    []entity.Judge
	Parties   []entity.Party
	Citations []entity.Citation
	Statutes  []entity.Statute
}

type Extractor struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract runs every sub-extractor over the normalized text. caption is the
// case title from metadata; when empty, parties are recovered from the
// header window instead.
func (e *Extractor) Extract(text, caption string) *Result {
	result := &Result{}

	header := text
	if len(header) > headerWindow {
		header = header[:headerWindow]
	}
	pre := text
	if len(pre) > preWindow {
		pre = pre[:preWindow]
	}
	footer := text
	if len(footer) > footerWindow {
		footer = footer[len(footer)-footerWindow:]
	}

	result.CourtLevel, result.CourtLevelFound = extractCourtLevel(pre)
	result.District = extractDivision(pre)
	result.Publication = extractPublication(pre)
	result.CaseFileID = extractCaseNumber(pre)
	result.CaseType = extractCaseType(text)
	result.EnBanc = enBancRe.MatchString(header)

	if m := filedDateRe.FindStringSubmatch(header); m != nil {
		result.FiledDate = ParseDate(m[1])
	}

	result.Outcome, result.OutcomeDetail, result.OutcomeFound = extractOutcome(footer)
	result.Judges = extractJudges(text, header)
	result.Parties = extractParties(caption, header)
	result.Citations = extractCitations(text)
	result.Statutes = extractStatutes(text)
	result.County = extractCounty(text)

	e.logger.Info("extract.regex.done",
		"case_file_id", result.CaseFileID,
		"judges", len(result.Judges),
		"citations", len(result.Citations),
		"statutes", len(result.Statutes),
		"outcome", string(result.Outcome),
	)

	return result
}

// extractCourtLevel checks the first preWindow chars for court identity.
// The bool reports whether an explicit marker was found; Appeals is the
// default either way.
func extractCourtLevel(pre string) (constants.CourtLevel, bool) {
	if supremeCourtRe.MatchString(pre) {
		return constants.Supreme, true
	}
	upper := strings.ToUpper(pre)
	if strings.Contains(upper, "SUPREME COURT") {
		return constants.Supreme, true
	}
	if appealsCourtRe.MatchString(pre) {
		return constants.Appeals, true
	}
	return constants.Appeals, false
}

func extractDivision(pre string) constants.Division {
	if m := divisionRe.FindStringSubmatch(pre); m != nil {
		if d, ok := constants.CanonicalizeDivision(m[1]); ok {
			return d
		}
	}
	if m := docketSuffixRe.FindStringSubmatch(pre); m != nil {
		if d, ok := constants.CanonicalizeDivision(m[1]); ok {
			return d
		}
	}
	return constants.DivisionNA
}

func extractPublication(pre string) constants.PublicationStatus {
	upper := strings.ToUpper(pre)
	if strings.Contains(upper, "PUBLISHED IN PART") {
		return constants.PartiallyPublished
	}
	if strings.Contains(upper, "UNPUBLISHED") {
		return constants.Unpublished
	}
	return constants.Published
}

func extractCaseNumber(pre string) string {
	if m := caseNumberRe.FindStringSubmatch(pre); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := caseNumberAltRe.FindStringSubmatch(pre); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func extractOutcome(footer string) (constants.AppealOutcome, string, bool) {
	for _, p := range outcomePatterns {
		if p.re.MatchString(footer) {
			return p.outcome, p.detail, true
		}
	}
	return constants.UnknownOutcome, "", false
}

// monthByName resolves full and abbreviated month names.
var monthByName = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// ParseDate parses the date formats that appear in opinion headers and the
// metadata CSV ("Jan. 16, 2025", "January 16, 2025", "2025-01-16", ...).
// Returns nil when nothing parses.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range []string{"Jan. 2, 2006", "January 2, 2006", "Jan 2, 2006", "1/2/2006", "2006-01-02", "1-2-2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	// fall back to regex component extraction
	if m := dateComponentsRe.FindStringSubmatch(s); m != nil {
		key := strings.ToLower(m[1])
		if len(key) > 3 {
			key = key[:3]
		}
		if month, ok := monthByName[key]; ok {
			day := atoi(m[2])
			year := atoi(m[3])
			if day >= 1 && day <= 31 && year > 0 {
				t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
				return &t
			}
		}
	}
	return nil
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
