package extract

import (
	"regexp"

	"github.com/wacaselaw/opinion-indexer/constants"
)

// Window sizes over the normalized text. The header window carries court
// identity and the caption; the footer carries the disposition.
const (
	headerWindow = 3000
	preWindow    = 5000
	footerWindow = 5000
)

var (
	supremeCourtRe = regexp.MustCompile(`(?i)SUPREME\s+COURT[,\s]+(?:OF\s+)?(?:THE\s+)?STATE\s+OF\s+WASHINGTON`)
	appealsCourtRe = regexp.MustCompile(`(?i)COURT\s+OF\s+APPEALS`)
	divisionRe     = regexp.MustCompile(`(?i)DIVISION\s+(ONE|TWO|THREE|I{1,3}|[123])`)

	// Docket suffix like "39019-5-III" recovers the division when the header
	// never spells it out.
	docketSuffixRe = regexp.MustCompile(`\d+-\d+-([IVX]+)`)

	caseNumberRe    = regexp.MustCompile(`(?i)No\.\s*(\d+[,\d]*-\d+(?:-[IVX]+)?)`)
	caseNumberAltRe = regexp.MustCompile(`(?i)Case\s*(?:No\.|Number)?\s*[:\s]*(\d+[,\d]*-\d+(?:-[IVX]+)?)`)

	filedDateRe      = regexp.MustCompile(`(?i)Filed[:\s]+([A-Za-z]+\.?\s+\d{1,2},?\s+\d{4})`)
	dateComponentsRe = regexp.MustCompile(`([A-Za-z]+)\.?\s+(\d{1,2}),?\s+(\d{4})`)

	enBancRe = regexp.MustCompile(`(?i)\bEN\s+BANC\b`)

	// Author: "LASTNAME, J.—" (chief justice "C. J." included), uppercase and
	// possibly hyphenated or accented.
	authorRe = regexp.MustCompile(`([A-ZÁÉÍÓÚÑ][A-ZÁÉÍÓÚÑ]+(?:-[A-ZÁÉÍÓÚÑ]+)*)\s*,\s*(?:C\.?\s*)?J\.?\s*[-–—:]`)

	// Concurring/dissenting/pro-tempore signatures, anchored at a line or
	// word boundary so a name is never matched mid-word.
	concurringRe = regexp.MustCompile(`(?im)(?:^|[\s(\[])([A-Za-záéíóúñÁÉÍÓÚÑ][a-záéíóúñ]+(?:-[A-Za-záéíóúñÁÉÍÓÚÑ][a-záéíóúñ]+)?)\s*,\s*(?:C\.?\s*)?J\.?(?:\s*P\.?\s*T\.?)?\s*[,.]?\s*concurr`)
	dissentingRe = regexp.MustCompile(`(?im)(?:^|[\s(\[])([A-Za-záéíóúñÁÉÍÓÚÑ][a-záéíóúñ]+(?:-[A-Za-záéíóúñÁÉÍÓÚÑ][a-záéíóúñ]+)?)\s*,\s*(?:C\.?\s*)?J\.?(?:\s*P\.?\s*T\.?)?\s*[,.]?\s*dissent`)
	proTemRe     = regexp.MustCompile(`(?im)(?:^|[\s(\[])([A-Za-záéíóúñÁÉÍÓÚÑ][a-záéíóúñ]+(?:-[A-Za-záéíóúñÁÉÍÓÚÑ][a-záéíóúñ]+)?)\s*,\s*J\.?\s*P\.?\s*T\.?`)

	// Washington case citations: "123 Wn.2d 456", "123 Wn. App. 456", etc.
	waCitationRe = regexp.MustCompile(`(\d{1,3})\s+(Wn\.?\s*(?:App\.?\s*)?2d|Wn\.?\s*App\.?|Wash\.?\s*2d|Wash\.?)\s+(\d{1,4})`)

	rcwRe = regexp.MustCompile(`(?i)RCW\s+(\d+\.\d+(?:\.\d+)?)`)

	partySplitRe = regexp.MustCompile(`(?i)\s+v\.?\s+`)
)

// Outcome patterns are scanned in order against the footer; the first match
// wins. Compound dispositions come before single-clause "we ..." forms,
// which come before "is hereby ..." forms, which come before bare past
// tense. The order is a deliberate tie-break.
type outcomePattern struct {
	re      *regexp.Regexp
	outcome constants.AppealOutcome
	detail  string
}

var outcomePatterns = []outcomePattern{
	{regexp.MustCompile(`(?i)affirm(?:ed)?\s+in\s+part[,\s]+(?:and\s+)?revers(?:ed)?\s+in\s+part`), constants.Affirmed, "affirmed in part, reversed in part"},
	{regexp.MustCompile(`(?i)revers(?:ed)?\s+in\s+part[,\s]+(?:and\s+)?affirm(?:ed)?\s+in\s+part`), constants.Reversed, "reversed in part, affirmed in part"},
	{regexp.MustCompile(`(?i)(?:we\s+)?revers(?:e|ed)\s+(?:and\s+)?remand`), constants.Reversed, "reversed and remanded"},
	{regexp.MustCompile(`(?i)(?:we\s+)?affirm(?:ed)?\s+(?:and\s+)?remand`), constants.Affirmed, "affirmed and remanded"},
	{regexp.MustCompile(`(?i)\bwe\s+remand\b`), constants.Remanded, ""},
	{regexp.MustCompile(`(?i)\bwe\s+affirm\b`), constants.Affirmed, ""},
	{regexp.MustCompile(`(?i)\bwe\s+reverse\b`), constants.Reversed, ""},
	{regexp.MustCompile(`(?i)\bwe\s+dismiss\b`), constants.Dismissed, ""},
	{regexp.MustCompile(`(?i)\bis\s+(?:hereby\s+)?affirmed\b`), constants.Affirmed, ""},
	{regexp.MustCompile(`(?i)\bis\s+(?:hereby\s+)?reversed\b`), constants.Reversed, ""},
	{regexp.MustCompile(`(?i)\bis\s+(?:hereby\s+)?remanded\b`), constants.Remanded, ""},
	{regexp.MustCompile(`(?i)\bis\s+(?:hereby\s+)?dismissed\b`), constants.Dismissed, ""},
	{regexp.MustCompile(`(?i)\baffirmed\b`), constants.Affirmed, ""},
	{regexp.MustCompile(`(?i)\breversed\b`), constants.Reversed, ""},
	{regexp.MustCompile(`(?i)\bremanded\b`), constants.Remanded, ""},
	{regexp.MustCompile(`(?i)\bdismissed\b`), constants.Dismissed, ""},
}
