package llm

import (
	"regexp"
	"strings"
)

// SystemPrompt pins the model to strict JSON over Washington case law.
const SystemPrompt = `You are an expert legal document analyzer for Washington State case law. Extract structured data from the provided court opinion into valid JSON format.

CRITICAL RULES:
1. Extract ONLY information explicitly stated in the document text.
2. If information is not found, use null.
3. Do not hallucinate or guess relationships (e.g., do not guess which party "won" if it is a complex split decision).
4. Escape all double quotes within strings to ensure the output is parseable JSON.
5. Do not include markdown formatting in your response; return raw JSON only.
6. DO NOT invent names like "John Doe", "Jane Smith", "John Smith".`

const extractionTemplate = `Analyze this Washington State court opinion and extract the following deep-level case details.

CASE TEXT:
%TEXT%

Extract this JSON structure:
{
    "summary": "Comprehensive 5-6 sentence summary covering: 1) the key background facts, 2) the procedural history, 3) the primary legal issues raised, 4) the court's reasoning, and 5) the final disposition.",
    "case_category": "criminal|civil|family|divorce|estate|administrative|tort|commercial|property|other",
    "originating_court": {
        "county": "County where the case originated (e.g., 'King', 'Spokane')",
        "court_name": "Full name of lower court (e.g., 'King County Superior Court')",
        "trial_judge": "Name of the trial court judge if mentioned",
        "source_docket_number": "Lower court case number if mentioned"
    },
    "outcome": {
        "disposition": "affirmed|reversed|remanded|dismissed|partial|other",
        "details": "Specific details (e.g., 'Conviction affirmed, but remanded for resentencing')",
        "prevailing_party": "Appellant|Respondent|Petitioner|Plaintiff|Defendant|Split/Remanded|Neither"
    },
    "parties_parsed": [
        {
            "name": "Full party name",
            "appellate_role": "Appellant|Respondent|Petitioner|Cross-Appellant",
            "trial_role": "Plaintiff|Defendant|State|Intervenor|null",
            "type": "Individual|Government|Corporation|Estate|Other"
        }
    ],
    "legal_representation": [
        {
            "attorney_name": "Full name of attorney. Look under 'FOR APPELLANT', 'FOR RESPONDENT' or 'COUNSEL OF RECORD' sections.",
            "representing": "Name of party they represent",
            "firm_or_agency": "Law firm name, Prosecutor's Office, Public Defender, or Agency"
        }
    ],
    "judicial_panel": [
        {
            "judge_name": "Last name of appellate judge",
            "role": "Authored by|Concurring|Dissenting|Joining"
        }
    ],
    "cases_cited": [
        {
            "full_citation": "Full case citation as it appears (e.g., 'State v. Smith, 150 Wn.2d 489, 78 P.3d 1014 (2003)')",
            "case_name": "Short name (e.g., 'State v. Smith')",
            "relationship": "relied_upon|distinguished|cited|overruled"
        }
    ],
    "legal_analysis": {
        "key_statutes_cited": [
            "List of specific RCWs cited (e.g., 'RCW 9.94A.525')"
        ],
        "major_issues": [
            {
                "question": "Brief summary of the legal question",
                "ruling": "How the court answered"
            }
        ]
    },
    "procedural_dates": {
        "oral_argument_date": "YYYY-MM-DD or null",
        "opinion_filed_date": "YYYY-MM-DD or null"
    }
}`

// DefaultMaxChars bounds how much opinion text goes into one prompt.
const DefaultMaxChars = 30000

var (
	slipNoticeRe       = regexp.MustCompile(`(?i)NOTICE:\s*SLIP OPINION[^\n]*\n?`)
	currentOpinionRe   = regexp.MustCompile(`For the current opinion, go to https://www\.lexisnexis\.com/clients/wareports/\.\s*\n?`)
	excessBlankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// StripSlipNotices removes the slip-opinion boilerplate that repeats on
// every page of court PDFs. Pure noise for extraction.
func StripSlipNotices(text string) string {
	text = slipNoticeRe.ReplaceAllString(text, "")
	text = currentOpinionRe.ReplaceAllString(text, "")
	text = excessBlankLinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// TruncateText keeps the head and tail of long documents. The opening
// carries the caption and panel, the closing carries the disposition; the
// middle analysis is the safest cut.
func TruncateText(text string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	if len(text) <= maxChars {
		return text
	}
	half := maxChars / 2
	return text[:half] + "\n\n[...middle content truncated...]\n\n" + text[len(text)-half:]
}

// BuildExtractionPrompt prepares the user prompt for one opinion.
func BuildExtractionPrompt(req ExtractRequest) string {
	text := StripSlipNotices(req.Text)
	text = TruncateText(text, req.MaxChars)

	var b strings.Builder
	if req.Context.CaseFileID != "" {
		b.WriteString("Docket number from metadata: ")
		b.WriteString(req.Context.CaseFileID)
		b.WriteString("\n")
	}
	if req.Context.Caption != "" {
		b.WriteString("Case caption from metadata: ")
		b.WriteString(req.Context.Caption)
		b.WriteString("\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(strings.Replace(extractionTemplate, "%TEXT%", text, 1))
	return b.String()
}
