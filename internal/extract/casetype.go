package extract

import (
	"regexp"
	"strings"
)

const caseTypeWindow = 10000

var (
	stateAsDefendantRe  = regexp.MustCompile(`v\.\s*(?:the\s+)?state of washington\s*,?\s*(?:d/b/a|defendant)`)
	stateAsProsecutorRe = regexp.MustCompile(`state of washington\s*,?\s*respondent\s*,?\s*v\.`)
	stateVsAppellantRe  = regexp.MustCompile(`state of washington\s*,?\s*v\.\s*[^,]+,?\s*appellant`)
)

// extractCaseType classifies the case from its opening text. A suit against
// the State is civil even though the criminal caption patterns would
// otherwise fire, so that check runs first.
func extractCaseType(text string) string {
	lower := strings.ToLower(text)
	if len(lower) > caseTypeWindow {
		lower = lower[:caseTypeWindow]
	}

	if stateAsDefendantRe.MatchString(lower) {
		return "civil"
	}
	if containsAny(lower, "certification from", "certified question") {
		return "civil"
	}
	if containsAny(lower, "title ix", "duty of care", "duty to protect") {
		return "tort"
	}
	if containsAny(lower, "negligence", "negligent") {
		return "tort"
	}

	if stateAsProsecutorRe.MatchString(lower) || stateVsAppellantRe.MatchString(lower) {
		return "criminal"
	}
	if containsAny(lower, "unlawful possession", "convicted of") {
		return "criminal"
	}
	if strings.Contains(lower, "criminal") && strings.Contains(lower, "conviction") {
		return "criminal"
	}
	if containsAny(lower, "felony", "misdemeanor") {
		return "criminal"
	}

	if containsAny(lower, "in the matter of the estate", "living trust") {
		return "estate"
	}
	if containsAny(lower, "probate", "personal representative") {
		return "estate"
	}
	if containsAny(lower, "tedra", "trust and estate") {
		return "estate"
	}

	if containsAny(lower, "in re marriage", "dissolution") {
		return "divorce"
	}
	if containsAny(lower, "child support", "parenting plan") {
		return "family"
	}
	if containsAny(lower, "custody", "visitation") {
		return "family"
	}

	if containsAny(lower, "d/b/a", "university") {
		return "civil"
	}
	if containsAny(lower, "breach of contract", "breach of fiduciary") {
		return "civil"
	}

	return "civil"
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
