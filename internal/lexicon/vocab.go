package lexicon

import "strings"

// legalKeywords flag a phrase as legal terminology when any of its words
// matches.
var legalKeywords = map[string]struct{}{}

// legalPhrases are exact phrases always worth indexing.
var legalPhrases = map[string]struct{}{}

// stopPhrases are connective fragments that never index.
var stopPhrases = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"court", "judge", "attorney", "counsel", "appellant", "respondent",
		"petitioner", "defendant", "plaintiff", "trial", "appeal", "motion",
		"order", "ruling", "decision", "judgment", "decree", "statute",
		"law", "legal", "constitutional", "due process", "evidence",
		"testimony", "witness", "hearing", "proceeding", "case", "matter",
		"marriage", "divorce", "custody", "support", "maintenance",
		"property", "assets", "debt", "alimony", "child support",
		"parenting", "visitation", "modification", "enforcement",
		"jurisdiction", "venue", "service", "notice", "pleading",
	} {
		legalKeywords[w] = struct{}{}
	}
	for _, p := range []string{
		"due process", "equal protection", "best interests", "child support",
		"spousal support", "community property", "separate property",
		"parenting plan", "residential time", "decision making",
		"attorney fees", "court costs", "trial court", "appeals court",
		"supreme court", "family court", "superior court",
		"motion to", "order to", "failure to", "burden of proof",
		"standard of review", "abuse of discretion", "clearly erroneous",
		"substantial evidence", "preponderance of evidence",
		"beyond reasonable doubt", "material change", "best interest",
	} {
		legalPhrases[p] = struct{}{}
	}
	for _, p := range []string{
		"of the", "in the", "to the", "for the", "and the", "at the",
		"on the", "by the", "with the", "from the", "this is",
		"that is", "it is", "there is", "here is", "what is",
		"how is", "when is", "where is", "why is", "who is",
	} {
		stopPhrases[p] = struct{}{}
	}
}

// legalPatterns are substrings that mark citation-style or statutory
// language.
var legalPatterns = []string{
	"v.", "vs.", "versus", "ex rel", "in re", "in the matter of",
	"rcw", "usc", "cfr", "wac", "pursuant to", "according to",
	"based on", "consistent with", "in accordance with",
	"subject to", "provided that", "notwithstanding",
	"shall be", "may be", "must be", "should be",
}

// highValuePatterns keep a phrase even at frequency one.
var highValuePatterns = []string{
	"constitutional", "due process", "equal protection", "first amendment",
	"fourteenth amendment", "best interests", "substantial evidence",
	"abuse of discretion", "clearly erroneous", "standard of review",
	"burden of proof", "preponderance of evidence", "beyond reasonable doubt",
	"material change", "significant change", "contempt of court",
	"res judicata", "collateral estoppel", "statute of limitations",
	"child support", "spousal support", "spousal maintenance",
	"community property", "separate property", "parenting plan",
	"residential time", "decision making authority",
}

// IsLegalPhrase decides whether an n-gram is legal terminology worth
// indexing: stop phrases never are; known phrases, keyword hits, and
// citation-style patterns are; everything else is not.
func IsLegalPhrase(phrase string) bool {
	lower := strings.ToLower(phrase)

	if _, ok := stopPhrases[lower]; ok {
		return false
	}
	if _, ok := legalPhrases[lower]; ok {
		return true
	}
	for _, word := range strings.Fields(lower) {
		if _, ok := legalKeywords[word]; ok {
			return true
		}
	}
	for _, pattern := range legalPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// IsHighValuePhrase reports whether a phrase carries terminology important
// enough to index regardless of frequency.
func IsHighValuePhrase(phrase string) bool {
	lower := strings.ToLower(phrase)
	for _, pattern := range highValuePatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
