package constants

import "strings"

type LegalRole string

const (
	Appellant               LegalRole = "Appellant"
	Respondent              LegalRole = "Respondent"
	Petitioner              LegalRole = "Petitioner"
	Plaintiff               LegalRole = "Plaintiff"
	Defendant               LegalRole = "Defendant"
	ThirdParty              LegalRole = "Third Party"
	AppellantCrossRespondent LegalRole = "Appellant/Cross Respondent"
	RespondentCrossAppellant LegalRole = "Respondent/Cross Appellant"
	UnknownLegalRole        LegalRole = "Unknown"
)

var allLegalRoles = []LegalRole{
	Appellant,
	Respondent,
	Petitioner,
	Plaintiff,
	Defendant,
	ThirdParty,
	AppellantCrossRespondent,
	RespondentCrossAppellant,
	UnknownLegalRole,
}

// CanonicalizeLegalRole maps a free-text role onto the closed LegalRole set.
// The fallback on miss is Unknown; callers that need a stronger default
// (parties default to Appellant, attorneys keep Unknown) apply it themselves.
func CanonicalizeLegalRole(input string) (LegalRole, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return UnknownLegalRole, false
	}

	// compound roles first so "appellant/cross respondent" doesn't match the
	// bare appellant branch
	hasCross := strings.Contains(normalized, "cross")
	switch {
	case hasCross && strings.Contains(normalized, "appellant") && strings.Index(normalized, "appellant") < strings.Index(normalized, "cross"):
		return AppellantCrossRespondent, true
	case hasCross && strings.Contains(normalized, "respondent") && strings.Index(normalized, "respondent") < strings.Index(normalized, "cross"):
		return RespondentCrossAppellant, true
	}

	switch {
	case strings.Contains(normalized, "appellant"):
		return Appellant, true
	case strings.Contains(normalized, "respondent"):
		return Respondent, true
	case strings.Contains(normalized, "petitioner"):
		return Petitioner, true
	case strings.Contains(normalized, "plaintiff"):
		return Plaintiff, true
	case strings.Contains(normalized, "defendant"):
		return Defendant, true
	case strings.Contains(normalized, "third"):
		return ThirdParty, true
	}
	return UnknownLegalRole, false
}

func LegalRolesAsStrings() []string {
	result := make([]string, len(allLegalRoles))
	for i, r := range allLegalRoles {
		result[i] = string(r)
	}
	return result
}

type PersonalRole string

const (
	Husband     PersonalRole = "Husband"
	Wife        PersonalRole = "Wife"
	Parent      PersonalRole = "Parent"
	Child       PersonalRole = "Child"
	Estate      PersonalRole = "Estate"
	Corporation PersonalRole = "Corporation"
	Government  PersonalRole = "Government"
	Individual  PersonalRole = "Individual"
	OtherRole   PersonalRole = "Other"
)

// CanonicalizePersonalRole maps a free-text personal role onto the closed
// PersonalRole set. Personal role is nullable: a miss (including input that
// looks like a person's name rather than a role) returns ok=false and the
// caller leaves the field nil.
func CanonicalizePersonalRole(input string) (PersonalRole, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return "", false
	}
	switch {
	case strings.Contains(normalized, "husband"):
		return Husband, true
	case strings.Contains(normalized, "wife"):
		return Wife, true
	case strings.Contains(normalized, "parent"):
		return Parent, true
	case strings.Contains(normalized, "child"):
		return Child, true
	case strings.Contains(normalized, "estate"):
		return Estate, true
	case strings.Contains(normalized, "corporation"),
		strings.Contains(normalized, "company"),
		strings.Contains(normalized, "business"):
		return Corporation, true
	case strings.Contains(normalized, "government"),
		strings.Contains(normalized, "state"):
		return Government, true
	case strings.Contains(normalized, "individual"),
		strings.Contains(normalized, "person"):
		return Individual, true
	case strings.Contains(normalized, "other"):
		return OtherRole, true
	}
	return "", false
}
