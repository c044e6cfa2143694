package constants

import "strings"

type AppealOutcome string

const (
	Affirmed  AppealOutcome = "affirmed"
	Reversed  AppealOutcome = "reversed"
	Remanded  AppealOutcome = "remanded"
	Dismissed AppealOutcome = "dismissed"
	Partial   AppealOutcome = "partial"
	Split     AppealOutcome = "split"
	UnknownOutcome AppealOutcome = "Unknown"
)

// CanonicalizeAppealOutcome maps free-text outcome values onto the closed
// AppealOutcome set. Unknown input falls back to Unknown.
func CanonicalizeAppealOutcome(input string) (AppealOutcome, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return UnknownOutcome, false
	}
	switch {
	case strings.Contains(normalized, "affirm"):
		return Affirmed, true
	case strings.Contains(normalized, "revers"):
		return Reversed, true
	case strings.Contains(normalized, "remand"):
		return Remanded, true
	case strings.Contains(normalized, "dismiss"):
		return Dismissed, true
	case strings.Contains(normalized, "partial"):
		return Partial, true
	case strings.Contains(normalized, "split"):
		return Split, true
	}
	return UnknownOutcome, false
}

type OverallOutcome string

const (
	OverallAffirmed        OverallOutcome = "affirmed"
	OverallReversed        OverallOutcome = "reversed"
	OverallRemandedFull    OverallOutcome = "remanded_full"
	OverallRemandedPartial OverallOutcome = "remanded_partial"
	OverallDismissed       OverallOutcome = "dismissed"
	OverallSplit           OverallOutcome = "split"
	OverallPartial         OverallOutcome = "partial"
	OverallOther           OverallOutcome = "other"
)

// CanonicalizeOverallOutcome maps free-text case outcomes onto the closed
// OverallOutcome set. Unknown input falls back to "other".
func CanonicalizeOverallOutcome(input string) (OverallOutcome, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return OverallOther, false
	}
	switch {
	case strings.Contains(normalized, "remand") && strings.Contains(normalized, "part"):
		return OverallRemandedPartial, true
	case strings.Contains(normalized, "remand"):
		return OverallRemandedFull, true
	case strings.Contains(normalized, "affirm"):
		return OverallAffirmed, true
	case strings.Contains(normalized, "revers"):
		return OverallReversed, true
	case strings.Contains(normalized, "dismiss"):
		return OverallDismissed, true
	case strings.Contains(normalized, "split"):
		return OverallSplit, true
	case strings.Contains(normalized, "partial"):
		return OverallPartial, true
	}
	return OverallOther, false
}
