package constants

import "strings"

type CourtLevel string

const (
	Supreme CourtLevel = "Supreme"
	Appeals CourtLevel = "Appeals"
)

// CanonicalizeCourtLevel maps free-text court descriptions onto the closed
// CourtLevel set. Unknown input falls back to Appeals.
func CanonicalizeCourtLevel(input string) (CourtLevel, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return Appeals, false
	}
	if strings.Contains(normalized, "supreme") {
		return Supreme, true
	}
	if strings.Contains(normalized, "appeal") {
		return Appeals, true
	}
	return Appeals, false
}

type Division string

const (
	DivisionI   Division = "Division I"
	DivisionII  Division = "Division II"
	DivisionIII Division = "Division III"
	DivisionNA  Division = "N/A"
)

var divisionSynonyms = map[string]Division{
	"DIVISION I":   DivisionI,
	"DIVISION 1":   DivisionI,
	"DIVISION ONE": DivisionI,
	"DIV I":        DivisionI,
	"DIV. I":       DivisionI,
	"I":            DivisionI,
	"ONE":          DivisionI,
	"1":            DivisionI,
	"DIVISION II":  DivisionII,
	"DIVISION 2":   DivisionII,
	"DIVISION TWO": DivisionII,
	"DIV II":       DivisionII,
	"DIV. II":      DivisionII,
	"II":           DivisionII,
	"TWO":          DivisionII,
	"2":            DivisionII,
	"DIVISION III":   DivisionIII,
	"DIVISION 3":     DivisionIII,
	"DIVISION THREE": DivisionIII,
	"DIV III":        DivisionIII,
	"DIV. III":       DivisionIII,
	"III":            DivisionIII,
	"THREE":          DivisionIII,
	"3":              DivisionIII,
	"N/A":  DivisionNA,
	"NA":   DivisionNA,
	"NONE": DivisionNA,
}

// CanonicalizeDivision maps district/division variants onto the closed
// Division set. Unknown input falls back to N/A.
func CanonicalizeDivision(input string) (Division, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(input))
	if normalized == "" {
		return DivisionNA, false
	}
	if d, ok := divisionSynonyms[normalized]; ok {
		return d, true
	}
	return DivisionNA, false
}

type PublicationStatus string

const (
	Published          PublicationStatus = "Published"
	Unpublished        PublicationStatus = "Unpublished"
	PartiallyPublished PublicationStatus = "Partially Published"
)

// CanonicalizePublication maps free-text publication markers onto the closed
// PublicationStatus set. The fallback is Published: opinion index pages list
// unpublished opinions explicitly, so absence of the marker means published.
func CanonicalizePublication(input string) (PublicationStatus, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "" {
		return Published, false
	}
	switch {
	case strings.Contains(normalized, "unpublished"):
		return Unpublished, true
	case strings.Contains(normalized, "partial"):
		return PartiallyPublished, true
	case strings.Contains(normalized, "publish"):
		return Published, true
	}
	return Published, false
}
