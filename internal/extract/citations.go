package extract

import (
	"strings"

	"github.com/wacaselaw/opinion-indexer/internal/entity"
)

// Canonical reporter strings. Every matched reporter variant normalizes to
// one of these.
const (
	ReporterWn2d    = "Wn.2d"
	ReporterWnApp2d = "Wn. App. 2d"
	ReporterWnApp   = "Wn. App."
	ReporterWash    = "Wash."
)

// extractCitations runs a single pass over the full text and deduplicates
// by the normalized full citation.
func extractCitations(text string) []entity.Citation {
	var citations []entity.Citation
	seen := make(map[string]struct{})

	for _, m := range waCitationRe.FindAllStringSubmatch(text, -1) {
		volume, reporter, page := m[1], m[2], m[3]

		stripped := strings.NewReplacer(" ", "", ".", "").Replace(reporter)
		var clean string
		switch {
		case strings.Contains(stripped, "App2d"):
			clean = ReporterWnApp2d
		case strings.Contains(stripped, "App"):
			clean = ReporterWnApp
		case strings.Contains(stripped, "Wn2d"), strings.Contains(stripped, "Wash2d"):
			clean = ReporterWn2d
		case strings.Contains(stripped, "Wash"):
			clean = ReporterWash
		default:
			clean = ReporterWn2d
		}

		full := volume + " " + clean + " " + page
		if _, ok := seen[full]; ok {
			continue
		}
		seen[full] = struct{}{}
		citations = append(citations, entity.Citation{
			Volume:       volume,
			Reporter:     clean,
			Page:         page,
			FullCitation: full,
		})
	}

	return citations
}

// extractStatutes collects RCW references, stripping trailing dots and
// deduplicating by statute number.
func extractStatutes(text string) []entity.Statute {
	var statutes []entity.Statute
	seen := make(map[string]struct{})

	for _, m := range rcwRe.FindAllStringSubmatch(text, -1) {
		rcw := strings.TrimRight(m[1], ".")
		if _, ok := seen[rcw]; ok {
			continue
		}
		seen[rcw] = struct{}{}
		statutes = append(statutes, entity.Statute{
			RCWNumber: rcw,
			FullText:  "RCW " + rcw,
		})
	}

	return statutes
}
