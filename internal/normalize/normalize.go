// Package normalize repairs PDF line-break artifacts before any pattern
// matching runs. The fixes are narrow and anchored so unrelated lines are
// never merged.
package normalize

import (
	"regexp"
	"strings"
)

var (
	// "M\nONTOYA" -> "MONTOYA": a single capital split from the rest of an
	// uppercase word, common at page boundaries.
	splitCapitalRe = regexp.MustCompile(`([A-ZÁÉÍÓÚÑ])\s*\n\s*([A-ZÁÉÍÓÚÑ]{2,})`)

	// "SMITH-LE\nWIS" -> "SMITH-LEWIS": hyphenated uppercase compound split
	// mid second segment.
	splitCompoundRe = regexp.MustCompile(`([A-ZÁÉÍÓÚÑ]+)-([A-ZÁÉÍÓÚÑ]{1,3})\s*\n\s*([A-ZÁÉÍÓÚÑ]+)`)

	// "SMITH-\nJONES" -> "SMITH-JONES": split exactly at the hyphen.
	splitHyphenRe = regexp.MustCompile(`([A-Za-záéíóúñÁÉÍÓÚÑ]+)-\s*\n\s*([A-Za-záéíóúñÁÉÍÓÚÑ]+)`)
)

// Text applies the line-break repairs in order. Unmatched text passes
// through unchanged; no information is lost.
func Text(raw string) string {
	out := splitCapitalRe.ReplaceAllString(raw, "$1$2")
	out = splitCompoundRe.ReplaceAllString(out, "$1-$2$3")
	out = splitHyphenRe.ReplaceAllString(out, "$1-$2")
	return out
}

// JoinPages concatenates page texts with blank-line separators, the shape
// the chunker and extractor expect.
func JoinPages(pages []string) string {
	return strings.Join(pages, "\n\n")
}
