// Package sentence splits chunk text into sentences while keeping legal
// citations intact. Reporter citations contain internal periods ("173 Wn.2d
// 405, 269 P.3d 207") that a naive boundary split would shred, so citation
// spans are swapped for placeholders before splitting and restored after.
package sentence

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wacaselaw/opinion-indexer/internal/entity"
)

// Sentences shorter than this are fragments, not sentences.
const minSentenceChars = 15

// Citation shapes that must survive splitting untouched.
var protectedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+\s+P\.\s*\d+d?\s+\d+`),     // Pacific Reporter
	regexp.MustCompile(`(?i)\d+\s+Wn\.\s*\d*\s+\d+`),      // Washington Reports
	regexp.MustCompile(`(?i)\d+\s+U\.S\.\s+\d+`),          // U.S. Reports
	regexp.MustCompile(`(?i)RCW\s+\d+\.\d+\.\d+`),         // RCW statutes
	regexp.MustCompile(`(?i)WAC\s+\d+-\d+-\d+`),           // WAC regulations
	regexp.MustCompile(`(?i)\d+\s+F\.\s*\d*d?\s+\d+`),     // Federal Reporter
	regexp.MustCompile(`(?i)\d+\s+S\.\s*Ct\.\s+\d+`),      // Supreme Court Reporter
}

// Segmenter splits text into sentences and numbers them both within the
// chunk and across the whole document.
type Segmenter struct {
	minChars int
}

type Option func(*Segmenter)

// WithMinChars overrides the fragment threshold.
func WithMinChars(n int) Option {
	return func(s *Segmenter) {
		if n > 0 {
			s.minChars = n
		}
	}
}

func New(opts ...Option) *Segmenter {
	s := &Segmenter{minChars: minSentenceChars}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Split returns the sentences of one chunk. Chunk-local order counts every
// raw split position, so a discarded fragment leaves a gap in the numbering
// exactly where it stood.
func (s *Segmenter) Split(text string) []entity.Sentence {
	if len(strings.TrimSpace(text)) < 10 {
		return nil
	}

	protected, restore := protectCitations(text)
	raw := splitBoundaries(protected)

	var sentences []entity.Sentence
	for i, sent := range raw {
		sent = strings.TrimSpace(sent)
		if sent == "" {
			continue
		}
		for placeholder, original := range restore {
			sent = strings.ReplaceAll(sent, placeholder, original)
		}
		if len(sent) < s.minChars {
			continue
		}
		sentences = append(sentences, entity.Sentence{
			Order:     i + 1,
			Text:      sent,
			WordCount: len(strings.Fields(sent)),
		})
	}
	return sentences
}

// SplitChunks segments every chunk in order and assigns the running global
// sentence order across chunks.
func (s *Segmenter) SplitChunks(chunks []entity.TextChunk) []entity.TextChunk {
	global := 0
	for i := range chunks {
		sentences := s.Split(chunks[i].Text)
		for j := range sentences {
			global++
			sentences[j].GlobalOrder = global
		}
		chunks[i].Sentences = sentences
	}
	return chunks
}

// protectCitations replaces each citation occurrence with a unique
// placeholder. Each placeholder substitutes exactly one occurrence so
// repeated citations round-trip correctly.
func protectCitations(text string) (string, map[string]string) {
	restore := make(map[string]string)
	for i, re := range protectedPatterns {
		matches := re.FindAllString(text, -1)
		for j, m := range matches {
			placeholder := fmt.Sprintf("__CITATION_%d_%d__", i, j)
			restore[placeholder] = m
			text = strings.Replace(text, m, placeholder, 1)
		}
	}
	return text, restore
}

// splitBoundaries splits after a terminator ([.!?]) followed by whitespace
// and an uppercase letter. Go's regexp has no lookbehind, so the scan is
// explicit: the terminator stays with the left sentence and the capital
// starts the right one.
func splitBoundaries(text string) []string {
	var parts []string
	start := 0
	i := 0
	for i < len(text) {
		c := text[i]
		if c == '.' || c == '!' || c == '?' {
			j := i + 1
			for j < len(text) && isSpace(text[j]) {
				j++
			}
			if j > i+1 && j < len(text) && text[j] >= 'A' && text[j] <= 'Z' {
				parts = append(parts, text[start:i+1])
				start = j
				i = j
				continue
			}
		}
		i++
	}
	parts = append(parts, text[start:])
	return parts
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
