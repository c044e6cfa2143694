// Package lexicon builds the word- and phrase-level index of opinion text:
// tokenization, stop-word filtering, n-gram extraction, and the legal-term
// filters that decide which phrases are worth indexing.
package lexicon

import (
	"regexp"
	"strings"
)

var (
	tokenRe      = regexp.MustCompile(`\b[\w'-]+\b`)
	hasLetterRe  = regexp.MustCompile(`[a-zA-Z]`)
	possessiveRe = regexp.MustCompile(`'s?$`)
)

// stopWords are skipped when callers request stop-word removal. Occurrence
// tracking keeps them so positions stay faithful to the sentence.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
		"of", "with", "by", "from", "as", "is", "was", "are", "were", "been",
		"be", "have", "has", "had", "do", "does", "did", "will", "would", "could",
		"should", "may", "might", "must", "shall", "can", "this", "that", "these",
		"those", "it", "its", "he", "she", "they", "we", "you", "i", "me", "him",
		"her", "us", "them", "my", "your", "his", "our", "their", "which", "who",
		"whom", "what", "when", "where", "why", "how", "all", "each", "every",
		"both", "few", "more", "most", "other", "some", "such", "no", "nor", "not",
		"only", "own", "same", "so", "than", "too", "very", "just", "also", "now",
		"here", "there", "then", "once", "if", "because", "until", "while", "about",
		"against", "between", "into", "through", "during", "before", "after",
		"above", "below", "up", "down", "out", "off", "over", "under", "again",
		"further", "any", "however", "therefore", "thus", "hence", "although",
	} {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether a lowercased token is a stop word.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}

// Tokenize lowercases text and splits it into word tokens. Hyphens and
// internal apostrophes survive; trailing possessives are stripped. Tokens
// under two characters or without a letter are dropped.
func Tokenize(text string, removeStopWords bool) []string {
	if text == "" {
		return nil
	}

	var tokens []string
	for _, token := range tokenRe.FindAllString(strings.ToLower(text), -1) {
		if len(token) < 2 || !hasLetterRe.MatchString(token) {
			continue
		}
		token = possessiveRe.ReplaceAllString(token, "")
		if token == "" {
			continue
		}
		if removeStopWords && IsStopWord(token) {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}
