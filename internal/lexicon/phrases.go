package lexicon

import (
	"sort"
	"strings"

	"github.com/wacaselaw/opinion-indexer/internal/entity"
)

// ngram sizes extracted per chunk
var ngramSizes = []int{2, 3, 4}

// DefaultMinPhraseFrequency is the case-wide frequency below which a phrase
// must be high-value to survive.
const DefaultMinPhraseFrequency = 2

// NGrams counts the n-grams of one token slice.
func NGrams(tokens []string, n int) map[string]int {
	if len(tokens) < n {
		return nil
	}
	counts := make(map[string]int)
	for i := 0; i+n <= len(tokens); i++ {
		counts[strings.Join(tokens[i:i+n], " ")]++
	}
	return counts
}

// ExtractPhrases collects n-gram phrases across all chunks of a case. In
// strict mode only legal vocabulary is collected; relaxed mode admits any
// n-gram and lets the frequency threshold decide. A phrase survives when
// its case-wide frequency reaches minFrequency or it is high-value
// terminology. The example chunk is the first chunk the phrase was seen
// in. Output is sorted by phrase for stable ordering.
func ExtractPhrases(chunks []entity.TextChunk, minFrequency int, strict bool) []entity.Phrase {
	if minFrequency <= 0 {
		minFrequency = DefaultMinPhraseFrequency
	}

	frequencies := make(map[string]int)
	examples := make(map[string]int)

	for _, chunk := range chunks {
		if chunk.Text == "" {
			continue
		}
		tokens := Tokenize(chunk.Text, false)
		if len(tokens) < 2 {
			continue
		}
		for _, n := range ngramSizes {
			for phrase, freq := range NGrams(tokens, n) {
				if strict && !IsLegalPhrase(phrase) {
					continue
				}
				if _, seen := frequencies[phrase]; !seen {
					examples[phrase] = chunk.Order
				}
				frequencies[phrase] += freq
			}
		}
	}

	var phrases []entity.Phrase
	for phrase, freq := range frequencies {
		if freq < minFrequency && !IsHighValuePhrase(phrase) {
			continue
		}
		phrases = append(phrases, entity.Phrase{
			Phrase:       phrase,
			N:            len(strings.Fields(phrase)),
			Frequency:    freq,
			ExampleChunk: examples[phrase],
		})
	}

	sort.Slice(phrases, func(i, j int) bool { return phrases[i].Phrase < phrases[j].Phrase })
	return phrases
}
