package entity

// TextChunk is a size-bounded, section-tagged slice of the normalized text.
// Order is dense and 1-based; concatenating chunk texts in order reproduces
// the kept paragraph sequence.
type TextChunk struct {
	Order     int
	Text      string
	WordCount int
	CharCount int
	Section   string

	Sentences []Sentence
}

// Sentence is one segment of a chunk. Order is chunk-local, GlobalOrder is
// monotonically increasing across all chunks of a case.
type Sentence struct {
	Order       int
	GlobalOrder int
	Text        string
	WordCount   int
}

// Phrase is a 2-, 3-, or 4-gram kept for the case. Identity key is
// (case, phrase); re-extraction refreshes Frequency and ExampleChunk.
type Phrase struct {
	Phrase       string
	N            int
	Frequency    int
	ExampleChunk int // chunk order the phrase was first seen in
}
