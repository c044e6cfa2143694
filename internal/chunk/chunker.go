// Package chunk splits normalized opinion text into section-aware chunks
// sized for retrieval indexing. Paragraph boundaries are always respected;
// no chunk ever cuts a paragraph in half, so joining the chunk texts
// reproduces every surviving paragraph in order.
package chunk

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/wacaselaw/opinion-indexer/internal/entity"
)

const (
	DefaultTargetSize = 350
	DefaultMinSize    = 200
	DefaultMaxSize    = 500

	// Documents shorter than this carry no indexable content.
	minDocumentChars = 100

	minParagraphWords = 5
)

// sectionMatcher tags a paragraph with the section it opens. Matchers run
// in declaration order against the uppercased paragraph.
type sectionMatcher struct {
	section  string
	patterns []*regexp.Regexp
}

func compileAll(exprs ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		res[i] = regexp.MustCompile(e)
	}
	return res
}

var sectionMatchers = []sectionMatcher{
	{"HEADER", compileAll(`IN THE .* COURT`, `STATE OF .*`, `COUNTY OF .*`, `No\.\s*\d+`, `Case No\.`, `Docket`)},
	{"PARTIES", compileAll(`Plaintiff`, `Defendant`, `Appellant`, `Respondent`, `Petitioner`)},
	{"PROCEDURAL", compileAll(`PROCEDURAL HISTORY`, `BACKGROUND`, `PROCEEDINGS`, `MOTION`, `APPEAL`)},
	{"FACTS", compileAll(`STATEMENT OF FACTS`, `FACTUAL BACKGROUND`, `FACTS`, `FINDINGS OF FACT`)},
	{"ANALYSIS", compileAll(`ANALYSIS`, `DISCUSSION`, `LEGAL ANALYSIS`, `CONCLUSIONS OF LAW`, `OPINION`)},
	{"HOLDING", compileAll(`HOLDING`, `CONCLUSION`, `DECISION`, `JUDGMENT`, `ORDER`)},
}

var (
	paragraphSplitRe = regexp.MustCompile(`\n\s*\n`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
)

// Chunker groups paragraphs into chunks between min and max words, aiming
// for the target and never crossing a section boundary.
type Chunker struct {
	targetSize int
	minSize    int
	maxSize    int
	logger     *slog.Logger
}

type Option func(*Chunker)

func WithTargetSize(n int) Option {
	return func(c *Chunker) {
		if n > 0 {
			c.targetSize = n
		}
	}
}

func WithMinSize(n int) Option {
	return func(c *Chunker) {
		if n > 0 {
			c.minSize = n
		}
	}
}

func WithMaxSize(n int) Option {
	return func(c *Chunker) {
		if n > 0 {
			c.maxSize = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Chunker) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func New(opts ...Option) *Chunker {
	c := &Chunker{
		targetSize: DefaultTargetSize,
		minSize:    DefaultMinSize,
		maxSize:    DefaultMaxSize,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ChunkText splits a full document into ordered chunks. Documents under
// minDocumentChars yield nil.
func (c *Chunker) ChunkText(fullText string) []entity.TextChunk {
	if len(strings.TrimSpace(fullText)) < minDocumentChars {
		return nil
	}

	paragraphs := splitParagraphs(fullText)
	sectioned := identifySections(paragraphs)
	chunks := c.assemble(sectioned)

	c.logger.Debug("chunk.done", "chunks", len(chunks), "chars", len(fullText))
	return chunks
}

// ChunkPages joins page texts with a blank line and chunks the result.
func (c *Chunker) ChunkPages(pages []string) []entity.TextChunk {
	return c.ChunkText(strings.Join(pages, "\n\n"))
}

// splitParagraphs breaks text on blank lines, collapses internal whitespace
// and drops fragments under minParagraphWords words.
func splitParagraphs(text string) []string {
	var cleaned []string
	for _, para := range paragraphSplitRe.Split(text, -1) {
		para = strings.TrimSpace(para)
		para = whitespaceRe.ReplaceAllString(para, " ")
		if para != "" && len(strings.Fields(para)) >= minParagraphWords {
			cleaned = append(cleaned, para)
		}
	}
	return cleaned
}

type sectionedParagraph struct {
	text    string
	section string
}

// identifySections assigns each paragraph the section of the most recent
// section header seen, defaulting to CONTENT.
func identifySections(paragraphs []string) []sectionedParagraph {
	sectioned := make([]sectionedParagraph, 0, len(paragraphs))
	current := "CONTENT"
	for _, para := range paragraphs {
		if detected := detectSection(para); detected != "" {
			current = detected
		}
		sectioned = append(sectioned, sectionedParagraph{text: para, section: current})
	}
	return sectioned
}

func detectSection(paragraph string) string {
	upper := strings.ToUpper(paragraph)
	for _, m := range sectionMatchers {
		for _, re := range m.patterns {
			if re.MatchString(upper) {
				return m.section
			}
		}
	}
	return ""
}

func (c *Chunker) assemble(sectioned []sectionedParagraph) []entity.TextChunk {
	var chunks []entity.TextChunk
	var pending []string
	currentSection := "CONTENT"
	order := 1

	for _, sp := range sectioned {
		if sp.section != currentSection && len(pending) > 0 {
			if ch, ok := c.finalize(pending, order, currentSection); ok {
				chunks = append(chunks, ch)
				order++
			}
			pending = nil
		}

		currentSection = sp.section
		pending = append(pending, sp.text)

		if wordCount(pending) >= c.targetSize {
			if wordCount(pending) > c.maxSize {
				sub := c.splitLarge(pending, order, currentSection)
				chunks = append(chunks, sub...)
				order += len(sub)
			} else if ch, ok := c.finalize(pending, order, currentSection); ok {
				chunks = append(chunks, ch)
				order++
			}
			pending = nil
		}
	}

	if len(pending) > 0 {
		if ch, ok := c.finalize(pending, order, currentSection); ok {
			chunks = append(chunks, ch)
		}
	}

	return chunks
}

// finalize joins pending paragraphs into a chunk. Chunks below half the
// minimum size are discarded rather than emitted.
func (c *Chunker) finalize(paragraphs []string, order int, section string) (entity.TextChunk, bool) {
	if len(paragraphs) == 0 {
		return entity.TextChunk{}, false
	}
	text := strings.Join(paragraphs, "\n\n")
	words := len(strings.Fields(text))
	if words < c.minSize/2 {
		return entity.TextChunk{}, false
	}
	return entity.TextChunk{
		Order:     order,
		Text:      text,
		WordCount: words,
		CharCount: len(text),
		Section:   section,
	}, true
}

// splitLarge re-packs an oversized paragraph run into target-sized chunks.
func (c *Chunker) splitLarge(paragraphs []string, startOrder int, section string) []entity.TextChunk {
	var chunks []entity.TextChunk
	var pending []string
	order := startOrder

	for _, para := range paragraphs {
		pending = append(pending, para)
		if wordCount(pending) >= c.targetSize {
			if ch, ok := c.finalize(pending, order, section); ok {
				chunks = append(chunks, ch)
				order++
			}
			pending = nil
		}
	}
	if len(pending) > 0 {
		if ch, ok := c.finalize(pending, order, section); ok {
			chunks = append(chunks, ch)
		}
	}
	return chunks
}

func wordCount(paragraphs []string) int {
	n := 0
	for _, p := range paragraphs {
		n += len(strings.Fields(p))
	}
	return n
}
