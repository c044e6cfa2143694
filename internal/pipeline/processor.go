// Package pipeline runs one opinion end to end: read pages, normalize,
// pattern-extract, chunk, segment, model-extract, reconcile, index,
// persist. Each case is independent; the worker queue fans these out.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wacaselaw/opinion-indexer/internal/chunk"
	"github.com/wacaselaw/opinion-indexer/internal/common"
	"github.com/wacaselaw/opinion-indexer/internal/entity"
	"github.com/wacaselaw/opinion-indexer/internal/extract"
	"github.com/wacaselaw/opinion-indexer/internal/ingest"
	"github.com/wacaselaw/opinion-indexer/internal/lexicon"
	"github.com/wacaselaw/opinion-indexer/internal/llm"
	"github.com/wacaselaw/opinion-indexer/internal/normalize"
	"github.com/wacaselaw/opinion-indexer/internal/reconcile"
	"github.com/wacaselaw/opinion-indexer/internal/repository"
	"github.com/wacaselaw/opinion-indexer/internal/sentence"
)

type Processor struct {
	logger     *slog.Logger
	extractor  *extract.Extractor
	chunker    *chunk.Chunker
	segmenter  *sentence.Segmenter
	reconciler *reconcile.Reconciler
	cases      repository.CaseRepository

	// model is optional; nil means pattern-and-metadata-only runs
	model llm.CaseExtractor

	minPhraseFrequency int
	strictPhraseFilter bool
	maxTextChars       int
}

type Option func(*Processor)

// WithModel attaches a case extractor (usually an llm.Chain).
func WithModel(m llm.CaseExtractor) Option {
	return func(p *Processor) { p.model = m }
}

// WithChunker replaces the default chunker, e.g. with configured sizes.
func WithChunker(c *chunk.Chunker) Option {
	return func(p *Processor) {
		if c != nil {
			p.chunker = c
		}
	}
}

func WithMinPhraseFrequency(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.minPhraseFrequency = n
		}
	}
}

// WithSegmenter replaces the default segmenter, e.g. with a configured
// fragment threshold.
func WithSegmenter(s *sentence.Segmenter) Option {
	return func(p *Processor) {
		if s != nil {
			p.segmenter = s
		}
	}
}

// WithStrictPhraseFilter toggles the legal vocabulary gate on phrase
// collection; relaxed runs keep any phrase above the frequency floor.
func WithStrictPhraseFilter(strict bool) Option {
	return func(p *Processor) { p.strictPhraseFilter = strict }
}

// WithMaxTextChars bounds how much opinion text is sent to the model.
func WithMaxTextChars(n int) Option {
	return func(p *Processor) {
		if n > 0 {
			p.maxTextChars = n
		}
	}
}

func NewProcessor(cases repository.CaseRepository, logger *slog.Logger, opts ...Option) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Processor{
		logger:             logger,
		extractor:          extract.New(logger),
		chunker:            chunk.New(chunk.WithLogger(logger)),
		segmenter:          sentence.New(),
		reconciler:         reconcile.New(logger),
		cases:              cases,
		minPhraseFrequency: lexicon.DefaultMinPhraseFrequency,
		strictPhraseFilter: true,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// ProcessCase runs the full pipeline for one input and returns the stored
// case id. A model failure downgrades the run to pattern-only rather than
// failing the case.
func (p *Processor) ProcessCase(ctx context.Context, input ingest.CaseInput) (int64, error) {
	runID := uuid.New().String()
	start := time.Now()

	caseFileID := ""
	caption := ""
	if input.Meta != nil {
		caseFileID = input.Meta.CaseNumber
		caption = input.Meta.CaseTitle
	}
	ctx = common.WithRunID(ctx, runID)
	ctx = common.WithCaseFileID(ctx, caseFileID)
	log := p.logger.With("run_id", runID, "case_file_id", caseFileID)

	if input.TextPath == "" {
		return 0, common.NewAppError("TEXT_MISSING",
			fmt.Sprintf("no text file for case %q", caseFileID), common.ErrInvalidInput)
	}
	if caseFileID != "" {
		v := common.NewValidator().Field("case_number", caseFileID, common.CaseNumber)
		if v.HasErrors() {
			log.Warn("pipeline.metadata.odd_case_number", "detail", v.ErrorMessage())
		}
	}
	pages, err := ingest.ReadOpinionPages(input.TextPath)
	if err != nil {
		return 0, err
	}
	text := normalize.Text(normalize.JoinPages(pages))
	log.Info("pipeline.case.start", "path", input.TextPath, "pages", len(pages), "chars", len(text))

	rx := p.extractor.Extract(text, caption)

	chunks := p.chunker.ChunkText(text)
	chunks = p.segmenter.SplitChunks(chunks)
	phrases := lexicon.ExtractPhrases(chunks, p.minPhraseFrequency, p.strictPhraseFilter)

	var ai *llm.CaseExtraction
	if p.model != nil {
		req := llm.ExtractRequest{
			Text:     text,
			MaxChars: p.maxTextChars,
			Context: llm.CaseContext{
				CaseFileID: caseFileID,
				Caption:    caption,
			},
		}
		if input.Meta != nil {
			req.Context.Year = input.Meta.Year
		}
		out, _, err := p.model.ExtractCase(ctx, req)
		if err != nil {
			log.Warn("pipeline.model.failed",
				"error", common.NewAppError("LLM_EXTRACT", err.Error(), common.ErrLLMFailed))
		} else {
			ai = &out
		}
	}

	bundle := p.reconciler.Reconcile(input.Meta, rx, ai)
	bundle.Chunks = chunks
	bundle.Phrases = phrases
	if bundle.Case.CaseFileID == "" {
		bundle.Case.CaseFileID = fallbackCaseID(input.TextPath, runID)
	}

	caseID, err := p.cases.InsertBundle(ctx, bundle)
	if err != nil {
		err = common.NewAppError("BUNDLE_INSERT", "storing case bundle", err)
		log.Error("pipeline.case.failed", "error", err)
		return 0, err
	}

	log.Info("pipeline.case.ok",
		"case_id", caseID,
		"chunks", len(chunks),
		"sentences", sentenceCount(chunks),
		"phrases", len(phrases),
		"model", ai != nil,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return caseID, nil
}

// fallbackCaseID keeps a case storable when neither metadata nor the text
// yielded a case number.
func fallbackCaseID(path, runID string) string {
	return fmt.Sprintf("unidentified-%s-%s", uuid.NewSHA1(uuid.NameSpaceURL, []byte(path)).String()[:8], runID[:8])
}

func sentenceCount(chunks []entity.TextChunk) int {
	n := 0
	for _, c := range chunks {
		n += len(c.Sentences)
	}
	return n
}
