package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Chain tries each extractor in order and returns the first success. The
// usual setup is a local Ollama first with a hosted model as fallback.
type Chain struct {
	extractors []CaseExtractor
	log        *slog.Logger
}

func NewChain(logger *slog.Logger, extractors ...CaseExtractor) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{extractors: extractors, log: logger}
}

func (c *Chain) Name() string { return "chain" }

func (c *Chain) ExtractCase(ctx context.Context, req ExtractRequest) (CaseExtraction, []byte, error) {
	if len(c.extractors) == 0 {
		return CaseExtraction{}, nil, fmt.Errorf("no extractors configured")
	}

	var errs []error
	for _, e := range c.extractors {
		out, raw, err := e.ExtractCase(ctx, req)
		if err == nil {
			return out, raw, nil
		}
		c.log.Warn("llm.chain.extractor_failed",
			"extractor", e.Name(),
			"error", err,
			"case_file_id", req.Context.CaseFileID,
		)
		errs = append(errs, fmt.Errorf("%s: %w", e.Name(), err))

		if ctx.Err() != nil {
			break
		}
	}
	return CaseExtraction{}, nil, errors.Join(errs...)
}
