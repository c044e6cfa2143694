// Package openai implements llm.CaseExtractor over the chat/completions
// API. Works against any OpenAI-compatible endpoint via Config.BaseURL.
package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wacaselaw/opinion-indexer/internal/llm"
)

func (c *Client) Name() string { return "openai/" + c.cfg.Model }

// ExtractCase prompts the model with JSON-mode enabled and runs its output
// through the shared repair, normalize, and validate passes.
func (c *Client) ExtractCase(ctx context.Context, req llm.ExtractRequest) (llm.CaseExtraction, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"provider", "openai",
		"model", c.cfg.Model,
		"temp", c.cfg.Temperature,
		"text_len", len(req.Text),
		"case_file_id", req.Context.CaseFileID,
	)

	body := map[string]any{
		"model":           c.cfg.Model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages": []map[string]any{
			{"role": "system", "content": llm.SystemPrompt},
			{"role": "user", "content": llm.BuildExtractionPrompt(req) + "\n\nReturn ONLY JSON matching the structure above."},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, headers, c.log)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.CaseExtraction{}, nil, err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.CaseExtraction{}, raw, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.extract.no_choices",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.CaseExtraction{}, raw, fmt.Errorf("no choices in openai response")
	}

	content := strings.TrimSpace(cc.Choices[0].Message.Content)
	out, rawContent, err := llm.DecodeModelOutput(content)
	if err != nil {
		c.log.Error("llm.extract.parse_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.CaseExtraction{}, []byte(content), err
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"provider", "openai",
		"summary_len", len(out.Summary),
		"parties", len(out.Parties),
		"judges", len(out.Judges),
		"issues", len(out.Issues),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, rawContent, nil
}
