// Package ollama implements llm.CaseExtractor against a local Ollama
// server's generate API.
package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wacaselaw/opinion-indexer/internal/llm"
)

type Config struct {
	BaseURL     string        // default http://localhost:11434
	Model       string        // e.g. "llama3.1:8b"
	Temperature float32
	Timeout     time.Duration
}

type Client struct {
	cfg  Config
	http *http.Client
	log  *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "llama3.1:8b"
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 300 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger,
	}
}

func (c *Client) Name() string { return "ollama/" + c.cfg.Model }

// ExtractCase prompts the model and runs the repair, normalize, and
// validate passes over its output.
func (c *Client) ExtractCase(ctx context.Context, req llm.ExtractRequest) (llm.CaseExtraction, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"provider", "ollama",
		"model", c.cfg.Model,
		"text_len", len(req.Text),
		"case_file_id", req.Context.CaseFileID,
	)

	prompt := llm.BuildExtractionPrompt(req)
	body := map[string]any{
		"model":  c.cfg.Model,
		"prompt": prompt,
		"system": llm.SystemPrompt,
		"stream": false,
		"options": map[string]any{
			"temperature": c.cfg.Temperature,
			"num_predict": 16384,
			"num_ctx":     32768,
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/generate"
	raw, _, err := llm.SendJSON(ctx, c.http, endpoint, body, nil, c.log)
	if err != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.CaseExtraction{}, nil, err
	}

	var gen struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(raw, &gen); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.CaseExtraction{}, raw, fmt.Errorf("decode ollama response: %w", err)
	}

	out, rawContent, err := llm.DecodeModelOutput(gen.Response)
	if err != nil {
		c.log.Error("llm.extract.parse_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return llm.CaseExtraction{}, []byte(gen.Response), err
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"provider", "ollama",
		"summary_len", len(out.Summary),
		"parties", len(out.Parties),
		"judges", len(out.Judges),
		"issues", len(out.Issues),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, rawContent, nil
}

// Ping checks the server is up and the configured model is pulled.
func (c *Client) Ping(ctx context.Context) error {
	var tags struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/api/tags"
	if err := llm.GetJSON(ctx, c.http, url, &tags); err != nil {
		return fmt.Errorf("ollama unreachable: %w", err)
	}
	for _, m := range tags.Models {
		if strings.Contains(m.Name, c.cfg.Model) {
			return nil
		}
	}
	return fmt.Errorf("model %s not available", c.cfg.Model)
}
