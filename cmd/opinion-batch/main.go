// opinion-batch processes a metadata CSV plus a directory of extracted
// opinion text files through the full pipeline, fanned out over a worker
// pool. With --watch it keeps running and picks up files as the scraper
// drops them.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/wacaselaw/opinion-indexer/internal/async"
	"github.com/wacaselaw/opinion-indexer/internal/chunk"
	"github.com/wacaselaw/opinion-indexer/internal/common"
	"github.com/wacaselaw/opinion-indexer/internal/export"
	"github.com/wacaselaw/opinion-indexer/internal/ingest"
	"github.com/wacaselaw/opinion-indexer/internal/llm"
	"github.com/wacaselaw/opinion-indexer/internal/llm/ollama"
	"github.com/wacaselaw/opinion-indexer/internal/llm/openai"
	"github.com/wacaselaw/opinion-indexer/internal/pipeline"
	"github.com/wacaselaw/opinion-indexer/internal/repository"
	"github.com/wacaselaw/opinion-indexer/internal/sentence"
)

func main() {
	var (
		metadata = flag.String("metadata", "", "path to metadata CSV (optional with --dir)")
		dir      = flag.String("dir", "", "base directory of opinion text files (defaults to CSV directory)")
		out      = flag.String("out", "", "write the case register XLSX here when done")
		inmem    = flag.Bool("inmem", false, "use an in-memory SQLite database")
		noModel  = flag.Bool("no-llm", false, "skip model extraction, patterns and metadata only")
		watch    = flag.Bool("watch", false, "keep running and process files as they appear")
		limit    = flag.Int("limit", 0, "process at most N cases (0 = all)")
	)
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *inmem {
		cfg.Database.Driver = repository.DriverSQLite
		cfg.Database.DSN = ":memory:"
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	if *metadata == "" && *dir == "" {
		logger.Error("invalid arguments",
			"error", common.InvalidArgumentErrorf("--metadata or --dir is required"))
		os.Exit(2)
	}
	base := *dir
	if base == "" {
		base = filepath.Dir(*metadata)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	db, err := repository.Open(ctx, repository.Config{
		Driver:           cfg.Database.Driver,
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	if err := repository.EnsureSchema(ctx, db, logger); err != nil {
		logger.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}
	cases := repository.NewCaseRepository(db, logger)

	opts := []pipeline.Option{
		pipeline.WithChunker(chunk.New(
			chunk.WithTargetSize(cfg.Pipeline.TargetChunkSize),
			chunk.WithMinSize(cfg.Pipeline.MinChunkSize),
			chunk.WithMaxSize(cfg.Pipeline.MaxChunkSize),
			chunk.WithLogger(logger),
		)),
		pipeline.WithSegmenter(sentence.New(
			sentence.WithMinChars(cfg.Pipeline.MinSentenceChars),
		)),
		pipeline.WithMinPhraseFrequency(cfg.Pipeline.MinPhraseFrequency),
		pipeline.WithStrictPhraseFilter(cfg.Pipeline.StrictPhraseFilter),
		pipeline.WithMaxTextChars(cfg.LLM.MaxTextChars),
	}
	if !*noModel {
		if model := buildModel(cfg, logger); model != nil {
			opts = append(opts, pipeline.WithModel(model))
		}
	}
	proc := pipeline.NewProcessor(cases, logger, opts...)

	queue := async.NewProcessorQueue(proc, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithProcessTimeout(cfg.Pipeline.ProcessTimeout),
	)

	enqueued := 0
	if *metadata != "" {
		rows, skipped, err := ingest.LoadMetadataCSV(*metadata)
		if err != nil {
			logger.Error("failed to load metadata", "path", *metadata, "error", err)
			os.Exit(1)
		}
		inputs, stats := ingest.ResolveAll(base, rows, skipped, logger)
		for _, in := range inputs {
			if in.TextPath == "" {
				continue
			}
			if *limit > 0 && enqueued >= *limit {
				break
			}
			_ = queue.Enqueue(ctx, async.Job{Input: in, SubmittedAt: time.Now()})
			enqueued++
		}
		logger.Info("batch.enqueue.done", "enqueued", enqueued, "unresolved", stats.Unresolved)
	} else {
		paths, err := ingest.ScanDirectory(base)
		if err != nil {
			logger.Error("failed to scan directory", "dir", base, "error", err)
			os.Exit(1)
		}
		for _, p := range paths {
			if *limit > 0 && enqueued >= *limit {
				break
			}
			_ = queue.Enqueue(ctx, async.Job{Input: ingest.CaseInput{TextPath: p}, SubmittedAt: time.Now()})
			enqueued++
		}
		logger.Info("batch.enqueue.done", "enqueued", enqueued)
	}

	if *watch {
		events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:    []string{base},
			Debounce: 2 * time.Second,
		}, logger)
		if err != nil {
			logger.Error("failed to start watcher", "error", err)
			os.Exit(1)
		}
		logger.Info("batch.watch.start", "dir", base)
	loop:
		for {
			select {
			case <-ctx.Done():
				break loop
			case path, ok := <-events:
				if !ok {
					break loop
				}
				_ = queue.Enqueue(ctx, async.Job{Input: ingest.CaseInput{TextPath: path}, SubmittedAt: time.Now()})
			case err, ok := <-errs:
				if ok && err != nil {
					logger.Error("batch.watch.error", "error", err)
				}
			}
		}
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), cfg.Pipeline.ProcessTimeout)
	queue.Shutdown(drainCtx)
	cancel()

	if *out != "" {
		svc := export.NewService(cases, logger)
		xlsx, err := svc.ExportCasesXLSX(context.Background())
		if err != nil {
			logger.Error("failed to export cases", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
			logger.Error("failed to write export", "path", *out, "error", err)
			os.Exit(1)
		}
		logger.Info("batch.export.ok", "path", *out)
	}
}

// buildModel wires the extraction chain: local Ollama first when enabled,
// OpenAI-compatible fallback when a key is configured.
func buildModel(cfg *common.Config, logger *slog.Logger) llm.CaseExtractor {
	var extractors []llm.CaseExtractor
	if cfg.LLM.UseOllama {
		extractors = append(extractors, ollama.NewClient(ollama.Config{
			BaseURL:     cfg.LLM.OllamaBaseURL,
			Model:       cfg.LLM.OllamaModel,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger))
	}
	if cfg.LLM.OpenAIAPIKey != "" {
		extractors = append(extractors, openai.NewClient(openai.Config{
			APIKey:      cfg.LLM.OpenAIAPIKey,
			BaseURL:     cfg.LLM.OpenAIBaseURL,
			Model:       cfg.LLM.OpenAIModel,
			Temperature: cfg.LLM.Temperature,
			Timeout:     cfg.LLM.Timeout,
		}, logger))
	}
	switch len(extractors) {
	case 0:
		logger.Warn("no model configured, running pattern extraction only")
		return nil
	case 1:
		return extractors[0]
	default:
		return llm.NewChain(logger, extractors...)
	}
}
