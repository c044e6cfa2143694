// case-export writes the case register XLSX from an existing database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/wacaselaw/opinion-indexer/internal/common"
	"github.com/wacaselaw/opinion-indexer/internal/export"
	"github.com/wacaselaw/opinion-indexer/internal/repository"
)

func main() {
	out := flag.String("out", "cases.xlsx", "output XLSX path")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		fmt.Fprintln(os.Stderr, "Error: DB_URL is required")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	db, err := repository.Open(ctx, repository.Config{
		Driver:      cfg.Database.Driver,
		DSN:         cfg.Database.DSN,
		DialTimeout: cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	cases := repository.NewCaseRepository(db, logger)
	svc := export.NewService(cases, logger)

	xlsx, err := svc.ExportCasesXLSX(ctx)
	if err != nil {
		logger.Error("failed to export cases", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsx, 0o644); err != nil {
		logger.Error("failed to write output", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("export complete", "path", *out)
}
