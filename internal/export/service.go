// Package export produces the case register as an XLSX workbook.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/wacaselaw/opinion-indexer/internal/repository"
)

// Service is a thin façade over the case repository that renders XLSX bytes.
type Service struct {
	cases  repository.CaseRepository
	logger *slog.Logger
}

func NewService(cases repository.CaseRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cases: cases, logger: logger}
}

// ExportCasesXLSX renders every stored case as one register row, ordered
// by decision year then case number.
func (s *Service) ExportCasesXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	cases, err := s.cases.ListCases(ctx)
	if err != nil {
		return nil, fmt.Errorf("query cases: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Cases"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Case Number",
		"Title",
		"Court",
		"District",
		"County",
		"Case Type",
		"Publication",
		"Filed",
		"Outcome",
		"Winner",
		"Trial Judge",
		"Summary",
		"Opinion URL",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, c := range cases {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, c.CaseFileID)
		write(2, c.Title)
		write(3, c.Court)
		write(4, string(c.District))
		write(5, c.County)
		write(6, c.CaseType)
		write(7, string(c.Publication))
		if c.AppealPublishedDate != nil {
			write(8, c.AppealPublishedDate.Format("2006-01-02"))
		} else {
			write(8, "")
		}
		write(9, string(c.AppealOutcome))
		write(10, string(c.WinnerLegalRole))
		write(11, c.TrialJudge)
		write(12, truncate(c.Summary, 300))
		write(13, c.SourceURL)

		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "B", 48)
	_ = f.SetColWidth(sheet, "C", "C", 36)
	_ = f.SetColWidth(sheet, "D", "G", 16)
	_ = f.SetColWidth(sheet, "H", "K", 14)
	_ = f.SetColWidth(sheet, "L", "L", 60)
	_ = f.SetColWidth(sheet, "M", "M", 52)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(cases),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
