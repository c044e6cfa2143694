package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/wacaselaw/opinion-indexer/internal/entity"
)

// LoadMetadataCSV reads the scraper's metadata CSV. Columns are matched by
// header name, so column order does not matter. Rows whose download_status
// is present and not "Success" are dropped.
func LoadMetadataCSV(path string) ([]entity.OpinionMetadata, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open metadata csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read csv header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []entity.OpinionMetadata
	skipped := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read csv record: %w", err)
		}

		if status := field(record, "download_status"); status != "" && status != "Success" {
			skipped++
			continue
		}

		year, _ := strconv.Atoi(field(record, "year"))
		rows = append(rows, entity.OpinionMetadata{
			OpinionType:       field(record, "opinion_type"),
			PublicationStatus: field(record, "publication_status"),
			Month:             field(record, "month"),
			CaseNumber:        field(record, "case_number"),
			Division:          field(record, "division"),
			CaseTitle:         field(record, "case_title"),
			FileContains:      field(record, "file_contains"),
			CaseInfoURL:       field(record, "case_info_url"),
			PDFURL:            field(record, "pdf_url"),
			PDFFilename:       field(record, "pdf_filename"),
			Year:              year,
			FileDate:          field(record, "file_date"),
		})
	}
	return rows, skipped, nil
}
