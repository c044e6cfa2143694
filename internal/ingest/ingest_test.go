package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wacaselaw/opinion-indexer/internal/entity"
)

const metadataCSV = `opinion_type,publication_status,month,case_number,division,case_title,file_contains,case_info_url,pdf_url,pdf_filename,year,file_date,download_status
Court of Appeals Opinion,Published,January,58234-1,II,State v. Mayfield,Published Opinion,https://dw.courts.wa.gov/?q=58234-1,https://www.courts.wa.gov/opinions/pdf/582341.pdf,582341.pdf,2024,2024-01-16,Success
Supreme Court Opinion,Published,February,101678-3,,In re Pers. Restraint of Dodge,Published Opinion,,https://www.courts.wa.gov/opinions/pdf/1016783.pdf,1016783.pdf,2024,2024-02-08,Success
Court of Appeals Opinion,Published,January,99999-9,III,Broken v. Download,,,,,2024,,Failed
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadMetadataCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "metadata.csv")
	writeFile(t, path, metadataCSV)

	rows, skipped, err := LoadMetadataCSV(path)
	if err != nil {
		t.Fatalf("LoadMetadataCSV() error: %v", err)
	}
	if len(rows) != 2 || skipped != 1 {
		t.Fatalf("rows = %d skipped = %d, want 2 and 1", len(rows), skipped)
	}
	first := rows[0]
	if first.CaseNumber != "58234-1" || first.Division != "II" || first.Year != 2024 {
		t.Errorf("row = %+v", first)
	}
	if first.CaseTitle != "State v. Mayfield" || first.FileDate != "2024-01-16" {
		t.Errorf("row = %+v", first)
	}
	if rows[1].OpinionType != "Supreme Court Opinion" {
		t.Errorf("row 1 = %+v", rows[1])
	}
}

func TestResolveTextPath(t *testing.T) {
	base := t.TempDir()
	exact := filepath.Join(base, "2024", "January", "582341.txt")
	writeFile(t, exact, "text")

	meta := &entity.OpinionMetadata{
		CaseNumber: "58234-1", Year: 2024, Month: "January", PDFFilename: "582341.pdf",
	}
	if got := ResolveTextPath(base, meta); got != exact {
		t.Errorf("ResolveTextPath() = %q, want exact match %q", got, exact)
	}

	// abbreviated month directory
	abbr := filepath.Join(base, "2023", "Feb", "1016783.txt")
	writeFile(t, abbr, "text")
	meta = &entity.OpinionMetadata{
		CaseNumber: "101678-3", Year: 2023, Month: "February", PDFFilename: "1016783.pdf",
	}
	if got := ResolveTextPath(base, meta); got != abbr {
		t.Errorf("ResolveTextPath() = %q, want month-prefix match %q", got, abbr)
	}

	// filename mismatch, recovered via case number
	byCase := filepath.Join(base, "2022", "March", "opinion 39482-7 final.txt")
	writeFile(t, byCase, "text")
	meta = &entity.OpinionMetadata{
		CaseNumber: "39482-7", Year: 2022, Month: "March", PDFFilename: "different-name.pdf",
	}
	if got := ResolveTextPath(base, meta); got != byCase {
		t.Errorf("ResolveTextPath() = %q, want case-number match %q", got, byCase)
	}

	meta = &entity.OpinionMetadata{CaseNumber: "0-0", Year: 2021, Month: "April", PDFFilename: "missing.pdf"}
	if got := ResolveTextPath(base, meta); got != "" {
		t.Errorf("ResolveTextPath() = %q, want empty for missing file", got)
	}
}

func TestReadOpinionPages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opinion.txt")
	writeFile(t, path, "page one text\fpage two text\f\f  \f")

	pages, err := ReadOpinionPages(path)
	if err != nil {
		t.Fatalf("ReadOpinionPages() error: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("pages = %d, want blank pages dropped", len(pages))
	}
	if pages[0] != "page one text" || pages[1] != "page two text" {
		t.Errorf("pages = %q", pages)
	}
}

func TestScanDirectory(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "2024", "Jan", "a.txt"), "x")
	writeFile(t, filepath.Join(root, "2024", "Jan", "b.pdf"), "x")
	writeFile(t, filepath.Join(root, ".hidden", "c.txt"), "x")

	paths, err := ScanDirectory(root)
	if err != nil {
		t.Fatalf("ScanDirectory() error: %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "a.txt" {
		t.Errorf("paths = %v", paths)
	}
}
