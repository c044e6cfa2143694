package ingest

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wacaselaw/opinion-indexer/internal/entity"
)

// textExt is the extension of extracted opinion text files.
const textExt = ".txt"

// ResolveTextPath locates the text file for one metadata row under base.
// Files are laid out {base}/{year}/{month}/{name}.txt. Lookup order:
// exact path, month directory matched by three-letter prefix, then any
// file in the year whose name contains the case number (commas ignored).
// Returns "" when nothing matches.
func ResolveTextPath(base string, meta *entity.OpinionMetadata) string {
	if meta.Year == 0 || meta.Month == "" || meta.PDFFilename == "" {
		return ""
	}
	name := strings.TrimSuffix(meta.PDFFilename, filepath.Ext(meta.PDFFilename)) + textExt
	year := strconv.Itoa(meta.Year)

	exact := filepath.Join(base, year, meta.Month, name)
	if fileExists(exact) {
		return exact
	}

	yearDir := filepath.Join(base, year)
	entries, err := os.ReadDir(yearDir)
	if err != nil {
		return ""
	}

	monthPrefix := strings.ToLower(meta.Month)
	if len(monthPrefix) > 3 {
		monthPrefix = monthPrefix[:3]
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := strings.ToLower(e.Name())
		if len(dir) > 3 {
			dir = dir[:3]
		}
		if dir != monthPrefix {
			continue
		}
		alt := filepath.Join(yearDir, e.Name(), name)
		if fileExists(alt) {
			return alt
		}
	}

	if meta.CaseNumber == "" {
		return ""
	}
	want := strings.ReplaceAll(meta.CaseNumber, ",", "")
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		monthDir := filepath.Join(yearDir, e.Name())
		files, err := os.ReadDir(monthDir)
		if err != nil {
			continue
		}
		for _, f := range files {
			if filepath.Ext(f.Name()) != textExt {
				continue
			}
			if strings.Contains(strings.ReplaceAll(f.Name(), ",", ""), want) {
				return filepath.Join(monthDir, f.Name())
			}
		}
	}
	return ""
}

// ResolveAll pairs every metadata row with a text file. Unresolved rows
// are logged and included with an empty TextPath so callers can report
// them.
func ResolveAll(base string, rows []entity.OpinionMetadata, skipped int, logger *slog.Logger) ([]CaseInput, Stats) {
	if logger == nil {
		logger = slog.Default()
	}
	stats := Stats{Rows: len(rows), Skipped: skipped}
	inputs := make([]CaseInput, 0, len(rows))
	for i := range rows {
		meta := &rows[i]
		path := ResolveTextPath(base, meta)
		if path == "" {
			stats.Unresolved++
			logger.Warn("ingest.resolve.miss",
				"case_number", meta.CaseNumber,
				"year", meta.Year,
				"month", meta.Month,
				"filename", meta.PDFFilename,
			)
		} else {
			stats.Resolved++
		}
		inputs = append(inputs, CaseInput{Meta: meta, TextPath: path})
	}
	logger.Info("ingest.resolve.done",
		"rows", stats.Rows,
		"skipped", stats.Skipped,
		"resolved", stats.Resolved,
		"unresolved", stats.Unresolved,
	)
	return inputs, stats
}

// ScanDirectory walks root and returns every text file, skipping hidden
// files and directories. Used when no metadata CSV is supplied.
func ScanDirectory(root string) ([]string, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.New("root path is required")
	}
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if isHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), textExt) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	return paths, nil
}

func isHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
