package ingest

import (
	"fmt"
	"os"
	"strings"
)

// ReadOpinionPages reads one extracted-text file and splits it into pages
// on form feeds. A file without form feeds is a single page.
func ReadOpinionPages(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read opinion text: %w", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	var pages []string
	for _, page := range strings.Split(text, "\f") {
		if strings.TrimSpace(page) == "" {
			continue
		}
		pages = append(pages, page)
	}
	return pages, nil
}
