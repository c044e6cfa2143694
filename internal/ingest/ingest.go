// Package ingest loads the two inputs of a pipeline run: the
// published-opinions metadata CSV and the extracted opinion text files
// laid out as {base}/{year}/{month}/{name}.txt.
package ingest

import (
	"github.com/wacaselaw/opinion-indexer/internal/entity"
)

// CaseInput pairs one metadata row with its resolved text file. TextPath
// is empty when no file could be located; such rows are reported, not
// processed.
type CaseInput struct {
	Meta     *entity.OpinionMetadata
	TextPath string
}

// Stats summarizes a metadata-driven scan.
type Stats struct {
	Rows       int
	Skipped    int // download_status != Success
	Resolved   int
	Unresolved int
}
