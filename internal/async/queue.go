// Package async fans case processing out over a bounded worker pool.
package async

import (
	"context"
	"time"

	"github.com/wacaselaw/opinion-indexer/internal/ingest"
)

type Job struct {
	Input       ingest.CaseInput
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
