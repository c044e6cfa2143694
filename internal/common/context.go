package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRunID      contextKey = "run_id"
	ContextKeyCaseFileID contextKey = "case_file_id"
)

// WithRunID adds an ingestion run ID to the context
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, ContextKeyRunID, runID)
}

// RunIDFromContext extracts the ingestion run ID from context
func RunIDFromContext(ctx context.Context) string {
	if runID, ok := ctx.Value(ContextKeyRunID).(string); ok {
		return runID
	}
	return ""
}

// WithCaseFileID adds a case file ID to the context
func WithCaseFileID(ctx context.Context, caseFileID string) context.Context {
	return context.WithValue(ctx, ContextKeyCaseFileID, caseFileID)
}

// CaseFileIDFromContext extracts the case file ID from context
func CaseFileIDFromContext(ctx context.Context) string {
	if caseFileID, ok := ctx.Value(ContextKeyCaseFileID).(string); ok {
		return caseFileID
	}
	return ""
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
