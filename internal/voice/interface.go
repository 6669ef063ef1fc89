package voice

import "context"

// UseCase turns voice transcripts into task drafts and reviewed task-creation payloads.
type UseCase interface {
	// Parse builds a draft from a single transcript. It never fails.
	Parse(ctx context.Context, input ParseInput) ParseOutput

	// ParseBatch parses several transcripts against one reference time.
	ParseBatch(ctx context.Context, input ParseBatchInput) (ParseBatchOutput, error)

	// Review applies the user's edits to a draft and validates the result for task creation.
	Review(ctx context.Context, input ReviewInput) (ReviewOutput, error)
}
