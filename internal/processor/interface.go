package processor

import (
	"context"

	"github.com/nguyentantai21042004/transcript-digest/internal/models"
)

// Processor defines the interface for the digest pipeline
type Processor interface {
	// Process runs transcript, summary and persistence for one video URL.
	Process(ctx context.Context, rawURL string) (Result, error)
	// Rebuild writes the local document again from data a client already has.
	Rebuild(ctx context.Context, ref models.VideoReference, summary, transcript string) (models.PersistenceOutcome, error)
}

// Result is everything a caller needs to report on one processed video.
type Result struct {
	Video      models.VideoReference
	Transcript string
	Summary    models.SummaryResult
	Outcome    models.PersistenceOutcome
}
