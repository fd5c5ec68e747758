package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/transcript-digest/internal/models"
)

// Summarizer turns transcript text into a summary.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (models.SummaryResult, error)
}

// Strategy is one way of producing a summary. An empty result counts as a
// failure.
type Strategy interface {
	Name() string
	Summarize(ctx context.Context, text string) (string, error)
}
