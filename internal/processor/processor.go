package processor

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/transcript-digest/internal/models"
)

// Process orchestrates the pipeline. Errors are returned as the components
// produced them so callers can classify them with errors.Is and errors.As.
func (p *implProcessor) Process(ctx context.Context, rawURL string) (Result, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "Starting digest: %s", rawURL)

	// Step 1: Video id, transcript and title
	tr, err := p.acquirer.Acquire(ctx, rawURL)
	if err != nil {
		p.logger.Error(ctx, "Transcript extraction failed: %v", err)
		return Result{}, err
	}
	res := Result{Video: tr.Video, Transcript: tr.Text}

	// Step 2: Summary chain
	res.Summary, err = p.summarizer.Summarize(ctx, tr.Text)
	if err != nil {
		p.logger.Error(ctx, "Summary generation failed: %v", err)
		return res, err
	}
	p.logger.Info(ctx, "Summary produced by %s", res.Summary.Strategy)

	// Step 3: Google Docs (best effort) and the local file
	res.Outcome, err = p.router.Persist(ctx, res.Video, res.Summary.Text, res.Transcript)
	if err != nil {
		return res, err
	}

	p.logger.Info(ctx, "Digest completed in %s: %s", time.Since(startTime), res.Outcome.LocalFileName)
	return res, nil
}

func (p *implProcessor) Rebuild(ctx context.Context, ref models.VideoReference, summary, transcript string) (models.PersistenceOutcome, error) {
	p.logger.Info(ctx, "Rebuilding download for video %s", ref.ID)
	return p.router.SaveLocal(ctx, ref, summary, transcript)
}
