package transcript

import (
	"context"

	"github.com/nguyentantai21042004/transcript-digest/internal/video"
)

// Acquire extracts the video id, fetches captions once and resolves the title.
func (a *implAcquirer) Acquire(ctx context.Context, rawURL string) (Result, error) {
	id, err := video.ExtractID(rawURL)
	if err != nil {
		return Result{}, err
	}

	a.logger.Info(ctx, "Fetching transcript for video %s", id)

	caps, err := a.provider.Fetch(ctx, id)
	if err != nil {
		return Result{}, &FetchError{VideoID: id, Err: err}
	}

	title := a.resolveTitle(ctx, id, caps.Title)
	ref := video.NewReference(id, rawURL, title)

	a.logger.Info(ctx, "Transcript fetched: %q (%d chars)", ref.Title, len(caps.Text))
	return Result{Video: ref, Text: caps.Text}, nil
}

// resolveTitle prefers the Data API, then the title the provider saw, then a
// generated one. Lookup errors only log.
func (a *implAcquirer) resolveTitle(ctx context.Context, id, providerTitle string) string {
	if a.titles != nil {
		title, err := a.titles.Title(ctx, id)
		if err == nil && title != "" {
			return title
		}
		if err != nil {
			a.logger.Warn(ctx, "Title lookup failed for %s: %v", id, err)
		}
	}
	if providerTitle != "" {
		return providerTitle
	}
	return video.DefaultTitle(id)
}
