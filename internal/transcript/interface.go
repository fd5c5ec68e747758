package transcript

import (
	"context"

	"github.com/nguyentantai21042004/transcript-digest/internal/models"
)

// Acquirer turns a video URL into a reference and its transcript text.
type Acquirer interface {
	Acquire(ctx context.Context, rawURL string) (Result, error)
}

// Provider fetches captions for a video id.
type Provider interface {
	Fetch(ctx context.Context, videoID string) (Captions, error)
}

// TitleLookup resolves the display title of a video.
type TitleLookup interface {
	Title(ctx context.Context, videoID string) (string, error)
}

// Captions is what a provider returns. Title may be empty.
type Captions struct {
	Text  string
	Title string
}

type Result struct {
	Video models.VideoReference
	Text  string
}
