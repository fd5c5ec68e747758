package persistence

import (
	"context"

	"github.com/nguyentantai21042004/transcript-digest/internal/models"
)

// Router stores a digest in Google Docs (best effort) and on local disk.
type Router interface {
	// Persist attempts the cloud branch, then always writes the local file.
	// Only a local failure is returned as an error.
	Persist(ctx context.Context, ref models.VideoReference, summary, transcript string) (models.PersistenceOutcome, error)
	// SaveLocal writes the local file only.
	SaveLocal(ctx context.Context, ref models.VideoReference, summary, transcript string) (models.PersistenceOutcome, error)
}

// LocalStore is the download directory.
type LocalStore interface {
	Save(name string, data []byte) (string, error)
	Path(name string) string
}
