package gdocs

import "context"

// Publisher writes a formatted digest to Google Docs.
type Publisher interface {
	// Publish stores content according to the configured method and returns
	// the document it landed in.
	Publish(ctx context.Context, title, content string) (Document, error)
}

// Connector builds a fresh Publisher for one request.
type Connector func(ctx context.Context) (Publisher, error)

// Document identifies a Google Docs document.
type Document struct {
	ID  string
	URL string
}
