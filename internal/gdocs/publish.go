package gdocs

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/nguyentantai21042004/transcript-digest/internal/config"
	"github.com/nguyentantai21042004/transcript-digest/internal/document"
)

const googleDocMimeType = "application/vnd.google-apps.document"

func (p *implPublisher) Publish(ctx context.Context, title, content string) (Document, error) {
	switch p.method {
	case config.MethodDriveThenDocs:
		return p.CreateDocument(ctx, title, content)
	default:
		if p.existingDocID == "" {
			return Document{}, ErrNoExistingDocument
		}
		return p.AppendToDocument(ctx, p.existingDocID, document.AppendBlock(content, p.now()))
	}
}

// CreateDocument creates an empty Google Doc through Drive and writes
// content at the start of its body.
func (p *implPublisher) CreateDocument(ctx context.Context, title, content string) (Document, error) {
	file, err := p.drive.Files.Create(&drive.File{
		Name:     title,
		MimeType: googleDocMimeType,
	}).Context(ctx).Do()
	if err != nil {
		return Document{}, fmt.Errorf("drive create: %w", err)
	}

	if err := p.insertText(ctx, file.Id, 1, content); err != nil {
		return Document{}, err
	}
	return newDocument(file.Id), nil
}

// AppendToDocument inserts text just before the end of an existing document.
func (p *implPublisher) AppendToDocument(ctx context.Context, docID, text string) (Document, error) {
	doc, err := p.docs.Documents.Get(docID).Context(ctx).Do()
	if err != nil {
		return Document{}, p.accessError(docID, err)
	}
	if doc.Body == nil || len(doc.Body.Content) == 0 {
		return Document{}, fmt.Errorf("document %s has no body", docID)
	}

	end := doc.Body.Content[len(doc.Body.Content)-1].EndIndex
	if err := p.insertText(ctx, docID, end-1, text); err != nil {
		return Document{}, err
	}
	return newDocument(docID), nil
}

func (p *implPublisher) insertText(ctx context.Context, docID string, index int64, text string) error {
	req := &docs.BatchUpdateDocumentRequest{
		Requests: []*docs.Request{{
			InsertText: &docs.InsertTextRequest{
				Location: &docs.Location{Index: index},
				Text:     text,
			},
		}},
	}
	if _, err := p.docs.Documents.BatchUpdate(docID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("docs batch update: %w", err)
	}
	return nil
}

func (p *implPublisher) accessError(docID string, err error) error {
	var apiErr *googleapi.Error
	if p.serviceEmail != "" && errors.As(err, &apiErr) &&
		(apiErr.Code == http.StatusForbidden || apiErr.Code == http.StatusNotFound) {
		return fmt.Errorf("docs get %s (is it shared with %s?): %w", docID, p.serviceEmail, err)
	}
	return fmt.Errorf("docs get %s: %w", docID, err)
}

func newDocument(id string) Document {
	return Document{
		ID:  id,
		URL: "https://docs.google.com/document/d/" + id + "/edit",
	}
}
