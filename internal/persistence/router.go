package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/transcript-digest/internal/document"
	"github.com/nguyentantai21042004/transcript-digest/internal/gdocs"
	"github.com/nguyentantai21042004/transcript-digest/internal/models"
)

func (r *implRouter) Persist(ctx context.Context, ref models.VideoReference, summary, transcript string) (models.PersistenceOutcome, error) {
	var out models.PersistenceOutcome

	doc, err := r.persistCloud(ctx, ref, summary, transcript)
	if err != nil {
		out.CloudError = err.Error()
	} else {
		out.CloudDocumentID = doc.ID
		out.CloudDocumentURL = doc.URL
		r.logger.Info(ctx, "Saved to Google Docs: %s", doc.URL)
	}

	if err := r.persistLocal(ctx, ref, summary, transcript, &out); err != nil {
		return out, err
	}
	return out, nil
}

func (r *implRouter) SaveLocal(ctx context.Context, ref models.VideoReference, summary, transcript string) (models.PersistenceOutcome, error) {
	var out models.PersistenceOutcome
	err := r.persistLocal(ctx, ref, summary, transcript, &out)
	return out, err
}

// persistCloud never fails the request. Not being configured is expected,
// broken credentials are not, so the two are logged differently.
func (r *implRouter) persistCloud(ctx context.Context, ref models.VideoReference, summary, transcript string) (gdocs.Document, error) {
	if r.connect == nil {
		return gdocs.Document{}, fmt.Errorf("%w: %w", ErrCloudPersistence, gdocs.ErrNotConfigured)
	}

	pub, err := r.connect(ctx)
	if err != nil {
		var initErr *gdocs.InitError
		switch {
		case errors.Is(err, gdocs.ErrNotConfigured):
			r.logger.Info(ctx, "Google Docs skipped: %v", err)
		case errors.As(err, &initErr):
			r.logger.Error(ctx, "Google Docs unavailable: %v", err)
		default:
			r.logger.Warn(ctx, "Google Docs unavailable: %v", err)
		}
		return gdocs.Document{}, fmt.Errorf("%w: %w", ErrCloudPersistence, err)
	}

	now := r.now()
	content := document.FormatForDocs(ref, summary, transcript, now)
	doc, err := pub.Publish(ctx, document.CloudTitle(ref, now), content)
	if err != nil {
		r.logger.Warn(ctx, "Google Docs save failed: %v", err)
		return gdocs.Document{}, fmt.Errorf("%w: %w", ErrCloudPersistence, err)
	}
	return doc, nil
}

func (r *implRouter) persistLocal(ctx context.Context, ref models.VideoReference, summary, transcript string, out *models.PersistenceOutcome) error {
	now := r.now()
	content := document.Format(ref, summary, transcript, now)
	name := document.FileName(ref, now, ".txt")

	path, err := r.store.Save(name, []byte(content))
	if err != nil {
		r.logger.Error(ctx, "Local file save failed: %v", err)
		return fmt.Errorf("%w: %w", ErrLocalPersistence, err)
	}
	out.LocalFilePath = path
	out.LocalFileName = name
	r.logger.Info(ctx, "Saved local file: %s", path)

	if r.opts.ExportDocx {
		docxPath := r.store.Path(strings.TrimSuffix(name, ".txt") + ".docx")
		if err := document.WriteDocx(content, docxPath); err != nil {
			r.logger.Warn(ctx, "Docx export failed: %v", err)
		} else {
			r.logger.Debug(ctx, "Saved docx copy: %s", docxPath)
		}
	}
	return nil
}
