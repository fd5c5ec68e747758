package gdocs

import (
	"context"
	"fmt"
	"os"
	"time"

	"google.golang.org/api/docs/v1"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/nguyentantai21042004/transcript-digest/internal/config"
)

var scopes = []string{
	docs.DocumentsScope,
	drive.DriveScope,
}

type implPublisher struct {
	docs          *docs.Service
	drive         *drive.Service
	method        string
	existingDocID string
	serviceEmail  string
	now           func() time.Time
}

// New builds Docs and Drive clients from the service account in cfg.
// Extra options are appended after the credentials.
func New(ctx context.Context, cfg config.GoogleConfig, opts ...option.ClientOption) (Publisher, error) {
	if cfg.ServiceAccountFile == "" {
		return nil, ErrNotConfigured
	}
	if _, err := os.Stat(cfg.ServiceAccountFile); err != nil {
		return nil, &InitError{Err: fmt.Errorf("service account file: %w", err)}
	}

	opts = append([]option.ClientOption{
		option.WithCredentialsFile(cfg.ServiceAccountFile),
		option.WithScopes(scopes...),
	}, opts...)

	docsSvc, err := docs.NewService(ctx, opts...)
	if err != nil {
		return nil, &InitError{Err: fmt.Errorf("docs service: %w", err)}
	}
	driveSvc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, &InitError{Err: fmt.Errorf("drive service: %w", err)}
	}

	return &implPublisher{
		docs:          docsSvc,
		drive:         driveSvc,
		method:        cfg.Method,
		existingDocID: cfg.ExistingDocumentID,
		serviceEmail:  cfg.ServiceAccountEmail,
		now:           time.Now,
	}, nil
}

// NewConnector returns a Connector that calls New with cfg on every request.
func NewConnector(cfg config.GoogleConfig, opts ...option.ClientOption) Connector {
	return func(ctx context.Context) (Publisher, error) {
		return New(ctx, cfg, opts...)
	}
}
