package main

import (
	"context"
	"net/http"

	"github.com/nguyentantai21042004/transcript-digest/internal/config"
	"github.com/nguyentantai21042004/transcript-digest/internal/gdocs"
	"github.com/nguyentantai21042004/transcript-digest/internal/localstore"
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
	"github.com/nguyentantai21042004/transcript-digest/internal/persistence"
	"github.com/nguyentantai21042004/transcript-digest/internal/processor"
	"github.com/nguyentantai21042004/transcript-digest/internal/summarizer"
	"github.com/nguyentantai21042004/transcript-digest/internal/transcript"
)

// buildProcessor wires the pipeline components from cfg.
func buildProcessor(ctx context.Context, cfg *config.Config, store *localstore.Store, log logger.Logger) processor.Processor {
	provider := transcript.NewYouTubeProvider(http.DefaultClient, cfg.YouTube.WatchURL, cfg.YouTube.Languages)

	var titles transcript.TitleLookup
	if cfg.YouTube.APIKey != "" {
		t, err := transcript.NewDataAPITitles(ctx, cfg.YouTube.APIKey)
		if err != nil {
			log.Warn(ctx, "YouTube Data API disabled: %v", err)
		} else {
			titles = t
		}
	}

	acq := transcript.New(provider, titles, log)
	sum := summarizer.NewFromConfig(cfg.Summary, log)
	router := persistence.New(
		gdocs.NewConnector(cfg.Google),
		store,
		persistence.Options{ExportDocx: cfg.Export.Docx},
		log,
	)

	return processor.New(acq, sum, router, log)
}
