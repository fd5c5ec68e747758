package processor

import (
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
	"github.com/nguyentantai21042004/transcript-digest/internal/persistence"
	"github.com/nguyentantai21042004/transcript-digest/internal/summarizer"
	"github.com/nguyentantai21042004/transcript-digest/internal/transcript"
)

type implProcessor struct {
	acquirer   transcript.Acquirer
	summarizer summarizer.Summarizer
	router     persistence.Router
	logger     logger.Logger
}

// New creates a new Processor instance
func New(acq transcript.Acquirer, sum summarizer.Summarizer, router persistence.Router, log logger.Logger) Processor {
	return &implProcessor{
		acquirer:   acq,
		summarizer: sum,
		router:     router,
		logger:     log,
	}
}
