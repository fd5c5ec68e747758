package persistence

import (
	"time"

	"github.com/nguyentantai21042004/transcript-digest/internal/gdocs"
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
)

type Options struct {
	// ExportDocx writes a .docx copy next to every local text file.
	ExportDocx bool
}

type implRouter struct {
	connect gdocs.Connector
	store   LocalStore
	opts    Options
	logger  logger.Logger
	now     func() time.Time
}

// New creates a Router. A nil connector disables the cloud branch.
func New(connect gdocs.Connector, store LocalStore, opts Options, log logger.Logger) Router {
	return &implRouter{
		connect: connect,
		store:   store,
		opts:    opts,
		logger:  log,
		now:     time.Now,
	}
}
