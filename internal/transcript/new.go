package transcript

import (
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
)

type implAcquirer struct {
	provider Provider
	titles   TitleLookup
	logger   logger.Logger
}

// New creates an Acquirer. titles may be nil when no Data API key is configured.
func New(provider Provider, titles TitleLookup, log logger.Logger) Acquirer {
	return &implAcquirer{
		provider: provider,
		titles:   titles,
		logger:   log,
	}
}
