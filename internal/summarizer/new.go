package summarizer

import (
	"github.com/nguyentantai21042004/transcript-digest/internal/config"
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
)

type implSummarizer struct {
	strategies []Strategy
	logger     logger.Logger
}

// New creates a Summarizer that tries strategies in the given order.
func New(log logger.Logger, strategies ...Strategy) Summarizer {
	return &implSummarizer{
		strategies: strategies,
		logger:     log,
	}
}

// NewFromConfig wires the openai -> gemini -> extractive chain.
func NewFromConfig(cfg config.SummaryConfig, log logger.Logger) Summarizer {
	return New(log,
		NewOpenAI(cfg.OpenAI),
		NewGemini(cfg.Gemini),
		NewExtractive(),
	)
}
