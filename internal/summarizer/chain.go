package summarizer

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/transcript-digest/internal/models"
)

// Summarize runs the strategies in order and keeps the first non-empty
// summary.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (models.SummaryResult, error) {
	var attempts []*StrategyError

	for _, strategy := range s.strategies {
		s.logger.Debug(ctx, "Trying %s summary", strategy.Name())

		text, err := strategy.Summarize(ctx, transcript)
		if err == nil && strings.TrimSpace(text) == "" {
			err = errEmptySummary
		}
		if err != nil {
			se := &StrategyError{Strategy: strategy.Name(), Err: err}
			attempts = append(attempts, se)
			s.logger.Warn(ctx, "Summary strategy failed: %v", se)
			continue
		}

		s.logger.Info(ctx, "Summary produced by %s (%d chars)", strategy.Name(), len(text))
		return models.SummaryResult{Text: text, Strategy: strategy.Name()}, nil
	}

	err := &AllStrategiesFailedError{Attempts: attempts}
	return models.SummaryResult{Error: err.Error()}, err
}
