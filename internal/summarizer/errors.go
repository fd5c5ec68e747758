package summarizer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAllStrategiesFailed = errors.New("all summary methods failed")
	errEmptySummary        = errors.New("empty summary")
)

// StrategyError records why one strategy gave up. It never ends the chain.
type StrategyError struct {
	Strategy string
	Err      error
}

func (e *StrategyError) Error() string {
	return fmt.Sprintf("%s: %v", e.Strategy, e.Err)
}

func (e *StrategyError) Unwrap() error { return e.Err }

// AllStrategiesFailedError is returned when no strategy produced text.
type AllStrategiesFailedError struct {
	Attempts []*StrategyError
}

func (e *AllStrategiesFailedError) Error() string {
	if len(e.Attempts) == 0 {
		return ErrAllStrategiesFailed.Error()
	}
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, a.Error())
	}
	return fmt.Sprintf("%s (%s)", ErrAllStrategiesFailed, strings.Join(parts, "; "))
}

func (e *AllStrategiesFailedError) Is(target error) bool {
	return target == ErrAllStrategiesFailed
}
