package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go-kit/llm"

	"github.com/nguyentantai21042004/transcript-digest/internal/config"
	"github.com/nguyentantai21042004/transcript-digest/internal/models"
)

const openAIPrompt = "Write a concise summary of the following YouTube video transcript:\n\n%s"

type openAIStrategy struct {
	client *llm.Client
}

// NewOpenAI creates the primary strategy against an OpenAI-compatible chat
// endpoint. Without an API key every call fails.
func NewOpenAI(cfg config.OpenAIConfig) Strategy {
	if cfg.APIKey == "" {
		return &openAIStrategy{}
	}
	return &openAIStrategy{
		client: llm.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Model,
			llm.WithTemperature(cfg.Temperature),
		),
	}
}

func (o *openAIStrategy) Name() string { return models.StrategyOpenAI }

func (o *openAIStrategy) Summarize(ctx context.Context, transcript string) (string, error) {
	if o.client == nil {
		return "", errors.New("openai API key not provided")
	}

	resp, err := o.client.Complete(ctx, "", fmt.Sprintf(openAIPrompt, transcript))
	if err != nil {
		return "", fmt.Errorf("openai error: %w", err)
	}
	return strings.TrimSpace(resp), nil
}
