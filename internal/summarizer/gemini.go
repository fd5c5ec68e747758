package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/transcript-digest/internal/config"
	"github.com/nguyentantai21042004/transcript-digest/internal/models"
)

const geminiPrompt = `Please write a concise summary of the following YouTube video transcript:

%s

Summary:`

type geminiStrategy struct {
	enabled bool
	apiKey  string
	model   string
	baseURL string
}

// NewGemini creates the Gemini strategy. A fresh client is built for every
// call.
func NewGemini(cfg config.GeminiConfig) Strategy {
	return &geminiStrategy{
		enabled: cfg.IsEnabled(),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
	}
}

func (g *geminiStrategy) Name() string { return models.StrategyGemini }

// Summarize sends one prompt to Gemini and returns the text of the first
// candidate.
func (g *geminiStrategy) Summarize(ctx context.Context, transcript string) (string, error) {
	if !g.enabled {
		return "", errors.New("gemini provider disabled")
	}
	if g.apiKey == "" {
		return "", errors.New("gemini API key not provided")
	}

	cc := &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if g.baseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	prompt := fmt.Sprintf(geminiPrompt, transcript)
	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini error: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		if text = strings.TrimSpace(text); text != "" {
			return text, nil
		}
	}

	return "", errors.New("gemini returned empty response")
}
