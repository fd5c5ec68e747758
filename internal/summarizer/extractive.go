package summarizer

import (
	"context"
	"strings"

	"github.com/nguyentantai21042004/transcript-digest/internal/models"
)

const maxFullSentences = 5

type extractiveStrategy struct{}

// NewExtractive creates the local fallback. It never calls out and only fails
// on text without sentences.
func NewExtractive() Strategy {
	return extractiveStrategy{}
}

func (extractiveStrategy) Name() string { return models.StrategyExtractive }

func (extractiveStrategy) Summarize(_ context.Context, transcript string) (string, error) {
	sentences := splitSentences(transcript)
	if len(sentences) == 0 {
		return "", errEmptySummary
	}
	return strings.Join(selectSentences(sentences), " "), nil
}

// splitSentences splits on ". " and gives back the period each separator
// consumed, so sentences come out as written. The final piece only gets a
// period when it has none.
func splitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")
	pieces := strings.Split(text, ". ")

	var sentences []string
	for i, s := range pieces {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if i < len(pieces)-1 || !strings.HasSuffix(s, ".") {
			s += "."
		}
		sentences = append(sentences, s)
	}
	return sentences
}

// selectSentences keeps everything for short input, otherwise the first two,
// two from the one-third mark and the last two.
func selectSentences(sentences []string) []string {
	n := len(sentences)
	if n <= maxFullSentences {
		return sentences
	}

	mid := n / 3
	out := make([]string, 0, 6)
	out = append(out, sentences[:2]...)
	out = append(out, sentences[mid:mid+2]...)
	out = append(out, sentences[n-2:]...)
	return out
}
