package video

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"github.com/nguyentantai21042004/transcript-digest/internal/models"
)

const maxCleanTitle = 30

var ErrIdentifierExtraction = errors.New("failed to extract video ID")

// ExtractID returns the video id of a youtube.com watch URL or a youtu.be
// short URL.
func ExtractID(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrIdentifierExtraction, err)
	}

	var id string
	switch u.Hostname() {
	case "www.youtube.com", "youtube.com":
		id = u.Query().Get("v")
	case "youtu.be":
		id = strings.TrimLeft(u.Path, "/")
	default:
		return "", fmt.Errorf("%w: unsupported host %q", ErrIdentifierExtraction, u.Hostname())
	}

	if id == "" {
		return "", ErrIdentifierExtraction
	}
	return id, nil
}

// SanitizeTitle makes title safe for file names: letters, digits, space, '-'
// and '_' survive, spaces become underscores and the result is capped at 30
// runes.
func SanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}

	clean := strings.TrimRight(b.String(), " ")
	clean = strings.ReplaceAll(clean, " ", "_")

	runes := []rune(clean)
	if len(runes) > maxCleanTitle {
		clean = string(runes[:maxCleanTitle])
	}
	return clean
}

// DefaultTitle is used when no title could be resolved.
func DefaultTitle(id string) string {
	return "YouTube Video - " + id
}

// NewReference builds the reference for a resolved video.
func NewReference(id, sourceURL, title string) models.VideoReference {
	if title == "" {
		title = DefaultTitle(id)
	}
	clean := SanitizeTitle(title)
	if clean == "" {
		clean = "YouTube_Video_" + id
	}
	return models.VideoReference{
		ID:         id,
		SourceURL:  sourceURL,
		Title:      title,
		CleanTitle: clean,
	}
}
