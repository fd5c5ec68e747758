package video

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=ABC123", "ABC123", false},
		{"watch url without www", "https://youtube.com/watch?v=ABC123&t=42s", "ABC123", false},
		{"short url", "https://youtu.be/XYZ987", "XYZ987", false},
		{"short url with query", "https://youtu.be/XYZ987?si=share", "XYZ987", false},
		{"surrounding whitespace", "  https://youtu.be/XYZ987 \n", "XYZ987", false},
		{"foreign host", "https://example.com/video", "", true},
		{"watch url missing v", "https://www.youtube.com/watch", "", true},
		{"short url missing id", "https://youtu.be/", "", true},
		{"not a url", "::::", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractID(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrIdentifierExtraction))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Test: Video? <1>", "Test_Video_1"},
		{"already_clean-title", "already_clean-title"},
		{"trailing space   ", "trailing_space"},
		{"Một video tiếng Việt", "Một_video_tiếng_Việt"},
		{"This is a very long video title that goes on", "This_is_a_very_long_video_titl"},
		{"???", ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := SanitizeTitle(tt.title)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len([]rune(got)), 30)
			assert.NotContains(t, got, " ")
			for _, r := range got {
				assert.False(t, strings.ContainsRune(`:?<>/\"*|`, r), "unexpected rune %q", r)
			}
		})
	}
}

func TestNewReference(t *testing.T) {
	ref := NewReference("abc", "https://youtu.be/abc", "Test: Video? <1>")
	assert.Equal(t, "abc", ref.ID)
	assert.Equal(t, "Test: Video? <1>", ref.Title)
	assert.Equal(t, "Test_Video_1", ref.CleanTitle)

	ref = NewReference("abc", "https://youtu.be/abc", "")
	assert.Equal(t, "YouTube Video - abc", ref.Title)
	assert.Equal(t, "YouTube_Video_-_abc", ref.CleanTitle)

	ref = NewReference("abc", "https://youtu.be/abc", "!!!")
	assert.Equal(t, "YouTube_Video_abc", ref.CleanTitle)
}
