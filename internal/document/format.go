package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/nguyentantai21042004/transcript-digest/internal/models"
)

// Section markers of the formatted document.
const (
	Divider         = "═══════════════════════════════════════════════════════════════"
	SummaryHeading  = "🤖 AI SUMMARY"
	TranscriptTitle = "📝 FULL TRANSCRIPT"

	timestampLayout = "2006-01-02 15:04:05"
	fileStampLayout = "20060102_150405"
)

// Format builds the plain-text document. Summary and transcript appear
// verbatim between the section markers.
func Format(ref models.VideoReference, summary, transcript string, now time.Time) string {
	return build(ref, summary, transcript, now)
}

// FormatForDocs builds the cloud document, with transcript fragments spread
// into paragraphs.
func FormatForDocs(ref models.VideoReference, summary, transcript string, now time.Time) string {
	return build(ref, summary, FormatTranscript(transcript), now)
}

func build(ref models.VideoReference, summary, transcript string, now time.Time) string {
	parts := []string{
		ref.Title + "\n",
		"\nVideo Details:",
		"├─ Title: " + ref.Title,
		"├─ Video ID: " + ref.ID,
		"├─ URL: " + ref.SourceURL,
		"└─ Generated: " + now.Format(timestampLayout) + "\n",
		"\n" + Divider + "\n",
		"\n" + SummaryHeading + "\n",
		summary + "\n",
		"\n" + Divider + "\n",
		"\n" + TranscriptTitle + "\n",
		transcript + "\n",
		"\n" + Divider,
	}
	return strings.Join(parts, "\n")
}

// FormatTranscript drops blank lines and separates fragments with an empty
// line.
func FormatTranscript(transcript string) string {
	lines := strings.Split(strings.TrimSpace(transcript), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n\n")
}

// AppendBlock wraps content for appending to an existing document.
func AppendBlock(content string, now time.Time) string {
	return fmt.Sprintf("\n\n--- Updated on %s ---\n\n%s\n", now.Format(timestampLayout), content)
}

// FileName returns "<clean_title>_<YYYYMMDD_HHMMSS><ext>".
func FileName(ref models.VideoReference, now time.Time, ext string) string {
	return fmt.Sprintf("%s_%s%s", ref.CleanTitle, now.Format(fileStampLayout), ext)
}

// CloudTitle returns the title of a newly created cloud document.
func CloudTitle(ref models.VideoReference, now time.Time) string {
	return fmt.Sprintf("%s - %s", ref.CleanTitle, now.Format(fileStampLayout))
}
