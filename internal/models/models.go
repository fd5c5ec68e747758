package models

import "time"

// Summary strategy tags.
const (
	StrategyOpenAI     = "openai"
	StrategyGemini     = "gemini"
	StrategyExtractive = "extractive"
)

// VideoReference identifies one video for the lifetime of a request.
type VideoReference struct {
	ID         string `json:"id"`
	SourceURL  string `json:"url,omitempty"`
	Title      string `json:"title"`
	CleanTitle string `json:"clean_title"`
}

// SummaryResult is the outcome of the summary chain. Error is set only when
// every strategy failed.
type SummaryResult struct {
	Text     string `json:"summary"`
	Strategy string `json:"strategy,omitempty"`
	Error    string `json:"error,omitempty"`
}

// PersistenceOutcome reports where a summary was stored. Cloud fields are
// optional; a successful outcome always has a local file.
type PersistenceOutcome struct {
	CloudDocumentID  string
	CloudDocumentURL string
	CloudError       string
	LocalFilePath    string
	LocalFileName    string
}

// CloudSucceeded reports whether a cloud document was written.
func (o PersistenceOutcome) CloudSucceeded() bool {
	return o.CloudDocumentID != ""
}

// FileInfo describes a downloadable artifact.
type FileInfo struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"-"`
}
