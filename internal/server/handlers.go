package server

import (
	"errors"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/nguyentantai21042004/transcript-digest/internal/localstore"
	"github.com/nguyentantai21042004/transcript-digest/internal/persistence"
	"github.com/nguyentantai21042004/transcript-digest/internal/summarizer"
	"github.com/nguyentantai21042004/transcript-digest/internal/transcript"
	"github.com/nguyentantai21042004/transcript-digest/internal/video"
)

const modifiedLayout = "2006-01-02 15:04:05"

type summarizeResponse struct {
	Success          bool    `json:"success"`
	VideoTitle       string  `json:"video_title"`
	VideoID          string  `json:"video_id"`
	Summary          string  `json:"summary"`
	SummaryStrategy  string  `json:"summary_strategy"`
	TranscriptLength int     `json:"transcript_length"`
	DownloadFilename string  `json:"download_filename"`
	GoogleDocsStatus string  `json:"google_docs_status"`
	GoogleDocsURL    *string `json:"google_docs_url"`
	GoogleDocsError  *string `json:"google_docs_error"`
}

type fileEntry struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	Modified string `json:"modified"`
}

type directRequest struct {
	Summary    string `json:"summary"`
	VideoURL   string `json:"video_url"`
	Transcript string `json:"transcript"`
	VideoInfo  *struct {
		Title      string `json:"title"`
		CleanTitle string `json:"clean_title"`
		ID         string `json:"id"`
	} `json:"video_info"`
}

func (s *implServer) index(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{})
}

func (s *implServer) summarize(c *fiber.Ctx) error {
	rawURL := strings.TrimSpace(c.FormValue("youtube_url"))
	if rawURL == "" {
		return jsonError(c, fiber.StatusBadRequest, "Please provide a YouTube URL")
	}

	res, err := s.processor.Process(c.UserContext(), rawURL)
	if err != nil {
		status, msg := classify(err)
		return jsonError(c, status, msg)
	}

	resp := summarizeResponse{
		Success:          true,
		VideoTitle:       res.Video.Title,
		VideoID:          res.Video.ID,
		Summary:          res.Summary.Text,
		SummaryStrategy:  res.Summary.Strategy,
		TranscriptLength: len([]rune(res.Transcript)),
		DownloadFilename: res.Outcome.LocalFileName,
		GoogleDocsStatus: "failed",
		GoogleDocsURL:    optional(res.Outcome.CloudDocumentURL),
		GoogleDocsError:  optional(res.Outcome.CloudError),
	}
	if res.Outcome.CloudSucceeded() {
		resp.GoogleDocsStatus = "success"
	}
	return c.JSON(resp)
}

func (s *implServer) download(c *fiber.Ctx) error {
	raw := c.Params("*")
	requested, err := url.PathUnescape(raw)
	if err != nil {
		requested = raw
	}

	path, name, err := s.files.Resolve(requested)
	if err != nil {
		s.logger.Warn(c.UserContext(), "Download not found: %q", requested)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":           "File not found",
			"requested":       requested,
			"available_files": s.files.Names(),
		})
	}

	return c.Download(path, name)
}

func (s *implServer) listFiles(c *fiber.Ctx) error {
	files, err := s.files.List()
	if errors.Is(err, localstore.ErrNoDirectory) {
		return c.JSON(fiber.Map{
			"files":   []fileEntry{},
			"message": filepath.Base(s.downloads) + " directory does not exist",
		})
	}
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Error listing files: "+err.Error())
	}

	entries := make([]fileEntry, 0, len(files))
	for _, f := range files {
		entries = append(entries, fileEntry{
			Name:     f.Name,
			Size:     f.Size,
			Modified: f.Modified.Format(modifiedLayout),
		})
	}
	return c.JSON(fiber.Map{"files": entries})
}

func (s *implServer) downloadDirect(c *fiber.Ctx) error {
	var req directRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Missing required data")
	}
	if req.Summary == "" || req.VideoURL == "" || req.Transcript == "" ||
		req.VideoInfo == nil || req.VideoInfo.ID == "" {
		return jsonError(c, fiber.StatusBadRequest, "Missing required data")
	}

	title := req.VideoInfo.Title
	if title == "" {
		title = video.DefaultTitle(req.VideoInfo.ID)
	}
	// clean_title is rebuilt from the title; it ends up in a file name
	ref := video.NewReference(req.VideoInfo.ID, req.VideoURL, title)

	out, err := s.processor.Rebuild(c.UserContext(), ref, req.Summary, req.Transcript)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to create download file: "+err.Error())
	}
	return c.Download(out.LocalFilePath, out.LocalFileName)
}

// classify maps a pipeline error onto a status code and the message shown
// to the user. Underlying error text is echoed as is.
func classify(err error) (int, string) {
	var fetchErr *transcript.FetchError
	switch {
	case errors.Is(err, video.ErrIdentifierExtraction):
		return fiber.StatusBadRequest, "Transcript extraction failed: " + err.Error()
	case errors.As(err, &fetchErr):
		return fiber.StatusBadGateway, "Transcript extraction failed: " + err.Error()
	case errors.Is(err, summarizer.ErrAllStrategiesFailed):
		return fiber.StatusInternalServerError, "Summary generation failed: " + err.Error()
	case errors.Is(err, persistence.ErrLocalPersistence):
		return fiber.StatusInternalServerError, "Failed to create download file: " + err.Error()
	default:
		return fiber.StatusInternalServerError, "Unexpected error: " + err.Error()
	}
}

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
