package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	playerResponseMarker = "ytInitialPlayerResponse = "
	maxWatchPageBytes    = 6 << 20
	maxTimedTextBytes    = 2 << 20
	userAgent            = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// YouTubeProvider reads caption tracks from the player response embedded in
// the watch page and downloads the chosen track as timedtext XML.
type YouTubeProvider struct {
	client   *http.Client
	watchURL string
	langs    []string
}

func NewYouTubeProvider(client *http.Client, watchURL string, langs []string) *YouTubeProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &YouTubeProvider{
		client:   client,
		watchURL: watchURL,
		langs:    langs,
	}
}

type playerResponse struct {
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	VideoDetails *struct {
		Title string `json:"title"`
	} `json:"videoDetails"`
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"`
}

type timedText struct {
	Lines []timedLine `xml:"text"`
	Paras []timedPara `xml:"body>p"`
}

type timedLine struct {
	Text string `xml:",chardata"`
}

type timedPara struct {
	Text     string      `xml:",chardata"`
	Segments []timedLine `xml:"s"`
}

// Fetch downloads the transcript of videoID.
func (p *YouTubeProvider) Fetch(ctx context.Context, videoID string) (Captions, error) {
	page, err := p.get(ctx, p.watchURL+"?v="+url.QueryEscape(videoID), maxWatchPageBytes)
	if err != nil {
		return Captions{}, fmt.Errorf("watch page: %w", err)
	}

	player, err := parsePlayerResponse(page)
	if err != nil {
		return Captions{}, err
	}

	var title string
	if player.VideoDetails != nil {
		title = player.VideoDetails.Title
	}

	if player.Captions == nil {
		if ps := player.PlayabilityStatus; ps != nil && ps.Reason != "" {
			return Captions{}, fmt.Errorf("captions unavailable: %s", ps.Reason)
		}
		return Captions{}, errors.New("transcripts are disabled for this video")
	}

	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return Captions{}, errors.New("no caption tracks")
	}
	track := pickBestTrack(tracks, p.langs)

	body, err := p.get(ctx, track.BaseURL, maxTimedTextBytes)
	if err != nil {
		return Captions{}, fmt.Errorf("timedtext: %w", err)
	}

	text, err := parseTimedText(body)
	if err != nil {
		return Captions{}, err
	}
	if text == "" {
		return Captions{}, errors.New("empty transcript")
	}

	return Captions{Text: text, Title: title}, nil
}

func (p *YouTubeProvider) get(ctx context.Context, target string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, limit))
}

// parsePlayerResponse finds the <script> assigning ytInitialPlayerResponse
// and decodes the object literal.
func parsePlayerResponse(page []byte) (playerResponse, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return playerResponse{}, fmt.Errorf("parse watch page: %w", err)
	}

	var raw []byte
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := s.Text()
		idx := strings.Index(text, playerResponseMarker)
		if idx < 0 {
			return true
		}
		raw = extractJSON([]byte(text[idx+len(playerResponseMarker):]))
		return raw == nil
	})
	if raw == nil {
		return playerResponse{}, errors.New("ytInitialPlayerResponse not found in watch page")
	}

	var player playerResponse
	if err := json.Unmarshal(raw, &player); err != nil {
		return playerResponse{}, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return player, nil
}

// extractJSON returns the balanced JSON object at the start of data.
func extractJSON(data []byte) []byte {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 || data[0] != '{' {
		return nil
	}

	depth := 0
	inString := false
	escaped := false
	for i, c := range data {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return data[:i+1]
			}
		}
	}
	return nil
}

// pickBestTrack prefers a manual track in a preferred language, then an
// auto-generated one, then any English track, then the first track.
func pickBestTrack(tracks []captionTrack, langs []string) captionTrack {
	for _, lang := range langs {
		for _, t := range tracks {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t
			}
		}
	}
	for _, lang := range langs {
		for _, t := range tracks {
			if t.LanguageCode == lang {
				return t
			}
		}
	}
	for _, t := range tracks {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t
		}
	}
	return tracks[0]
}

// parseTimedText joins caption fragments with newlines. Both the legacy
// <text> format and the srv3 <body><p> format are accepted.
func parseTimedText(body []byte) (string, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("parse timedtext XML: %w", err)
	}

	var fragments []string
	add := func(s string) {
		s = strings.TrimSpace(html.UnescapeString(s))
		if s != "" {
			fragments = append(fragments, s)
		}
	}

	for _, line := range tt.Lines {
		add(line.Text)
	}
	for _, p := range tt.Paras {
		if len(p.Segments) == 0 {
			add(p.Text)
			continue
		}
		var sb strings.Builder
		for _, s := range p.Segments {
			sb.WriteString(s.Text)
		}
		add(sb.String())
	}

	return strings.Join(fragments, "\n"), nil
}
