package transcript

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// DataAPITitles looks titles up with the YouTube Data API v3.
type DataAPITitles struct {
	svc *youtube.Service
}

func NewDataAPITitles(ctx context.Context, apiKey string, opts ...option.ClientOption) (*DataAPITitles, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &DataAPITitles{svc: svc}, nil
}

func (d *DataAPITitles) Title(ctx context.Context, videoID string) (string, error) {
	resp, err := d.svc.Videos.List([]string{"snippet"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("videos.list: %w", err)
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return "", errors.New("video not found")
	}
	return resp.Items[0].Snippet.Title, nil
}
