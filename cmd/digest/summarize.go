package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/transcript-digest/internal/localstore"
	"github.com/nguyentantai21042004/transcript-digest/internal/logger"
)

type summarizeOutput struct {
	VideoID          string `json:"video_id"`
	VideoTitle       string `json:"video_title"`
	Summary          string `json:"summary"`
	SummaryStrategy  string `json:"summary_strategy"`
	TranscriptLength int    `json:"transcript_length"`
	LocalFile        string `json:"local_file"`
	GoogleDocsURL    string `json:"google_docs_url,omitempty"`
	GoogleDocsError  string `json:"google_docs_error,omitempty"`
}

func newSummarizeCmd() *cobra.Command {
	var rawURL string

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize one video and print the result as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rawURL == "" {
				return errors.New("--url is required")
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			// stdout carries the JSON result
			log := logger.NewWithWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)
			proc := buildProcessor(ctx, cfg, localstore.New(cfg.Paths.Downloads), log)

			res, err := proc.Process(ctx, rawURL)
			if err != nil {
				return fmt.Errorf("summarize %s: %w", rawURL, err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(summarizeOutput{
				VideoID:          res.Video.ID,
				VideoTitle:       res.Video.Title,
				Summary:          res.Summary.Text,
				SummaryStrategy:  res.Summary.Strategy,
				TranscriptLength: len([]rune(res.Transcript)),
				LocalFile:        res.Outcome.LocalFilePath,
				GoogleDocsURL:    res.Outcome.CloudDocumentURL,
				GoogleDocsError:  res.Outcome.CloudError,
			})
		},
	}
	cmd.Flags().StringVarP(&rawURL, "url", "u", "", "YouTube video URL")
	return cmd
}
