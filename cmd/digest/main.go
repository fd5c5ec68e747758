package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/transcript-digest/internal/config"
)

var configPath string

func main() {
	// .env is optional; real environment variables still apply
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:           "digest",
		Short:         "Summarize YouTube transcripts into downloadable documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath(), "path to config.yaml (optional)")
	root.AddCommand(newServeCmd(), newSummarizeCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// defaultConfigPath returns config.yaml when it exists in the working
// directory, otherwise "" so only defaults and the environment apply.
func defaultConfigPath() string {
	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}
	return ""
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
