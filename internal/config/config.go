package config

import (
	"fmt"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"gopkg.in/yaml.v3"
)

// Google Docs persistence methods.
const (
	MethodDriveThenDocs    = "drive_then_docs"
	MethodShareWithService = "share_with_service"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
	YouTube YouTubeConfig `yaml:"youtube"`
	Summary SummaryConfig `yaml:"summary"`
	Google  GoogleConfig  `yaml:"google"`
	Export  ExportConfig  `yaml:"export"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type PathsConfig struct {
	Downloads string `yaml:"downloads"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type YouTubeConfig struct {
	APIKey    string   `yaml:"api_key"`
	Languages []string `yaml:"languages"`
	WatchURL  string   `yaml:"watch_url"`
}

type SummaryConfig struct {
	OpenAI OpenAIConfig `yaml:"openai"`
	Gemini GeminiConfig `yaml:"gemini"`
}

type OpenAIConfig struct {
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Temperature float64 `yaml:"temperature"`
}

type GeminiConfig struct {
	Enabled *bool  `yaml:"enabled"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	// BaseURL overrides the Gemini API endpoint. Empty uses the SDK default.
	BaseURL string `yaml:"base_url"`
}

// IsEnabled reports whether the gemini fallback may be used. Unset means enabled.
func (g GeminiConfig) IsEnabled() bool {
	return g.Enabled == nil || *g.Enabled
}

type GoogleConfig struct {
	ServiceAccountFile  string `yaml:"service_account_file"`
	ServiceAccountEmail string `yaml:"service_account_email"`
	Method              string `yaml:"method"`
	ExistingDocumentID  string `yaml:"existing_document_id"`
}

type ExportConfig struct {
	Docx bool `yaml:"docx"`
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// applyEnv lets environment variables win over file values.
func (c *Config) applyEnv() {
	c.Server.Addr = env.Str("SERVER_ADDR", c.Server.Addr)
	c.Paths.Downloads = env.Str("DOWNLOAD_DIR", c.Paths.Downloads)
	c.Logging.Level = env.Str("LOG_LEVEL", c.Logging.Level)

	c.YouTube.APIKey = env.Str("YOUTUBE_API_KEY", c.YouTube.APIKey)

	c.Summary.OpenAI.APIKey = env.Str("OPENAI_API_KEY", c.Summary.OpenAI.APIKey)
	c.Summary.OpenAI.BaseURL = env.Str("OPENAI_API_BASE", c.Summary.OpenAI.BaseURL)
	c.Summary.OpenAI.Model = env.Str("OPENAI_MODEL", c.Summary.OpenAI.Model)
	c.Summary.Gemini.APIKey = env.Str("GEMINI_API_KEY", c.Summary.Gemini.APIKey)
	c.Summary.Gemini.Model = env.Str("GEMINI_MODEL", c.Summary.Gemini.Model)
	c.Summary.Gemini.BaseURL = env.Str("GEMINI_API_BASE", c.Summary.Gemini.BaseURL)

	c.Google.ServiceAccountFile = env.Str("SERVICE_ACCOUNT_FILE", c.Google.ServiceAccountFile)
	c.Google.ServiceAccountEmail = env.Str("SERVICE_ACCOUNT_EMAIL", c.Google.ServiceAccountEmail)
	c.Google.ExistingDocumentID = env.Str("EXISTING_DOCUMENT_ID", c.Google.ExistingDocumentID)
	c.Google.Method = env.Str("GOOGLE_DOCS_METHOD", c.Google.Method)
}

func (c *Config) Validate() error {
	switch c.Google.Method {
	case "":
		c.Google.Method = MethodShareWithService
	case MethodDriveThenDocs, MethodShareWithService:
	default:
		return fmt.Errorf("google.method must be %q or %q, got %q",
			MethodDriveThenDocs, MethodShareWithService, c.Google.Method)
	}

	if t := c.Summary.OpenAI.Temperature; t < 0 || t > 2 {
		return fmt.Errorf("summary.openai.temperature must be within [0, 2]")
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":5000"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 30 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 5 * time.Minute
	}
	if c.Paths.Downloads == "" {
		c.Paths.Downloads = "temp_files"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if len(c.YouTube.Languages) == 0 {
		c.YouTube.Languages = []string{"en"}
	}
	if c.YouTube.WatchURL == "" {
		c.YouTube.WatchURL = "https://www.youtube.com/watch"
	}
	if c.Summary.OpenAI.BaseURL == "" {
		c.Summary.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if c.Summary.OpenAI.Model == "" {
		c.Summary.OpenAI.Model = "gpt-3.5-turbo"
	}
	if c.Summary.OpenAI.Temperature == 0 {
		c.Summary.OpenAI.Temperature = 0.7
	}
	if c.Summary.Gemini.Model == "" {
		c.Summary.Gemini.Model = "gemini-1.5-flash"
	}

	return nil
}
