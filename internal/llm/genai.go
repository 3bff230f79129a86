// Package llm provides the text-completion backend used to enrich verdicts.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/osse101/MisinfoX_Go/internal/domain"
	"github.com/osse101/MisinfoX_Go/internal/metrics"
)

// Defaults for the GenAI backend
const (
	DefaultModel       = "gemini-2.0-flash"
	DefaultTemperature = 0.2
	DefaultMaxTokens   = 600
)

// Config holds GenAI backend settings.
type Config struct {
	APIKey          string
	Model           string
	Temperature     float32
	MaxOutputTokens int32
}

// contentGenerator is the subset of genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GenAIClient generates text with Google's Gemini API.
type GenAIClient struct {
	models contentGenerator
	model  string
	config *genai.GenerateContentConfig
}

// NewGenAIClient creates a client. An API key is required.
func NewGenAIClient(ctx context.Context, cfg Config) (*GenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GenAI API key is required: %w", domain.ErrProviderNotConfigured)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return newGenAIClient(client.Models, cfg), nil
}

func newGenAIClient(models contentGenerator, cfg Config) *GenAIClient {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxOutputTokens <= 0 {
		cfg.MaxOutputTokens = DefaultMaxTokens
	}

	return &GenAIClient{
		models: models,
		model:  cfg.Model,
		config: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr(cfg.Temperature),
			MaxOutputTokens: cfg.MaxOutputTokens,
		},
	}
}

// GenerateText sends a single non-streaming request and returns the trimmed text.
func (c *GenAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	defer metrics.ObserveBackend(metrics.BackendGenAI, start)

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), c.config)
	if err != nil {
		return "", fmt.Errorf("GenAI generate failed: %w", err)
	}
	if resp == nil {
		return "", domain.ErrEmptyGeneration
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", domain.ErrEmptyGeneration
	}
	return text, nil
}

// Model returns the configured model name.
func (c *GenAIClient) Model() string {
	return c.model
}
