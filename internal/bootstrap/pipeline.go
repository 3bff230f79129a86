package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/MisinfoX_Go/internal/config"
	"github.com/osse101/MisinfoX_Go/internal/detector"
	"github.com/osse101/MisinfoX_Go/internal/evidence"
	"github.com/osse101/MisinfoX_Go/internal/handler"
	"github.com/osse101/MisinfoX_Go/internal/llm"
	"github.com/osse101/MisinfoX_Go/internal/router"
	"github.com/osse101/MisinfoX_Go/internal/twiml"
	"github.com/osse101/MisinfoX_Go/internal/verdict"
)

// Pipeline holds the wired message-handling components.
type Pipeline struct {
	Router     *router.Router
	Signatures *twiml.SignatureValidator
	Readiness  handler.Readiness
}

// BuildPipeline wires detector, evidence provider, formatter, and router from cfg.
// Missing backends never fail the build; the affected component runs degraded.
func BuildPipeline(ctx context.Context, cfg *config.Config) *Pipeline {
	det := detector.New(cfg.ForwardWordThreshold)

	var provider evidence.Provider = evidence.NewSearchProvider(evidence.Config{
		APIKey:   cfg.SearchAPIKey,
		EngineID: cfg.SearchEngineID,
		Endpoint: cfg.SearchEndpoint,
		Timeout:  cfg.SearchTimeout,
	}, nil)
	if cfg.EvidenceCacheSize > 0 {
		provider = evidence.NewCachingProvider(provider, cfg.EvidenceCacheSize, cfg.EvidenceCacheTTL)
		slog.Info(LogMsgEvidenceCacheEnabled, "size", cfg.EvidenceCacheSize, "ttl", cfg.EvidenceCacheTTL)
	}

	gen := buildGenerator(ctx, cfg)
	formatter := verdict.New(gen, verdict.Options{
		MaxReplyChars: cfg.MaxReplyChars,
		Timeout:       cfg.GenAITimeout,
	})

	slog.Info(LogMsgPipelineReady,
		"forward_word_threshold", det.WordThreshold(),
		"search", cfg.SearchConfigured(),
		"genai", formatter.Enabled(),
		"signatures", cfg.SignaturesEnabled())

	return &Pipeline{
		Router:     router.New(det, provider, formatter),
		Signatures: twiml.NewSignatureValidator(cfg.TwilioAuthToken, cfg.PublicBaseURL),
		Readiness: handler.Readiness{
			Search:     cfg.SearchConfigured(),
			GenAI:      formatter.Enabled(),
			Signatures: cfg.SignaturesEnabled(),
		},
	}
}

// buildGenerator returns nil when the enrichment backend is not configured or cannot be created.
func buildGenerator(ctx context.Context, cfg *config.Config) verdict.Generator {
	if !cfg.GenAIConfigured() {
		return nil
	}

	client, err := llm.NewGenAIClient(ctx, llm.Config{
		APIKey: cfg.GenAIAPIKey,
		Model:  cfg.GenAIModel,
	})
	if err != nil {
		slog.Error(LogMsgGenAIUnavailable, "error", err)
		return nil
	}
	return client
}
