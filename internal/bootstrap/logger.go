package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/MisinfoX_Go/internal/config"
	"github.com/osse101/MisinfoX_Go/internal/handler"
	"github.com/osse101/MisinfoX_Go/internal/logger"
)

// SetupLogger initializes the default slog logger from cfg, writing to w,
// and logs the startup banner plus any configuration warnings.
func SetupLogger(cfg *config.Config, w io.Writer) {
	// Source locations only in dev
	addSource := cfg.Environment == logger.EnvironmentDev || cfg.Environment == "development"

	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		handler.GetVersion(),
		cfg.Environment,
		addSource,
	), w)

	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", handler.GetVersion())

	slog.Debug(LogMsgConfigLoaded,
		"port", cfg.Port,
		"webhook_path", cfg.WebhookPath,
		"search_endpoint", cfg.SearchEndpoint,
		"genai_model", cfg.GenAIModel,
		"max_reply_chars", cfg.MaxReplyChars)

	for _, warning := range cfg.ValidateWithWarnings() {
		slog.Warn(LogMsgConfigWarning, "warning", warning)
	}
}
