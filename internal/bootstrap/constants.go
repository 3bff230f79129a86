package bootstrap

// Log messages
const (
	LogMsgStarting             = "Starting MisinfoX"
	LogMsgConfigLoaded         = "Configuration loaded"
	LogMsgConfigWarning        = "Configuration warning"
	LogMsgPipelineReady        = "Message pipeline ready"
	LogMsgEvidenceCacheEnabled = "Evidence cache enabled"
	LogMsgGenAIUnavailable     = "GenAI client unavailable, verdicts will not be enriched"
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgServerStopped        = "Server stopped"
)
