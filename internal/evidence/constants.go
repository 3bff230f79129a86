package evidence

import "time"

// Defaults for the search backend
const (
	DefaultEndpoint    = "https://www.googleapis.com/customsearch/v1"
	DefaultTimeout     = 8 * time.Second
	DefaultResultCount = 2
	maxResponseBytes   = 1 << 20
	redactedValue      = "REDACTED"
)

// Query parameter names
const (
	ParamKey   = "key"
	ParamScope = "cx"
	ParamQuery = "q"
	ParamCount = "num"
)

// Log messages
const (
	LogMsgSearchNotConfigured = "Search provider not configured, skipping lookup"
	LogMsgSearchFailed        = "Evidence search failed"
	LogMsgSearchCompleted     = "Evidence search completed"
	LogMsgCacheHit            = "Evidence served from cache"
)
