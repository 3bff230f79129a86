package handler

import (
	"net/http"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status   string          `json:"status"`
	Message  string          `json:"message,omitempty"`
	Backends map[string]bool `json:"backends,omitempty"`
}

// Readiness describes which optional backends are configured.
type Readiness struct {
	Search     bool
	GenAI      bool
	Signatures bool
}

// HandleHealthz provides a basic liveness check
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports which backends are configured. The service answers every
// message even with no backends, so readiness is always 200; a missing backend
// only marks the status as degraded.
func HandleReadyz(ready Readiness) http.HandlerFunc {
	response := HealthResponse{
		Status: StatusOK,
		Backends: map[string]bool{
			"search":     ready.Search,
			"genai":      ready.GenAI,
			"signatures": ready.Signatures,
		},
	}
	if !ready.Search || !ready.GenAI {
		response.Status = StatusDegraded
		response.Message = "running without all fact-check backends"
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, response)
	}
}
