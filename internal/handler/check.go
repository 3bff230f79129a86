package handler

import (
	"net/http"

	"github.com/osse101/MisinfoX_Go/internal/domain"
	"github.com/osse101/MisinfoX_Go/internal/logger"
)

// CheckRequest is the JSON body of a direct check.
type CheckRequest struct {
	Body string `json:"body" validate:"max=4096"`
	From string `json:"from" validate:"omitempty,max=64,sender"`
}

// HandleCheck routes a JSON message through the same pipeline as the webhook
// and returns the reply as JSON.
func HandleCheck(router MessageRouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CheckRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Check"); err != nil {
			return
		}

		verdict := router.Route(r.Context(), domain.InboundMessage{Body: req.Body, From: req.From})

		logger.FromContext(r.Context()).Info(LogMsgCheckCompleted,
			"intent", verdict.Intent,
			"outcome", verdict.Outcome)

		respondJSON(w, http.StatusOK, verdict)
	}
}
