package handler

import (
	"context"

	"github.com/osse101/MisinfoX_Go/internal/domain"
	"github.com/osse101/MisinfoX_Go/internal/twiml"
)

const twimlContentType = twiml.ContentType

// Form fields posted by the messaging provider
const (
	FormFieldBody = "Body"
	FormFieldFrom = "From"
)

// senderVisibleDigits is how much of a sender address survives in logs.
const senderVisibleDigits = 4

// MessageRouter produces the reply for one inbound message. It never fails.
type MessageRouter interface {
	Route(ctx context.Context, msg domain.InboundMessage) domain.Verdict
}
