// Package twiml encodes replies in the messaging provider's TwiML protocol and
// authenticates inbound webhook requests.
package twiml

import (
	"fmt"
	"log/slog"

	"github.com/twilio/twilio-go/twiml"

	"github.com/osse101/MisinfoX_Go/internal/domain"
)

// ContentType is the media type of a composed reply.
const ContentType = "application/xml"

// fallbackEnvelope is served when encoding fails. It carries the internal-error reply.
const fallbackEnvelope = `<?xml version="1.0" encoding="UTF-8"?><Response><Message>` +
	`⚠️ Something went wrong on our side (internal error). Please try again.` +
	`</Message></Response>`

// Compose wraps text in a single-message TwiML response. Text is escaped by the encoder.
func Compose(text string) (string, error) {
	xml, err := twiml.Messages([]twiml.Element{
		&twiml.MessagingMessage{Body: text},
	})
	if err != nil {
		return "", fmt.Errorf("compose twiml: %w", err)
	}
	return xml, nil
}

// MustCompose is Compose that never fails; on error it returns the internal-error envelope.
func MustCompose(text string) string {
	xml, err := Compose(text)
	if err != nil {
		slog.Error("Failed to compose TwiML reply", "error", err)
		return fallbackEnvelope
	}
	return xml
}

// InternalError returns the envelope for the internal-error reply.
func InternalError() string {
	return MustCompose(domain.ReplyInternalError)
}
