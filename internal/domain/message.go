package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// InboundMessage is a single inbound webhook message. Body is untrusted and may be empty.
type InboundMessage struct {
	Body string `json:"body"`
	From string `json:"from"`
}

// Trimmed returns the body with surrounding whitespace removed, original casing preserved.
func (m InboundMessage) Trimmed() string {
	return strings.TrimSpace(m.Body)
}

// Normalized returns the trimmed, case-folded body used for classification.
func (m InboundMessage) Normalized() string {
	return Normalize(m.Body)
}

// Normalize trims and case-folds text.
// cases.Caser is stateful, so a new one is built per call.
func Normalize(text string) string {
	return cases.Fold().String(strings.TrimSpace(text))
}
