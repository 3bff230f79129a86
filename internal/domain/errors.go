package domain

import "errors"

// Error message string constants - single source of truth for error messages
const (
	ErrMsgProviderNotConfigured = "provider not configured"
	ErrMsgBackendStatus         = "unexpected backend status"
	ErrMsgMalformedResponse     = "malformed backend response"
	ErrMsgEmptyGeneration       = "empty generation output"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
// They never cross a component boundary; components convert them into sentinel values.
var (
	ErrProviderNotConfigured = errors.New(ErrMsgProviderNotConfigured)
	ErrBackendStatus         = errors.New(ErrMsgBackendStatus)
	ErrMalformedResponse     = errors.New(ErrMsgMalformedResponse)
	ErrEmptyGeneration       = errors.New(ErrMsgEmptyGeneration)
)
