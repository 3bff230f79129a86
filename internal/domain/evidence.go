package domain

import (
	"fmt"
	"strings"
)

// EvidenceStatus classifies the outcome of an evidence lookup.
type EvidenceStatus string

const (
	EvidenceFound         EvidenceStatus = "found"
	EvidenceNoResults     EvidenceStatus = "no_results"
	EvidenceNotConfigured EvidenceStatus = "not_configured"
	EvidenceProviderError EvidenceStatus = "error"
)

// EvidenceSnippet is the result of a single evidence lookup: either the top
// search result or a sentinel describing why there is none.
type EvidenceSnippet struct {
	Status  EvidenceStatus `json:"status"`
	Query   string         `json:"query"`
	Title   string         `json:"title,omitempty"`
	Excerpt string         `json:"excerpt,omitempty"`
	Link    string         `json:"link,omitempty"`
	Cause   string         `json:"cause,omitempty"`
}

// NewFoundEvidence builds a snippet from a search result.
func NewFoundEvidence(query, title, excerpt, link string) EvidenceSnippet {
	return EvidenceSnippet{
		Status:  EvidenceFound,
		Query:   query,
		Title:   strings.TrimSpace(title),
		Excerpt: strings.TrimSpace(excerpt),
		Link:    strings.TrimSpace(link),
	}
}

// NewNoResultsEvidence builds the "no results" sentinel.
func NewNoResultsEvidence(query string) EvidenceSnippet {
	return EvidenceSnippet{Status: EvidenceNoResults, Query: query}
}

// NewNotConfiguredEvidence builds the "provider not configured" sentinel.
func NewNotConfiguredEvidence(query string) EvidenceSnippet {
	return EvidenceSnippet{Status: EvidenceNotConfigured, Query: query}
}

// NewProviderErrorEvidence builds the "error during search" sentinel.
func NewProviderErrorEvidence(query string, err error) EvidenceSnippet {
	cause := MsgUnknownCause
	if err != nil {
		cause = err.Error()
	}
	return EvidenceSnippet{Status: EvidenceProviderError, Query: query, Cause: cause}
}

// Text renders the snippet as the short text used in replies and prompts.
func (e EvidenceSnippet) Text() string {
	switch e.Status {
	case EvidenceFound:
		parts := make([]string, 0, 3)
		for _, p := range []string{e.Title, e.Excerpt, e.Link} {
			if p != "" {
				parts = append(parts, p)
			}
		}
		if len(parts) == 0 {
			return fmt.Sprintf(MsgNoResultsFormat, e.Query)
		}
		return strings.Join(parts, "\n")
	case EvidenceNoResults:
		return fmt.Sprintf(MsgNoResultsFormat, e.Query)
	case EvidenceNotConfigured:
		return MsgSearchNotConfigured
	case EvidenceProviderError:
		return fmt.Sprintf(MsgSearchErrorFormat, e.Cause)
	default:
		return MsgSearchNotConfigured
	}
}
