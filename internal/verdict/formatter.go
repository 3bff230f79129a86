// Package verdict turns a claim and its evidence into the final reply text,
// enriching it with a language model when one is configured.
package verdict

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/osse101/MisinfoX_Go/internal/domain"
	"github.com/osse101/MisinfoX_Go/internal/logger"
	"github.com/osse101/MisinfoX_Go/internal/metrics"
)

// Defaults
const (
	DefaultMaxReplyChars = 1550
	DefaultTimeout       = 15 * time.Second
)

// ForwardPrefix is prepended to verdicts for forwarded content.
const ForwardPrefix = "📩 Forwarded message detected. Here is what I found:\n\n"

const (
	degradedFormat = "Claim: %s\n\nEvidence: %s"
	ellipsis       = "…"
)

// Generator is the enrichment backend capability.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Options tunes the formatter.
type Options struct {
	// MaxReplyChars truncates the final text to this many runes. 0 disables truncation.
	MaxReplyChars int
	// Timeout bounds the single enrichment request.
	Timeout time.Duration
}

// Outcome classifies one enrichment attempt.
type Outcome int

const (
	OutcomeEnriched Outcome = iota
	OutcomeUnconfigured
	OutcomeBackendError
	OutcomeTimeout
	OutcomeEmptyOutput
)

func (o Outcome) String() string {
	switch o {
	case OutcomeEnriched:
		return "enriched"
	case OutcomeUnconfigured:
		return "unconfigured"
	case OutcomeBackendError:
		return "backend_error"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeEmptyOutput:
		return "empty_output"
	default:
		return "unknown"
	}
}

// Enrichment is the result of asking the backend for a verdict.
type Enrichment struct {
	Outcome Outcome
	Text    string
	Err     error
}

// Formatter is safe for concurrent use.
type Formatter struct {
	gen  Generator
	opts Options
}

// New creates a Formatter. A nil gen means the enrichment backend is not configured.
func New(gen Generator, opts Options) *Formatter {
	if opts.MaxReplyChars < 0 {
		opts.MaxReplyChars = DefaultMaxReplyChars
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Formatter{gen: gen, opts: opts}
}

// Enabled reports whether an enrichment backend is configured.
func (f *Formatter) Enabled() bool {
	return f.gen != nil
}

// FormatVerdict produces the reply for a claim. It never fails: any enrichment
// problem degrades to a plain rendering of the claim and evidence.
func (f *Formatter) FormatVerdict(ctx context.Context, claim string, evidence domain.EvidenceSnippet, isForward bool) domain.Verdict {
	prefix := ""
	if isForward {
		prefix = ForwardPrefix
	}

	enrichment := f.enrich(ctx, claim, evidence)

	var body string
	var outcome domain.VerdictOutcome
	switch enrichment.Outcome {
	case OutcomeEnriched:
		body = enrichment.Text
		outcome = domain.OutcomeEnriched
	default:
		if enrichment.Err != nil {
			logger.FromContext(ctx).Warn("Enrichment failed, using degraded verdict",
				"outcome", enrichment.Outcome.String(),
				"error", enrichment.Err)
		}
		body = Degraded(claim, evidence)
		outcome = domain.OutcomeDegraded
	}

	metrics.RecordVerdict(outcome)

	return domain.Verdict{
		Text:    Truncate(prefix+body, f.opts.MaxReplyChars),
		Outcome: outcome,
	}
}

// enrich performs at most one backend request and classifies the result.
func (f *Formatter) enrich(ctx context.Context, claim string, evidence domain.EvidenceSnippet) (result Enrichment) {
	if f.gen == nil {
		return Enrichment{Outcome: OutcomeUnconfigured}
	}

	defer func() {
		if r := recover(); r != nil {
			result = Enrichment{Outcome: OutcomeBackendError, Err: fmt.Errorf("generator panic: %v", r)}
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, f.opts.Timeout)
	defer cancel()

	prompt := BuildPrompt(claim, evidence.Text(), f.budget())
	text, err := f.gen.GenerateText(ctx, prompt)

	switch {
	case err == nil && strings.TrimSpace(text) != "":
		return Enrichment{Outcome: OutcomeEnriched, Text: strings.TrimSpace(text)}
	case err == nil, errors.Is(err, domain.ErrEmptyGeneration):
		return Enrichment{Outcome: OutcomeEmptyOutput, Err: domain.ErrEmptyGeneration}
	case errors.Is(err, context.DeadlineExceeded):
		return Enrichment{Outcome: OutcomeTimeout, Err: err}
	default:
		return Enrichment{Outcome: OutcomeBackendError, Err: err}
	}
}

func (f *Formatter) budget() int {
	if f.opts.MaxReplyChars > 0 {
		return f.opts.MaxReplyChars
	}
	return DefaultMaxReplyChars
}

// Degraded renders the claim and evidence without enrichment.
func Degraded(claim string, evidence domain.EvidenceSnippet) string {
	return fmt.Sprintf(degradedFormat, strings.TrimSpace(claim), evidence.Text())
}

// Truncate limits text to max runes, ending with an ellipsis when cut. max <= 0 disables it.
func Truncate(text string, max int) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return strings.TrimRightFunc(string(runes[:max-1]), isSpace) + ellipsis
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t' || r == '\r'
}
