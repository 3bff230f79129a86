// Package router classifies each inbound message into exactly one intent and
// dispatches it to the matching handler. Route is the outermost fault boundary
// of the pipeline: it always returns a reply.
package router

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/osse101/MisinfoX_Go/internal/domain"
	"github.com/osse101/MisinfoX_Go/internal/evidence"
	"github.com/osse101/MisinfoX_Go/internal/logger"
	"github.com/osse101/MisinfoX_Go/internal/metrics"
)

// ForwardDetector decides whether free text looks like forwarded content.
type ForwardDetector interface {
	IsForwardLike(text string) bool
}

// VerdictFormatter turns a claim and its evidence into the final reply.
type VerdictFormatter interface {
	FormatVerdict(ctx context.Context, claim string, evidence domain.EvidenceSnippet, isForward bool) domain.Verdict
}

// Router is safe for concurrent use. It holds no per-request state.
type Router struct {
	detector  ForwardDetector
	provider  evidence.Provider
	formatter VerdictFormatter
	rules     []rule
}

// New creates a Router over the given capabilities.
func New(detector ForwardDetector, provider evidence.Provider, formatter VerdictFormatter) *Router {
	r := &Router{
		detector:  detector,
		provider:  provider,
		formatter: formatter,
	}
	r.rules = r.buildRules()
	return r
}

// Classify derives the intent of msg. It performs no I/O.
func (r *Router) Classify(msg domain.InboundMessage) domain.Intent {
	intent, _ := r.classify(msg)
	return intent
}

func (r *Router) classify(msg domain.InboundMessage) (domain.Intent, string) {
	in := input{raw: msg.Body, normalized: msg.Normalized(), trimmed: msg.Trimmed()}
	for _, rl := range r.rules {
		if intent, ok := rl.match(in); ok {
			return intent, rl.name
		}
	}
	return domain.Intent{Kind: domain.IntentUnrecognized}, ruleFallback
}

// Route produces the reply for one inbound message. Panics anywhere in the
// pipeline are converted into the internal-error reply.
func (r *Router) Route(ctx context.Context, msg domain.InboundMessage) (v domain.Verdict) {
	log := logger.FromContext(ctx)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error(LogMsgRoutePanic,
				"panic", fmt.Sprint(rec),
				"stack", string(debug.Stack()))
			metrics.RecordVerdict(domain.OutcomeInternalError)
			v = domain.Verdict{
				Text:    domain.ReplyInternalError,
				Intent:  v.Intent,
				Outcome: domain.OutcomeInternalError,
			}
		}
	}()

	intent, ruleName := r.classify(msg)
	v.Intent = intent.Kind
	metrics.RecordIntent(intent.Kind)
	log.Info(LogMsgIntentRouted, "intent", intent.Kind, "rule", ruleName, "length", len(msg.Body))

	v = r.handle(ctx, intent)
	v.Intent = intent.Kind
	return v
}

func (r *Router) handle(ctx context.Context, intent domain.Intent) domain.Verdict {
	switch intent.Kind {
	case domain.IntentGreeting:
		return domain.StaticVerdict(intent.Kind, domain.ReplyGreeting)
	case domain.IntentHelp:
		return domain.StaticVerdict(intent.Kind, domain.ReplyHelp)
	case domain.IntentVerifyRequest:
		if intent.Text == "" {
			return domain.StaticVerdict(intent.Kind, domain.ReplyUsage)
		}
		return r.check(ctx, intent.Text, false)
	case domain.IntentForwardCheck:
		return r.check(ctx, intent.Text, true)
	default:
		return domain.StaticVerdict(domain.IntentUnrecognized, domain.ReplyUnrecognized)
	}
}

// check runs the evidence lookup to completion before formatting.
func (r *Router) check(ctx context.Context, claim string, isForward bool) domain.Verdict {
	ev := r.provider.FetchEvidence(ctx, claim)
	logger.FromContext(ctx).Debug(LogMsgEvidenceFetched, "status", ev.Status, "forward", isForward)
	return r.formatter.FormatVerdict(ctx, claim, ev, isForward)
}

// input carries the views of one message body that rules match against.
type input struct {
	raw        string
	normalized string
	trimmed    string
}

// rule is one entry of the ordered classification table. The first match wins.
type rule struct {
	name  string
	match func(in input) (domain.Intent, bool)
}

func (r *Router) buildRules() []rule {
	return []rule{
		{name: ruleGreeting, match: matchExact(domain.IntentGreeting, greetingTokens)},
		{name: ruleHelp, match: matchExact(domain.IntentHelp, helpTokens)},
		{name: ruleVerify, match: matchVerify},
		{name: ruleForward, match: r.matchForward},
	}
}

func matchExact(kind domain.IntentKind, tokens map[string]struct{}) func(input) (domain.Intent, bool) {
	return func(in input) (domain.Intent, bool) {
		if _, ok := tokens[in.normalized]; ok {
			return domain.Intent{Kind: kind}, true
		}
		return domain.Intent{}, false
	}
}

func matchVerify(in input) (domain.Intent, bool) {
	claim, ok := stripVerifyPrefix(in.trimmed)
	if !ok {
		return domain.Intent{}, false
	}
	return domain.Intent{Kind: domain.IntentVerifyRequest, Text: claim}, true
}

// matchForward runs the detector on the raw body so trailing line breaks still
// count. The trimmed text is what gets checked.
func (r *Router) matchForward(in input) (domain.Intent, bool) {
	if r.detector.IsForwardLike(in.raw) {
		return domain.Intent{Kind: domain.IntentForwardCheck, Text: in.trimmed}, true
	}
	return domain.Intent{}, false
}

// stripVerifyPrefix returns the claim following a verify command. Anything may
// follow the command except a letter or digit continuing the word, so
// "verifying" is not a command. Leading separators are dropped from the claim.
func stripVerifyPrefix(text string) (string, bool) {
	for _, prefix := range verifyPrefixes {
		if len(text) < len(prefix) || !strings.EqualFold(text[:len(prefix)], prefix) {
			continue
		}
		rest := text[len(prefix):]
		if next, _ := utf8.DecodeRuneInString(rest); rest != "" && isWordRune(next) {
			continue
		}
		return strings.TrimSpace(strings.TrimLeftFunc(rest, isClaimSeparator)), true
	}
	return "", false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isClaimSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(claimSeparators, r)
}
