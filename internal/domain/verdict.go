package domain

// VerdictOutcome records how a reply was produced. Used for logs and metrics only.
type VerdictOutcome string

const (
	OutcomeStatic        VerdictOutcome = "static"
	OutcomeEnriched      VerdictOutcome = "enriched"
	OutcomeDegraded      VerdictOutcome = "degraded"
	OutcomeInternalError VerdictOutcome = "internal_error"
)

// Verdict is the final plain-text reply for one inbound message.
type Verdict struct {
	Text    string         `json:"reply"`
	Intent  IntentKind     `json:"intent"`
	Outcome VerdictOutcome `json:"outcome"`
}

// StaticVerdict builds a verdict for a fixed reply text.
func StaticVerdict(intent IntentKind, text string) Verdict {
	return Verdict{Text: text, Intent: intent, Outcome: OutcomeStatic}
}
