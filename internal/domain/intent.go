package domain

// IntentKind is the closed set of handling paths for an inbound message.
type IntentKind string

const (
	IntentGreeting      IntentKind = "greeting"
	IntentHelp          IntentKind = "help"
	IntentVerifyRequest IntentKind = "verify"
	IntentForwardCheck  IntentKind = "forward_check"
	IntentUnrecognized  IntentKind = "unrecognized"
)

// Intent is derived exactly once per InboundMessage.
// Text holds the claim for IntentVerifyRequest and the raw text for IntentForwardCheck.
type Intent struct {
	Kind IntentKind
	Text string
}
