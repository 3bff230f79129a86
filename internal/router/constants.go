package router

// Rule names
const (
	ruleGreeting = "greeting"
	ruleHelp     = "help"
	ruleVerify   = "verify"
	ruleForward  = "forward"
	ruleFallback = "fallback"
)

var (
	greetingTokens = map[string]struct{}{"hi": {}, "hello": {}, "hey": {}}
	helpTokens     = map[string]struct{}{"help": {}, "menu": {}}
)

// verifyPrefixes are tried in order; the longer form comes first.
var verifyPrefixes = []string{"/verify", "verify"}

// claimSeparators may sit between a verify command and its claim.
const claimSeparators = ":,;.-\u2013\u2014"

// Log messages
const (
	LogMsgIntentRouted    = "Intent routed"
	LogMsgEvidenceFetched = "Evidence fetched"
	LogMsgRoutePanic      = "Recovered panic while routing message"
)
