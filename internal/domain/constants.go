package domain

// Evidence sentinel texts
const (
	MsgNoResultsFormat     = "No results found for %q."
	MsgSearchNotConfigured = "Search provider not configured."
	MsgSearchErrorFormat   = "Error during search: %s"
	MsgUnknownCause        = "unknown error"
)

// Static replies
const (
	ReplyGreeting = "Hello 👋, this is MisinfoX. Send me any news or claim and I'll help check it.\n" +
		"Type *help* to see what I can do."

	ReplyHelp = "🛡️ *MisinfoX commands*\n" +
		"• *verify <claim>*: fact-check a specific claim\n" +
		"• Forward or paste a long message or link and I'll check it automatically\n" +
		"• *help* or *menu*: show this message"

	ReplyUsage = "Please add the claim you want checked, for example:\n*verify the earth is flat*"

	ReplyUnrecognized = "Sorry, I didn't understand that. Type *help* for options, " +
		"or send *verify <claim>* to fact-check something."

	ReplyInternalError = "⚠️ Something went wrong on our side (internal error). Please try again."
)
