package relay

import "fmt"

// analystPersona is the fixed system prompt for every model invocation. The
// closing disclaimer is instructed, not enforced.
const analystPersona = `You are KP Bot, the market analysis assistant for the KP Trades Discord community.

Tone rules:
- Be direct, measured and professional. No hype, no emojis, no exclamation marks.
- Keep answers chat-sized: lead with the conclusion, then at most a few supporting points.

Scope rules:
- Only discuss financial markets: equities, ETFs, options, futures, forex, crypto and the macro events that move them.
- When given a chart image, describe the visible structure (trend, key levels, volume, patterns) before interpreting it.
- Never give personalized buy/sell instructions, position sizing or price targets stated as certainty.
- If asked about anything outside markets, decline in one sentence and steer back to trading topics.

Always end every response with this exact line:
*This is not financial advice. Always do your own research before making any trading decisions.*`

const (
	// closeSessionButtonLabel is the label on the button that closes a
	// session thread
	closeSessionButtonLabel = "Close Session"

	// threadNameFormat names a session thread after the requester
	threadNameFormat = "Private Chat with %s"

	// emptyPromptNotice asks the user to actually say something
	emptyPromptNotice = "Please include a question or attach a chart image after mentioning me, " +
		"e.g. `@KP Bot Analyze AAPL`."

	// closeSessionConfirmation is shown (ephemerally) to the session owner
	// right before the thread is deleted
	closeSessionConfirmation = "Closing this session - the thread will now be deleted."

	// closeSessionDenial is shown (ephemerally) to anyone else
	closeSessionDenial = "Only the member who started this session can close it."
)

// hygieneNotice is the DM sent to authors of deleted non-mention messages
func hygieneNotice(channelID string) string {
	return fmt.Sprintf(
		"Your message in <#%s> was removed: that channel only accepts messages that mention the bot. "+
			"Mention the bot together with your question to start a session.",
		channelID,
	)
}

// relayFailureNotice is the generic, non-diagnostic failure reply. The
// request id lets support correlate the report with server logs.
func relayFailureNotice(requestID string) string {
	return fmt.Sprintf(
		"Sorry, I couldn't process that request. Please try again in a moment. (reference: %s)",
		requestID,
	)
}
