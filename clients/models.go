package clients

import "github.com/samber/mo"

// DiscordBotUser represents Discord bot user information
type DiscordBotUser struct {
	ID       string
	Username string
	Bot      bool
}

// DiscordButton describes a single button component attached to a message
type DiscordButton struct {
	Label    string
	CustomID string
}

// DiscordMessageParams holds parameters for sending Discord messages
type DiscordMessageParams struct {
	Content string
	Button  mo.Option[DiscordButton]
}

// DiscordPostMessageResponse represents the response from posting a message to Discord
type DiscordPostMessageResponse struct {
	ChannelID string
	MessageID string
}

// DiscordThreadResponse represents the response from creating a Discord thread
type DiscordThreadResponse struct {
	ThreadID   string
	ThreadName string
}

// ImageContent is one inline image attached to a model prompt
type ImageContent struct {
	MediaType  string // declared MIME type, e.g. "image/png"
	Base64Data string // base64-encoded image bytes
}

// PromptContent is the ordered content of a single model invocation:
// a text part plus an optional inline image part
type PromptContent struct {
	Text  string
	Image mo.Option[ImageContent]
}
