package clients

import "context"

// DiscordClient defines the interface for Discord API operations
type DiscordClient interface {
	// Bot operations
	GetBotUser() (*DiscordBotUser, error)

	// Message operations
	PostMessage(channelID string, params DiscordMessageParams) (*DiscordPostMessageResponse, error)
	ReplyToMessage(channelID, messageID, content string) (*DiscordPostMessageResponse, error)
	SendDirectMessage(userID, content string) error
	DeleteMessage(channelID, messageID string) error

	// Thread operations
	CreatePrivateThread(channelID, messageID, name string) (*DiscordThreadResponse, error)
	DeleteChannel(channelID string) error

	// Interaction operations
	RespondToInteraction(interactionID, interactionToken, content string, ephemeral bool) error

	// Attachment operations
	FetchAttachment(ctx context.Context, url string) ([]byte, error)
}

// AnthropicClient defines the interface for generating model responses
type AnthropicClient interface {
	GenerateResponse(ctx context.Context, systemPrompt string, content PromptContent) (string, error)
}
