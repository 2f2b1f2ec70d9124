package models

// DiscordAttachment represents one attachment on a Discord message
type DiscordAttachment struct {
	ContentType string
	URL         string
}

// DiscordMessageEvent represents a Discord message event from the gateway
type DiscordMessageEvent struct {
	GuildID     string
	ChannelID   string
	MessageID   string
	UserID      string
	Username    string
	DisplayName string
	Content     string
	AuthorIsBot bool
	// ThreadParentID is set when the message arrived inside a thread and
	// holds the id of the thread's parent channel
	ThreadParentID *string
	Mentions       []string
	Attachments    []DiscordAttachment
}

// InThread returns true if the message arrived inside a thread
func (e DiscordMessageEvent) InThread() bool {
	return e.ThreadParentID != nil
}

// DiscordInteractionEvent represents a component interaction from the gateway
type DiscordInteractionEvent struct {
	InteractionID    string
	InteractionToken string
	GuildID          string
	ChannelID        string
	UserID           string
	CustomID         string
	IsButton         bool
}

// DiscordReadyEvent represents the gateway ready event
type DiscordReadyEvent struct {
	BotUserID   string
	BotUsername string
	GuildCount  int
}
