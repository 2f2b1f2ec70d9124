package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/KPTrades/KPBot/models"
	"github.com/KPTrades/KPBot/usecases/relay"
)

// DiscordEventsHandler owns the gateway session and maps Discord SDK events
// into domain models before handing them to the relay usecase
type DiscordEventsHandler struct {
	discordSDKClient *discordgo.Session
	relayUseCase     *relay.RelayUseCase
}

func NewDiscordEventsHandler(
	session *discordgo.Session,
	relayUseCase *relay.RelayUseCase,
) *DiscordEventsHandler {
	handler := &DiscordEventsHandler{
		discordSDKClient: session,
		relayUseCase:     relayUseCase,
	}

	// Register event handlers
	session.AddHandler(handler.handleMessageCreatedEvent)
	session.AddHandler(handler.handleInteractionCreatedEvent)
	session.AddHandler(handler.handleReadyEvent)

	// Set intents to receive message events with their content
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	return handler
}

// StartBot opens the Discord connection and starts listening for events
func (h *DiscordEventsHandler) StartBot() error {
	if err := h.discordSDKClient.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	log.Printf("🤖 Discord bot is now running and listening for events")
	return nil
}

// StopBot gracefully closes the Discord connection
func (h *DiscordEventsHandler) StopBot() {
	h.discordSDKClient.Close()
}

// handleMessageCreatedEvent handles incoming Discord messages
func (h *DiscordEventsHandler) handleMessageCreatedEvent(s *discordgo.Session, m *discordgo.MessageCreate) {
	messageEvent, err := h.mapToMessageEvent(s, m)
	if err != nil {
		log.Printf("❌ Failed to map Discord message event: %v", err)
		return
	}

	if err := h.relayUseCase.ProcessMessageEvent(context.Background(), messageEvent); err != nil {
		log.Printf("❌ Failed to process Discord message: %v", err)
	}
}

// handleInteractionCreatedEvent handles component interactions (buttons)
func (h *DiscordEventsHandler) handleInteractionCreatedEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}

	interactionEvent := h.mapToInteractionEvent(i)
	if err := h.relayUseCase.ProcessInteractionEvent(context.Background(), interactionEvent); err != nil {
		log.Printf("❌ Failed to process Discord interaction: %v", err)
	}
}

// handleReadyEvent handles the one-shot gateway ready event
func (h *DiscordEventsHandler) handleReadyEvent(s *discordgo.Session, r *discordgo.Ready) {
	h.relayUseCase.ProcessReadyEvent(models.DiscordReadyEvent{
		BotUserID:   r.User.ID,
		BotUsername: r.User.Username,
		GuildCount:  len(r.Guilds),
	})
}

// mapToMessageEvent maps a Discord SDK message event to our domain model
func (h *DiscordEventsHandler) mapToMessageEvent(
	s *discordgo.Session,
	m *discordgo.MessageCreate,
) (models.DiscordMessageEvent, error) {
	// Get channel information to determine if this is a thread
	channel, err := s.Channel(m.ChannelID)
	if err != nil {
		return models.DiscordMessageEvent{}, fmt.Errorf("failed to get channel info: %w", err)
	}

	var threadParentID *string
	if isThreadChannel(channel.Type) {
		parentID := channel.ParentID
		threadParentID = &parentID
	}

	// Extract mentioned user IDs
	mentions := make([]string, len(m.Mentions))
	for i, mentionedUser := range m.Mentions {
		mentions[i] = mentionedUser.ID
	}

	attachments := make([]models.DiscordAttachment, len(m.Attachments))
	for i, attachment := range m.Attachments {
		attachments[i] = models.DiscordAttachment{
			ContentType: attachment.ContentType,
			URL:         attachment.URL,
		}
	}

	return models.DiscordMessageEvent{
		GuildID:        m.GuildID,
		ChannelID:      m.ChannelID,
		MessageID:      m.ID,
		UserID:         m.Author.ID,
		Username:       m.Author.Username,
		DisplayName:    resolveDisplayName(m),
		Content:        m.Content,
		AuthorIsBot:    m.Author.Bot,
		ThreadParentID: threadParentID,
		Mentions:       mentions,
		Attachments:    attachments,
	}, nil
}

// mapToInteractionEvent maps a Discord SDK component interaction to our domain model
func (h *DiscordEventsHandler) mapToInteractionEvent(i *discordgo.InteractionCreate) models.DiscordInteractionEvent {
	data := i.MessageComponentData()

	var userID string
	if i.Member != nil && i.Member.User != nil {
		userID = i.Member.User.ID
	} else if i.User != nil {
		userID = i.User.ID
	}

	return models.DiscordInteractionEvent{
		InteractionID:    i.ID,
		InteractionToken: i.Token,
		GuildID:          i.GuildID,
		ChannelID:        i.ChannelID,
		UserID:           userID,
		CustomID:         data.CustomID,
		IsButton:         data.ComponentType == discordgo.ButtonComponent,
	}
}

// resolveDisplayName picks the name shown for the author: guild nickname,
// then global display name, then username
func resolveDisplayName(m *discordgo.MessageCreate) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}
	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}
	return m.Author.Username
}

// isThreadChannel returns true for any of Discord's thread channel types
func isThreadChannel(channelType discordgo.ChannelType) bool {
	return channelType == discordgo.ChannelTypeGuildPublicThread ||
		channelType == discordgo.ChannelTypeGuildPrivateThread ||
		channelType == discordgo.ChannelTypeGuildNewsThread
}
