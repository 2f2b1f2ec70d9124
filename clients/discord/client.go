package discord

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/KPTrades/KPBot/clients"
)

// DiscordClient implements the clients.DiscordClient interface on top of a
// shared discordgo session
type DiscordClient struct {
	session *discordgo.Session
	// httpClient is used for fetching attachment bytes from Discord's CDN,
	// which discordgo does not wrap
	httpClient *http.Client
}

// NewDiscordClient creates a new Discord client backed by the given session
func NewDiscordClient(session *discordgo.Session, httpClient *http.Client) clients.DiscordClient {
	return &DiscordClient{
		session:    session,
		httpClient: httpClient,
	}
}

// GetBotUser returns the bot's own user information
func (c *DiscordClient) GetBotUser() (*clients.DiscordBotUser, error) {
	// The gateway populates session state on ready; fall back to the REST
	// endpoint before the first ready event
	if c.session.State != nil && c.session.State.User != nil {
		user := c.session.State.User
		return &clients.DiscordBotUser{
			ID:       user.ID,
			Username: user.Username,
			Bot:      user.Bot,
		}, nil
	}

	user, err := c.session.User("@me")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bot user: %w", err)
	}
	return &clients.DiscordBotUser{
		ID:       user.ID,
		Username: user.Username,
		Bot:      user.Bot,
	}, nil
}

// PostMessage sends a message to a channel or thread, optionally carrying a
// single button component
func (c *DiscordClient) PostMessage(
	channelID string,
	params clients.DiscordMessageParams,
) (*clients.DiscordPostMessageResponse, error) {
	send := &discordgo.MessageSend{
		Content: params.Content,
	}

	if button, ok := params.Button.Get(); ok {
		send.Components = []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    button.Label,
						Style:    discordgo.DangerButton,
						CustomID: button.CustomID,
					},
				},
			},
		}
	}

	message, err := c.session.ChannelMessageSendComplex(channelID, send)
	if err != nil {
		return nil, fmt.Errorf("failed to send message to channel %s: %w", channelID, err)
	}

	return &clients.DiscordPostMessageResponse{
		ChannelID: message.ChannelID,
		MessageID: message.ID,
	}, nil
}

// ReplyToMessage sends a message as an inline reply to an existing message
func (c *DiscordClient) ReplyToMessage(
	channelID, messageID, content string,
) (*clients.DiscordPostMessageResponse, error) {
	message, err := c.session.ChannelMessageSendReply(channelID, content, &discordgo.MessageReference{
		ChannelID: channelID,
		MessageID: messageID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reply to message %s in channel %s: %w", messageID, channelID, err)
	}

	return &clients.DiscordPostMessageResponse{
		ChannelID: message.ChannelID,
		MessageID: message.ID,
	}, nil
}

// SendDirectMessage sends a DM to the given user
func (c *DiscordClient) SendDirectMessage(userID, content string) error {
	dmChannel, err := c.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("failed to create DM channel with user %s: %w", userID, err)
	}

	if _, err := c.session.ChannelMessageSend(dmChannel.ID, content); err != nil {
		return fmt.Errorf("failed to send DM to user %s: %w", userID, err)
	}

	return nil
}

// DeleteMessage deletes a message from a channel
func (c *DiscordClient) DeleteMessage(channelID, messageID string) error {
	if err := c.session.ChannelMessageDelete(channelID, messageID); err != nil {
		return fmt.Errorf("failed to delete message %s in channel %s: %w", messageID, channelID, err)
	}
	return nil
}

// CreatePrivateThread starts a private thread from an existing message
func (c *DiscordClient) CreatePrivateThread(
	channelID, messageID, name string,
) (*clients.DiscordThreadResponse, error) {
	thread, err := c.session.MessageThreadStartComplex(channelID, messageID, &discordgo.ThreadStart{
		Name:                name,
		Type:                discordgo.ChannelTypeGuildPrivateThread,
		AutoArchiveDuration: 60,
		Invitable:           false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create thread on message %s: %w", messageID, err)
	}

	return &clients.DiscordThreadResponse{
		ThreadID:   thread.ID,
		ThreadName: thread.Name,
	}, nil
}

// DeleteChannel deletes a channel or thread by id
func (c *DiscordClient) DeleteChannel(channelID string) error {
	if _, err := c.session.ChannelDelete(channelID); err != nil {
		return fmt.Errorf("failed to delete channel %s: %w", channelID, err)
	}
	return nil
}

// RespondToInteraction replies to an interaction, optionally as an ephemeral
// message visible only to the triggering user
func (c *DiscordClient) RespondToInteraction(
	interactionID, interactionToken, content string,
	ephemeral bool,
) error {
	data := &discordgo.InteractionResponseData{
		Content: content,
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	err := c.session.InteractionRespond(
		&discordgo.Interaction{ID: interactionID, Token: interactionToken},
		&discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: data,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to respond to interaction %s: %w", interactionID, err)
	}
	return nil
}

// FetchAttachment downloads attachment bytes from the given CDN URL
func (c *DiscordClient) FetchAttachment(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create attachment request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("attachment fetch failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment body: %w", err)
	}

	return body, nil
}
