package discord

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/KPTrades/KPBot/clients"
)

// MockDiscordClient implements the clients.DiscordClient interface for testing
type MockDiscordClient struct {
	mock.Mock
}

// GetBotUser mocks fetching the bot's own user information
func (m *MockDiscordClient) GetBotUser() (*clients.DiscordBotUser, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordBotUser), args.Error(1)
}

// PostMessage mocks sending a message to a channel or thread
func (m *MockDiscordClient) PostMessage(
	channelID string,
	params clients.DiscordMessageParams,
) (*clients.DiscordPostMessageResponse, error) {
	args := m.Called(channelID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordPostMessageResponse), args.Error(1)
}

// ReplyToMessage mocks sending an inline reply
func (m *MockDiscordClient) ReplyToMessage(
	channelID, messageID, content string,
) (*clients.DiscordPostMessageResponse, error) {
	args := m.Called(channelID, messageID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordPostMessageResponse), args.Error(1)
}

// SendDirectMessage mocks sending a DM to a user
func (m *MockDiscordClient) SendDirectMessage(userID, content string) error {
	args := m.Called(userID, content)
	return args.Error(0)
}

// DeleteMessage mocks deleting a message
func (m *MockDiscordClient) DeleteMessage(channelID, messageID string) error {
	args := m.Called(channelID, messageID)
	return args.Error(0)
}

// CreatePrivateThread mocks starting a private thread from a message
func (m *MockDiscordClient) CreatePrivateThread(
	channelID, messageID, name string,
) (*clients.DiscordThreadResponse, error) {
	args := m.Called(channelID, messageID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*clients.DiscordThreadResponse), args.Error(1)
}

// DeleteChannel mocks deleting a channel or thread
func (m *MockDiscordClient) DeleteChannel(channelID string) error {
	args := m.Called(channelID)
	return args.Error(0)
}

// RespondToInteraction mocks replying to an interaction
func (m *MockDiscordClient) RespondToInteraction(
	interactionID, interactionToken, content string,
	ephemeral bool,
) error {
	args := m.Called(interactionID, interactionToken, content, ephemeral)
	return args.Error(0)
}

// FetchAttachment mocks downloading attachment bytes
func (m *MockDiscordClient) FetchAttachment(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
