package anthropic

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/KPTrades/KPBot/clients"
)

// MockAnthropicClient is a mock implementation of clients.AnthropicClient
type MockAnthropicClient struct {
	mock.Mock
}

// NewMockAnthropicClient creates a new mock client for testing
func NewMockAnthropicClient() *MockAnthropicClient {
	return &MockAnthropicClient{}
}

// GenerateResponse mocks a single model invocation
func (m *MockAnthropicClient) GenerateResponse(
	ctx context.Context,
	systemPrompt string,
	content clients.PromptContent,
) (string, error) {
	args := m.Called(ctx, systemPrompt, content)
	return args.String(0), args.Error(1)
}

// WithGeneratedResponse configures mock to return specific text on GenerateResponse
func (m *MockAnthropicClient) WithGeneratedResponse(response string) *MockAnthropicClient {
	m.On("GenerateResponse", mock.Anything, mock.Anything, mock.Anything).Return(response, nil)
	return m
}

// WithGenerateError configures mock to fail GenerateResponse with the given error
func (m *MockAnthropicClient) WithGenerateError(err error) *MockAnthropicClient {
	m.On("GenerateResponse", mock.Anything, mock.Anything, mock.Anything).Return("", err)
	return m
}
