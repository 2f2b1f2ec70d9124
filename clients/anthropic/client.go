package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/KPTrades/KPBot/clients"
)

// AnthropicClient implements the clients.AnthropicClient interface
type AnthropicClient struct {
	sdkClient anthropic.Client
	model     string
	maxTokens int
}

// NewAnthropicClient creates a new Anthropic client for model invocations
func NewAnthropicClient(apiKey, model string, maxTokens int) clients.AnthropicClient {
	return &AnthropicClient{
		sdkClient: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: maxTokens,
	}
}

// GenerateResponse invokes the model once with the given system prompt and
// content parts and returns the generated text
func (c *AnthropicClient) GenerateResponse(
	ctx context.Context,
	systemPrompt string,
	content clients.PromptContent,
) (string, error) {
	blocks := []anthropic.ContentBlockParamUnion{}
	if content.Text != "" {
		blocks = append(blocks, anthropic.NewTextBlock(content.Text))
	}
	if image, ok := content.Image.Get(); ok {
		blocks = append(blocks, anthropic.NewImageBlockBase64(image.MediaType, image.Base64Data))
	}
	if len(blocks) == 0 {
		return "", fmt.Errorf("no content parts to send to model")
	}

	message, err := c.sdkClient.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(c.maxTokens),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(blocks...),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create message: %w", err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	response := sb.String()
	if response == "" {
		return "", fmt.Errorf("model returned no text content")
	}

	return response, nil
}
