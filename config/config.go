package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type DiscordConfig struct {
	BotToken string
}

// IsConfigured returns true if all required Discord configuration is present
func (c DiscordConfig) IsConfigured() bool {
	return c.BotToken != ""
}

type AnthropicConfig struct {
	APIKey    string
	Model     string // Optional with default "claude-sonnet-4-0"
	MaxTokens int    // Optional with default 1024
}

// IsConfigured returns true if all required Anthropic configuration is present
func (c AnthropicConfig) IsConfigured() bool {
	return c.APIKey != ""
}

type BotConfig struct {
	AllowedChannelID string
}

// IsConfigured returns true if all required bot configuration is present
func (c BotConfig) IsConfigured() bool {
	return c.AllowedChannelID != ""
}

type AppConfig struct {
	DiscordConfig   DiscordConfig
	AnthropicConfig AnthropicConfig
	BotConfig       BotConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	allowedChannelID, err := getEnvRequired("ALLOWED_CHANNEL_ID")
	if err != nil {
		return nil, err
	}

	maxTokens, err := getEnvIntWithDefault("ANTHROPIC_MAX_TOKENS", 1024)
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		DiscordConfig: DiscordConfig{
			BotToken: os.Getenv("DISCORD_BOT_TOKEN"),
		},
		AnthropicConfig: AnthropicConfig{
			APIKey:    os.Getenv("ANTHROPIC_API_KEY"),
			Model:     getEnvWithDefault("ANTHROPIC_MODEL", "claude-sonnet-4-0"),
			MaxTokens: maxTokens,
		},
		BotConfig: BotConfig{
			AllowedChannelID: allowedChannelID,
		},
	}

	if config.DiscordConfig.IsConfigured() {
		log.Printf("✅ Discord integration configured")
	} else {
		return nil, fmt.Errorf("discord integration is not fully configured (DISCORD_BOT_TOKEN is not set)")
	}

	if config.AnthropicConfig.IsConfigured() {
		log.Printf("✅ Anthropic integration configured (model: %s)", config.AnthropicConfig.Model)
	} else {
		return nil, fmt.Errorf("anthropic integration is not fully configured (ANTHROPIC_API_KEY is not set)")
	}

	log.Printf("✅ Bot configured for channel %s", config.BotConfig.AllowedChannelID)

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, value)
	}
	return parsed, nil
}
