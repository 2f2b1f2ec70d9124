package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"

	anthropicclient "github.com/KPTrades/KPBot/clients/anthropic"
	discordclient "github.com/KPTrades/KPBot/clients/discord"
	"github.com/KPTrades/KPBot/config"
	"github.com/KPTrades/KPBot/handlers"
	"github.com/KPTrades/KPBot/usecases/relay"
)

func main() {
	if err := run(); err != nil {
		log.Printf("❌ Fatal error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	session, err := discordgo.New("Bot " + cfg.DiscordConfig.BotToken)
	if err != nil {
		return err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	discordClient := discordclient.NewDiscordClient(session, httpClient)
	anthropicClient := anthropicclient.NewAnthropicClient(
		cfg.AnthropicConfig.APIKey,
		cfg.AnthropicConfig.Model,
		cfg.AnthropicConfig.MaxTokens,
	)

	relayUseCase := relay.NewRelayUseCase(discordClient, anthropicClient, cfg.BotConfig.AllowedChannelID)
	eventsHandler := handlers.NewDiscordEventsHandler(session, relayUseCase)

	if err := eventsHandler.StartBot(); err != nil {
		return err
	}

	return handleGracefulShutdown(eventsHandler)
}

func handleGracefulShutdown(eventsHandler *handlers.DiscordEventsHandler) error {
	// Channel to listen for interrupt signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Wait for interrupt signal
	<-stop
	log.Printf("🛑 Shutdown signal received, cleaning up...")

	eventsHandler.StopBot()

	log.Printf("✅ Bot stopped gracefully")
	return nil
}
