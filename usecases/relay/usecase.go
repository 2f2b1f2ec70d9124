package relay

import (
	"context"
	"fmt"
	"log"
	"slices"

	"github.com/samber/mo"

	"github.com/KPTrades/KPBot/clients"
	"github.com/KPTrades/KPBot/core"
	"github.com/KPTrades/KPBot/models"
)

// RelayUseCase handles all message routing: channel hygiene enforcement,
// relaying mentions to the model and close-session interactions
type RelayUseCase struct {
	discordClient    clients.DiscordClient
	anthropicClient  clients.AnthropicClient
	allowedChannelID string
}

// NewRelayUseCase creates a new instance of RelayUseCase
func NewRelayUseCase(
	discordClient clients.DiscordClient,
	anthropicClient clients.AnthropicClient,
	allowedChannelID string,
) *RelayUseCase {
	return &RelayUseCase{
		discordClient:    discordClient,
		anthropicClient:  anthropicClient,
		allowedChannelID: allowedChannelID,
	}
}

// ProcessMessageEvent applies the channel/mention policy to one inbound
// message and, for qualifying mentions, relays the message to the model
func (r *RelayUseCase) ProcessMessageEvent(ctx context.Context, event models.DiscordMessageEvent) error {
	log.Printf("📋 Starting to process message event %s from user %s in channel %s",
		event.MessageID, event.UserID, event.ChannelID)

	botUser, err := r.discordClient.GetBotUser()
	if err != nil {
		log.Printf("❌ Failed to get bot user: %v", err)
		return fmt.Errorf("failed to get bot user: %w", err)
	}

	// Never react to our own messages (or other bots) - prevents
	// self-trigger loops when the relayed answer lands in a thread
	if event.AuthorIsBot || event.UserID == botUser.ID {
		log.Printf("🔍 Message %s authored by a bot - ignoring", event.MessageID)
		return nil
	}

	inMain := event.ChannelID == r.allowedChannelID
	inThread := event.InThread() && *event.ThreadParentID == r.allowedChannelID
	botMentioned := slices.Contains(event.Mentions, botUser.ID)

	if inMain && !botMentioned {
		r.enforceChannelHygiene(event)
		return nil
	}

	if !inMain && !inThread {
		log.Printf("🔍 Message %s is outside the allowed channel - ignoring", event.MessageID)
		return nil
	}

	if !botMentioned {
		// Thread chatter without a mention is simply not relayed
		log.Printf("🔍 Message %s in session thread does not mention the bot - ignoring", event.MessageID)
		return nil
	}

	return r.relayToModel(ctx, event, botUser, inMain)
}

// enforceChannelHygiene deletes a non-mention message from the allowed
// channel and notifies the author by DM. Failures are logged and swallowed:
// there is nothing useful to show in-channel once the message is gone.
func (r *RelayUseCase) enforceChannelHygiene(event models.DiscordMessageEvent) {
	log.Printf("🧹 Message %s in channel %s does not mention the bot - enforcing channel hygiene",
		event.MessageID, event.ChannelID)

	if err := r.discordClient.DeleteMessage(event.ChannelID, event.MessageID); err != nil {
		log.Printf("❌ Failed to delete message %s during hygiene enforcement: %v", event.MessageID, err)
		return
	}

	if err := r.discordClient.SendDirectMessage(event.UserID, hygieneNotice(r.allowedChannelID)); err != nil {
		log.Printf("❌ Failed to DM hygiene notice to user %s: %v", event.UserID, err)
		return
	}

	log.Printf("📋 Completed successfully - removed message %s and notified user %s",
		event.MessageID, event.UserID)
}

// relayToModel assembles the prompt for one qualifying mention, invokes the
// model and delivers the answer into a fresh session thread (main channel) or
// as an inline reply (existing session thread)
func (r *RelayUseCase) relayToModel(
	ctx context.Context,
	event models.DiscordMessageEvent,
	botUser *clients.DiscordBotUser,
	inMain bool,
) error {
	requestID := core.NewID("req")
	log.Printf("🤖 Bot %s mentioned by user %s - relaying to model (request %s)",
		botUser.Username, event.UserID, requestID)

	prompt := stripLeadingMention(event.Content, botUser.ID)

	image, err := r.resolveImageAttachment(ctx, event)
	if err != nil {
		log.Printf("❌ Failed to fetch image attachment for request %s: %v", requestID, err)
		r.notifyRelayFailure(event, requestID)
		return fmt.Errorf("failed to fetch image attachment: %w", err)
	}

	if prompt == "" && image.IsAbsent() {
		log.Printf("🔍 Message %s has no prompt text and no image - asking user for a prompt", event.MessageID)
		if _, err := r.discordClient.ReplyToMessage(event.ChannelID, event.MessageID, emptyPromptNotice); err != nil {
			log.Printf("❌ Failed to send empty-prompt notice for message %s: %v", event.MessageID, err)
		}
		return nil
	}

	response, err := r.anthropicClient.GenerateResponse(ctx, analystPersona, clients.PromptContent{
		Text:  prompt,
		Image: image,
	})
	if err != nil {
		log.Printf("❌ Model invocation failed for request %s: %v", requestID, err)
		r.notifyRelayFailure(event, requestID)
		return fmt.Errorf("failed to generate model response: %w", err)
	}

	if inMain {
		return r.deliverInNewThread(event, response, requestID)
	}
	return r.deliverAsThreadReply(event, response, requestID)
}

// deliverInNewThread creates the per-request session thread, posts the answer
// with a close-session button into it and only then deletes the triggering
// message so the user is never left without a copy of their request
func (r *RelayUseCase) deliverInNewThread(
	event models.DiscordMessageEvent,
	response string,
	requestID string,
) error {
	threadName := fmt.Sprintf(threadNameFormat, event.DisplayName)
	thread, err := r.discordClient.CreatePrivateThread(event.ChannelID, event.MessageID, threadName)
	if err != nil {
		log.Printf("❌ Failed to create session thread for request %s: %v", requestID, err)
		r.notifyRelayFailure(event, requestID)
		return fmt.Errorf("failed to create session thread: %w", err)
	}
	log.Printf("🧵 Created session thread %s (%q) for request %s", thread.ThreadID, thread.ThreadName, requestID)

	control := models.CloseSessionControl{OwnerID: event.UserID}
	params := clients.DiscordMessageParams{
		Content: trimDiscordMessage(fmt.Sprintf("<@%s> %s", event.UserID, response)),
		Button: mo.Some(clients.DiscordButton{
			Label:    closeSessionButtonLabel,
			CustomID: control.CustomID(),
		}),
	}
	if _, err := r.discordClient.PostMessage(thread.ThreadID, params); err != nil {
		log.Printf("❌ Failed to post response into thread %s for request %s: %v",
			thread.ThreadID, requestID, err)
		r.notifyRelayFailure(event, requestID)
		return fmt.Errorf("failed to post response into session thread: %w", err)
	}

	// Delete strictly after the answer landed in the thread
	if err := r.discordClient.DeleteMessage(event.ChannelID, event.MessageID); err != nil {
		log.Printf("⚠️ Failed to delete original message %s after relay: %v", event.MessageID, err)
	}

	log.Printf("📋 Completed successfully - delivered request %s into thread %s", requestID, thread.ThreadID)
	return nil
}

// deliverAsThreadReply answers a follow-up mention inside an existing session
// thread with an inline reply
func (r *RelayUseCase) deliverAsThreadReply(
	event models.DiscordMessageEvent,
	response string,
	requestID string,
) error {
	if _, err := r.discordClient.ReplyToMessage(event.ChannelID, event.MessageID, trimDiscordMessage(response)); err != nil {
		log.Printf("❌ Failed to reply in thread %s for request %s: %v", event.ChannelID, requestID, err)
		r.notifyRelayFailure(event, requestID)
		return fmt.Errorf("failed to reply in session thread: %w", err)
	}

	log.Printf("📋 Completed successfully - delivered request %s as thread reply", requestID)
	return nil
}

// resolveImageAttachment picks the first image attachment, fetches its bytes
// and base64-encodes them paired with the declared content type
func (r *RelayUseCase) resolveImageAttachment(
	ctx context.Context,
	event models.DiscordMessageEvent,
) (mo.Option[clients.ImageContent], error) {
	attachment, found := findImageAttachment(event.Attachments)
	if !found {
		return mo.None[clients.ImageContent](), nil
	}

	data, err := r.discordClient.FetchAttachment(ctx, attachment.URL)
	if err != nil {
		return mo.None[clients.ImageContent](), fmt.Errorf("failed to fetch attachment %s: %w", attachment.URL, err)
	}

	return mo.Some(clients.ImageContent{
		MediaType:  attachment.ContentType,
		Base64Data: encodeImageBytes(data),
	}), nil
}

// notifyRelayFailure sends the generic failure notice as a best-effort reply
// to the triggering message. The notice is non-diagnostic on purpose; the
// request id lets an operator correlate a user report with the logs.
func (r *RelayUseCase) notifyRelayFailure(event models.DiscordMessageEvent, requestID string) {
	if _, err := r.discordClient.ReplyToMessage(event.ChannelID, event.MessageID, relayFailureNotice(requestID)); err != nil {
		log.Printf("⚠️ Failed to send failure notice for request %s: %v", requestID, err)
	}
}

// ProcessInteractionEvent handles close-session button activations
func (r *RelayUseCase) ProcessInteractionEvent(ctx context.Context, event models.DiscordInteractionEvent) error {
	if !event.IsButton {
		return nil
	}

	control, ok := models.ParseCloseSessionControl(event.CustomID)
	if !ok {
		log.Printf("🔍 Interaction %s custom id %q is not a close-session control - ignoring",
			event.InteractionID, event.CustomID)
		return nil
	}

	log.Printf("📋 Starting to process close-session interaction %s by user %s in channel %s",
		event.InteractionID, event.UserID, event.ChannelID)

	if event.UserID != control.OwnerID {
		log.Printf("🔒 User %s attempted to close a session owned by %s - denying", event.UserID, control.OwnerID)
		if err := r.discordClient.RespondToInteraction(
			event.InteractionID, event.InteractionToken, closeSessionDenial, true,
		); err != nil {
			log.Printf("❌ Failed to send denial response for interaction %s: %v", event.InteractionID, err)
			return fmt.Errorf("failed to send denial response: %w", err)
		}
		return nil
	}

	if err := r.discordClient.RespondToInteraction(
		event.InteractionID, event.InteractionToken, closeSessionConfirmation, true,
	); err != nil {
		log.Printf("❌ Failed to send close confirmation for interaction %s: %v", event.InteractionID, err)
		return fmt.Errorf("failed to send close confirmation: %w", err)
	}

	if err := r.discordClient.DeleteChannel(event.ChannelID); err != nil {
		log.Printf("❌ Failed to delete session thread %s: %v", event.ChannelID, err)
		return fmt.Errorf("failed to delete session thread: %w", err)
	}

	log.Printf("📋 Completed successfully - closed session thread %s for user %s", event.ChannelID, event.UserID)
	return nil
}

// ProcessReadyEvent logs the one-shot readiness line once the gateway is
// connected and authenticated
func (r *RelayUseCase) ProcessReadyEvent(event models.DiscordReadyEvent) {
	log.Printf("🤖 KPBot is connected and ready as %s (%s) in %d guild(s), watching channel %s",
		event.BotUsername, event.BotUserID, event.GuildCount, r.allowedChannelID)
}
