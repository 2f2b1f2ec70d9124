package relay

import (
	"encoding/base64"
	"strings"

	"github.com/KPTrades/KPBot/models"
)

// imageContentTypePrefix marks attachments that can be sent to the model as
// an inline image part
const imageContentTypePrefix = "image/"

// stripLeadingMention removes one leading mention token for the given user id
// (either the <@id> or <@!id> nickname form) and trims surrounding
// whitespace. Mentions elsewhere in the text are left intact.
func stripLeadingMention(content, userID string) string {
	trimmed := strings.TrimSpace(content)

	for _, token := range []string{"<@" + userID + ">", "<@!" + userID + ">"} {
		if strings.HasPrefix(trimmed, token) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, token))
		}
	}

	return trimmed
}

// findImageAttachment returns the first attachment whose declared content
// type marks it as an image
func findImageAttachment(attachments []models.DiscordAttachment) (models.DiscordAttachment, bool) {
	for _, attachment := range attachments {
		if strings.HasPrefix(attachment.ContentType, imageContentTypePrefix) {
			return attachment, true
		}
	}
	return models.DiscordAttachment{}, false
}

// encodeImageBytes base64-encodes raw attachment bytes for the model's
// inline-image content part
func encodeImageBytes(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// trimDiscordMessage trims a Discord message to the 2000 character limit
// Discord has a hard limit of 2000 characters per message via the API
func trimDiscordMessage(message string) string {
	const discordMessageLimit = 2000

	if len(message) <= discordMessageLimit {
		return message
	}

	// Trim to 2000 characters and add ellipsis to indicate truncation
	const truncationSuffix = "..."
	trimmedLength := discordMessageLimit - len(truncationSuffix)

	return message[:trimmedLength] + truncationSuffix
}
