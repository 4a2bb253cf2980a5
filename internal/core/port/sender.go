package port

import (
	"context"
	"felix/internal/core/domain"
)

type TextSender interface {
	// SendMessageReply sends text to the channel of the given message and returns the ID of the last sent message.
	SendMessageReply(ctx context.Context, message *domain.Message, text string) (string, error)
	// SendChatAction keeps a chat action (e.g. typing) visible in the channel until ctx is done.
	SendChatAction(ctx context.Context, channelID string, action domain.Action)
	// NotifyAndReturnError sends an error notification based on the provided message context and returns the error.
	NotifyAndReturnError(ctx context.Context, err error, message *domain.Message) error
}

type EmbedSender interface {
	// SendEmbedReply sends a rich embed to the channel of the given message.
	SendEmbedReply(ctx context.Context, message *domain.Message, embed *domain.Embed) error
}

// Replier answers in the channel of a message with text or embeds.
type Replier interface {
	TextSender
	EmbedSender
}

type PrivateSender interface {
	// SendDirectMessage opens a private channel with the user and sends the text there.
	SendDirectMessage(ctx context.Context, userID string, text string) error
	// DeleteMessage removes the given message from its channel.
	DeleteMessage(ctx context.Context, message *domain.Message) error
}

type MemberFinder interface {
	// Member resolves a single guild member including roles and presence.
	Member(ctx context.Context, guildID, userID string) (domain.Member, error)
	// Members lists every member of the guild.
	Members(ctx context.Context, guildID string) ([]domain.Member, error)
}
