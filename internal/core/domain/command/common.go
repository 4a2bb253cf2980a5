package command

import (
	"context"
	"felix/internal/core/domain"
	"math/rand/v2"

	"github.com/rs/zerolog"
)

const (
	// Green is the accent colour of the informational embeds.
	Green     = 0x2ECC71
	maxColour = 0xFFFFFF
)

// requestLogger derives the per-request logger from the invocation logger carried by ctx.
func requestLogger(ctx context.Context, command string, message *domain.Message) zerolog.Logger {
	return zerolog.Ctx(ctx).With().
		Str("messageId", message.ID).
		Str("channelId", message.ChannelID).
		Str("command", command).
		Logger()
}

func authorFooter(user domain.User) *domain.EmbedFooter {
	return &domain.EmbedFooter{Text: user.DisplayName, IconURL: user.AvatarURL}
}

func missingArgument(name string) error {
	return domain.NewBadArgument("%s is a required argument that is missing.", name)
}

func randomColour(intN func(int) int) int {
	return intN(maxColour + 1)
}

func defaultPicker() func(int) int {
	return rand.IntN
}
