package handler

import (
	"context"
	"errors"
	"felix/internal/core/domain"
	"felix/internal/core/domain/command"
	"felix/internal/core/port"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

var errNotACommand = errors.New("not a command")

type Command struct {
	commandRegistry port.CommandRegistry
	prefix          string
	timeout         time.Duration
}

func NewCommand(commandRegistry port.CommandRegistry, prefix string, timeout time.Duration) *Command {
	return &Command{commandRegistry: commandRegistry, prefix: prefix, timeout: timeout}
}

// Handle is registered as a MessageCreate handler on the session.
func (c *Command) Handle(_ *discordgo.Session, event *discordgo.MessageCreate) {
	if event == nil || event.Message == nil {
		return
	}

	if err := c.handle(event.Message); err != nil && !errors.Is(err, errNotACommand) {
		log.Debug().Err(err).Str("messageId", event.ID).Msg("message not dispatched")
	}
}

func (c *Command) handle(m *discordgo.Message) error {
	if m.Author == nil || m.Author.Bot {
		return errNotACommand
	}

	text, ok := stripPrefix(m.Content, c.prefix)
	if !ok {
		return errNotACommand
	}

	log.Debug().Str("message", text).Msg("received command")

	cmd := command.ParseCommand(text)
	commandHandler, err := c.commandRegistry.Get(cmd)
	if err != nil {
		log.Debug().Str("command", cmd).Msg("no handler for command")
		return fmt.Errorf("no handler for command: %w", err)
	}

	msg := toMessage(m)
	msg.Text = text

	invocationID := uuid.Must(uuid.NewV4()).String()
	logger := log.With().Str("invocationId", invocationID).Logger()
	ctx := logger.WithContext(context.Background())

	go func() {
		err := commandHandler.Respond(ctx, c.timeout, msg)
		if err != nil {
			logger.Err(err).Str("command", cmd).Msg("failed to respond to command")
		}
	}()

	return nil
}

// stripPrefix matches the prefix case-insensitively and returns the remaining text.
func stripPrefix(text, prefix string) (string, bool) {
	if prefix == "" || len(text) < len(prefix) || !strings.EqualFold(text[:len(prefix)], prefix) {
		return "", false
	}

	rest := strings.TrimSpace(text[len(prefix):])
	if rest == "" {
		return "", false
	}

	return rest, true
}

func toMessage(m *discordgo.Message) *domain.Message {
	msg := &domain.Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		Text:      m.Content,
	}

	if m.Author != nil {
		msg.Author = domain.User{
			ID:          m.Author.ID,
			Username:    m.Author.Username,
			DisplayName: getDisplayName(m),
			AvatarURL:   m.Author.AvatarURL(""),
			Bot:         m.Author.Bot,
		}
	}

	return msg
}

func getDisplayName(m *discordgo.Message) string {
	if m.Member != nil && m.Member.Nick != "" {
		return m.Member.Nick
	}

	if m.Author.GlobalName != "" {
		return m.Author.GlobalName
	}

	return m.Author.Username
}
