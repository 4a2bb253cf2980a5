package sender

import (
	"context"
	"felix/internal/core/domain"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

//go:generate mockery --name DiscordSession

type DiscordSession interface {
	ChannelMessageSend(channelID string, content string,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed,
		options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelTyping(channelID string, options ...discordgo.RequestOption) error
	UserChannelCreate(recipientID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

const (
	DiscordMessageLimit     = 2000
	ChatActionRepeatSeconds = 5
)

type Discord struct {
	session DiscordSession
}

func NewDiscord(session DiscordSession) *Discord {
	return &Discord{session: session}
}

func (s *Discord) SendMessageReply(ctx context.Context, message *domain.Message, text string) (string, error) {
	var lastID string
	for _, chunk := range chunkText(text, DiscordMessageLimit) {
		sent, err := s.session.ChannelMessageSend(message.ChannelID, chunk, discordgo.WithContext(ctx))
		if err != nil {
			log.Error().Err(err).Str("channelId", message.ChannelID).Msg("failed to send message")
			return lastID, fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
		}
		if sent != nil {
			lastID = sent.ID
		}
	}

	return lastID, nil
}

func (s *Discord) SendEmbedReply(ctx context.Context, message *domain.Message, embed *domain.Embed) error {
	_, err := s.session.ChannelMessageSendEmbed(message.ChannelID, toMessageEmbed(embed), discordgo.WithContext(ctx))
	if err != nil {
		log.Error().Err(err).Str("channelId", message.ChannelID).Msg("failed to send embed")
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}

func (s *Discord) SendDirectMessage(ctx context.Context, userID string, text string) error {
	channel, err := s.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to open private channel: %w", err)
	}

	_, err = s.SendMessageReply(ctx, &domain.Message{ChannelID: channel.ID}, text)

	return err
}

func (s *Discord) DeleteMessage(ctx context.Context, message *domain.Message) error {
	return s.session.ChannelMessageDelete(message.ChannelID, message.ID, discordgo.WithContext(ctx))
}

func (s *Discord) NotifyAndReturnError(ctx context.Context, err error, message *domain.Message) error {
	_, sendErr := s.SendMessageReply(ctx, message, err.Error())
	if sendErr != nil {
		return sendErr
	}

	return err
}

// SendChatAction only knows typing, the one action the chat client offers.
func (s *Discord) SendChatAction(ctx context.Context, channelID string, action domain.Action) {
	log.Debug().Str("channelId", channelID).Str("action", string(action)).Msg("starting action routine")
	for {
		select {
		case <-ctx.Done():
			log.Debug().Str("channelId", channelID).Msg("done, stopping action routine")
			return
		default:
		}

		log.Debug().Str("channelId", channelID).Msg("transmitting action")
		if err := s.session.ChannelTyping(channelID, discordgo.WithContext(ctx)); err != nil {
			log.Err(err).Msg("error sending chat action")
			return
		}

		select {
		case <-ctx.Done():
			log.Debug().Str("channelId", channelID).Msg("done, stopping action routine")
			return
		case <-time.After(ChatActionRepeatSeconds * time.Second):
		}
	}
}

// chunkText splits text into pieces of at most limit characters.
func chunkText(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	chunks := make([]string, 0, len(runes)/limit+1)
	for start := 0; start < len(runes); start += limit {
		end := min(start+limit, len(runes))
		chunks = append(chunks, string(runes[start:end]))
	}

	return chunks
}

func toMessageEmbed(embed *domain.Embed) *discordgo.MessageEmbed {
	out := &discordgo.MessageEmbed{
		Type:        discordgo.EmbedTypeRich,
		Title:       embed.Title,
		URL:         embed.URL,
		Description: embed.Description,
		Color:       embed.Color,
	}

	if embed.ImageURL != "" {
		out.Image = &discordgo.MessageEmbedImage{URL: embed.ImageURL}
	}
	if embed.ThumbnailURL != "" {
		out.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: embed.ThumbnailURL}
	}
	if embed.Author != nil {
		out.Author = &discordgo.MessageEmbedAuthor{Name: embed.Author.Name, IconURL: embed.Author.IconURL}
	}
	if embed.Footer != nil {
		out.Footer = &discordgo.MessageEmbedFooter{Text: embed.Footer.Text, IconURL: embed.Footer.IconURL}
	}
	for _, field := range embed.Fields {
		out.Fields = append(out.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}

	return out
}
