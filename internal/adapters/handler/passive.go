package handler

import (
	"context"
	"felix/internal/core/port"
	"felix/internal/core/service"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Passive answers ordinary channel messages that match one of the canned triggers.
type Passive struct {
	matcher *service.PassiveMatcher
	sender  port.TextSender
}

func NewPassive(matcher *service.PassiveMatcher, sender port.TextSender) *Passive {
	return &Passive{matcher: matcher, sender: sender}
}

func (p *Passive) Handle(_ *discordgo.Session, event *discordgo.MessageCreate) {
	if event == nil || event.Message == nil || event.Author == nil {
		return
	}

	p.handle(context.Background(), event.Message)
}

func (p *Passive) handle(ctx context.Context, m *discordgo.Message) {
	msg := toMessage(m)

	for _, reply := range p.matcher.Match(msg) {
		if _, err := p.sender.SendMessageReply(ctx, msg, reply); err != nil {
			log.Err(err).Str("channelId", msg.ChannelID).Msg("failed to send passive reply")
			return
		}
	}
}
