package command

import (
	"context"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"fmt"
	"time"
)

const gifSearchLimit = 20

type Gif struct {
	searcher port.GifSearcher
	sender   port.Replier
	command  string
	pick     func(int) int
}

func NewGif(searcher port.GifSearcher, sender port.Replier, command string) *Gif {
	return &Gif{searcher: searcher, sender: sender, command: command, pick: defaultPicker()}
}

func (g *Gif) GetCommand() string {
	return g.command
}

func (g *Gif) GetAliases() []string {
	return nil
}

func (g *Gif) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, g.command, message)
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	terms := ParseCommandArgs(message.Text)
	if terms == "" {
		return g.sender.NotifyAndReturnError(ctx, missingArgument("gif_name"), message)
	}

	go g.sender.SendChatAction(ctx, message.ChannelID, domain.Typing)

	gifs, err := g.searcher.SearchGifs(ctx, terms, gifSearchLimit)
	if err != nil {
		return g.sender.NotifyAndReturnError(ctx, fmt.Errorf("failed to search gifs: %w", err), message)
	}

	if len(gifs) == 0 {
		l.Debug().Str("terms", terms).Msg("no gif found")
		_, err := g.sender.SendMessageReply(ctx, message,
			fmt.Sprintf("Sorry <@%s>, no gif found 😔", message.Author.ID))
		return err
	}

	return g.sender.SendEmbedReply(ctx, message, &domain.Embed{
		Color:    0,
		ImageURL: gifs[g.pick(len(gifs))],
		Footer:   authorFooter(message.Author),
	})
}
