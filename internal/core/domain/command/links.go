package command

import (
	"context"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"strings"
	"time"
)

var projectLinks = []string{
	"[Youtube](https://www.youtube.com/engineerman)",
	"[Discord](https://engineerman.org/discord)",
	"[EMKC](https://emkc.org/)",
	"[EMKC Snippets](https://emkc.org/snippets)",
	"[EMKC Challenges](https://emkc.org/challenges)",
	"[Github Youtube](https://github.com/engineer-man/youtube-code)",
	"[Github EMKC](https://github.com/engineer-man/emkc)",
	"[Github Felix](https://github.com/engineer-man/felix)",
	"[Github Piston](https://github.com/engineer-man/piston)",
	"[Github Piston-Bot](https://github.com/engineer-man/piston-bot)",
	"[Twitter](https://twitter.com/_EngineerMan)",
	"[Facebook](https://www.facebook.com/engineermanyt)",
	"[Reddit](https://www.reddit.com/r/engineerman/)",
	"[Reddit Resources](https://www.reddit.com/r/engineerman/search/?q=flair%3AResource&restrict_sr=1)",
}

type Links struct {
	sender  port.EmbedSender
	command string
}

func NewLinks(sender port.EmbedSender, command string) *Links {
	return &Links{sender: sender, command: command}
}

func (c *Links) GetCommand() string {
	return c.command
}

func (c *Links) GetAliases() []string {
	return []string{"urls", "sauce", "source"}
}

func (c *Links) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, c.command, message)
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return c.sender.SendEmbedReply(ctx, message, &domain.Embed{
		Title:       "Links",
		Description: "• " + strings.Join(projectLinks, "\n• "),
		Color:       Green,
	})
}
