package command

import (
	"context"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"slices"
	"strings"
	"time"
)

const (
	chuckIconURL = "https://assets.chucknorris.host/img/avatar/chuck-norris.png"
	chuckMissing = "Chuck not found, currently evading GPS in Texas!"
)

type ChuckNorris struct {
	cache   port.StatusCodes
	jokes   port.JokeTeller
	sender  port.Replier
	command string
	pick    func(int) int
}

func NewChuckNorris(cache port.StatusCodes, jokes port.JokeTeller, sender port.Replier, command string) *ChuckNorris {
	return &ChuckNorris{cache: cache, jokes: jokes, sender: sender, command: command, pick: defaultPicker()}
}

func (c *ChuckNorris) GetCommand() string {
	return c.command
}

func (c *ChuckNorris) GetAliases() []string {
	return []string{"chuck", "cn"}
}

func (c *ChuckNorris) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, c.command, message)
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	categories, err := c.cache.ChuckCategories()
	if err != nil {
		return c.sender.NotifyAndReturnError(ctx, err, message)
	}

	category := strings.Fields(ParseCommandArgs(message.Text))
	var chosen string
	switch {
	case len(category) > 0:
		chosen = category[0]
		if !slices.Contains(categories, chosen) {
			return c.sender.NotifyAndReturnError(ctx, domain.NewBadArgument(
				"Invalid category - please pick from:\n%s", strings.Join(categories, ", ")), message)
		}
	case len(categories) > 0:
		chosen = categories[c.pick(len(categories))]
	default:
		return c.sender.NotifyAndReturnError(ctx, domain.NewBadArgument("%s", chuckMissing), message)
	}

	joke, err := c.jokes.RandomJoke(ctx, chosen)
	if err != nil {
		l.Warn().Err(err).Str("category", chosen).Msg("joke request failed")
		return c.sender.NotifyAndReturnError(ctx, domain.NewBadArgument("%s", chuckMissing), message)
	}

	return c.sender.SendEmbedReply(ctx, message, &domain.Embed{
		Description: joke,
		Color:       randomColour(c.pick),
		Author:      &domain.EmbedAuthor{Name: "Chuck Norris fun fact...", IconURL: chuckIconURL},
		Footer:      &domain.EmbedFooter{Text: "Category: " + chosen + " - https://api.chucknorris.io"},
	})
}
