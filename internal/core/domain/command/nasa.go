package command

import (
	"context"
	"errors"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"fmt"
	"strings"
	"time"
)

const (
	nasaIconURL  = "https://api.nasa.gov/assets/img/favicons/favicon-192.png"
	nasaProvider = "Provided By: https://api.nasa.gov/"
)

type NASA struct {
	pictures port.PictureOfTheDay
	sender   port.Replier
	command  string
	pick     func(int) int
}

func NewNASA(pictures port.PictureOfTheDay, sender port.Replier, command string) *NASA {
	return &NASA{pictures: pictures, sender: sender, command: command, pick: defaultPicker()}
}

func (n *NASA) GetCommand() string {
	return n.command
}

func (n *NASA) GetAliases() []string {
	return []string{"apod", "space"}
}

func (n *NASA) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, n.command, message)
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	date := NormalizeDate(ParseCommand(ParseCommandArgs(message.Text)))

	picture, err := n.pictures.Picture(ctx, date)
	if err != nil {
		var badArg *domain.BadArgumentError
		if !errors.As(err, &badArg) {
			err = fmt.Errorf("failed to fetch picture of the day: %w", err)
		}
		return n.sender.NotifyAndReturnError(ctx, err, message)
	}

	return n.sender.SendEmbedReply(ctx, message, PictureEmbed(picture, randomColour(n.pick)))
}

// NormalizeDate turns YYYYMMDD into YYYY-MM-DD and leaves every other input alone.
func NormalizeDate(date string) string {
	if len(date) != 8 || strings.Contains(date, "-") {
		return date
	}

	for _, r := range date {
		if r < '0' || r > '9' {
			return date
		}
	}

	return date[:4] + "-" + date[4:6] + "-" + date[6:]
}

func PictureEmbed(p domain.Picture, colour int) *domain.Embed {
	embed := &domain.Embed{
		Description: p.Explanation,
		Color:       colour,
		Author:      &domain.EmbedAuthor{Name: p.Title, IconURL: nasaIconURL},
	}

	if p.MediaType == "image" {
		embed.ImageURL = p.HDURL
	} else {
		embed.Fields = append(embed.Fields, domain.EmbedField{Name: "Video URI", Value: p.URL, Inline: true})
	}

	footer := "Date: " + p.Date + "\n" + nasaProvider
	if p.Copyright != "" {
		footer = "Copyright: " + p.Copyright + "\n" + footer
	}
	embed.Footer = &domain.EmbedFooter{Text: footer}

	return embed
}
