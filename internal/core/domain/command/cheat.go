package command

import (
	"context"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	cheatReplyBudget = 1992
	cheatBodyLimit   = 1000
	cheatTruncation  = 20
)

var (
	ansiEscapePattern = regexp.MustCompile(`\x1b\[.*?m`)
	backtickEscaper   = strings.NewReplacer("`", "\\`")
)

type Cheat struct {
	sheets  port.CheatSheet
	sender  port.TextSender
	command string
}

func NewCheat(sheets port.CheatSheet, sender port.TextSender, command string) *Cheat {
	return &Cheat{sheets: sheets, sender: sender, command: command}
}

func (c *Cheat) GetCommand() string {
	return c.command
}

func (c *Cheat) GetAliases() []string {
	return []string{"cht.sh", "cheatsheet", "cheat-sheet", "cht"}
}

func (c *Cheat) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, c.command, message)
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := strings.Fields(ParseCommandArgs(message.Text))
	if len(args) == 0 {
		return c.sender.NotifyAndReturnError(ctx, missingArgument("language"), message)
	}

	language := args[0]
	url := c.sheets.URL(language, args[1:])

	body, err := c.sheets.Lookup(ctx, url)
	if err != nil {
		return c.sender.NotifyAndReturnError(ctx, fmt.Errorf("failed to fetch cheat sheet: %w", err), message)
	}

	body = backtickEscaper.Replace(ansiEscapePattern.ReplaceAllString(body, ""))

	_, err = c.sender.SendMessageReply(ctx, message, FormatCheatSheet(url, language, body))

	return err
}

// FormatCheatSheet fits the page into a single message, cutting it short with a link to the full
// page when it does not fit.
func FormatCheatSheet(url, language, body string) string {
	space := min(cheatReplyBudget-utf8.RuneCountInString(language)-utf8.RuneCountInString(url), cheatBodyLimit)

	runes := []rune(body)
	if len(runes) > space {
		keep := max(space-cheatTruncation, 0)
		return "**Result Of cht.sh**\n```" + language + "\n" + string(runes[:keep]) +
			"\n... (truncated - too many lines)```\nFull results: " + url + " "
	}

	return "**Result Of cht.sh**\n```" + language + "\n" + body + "```\n" + url
}
