package command

import (
	"context"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const urbanBudget = 1950

type Urban struct {
	dictionary port.Dictionary
	sender     port.Replier
	command    string
	pick       func(int) int
}

func NewUrban(dictionary port.Dictionary, sender port.Replier, command string) *Urban {
	return &Urban{dictionary: dictionary, sender: sender, command: command, pick: defaultPicker()}
}

func (u *Urban) GetCommand() string {
	return u.command
}

func (u *Urban) GetAliases() []string {
	return []string{"ud", "urbandictionary", "urbandict"}
}

func (u *Urban) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, u.command, message)
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	term := ParseCommandArgs(message.Text)
	if term == "" {
		return u.sender.NotifyAndReturnError(ctx, missingArgument("term"), message)
	}

	definitions, err := u.dictionary.Define(ctx, term)
	if err != nil {
		return u.sender.NotifyAndReturnError(ctx, fmt.Errorf("failed to look up term: %w", err), message)
	}

	if len(definitions) == 0 {
		_, err := u.sender.SendMessageReply(ctx, message, notUnderstood)
		return err
	}

	return u.sender.SendEmbedReply(ctx, message, &domain.Embed{
		Title:       fmt.Sprintf("\"**%s**\" according to urbandictionary.com", term),
		URL:         "https://urbandictionary.com/define.php?term=" + url.QueryEscape(term),
		Description: FormatDefinition(definitions[0]),
		Color:       randomColour(u.pick),
		Footer:      authorFooter(message.Author),
	})
}

// FormatDefinition renders a definition and its example. When both together exceed the budget the
// definition is shortened, the example is always kept whole. Square brackets are cross reference
// markup and get removed.
func FormatDefinition(d domain.Definition) string {
	definition := []rune(d.Definition)
	example := []rune(d.Example)

	if len(definition)+len(example) > urbanBudget {
		keep := max(urbanBudget-len(example), 0)
		definition = append(definition[:keep:keep], []rune(" (...)")...)
	}

	text := "\n**Definition:**\n" + string(definition) + "\n\n**Example:**\n" + string(example)

	return strings.NewReplacer("[", "", "]", "").Replace(text)
}
