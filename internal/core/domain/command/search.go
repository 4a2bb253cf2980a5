package command

import (
	"context"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"net/url"
	"time"
)

// SearchLink answers with a search URL for the given text on a fixed search page.
type SearchLink struct {
	sender  port.TextSender
	command string
	aliases []string
	baseURL string
}

func NewSearch(sender port.TextSender, command string) *SearchLink {
	return &SearchLink{
		sender:  sender,
		command: command,
		aliases: []string{"lmgtfy", "duck", "duckduckgo", "google"},
		baseURL: "https://duckduckgo.com/?q=",
	}
}

func NewStackOverflow(sender port.TextSender, command string) *SearchLink {
	return &SearchLink{
		sender:  sender,
		command: command,
		aliases: []string{"stacko", "stack"},
		baseURL: "https://stackoverflow.com/search?q=",
	}
}

func (s *SearchLink) GetCommand() string {
	return s.command
}

func (s *SearchLink) GetAliases() []string {
	return s.aliases
}

func (s *SearchLink) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, s.command, message)
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text := ParseCommandArgs(message.Text)
	if text == "" {
		return s.sender.NotifyAndReturnError(ctx, missingArgument("search_text"), message)
	}

	_, err := s.sender.SendMessageReply(ctx, message, "here you go! <"+s.baseURL+url.QueryEscape(text)+">")

	return err
}
