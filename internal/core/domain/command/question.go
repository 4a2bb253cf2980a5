package command

import (
	"context"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"fmt"
	"strings"
	"time"
)

const notUnderstood = "Sorry, I did not understand that"

type Question struct {
	answerer port.Answerer
	sender   port.TextSender
	command  string
}

func NewQuestion(answerer port.Answerer, sender port.TextSender, command string) *Question {
	return &Question{answerer: answerer, sender: sender, command: command}
}

func (q *Question) GetCommand() string {
	return q.command
}

func (q *Question) GetAliases() []string {
	return []string{"q"}
}

func (q *Question) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, q.command, message)
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	question := ParseCommandArgs(message.Text)
	if question == "" {
		return q.sender.NotifyAndReturnError(ctx, missingArgument("question"), message)
	}

	go q.sender.SendChatAction(ctx, message.ChannelID, domain.Typing)

	answer, err := q.answerer.Answer(ctx, question)
	if err != nil {
		return q.sender.NotifyAndReturnError(ctx, fmt.Errorf("failed to get answer: %w", err), message)
	}

	if strings.Contains(answer, "did not understand") || strings.TrimSpace(answer) == "" {
		answer = notUnderstood
	}

	_, err = q.sender.SendMessageReply(ctx, message, answer)

	return err
}
