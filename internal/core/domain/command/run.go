package command

import (
	"context"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"time"
)

type Run struct {
	sender  port.TextSender
	command string
}

func NewRun(sender port.TextSender, command string) *Run {
	return &Run{sender: sender, command: command}
}

func (r *Run) GetCommand() string {
	return r.command
}

func (r *Run) GetAliases() []string {
	return nil
}

func (r *Run) Respond(ctx context.Context, _ time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, r.command, message)
	l.Info().Msg("handling request")

	_, err := r.sender.SendMessageReply(ctx, message, "Please use `/run` to run code.")

	return err
}
