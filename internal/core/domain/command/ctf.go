package command

import (
	"bytes"
	"context"
	"crypto/sha1"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"strings"
	"time"
)

// Ctf hands out the capture-the-flag secret to whoever finds a token whose SHA-1 digest starts
// with the bot's name.
type Ctf struct {
	private port.PrivateSender
	flag    string
	command string
	prefix  []byte
}

func NewCtf(private port.PrivateSender, flag, command string) *Ctf {
	return &Ctf{private: private, flag: flag, command: command, prefix: []byte("felix")}
}

func (c *Ctf) GetCommand() string {
	return c.command
}

func (c *Ctf) GetAliases() []string {
	return []string{"ftc"}
}

func (c *Ctf) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, c.command, message)
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := c.private.DeleteMessage(ctx, message); err != nil {
		l.Warn().Err(err).Msg("failed to delete token message")
	}

	args := strings.Fields(ParseCommandArgs(message.Text))
	if len(args) == 0 || !c.matches(args[0]) {
		return nil
	}

	if err := c.private.SendDirectMessage(ctx, message.Author.ID, c.flag); err != nil {
		l.Debug().Err(err).Msg("flag not delivered")
	}

	return nil
}

func (c *Ctf) matches(token string) bool {
	digest := sha1.Sum([]byte(token))
	return bytes.HasPrefix(digest[:], c.prefix)
}
