package command

import (
	"context"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"fmt"
	"slices"
	"strconv"
	"time"
)

// Status posts the picture a status image service has for an HTTP status code.
type Status struct {
	codes    func() ([]int, error)
	sender   port.Replier
	command  string
	aliases  []string
	imageURL string
	footer   string
	pick     func(int) int
}

func NewStatusCat(cache port.StatusCodes, sender port.Replier, command string) *Status {
	return &Status{
		codes:    cache.CatCodes,
		sender:   sender,
		command:  command,
		aliases:  []string{"cat"},
		imageURL: "https://http.cat/%d.jpg",
		footer:   "Provided by: https://http.cat",
		pick:     defaultPicker(),
	}
}

func NewStatusDog(cache port.StatusCodes, sender port.Replier, command string) *Status {
	return &Status{
		codes:    cache.DogCodes,
		sender:   sender,
		command:  command,
		aliases:  []string{"dog"},
		imageURL: "https://httpstatusdogs.com/img/%d.jpg",
		footer:   "Provided by: https://httpstatusdogs.com/",
		pick:     defaultPicker(),
	}
}

func (s *Status) GetCommand() string {
	return s.command
}

func (s *Status) GetAliases() []string {
	return s.aliases
}

func (s *Status) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, s.command, message)
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	codes, err := s.codes()
	if err != nil {
		return s.sender.NotifyAndReturnError(ctx, err, message)
	}

	code, err := s.selectCode(codes, ParseCommand(ParseCommandArgs(message.Text)))
	if err != nil {
		return s.sender.NotifyAndReturnError(ctx, err, message)
	}

	return s.sender.SendEmbedReply(ctx, message, &domain.Embed{
		ImageURL: fmt.Sprintf(s.imageURL, code),
		Footer:   &domain.EmbedFooter{Text: s.footer},
	})
}

// selectCode validates the requested code, or picks a random known code when none was given.
func (s *Status) selectCode(codes []int, arg string) (int, error) {
	if arg == "" {
		if len(codes) == 0 {
			return 0, domain.ErrNoResults
		}
		return codes[s.pick(len(codes))], nil
	}

	code, err := strconv.Atoi(arg)
	if err != nil {
		return 0, domain.NewBadArgument("Converting to \"int\" failed for parameter \"code\".")
	}

	if !slices.Contains(codes, code) {
		return 0, domain.NewBadArgument("Invalid status code: **%d**", code)
	}

	return code, nil
}
