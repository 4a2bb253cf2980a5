package command

import (
	"context"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"strconv"
	"time"
)

// programmingSince is the year the channel owner started programming.
const programmingSince = 1994

type Faq struct {
	sender  port.EmbedSender
	command string
	now     func() time.Time
}

func NewFaq(sender port.EmbedSender, command string) *Faq {
	return &Faq{sender: sender, command: command, now: time.Now}
}

func (f *Faq) GetCommand() string {
	return f.command
}

func (f *Faq) GetAliases() []string {
	return nil
}

func (f *Faq) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, f.command, message)
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return f.sender.SendEmbedReply(ctx, message, &domain.Embed{
		Color:  Green,
		Author: &domain.EmbedAuthor{Name: "Frequently Asked Questions"},
		Fields: faqFields(f.now()),
	})
}

func faqFields(now time.Time) []domain.EmbedField {
	return []domain.EmbedField{
		{
			Name: "What do you do professionally?",
			Value: "In addition to YouTube, Engineer Man works on various client " +
				"projects and oversees several projects.",
		},
		{
			Name:  "How long have you been programming?",
			Value: "About " + strconv.Itoa(now.Year()-programmingSince) + " years",
		},
		{
			Name:  "What distro and editor do you use?",
			Value: "Distro: Xubuntu, Editor: Atom",
		},
		{
			Name: "I want to get into programming, how should I get started?",
			Value: "First, figure out what sort of programming interests you, " +
				"such as web, desktop, game, systems, etc. " +
				"From there, choose a language that relates to that area and " +
				"begin reviewing documentation, reading tutorials, and " +
				"watching videos. Finally, start creating your own projects.",
		},
		{
			Name: "What is the best way to learn Language X",
			Value: "Most languages are similar in the types of things they " +
				"accomplish, where they differ is in how they accomplish them. " +
				"If you're new to programming, it's important to learn " +
				"syntax first. After that, learning that language's standard " +
				"library is a good use of time. Beyond that, it's just " +
				"experimenting with the language and working on projects in " +
				"that language.",
		},
		{
			Name: "How can I stay focused/prevent burn out?",
			Value: "The best way is to try to finish something, anything, even " +
				"if it's not as complete as you want. Finishing things is " +
				"satisfying, and once you do you'll be more motivated to " +
				"improve what you have. Allowing a project to drone on " +
				"forever without finishing is a way to get bored with it.",
		},
	}
}
