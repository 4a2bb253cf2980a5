package service

import (
	"felix/internal/core/domain"
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"
)

// Trigger is a single passive rule. Triggers are independent of each other, every trigger whose
// pattern matches a message produces a reply.
type Trigger struct {
	Name    string
	Pattern *regexp.Regexp
	Reply   func(now time.Time) string
}

func cannedReply(text string) func(time.Time) string {
	return func(time.Time) string { return text }
}

type PassiveMatcher struct {
	triggers  []Trigger
	converter *UnitConverter
	now       func() time.Time
	coin      func() bool
}

func NewPassiveMatcher(converter *UnitConverter) *PassiveMatcher {
	p := &PassiveMatcher{
		converter: converter,
		now:       time.Now,
		coin:      func() bool { return rand.Float64() >= 0.5 },
	}

	p.triggers = []Trigger{
		{
			Name:    "twist",
			Pattern: regexp.MustCompile(`(?i)what a twist`),
			Reply:   cannedReply("` - directed by M. Night Shyamalan.`"),
		},
		{
			Name: "year",
			Pattern: regexp.MustCompile(`(?i)(?:the|this) (?:current )?year is ` +
				`(?:almost |basically )?(?:over|done|finished)`),
			Reply: YearProgress,
		},
		{
			Name:    "bobs",
			Pattern: regexp.MustCompile(`(?i)send bobs and vagene`),
			Reply:   cannedReply("😏 *sensible chuckle*"),
		},
		{
			Name:    "greeting",
			Pattern: regexp.MustCompile(`(?i)^(?:hi|what's up|yo|hey|hello) felix`),
			Reply:   cannedReply("hello"),
		},
		{
			Name:    "should",
			Pattern: regexp.MustCompile(`(?i)^felix should (?:i|he|she|they|we|<@!?\d+>)`),
			Reply:   p.entropyAnswer,
		},
		{
			Name:    "html",
			Pattern: regexp.MustCompile(`(?i)^html is a programming language`),
			Reply:   cannedReply("no it's not, don't be silly"),
		},
		{
			Name:    "fight",
			Pattern: regexp.MustCompile(`(?i)^you wanna fight, felix\?`),
			Reply:   cannedReply("bring it on pal (╯°□°）╯︵ ┻━┻"),
		},
		{
			Name:    "arrays0",
			Pattern: regexp.MustCompile(`(?i)^arrays start at 0`),
			Reply:   cannedReply("arrays definitely start at 0"),
		},
		{
			Name:    "arrays1",
			Pattern: regexp.MustCompile(`(?i)^arrays start at 1`),
			Reply:   cannedReply("arrays do not start at 1, they start at 0"),
		},
		{
			Name:    "meow",
			Pattern: regexp.MustCompile(`(?i)^felix meow`),
			Reply:   cannedReply("ฅ^•ﻌ•^ฅ"),
		},
	}

	return p
}

// Match returns the replies for every trigger matching the message, in trigger order, followed by
// the unit conversion if the message contains a known quantity. Bot authors and direct messages
// never produce replies.
func (p *PassiveMatcher) Match(message *domain.Message) []string {
	if message.Author.Bot || message.IsDirect() {
		return nil
	}

	var replies []string

	now := p.now()
	for _, trigger := range p.triggers {
		if trigger.Pattern.MatchString(message.Text) {
			replies = append(replies, trigger.Reply(now))
		}
	}

	if conversion, ok := p.converter.TryConvert(message.Text); ok {
		replies = append(replies, conversion.String())
	}

	return replies
}

func (p *PassiveMatcher) entropyAnswer(time.Time) string {
	if p.coin() {
		return "the answer I am getting from my entropy is: Yes."
	}

	return "the answer I am getting from my entropy is: No."
}

// YearProgress reports how much of the current UTC calendar year has elapsed.
func YearProgress(now time.Time) string {
	now = now.UTC()
	start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)

	percent := float64(now.Sub(start)) / float64(end.Sub(start)) * 100

	return fmt.Sprintf("For your information, the year is %.1f%% over!", percent)
}
