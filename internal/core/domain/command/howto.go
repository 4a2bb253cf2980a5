package command

import (
	"context"
	"felix/internal/core/domain"
	"felix/internal/core/port"
	"time"
)

const markdownHelpURL = "https://support.discordapp.com/hc/en-us/articles/" +
	"210298617-Markdown-Text-101-Chat-Formatting-Bold-Italic-Underline-"

const codeblockInstructions = "Discord has an awesome feature called **Text Markdown** which " +
	"supports code with full syntax highlighting using codeblocks." +
	"To use codeblocks all you need to do is properly place the " +
	"backtick characters *(not single quotes)* and specify your " +
	"language *(optional, but preferred)*.\n\n" +
	"**This is what your message should look like:**\n" +
	"*\\`\\`\\`[programming language]\nYour code here\n\\`\\`\\`*\n\n" +
	"**Here's an example:**\n" +
	"*\\`\\`\\`python\nprint('Hello world!')\n\\`\\`\\`*\n\n" +
	"**This will result in the following:**\n" +
	"```python\nprint('Hello world!')\n```\n" +
	"**NOTE:** Codeblocks are also used to run code via `/run`."

const askInstructions = "From time to time you'll stumble upon a question like this:\n" +
	"*Is anyone good at [this]?* / *Does anyone know [topic]?*\n" +
	"Please **just ask** your question.\n\n" +
	"• Make sure your question is easy to understand.\n" +
	"• Use the appropriate channel to ask your question.\n" +
	"• Always search before you ask (the internet is a big place).\n" +
	"• Be patient (someone will eventually try to help you)."

const fontInstructions = "Discord supports font formatting with the following options:\n" +
	"*italics*\u1160 \u1160 \u1160 \u1160\u1160\u1160\u1160" +
	"\\*italics\\* | \\_italics\\_\n" +
	"**bold**\u1160 \u1160 \u1160 \u1160 \u1160 \u1160\u1160" +
	"\\*\\*bold\\*\\*\n" +
	"***bold italics***\u1160 \u1160 \u1160\u1160\u1160" +
	"\\*\\*\\*bold italics\\*\\*\\*\n" +
	"__underline__\u1160 \u1160\u1160\u1160\u1160\u1160" +
	"\\_\\_underline\\_\\_\n" +
	"__*underline italics*__\u1160 \u1160 \u1160 " +
	"\\_\\_\\*underline italics\\*\\_\\_\n" +
	"__**underline bold**__\u1160\u1160\u1160\u1160" +
	"\\_\\_\\*\\*underline bold\\*\\*\\_\\_\n" +
	"__***underline bold italics***__\u1160 " +
	"\\_\\_\\*\\*\\*underline bold italics\\*\\*\\*\\_\\_\n" +
	"~~strikethrough~~\u1160 \u1160 \u1160 \u1160" +
	"\\~\\~strikethrough\\~\\~\n"

const howtoHelp = "```\n" +
	"Show useful information for newcomers\n\n" +
	"Commands:\n" +
	"  ask        How to properly ask a question\n" +
	"  codeblocks Instructions on how to properly paste code\n" +
	"  font       Instructions on how to format your text\n" +
	"```"

type howtoTopic struct {
	aliases []string
	embed   domain.Embed
}

var howtoTopics = map[string]howtoTopic{
	"codeblocks": {
		aliases: []string{"codeblock", "code-blocks", "code-block", "code"},
		embed: domain.Embed{
			Title:       "Text markdown",
			URL:         markdownHelpURL,
			Description: codeblockInstructions,
			Color:       Green,
		},
	},
	"ask": {
		aliases: []string{"questions", "question"},
		embed: domain.Embed{
			Title:       "Just ask",
			Description: askInstructions,
			Color:       Green,
		},
	},
	"font": {
		aliases: []string{"format", "formatting", "write"},
		embed: domain.Embed{
			Title:       "Font Formatting",
			URL:         markdownHelpURL,
			Description: fontInstructions,
			Color:       Green,
		},
	},
}

// Howto posts one of the newcomer guides, or the list of guides when none is named.
type Howto struct {
	sender  port.Replier
	command string
}

func NewHowto(sender port.Replier, command string) *Howto {
	return &Howto{sender: sender, command: command}
}

func (h *Howto) GetCommand() string {
	return h.command
}

func (h *Howto) GetAliases() []string {
	return []string{"how-to", "info"}
}

func (h *Howto) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := requestLogger(ctx, h.command, message)
	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	topic, ok := lookupTopic(ParseCommand(ParseCommandArgs(message.Text)))
	if !ok {
		_, err := h.sender.SendMessageReply(ctx, message, howtoHelp)
		return err
	}

	embed := topic.embed

	return h.sender.SendEmbedReply(ctx, message, &embed)
}

func lookupTopic(name string) (howtoTopic, bool) {
	if topic, ok := howtoTopics[name]; ok {
		return topic, true
	}

	for _, topic := range howtoTopics {
		for _, alias := range topic.aliases {
			if alias == name {
				return topic, true
			}
		}
	}

	return howtoTopic{}, false
}
