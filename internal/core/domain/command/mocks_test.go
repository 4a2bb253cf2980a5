package command

import (
	"context"
	"felix/internal/core/domain"
)

// MockReplier records everything a handler sends.
type MockReplier struct {
	Messages []string
	Embeds   []*domain.Embed
	Errors   []error
	err      error
}

func (m *MockReplier) SendMessageReply(_ context.Context, _ *domain.Message, text string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.Messages = append(m.Messages, text)
	return "1", nil
}

func (m *MockReplier) SendChatAction(_ context.Context, _ string, _ domain.Action) {
	// mocked
}

func (m *MockReplier) NotifyAndReturnError(_ context.Context, err error, _ *domain.Message) error {
	m.Errors = append(m.Errors, err)
	return err
}

func (m *MockReplier) SendEmbedReply(_ context.Context, _ *domain.Message, embed *domain.Embed) error {
	if m.err != nil {
		return m.err
	}
	m.Embeds = append(m.Embeds, embed)
	return nil
}

func fixedPicker(n int) func(int) int {
	return func(int) int { return n }
}

func newMessage(text string) *domain.Message {
	return &domain.Message{
		ID:        "10",
		ChannelID: "20",
		GuildID:   "30",
		Text:      text,
		Author: domain.User{
			ID:          "40",
			Username:    "alice",
			DisplayName: "Alice",
			AvatarURL:   "https://cdn.example/alice.png",
		},
	}
}
