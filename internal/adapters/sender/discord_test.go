package sender

import (
	"context"
	"errors"
	"felix/internal/core/domain"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSession struct {
	mock.Mock
}

func (m *MockSession) ChannelMessageSend(channelID string, content string,
	_ ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, content)
	msg, _ := args.Get(0).(*discordgo.Message)
	return msg, args.Error(1)
}

func (m *MockSession) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed,
	_ ...discordgo.RequestOption) (*discordgo.Message, error) {
	args := m.Called(channelID, embed)
	msg, _ := args.Get(0).(*discordgo.Message)
	return msg, args.Error(1)
}

func (m *MockSession) ChannelTyping(channelID string, _ ...discordgo.RequestOption) error {
	args := m.Called(channelID)
	return args.Error(0)
}

func (m *MockSession) UserChannelCreate(recipientID string,
	_ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	args := m.Called(recipientID)
	ch, _ := args.Get(0).(*discordgo.Channel)
	return ch, args.Error(1)
}

func (m *MockSession) ChannelMessageDelete(channelID, messageID string, _ ...discordgo.RequestOption) error {
	args := m.Called(channelID, messageID)
	return args.Error(0)
}

func TestDiscordSender_SendMessageReply(t *testing.T) {
	longText := strings.Repeat("x", DiscordMessageLimit+10)

	tests := []struct {
		name      string
		text      string
		wantCalls int
		wantID    string
		setupMock func(ms *MockSession)
		wantErr   bool
	}{
		{
			name:      "single message",
			text:      "hello",
			wantCalls: 1,
			wantID:    "123",
			setupMock: func(ms *MockSession) {
				ms.On("ChannelMessageSend", "c1", "hello").
					Return(&discordgo.Message{ID: "123"}, nil).
					Once()
			},
		},
		{
			name:      "message chunked in two",
			text:      longText,
			wantCalls: 2,
			wantID:    "456",
			setupMock: func(ms *MockSession) {
				ms.On("ChannelMessageSend", "c1", mock.MatchedBy(func(content string) bool {
					return len(content) <= DiscordMessageLimit
				})).
					Return(&discordgo.Message{ID: "456"}, nil).
					Twice()
			},
		},
		{
			name:      "send fails on first",
			text:      "fail",
			wantCalls: 1,
			setupMock: func(ms *MockSession) {
				ms.On("ChannelMessageSend", mock.Anything, mock.Anything).Return(nil, errors.New("fail")).Once()
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ms := new(MockSession)
			sender := NewDiscord(ms)

			msg := &domain.Message{ID: "42", ChannelID: "c1"}

			tc.setupMock(ms)
			id, err := sender.SendMessageReply(t.Context(), msg, tc.text)

			if tc.wantErr {
				require.ErrorIs(t, err, domain.ErrSendingReplyFailed)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantID, id)
			}
			ms.AssertNumberOfCalls(t, "ChannelMessageSend", tc.wantCalls)
			ms.AssertExpectations(t)
		})
	}
}

func TestChunkText(t *testing.T) {
	tests := []struct {
		description string
		text        string
		limit       int
		want        []string
	}{
		{"short", "abc", 5, []string{"abc"}},
		{"exact", "abcde", 5, []string{"abcde"}},
		{"split", "abcdefg", 3, []string{"abc", "def", "g"}},
		{"multibyte runes stay whole", "äöüß", 3, []string{"äöü", "ß"}},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.want, chunkText(tt.text, tt.limit))
		})
	}
}

func TestDiscordSender_SendEmbedReply(t *testing.T) {
	ms := new(MockSession)
	sender := NewDiscord(ms)

	embed := &domain.Embed{
		Title:    "Links",
		Color:    0x2ECC71,
		ImageURL: "https://http.cat/404.jpg",
		Footer:   &domain.EmbedFooter{Text: "Provided by: https://http.cat"},
		Fields:   []domain.EmbedField{{Name: "Username", Value: "felix", Inline: true}},
	}

	ms.On("ChannelMessageSendEmbed", "c1", mock.MatchedBy(func(e *discordgo.MessageEmbed) bool {
		return e.Title == "Links" &&
			e.Color == 0x2ECC71 &&
			e.Image != nil && e.Image.URL == "https://http.cat/404.jpg" &&
			e.Thumbnail == nil &&
			e.Author == nil &&
			e.Footer != nil && e.Footer.Text == "Provided by: https://http.cat" &&
			len(e.Fields) == 1 && e.Fields[0].Inline
	})).Return(&discordgo.Message{}, nil).Once()

	err := sender.SendEmbedReply(t.Context(), &domain.Message{ChannelID: "c1"}, embed)
	require.NoError(t, err)
	ms.AssertExpectations(t)

	ms.On("ChannelMessageSendEmbed", "c2", mock.Anything).Return(nil, errors.New("missing access")).Once()
	err = sender.SendEmbedReply(t.Context(), &domain.Message{ChannelID: "c2"}, embed)
	require.ErrorIs(t, err, domain.ErrSendingReplyFailed)
}

func TestDiscordSender_SendDirectMessage(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(ms *MockSession)
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(ms *MockSession) {
				ms.On("UserChannelCreate", "u1").Return(&discordgo.Channel{ID: "dm1"}, nil).Once()
				ms.On("ChannelMessageSend", "dm1", "secret").Return(&discordgo.Message{ID: "m"}, nil).Once()
			},
		},
		{
			name: "private channel refused",
			setupMock: func(ms *MockSession) {
				ms.On("UserChannelCreate", "u1").Return(nil, errors.New("forbidden")).Once()
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ms := new(MockSession)
			sender := NewDiscord(ms)
			tc.setupMock(ms)

			err := sender.SendDirectMessage(t.Context(), "u1", "secret")
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			ms.AssertExpectations(t)
		})
	}
}

func TestDiscordSender_DeleteMessage(t *testing.T) {
	ms := new(MockSession)
	sender := NewDiscord(ms)

	ms.On("ChannelMessageDelete", "c1", "m1").Return(nil).Once()

	require.NoError(t, sender.DeleteMessage(t.Context(), &domain.Message{ID: "m1", ChannelID: "c1"}))
	ms.AssertExpectations(t)
}

func TestDiscordSender_NotifyAndReturnError(t *testing.T) {
	tests := []struct {
		name          string
		sendMsgRetErr error
		wantOriginal  bool
	}{
		{name: "send ok", wantOriginal: true},
		{name: "send fails", sendMsgRetErr: errors.New("sendfail")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ms := new(MockSession)
			sender := NewDiscord(ms)

			original := errors.New("original")
			msg := &domain.Message{ID: "55", ChannelID: "88"}
			ms.On("ChannelMessageSend", "88", "original").
				Return(&discordgo.Message{ID: "101"}, tc.sendMsgRetErr)

			err := sender.NotifyAndReturnError(t.Context(), original, msg)

			if tc.wantOriginal {
				require.ErrorIs(t, err, original)
			} else {
				require.ErrorIs(t, err, domain.ErrSendingReplyFailed)
			}
			ms.AssertExpectations(t)
		})
	}
}

func TestSendChatAction_StopsOnContextCancel(t *testing.T) {
	ms := new(MockSession)
	sender := NewDiscord(ms)

	ctx, cancel := context.WithCancel(t.Context())

	ms.On("ChannelTyping", "c1").Return(nil)

	done := make(chan struct{})
	go func() {
		sender.SendChatAction(ctx, "c1", domain.Typing)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("action routine did not stop")
	}

	ms.AssertNumberOfCalls(t, "ChannelTyping", 1)
}

func TestSendChatAction_StopsOnError(t *testing.T) {
	ms := new(MockSession)
	sender := NewDiscord(ms)

	ms.On("ChannelTyping", "c1").Return(errors.New("missing access")).Once()

	sender.SendChatAction(t.Context(), "c1", domain.Typing)
	ms.AssertExpectations(t)
}
