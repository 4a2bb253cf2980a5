package command

import (
	"context"
	"crypto/sha1"
	"errors"
	"felix/internal/core/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockPrivateSender struct {
	deleted   []string
	delivered map[string]string
	dmErr     error
}

func (m *MockPrivateSender) SendDirectMessage(_ context.Context, userID string, text string) error {
	if m.dmErr != nil {
		return m.dmErr
	}
	if m.delivered == nil {
		m.delivered = make(map[string]string)
	}
	m.delivered[userID] = text
	return nil
}

func (m *MockPrivateSender) DeleteMessage(_ context.Context, message *domain.Message) error {
	m.deleted = append(m.deleted, message.ID)
	return nil
}

func TestCtf_Respond(t *testing.T) {
	digest := sha1.Sum([]byte("Open-Sesame"))

	type TestCase struct {
		description string
		text        string
		dmErr       error
		wantFlag    bool
	}

	testCases := []TestCase{
		{description: "matching token", text: "ftc Open-Sesame", wantFlag: true},
		{description: "token is case sensitive", text: "ftc open-sesame", wantFlag: false},
		{description: "wrong token", text: "ctf guess", wantFlag: false},
		{description: "no token", text: "ctf", wantFlag: false},
		{description: "private messages disabled", text: "ftc Open-Sesame", dmErr: errors.New("forbidden")},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			private := &MockPrivateSender{dmErr: testCase.dmErr}
			cmd := NewCtf(private, "flag{felix}", "ctf")
			cmd.prefix = digest[:5]

			err := cmd.Respond(t.Context(), time.Second, newMessage(testCase.text))
			require.NoError(t, err)

			assert.Equal(t, []string{"10"}, private.deleted)
			if testCase.wantFlag {
				assert.Equal(t, map[string]string{"40": "flag{felix}"}, private.delivered)
			} else {
				assert.Empty(t, private.delivered)
			}
		})
	}
}

func TestCtf_DefaultPrefix(t *testing.T) {
	cmd := NewCtf(&MockPrivateSender{}, "flag", "ctf")

	assert.Equal(t, []byte("felix"), cmd.prefix)
	assert.False(t, cmd.matches("felix"))
}
