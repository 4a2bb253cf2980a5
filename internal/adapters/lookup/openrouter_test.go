package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/revrost/go-openrouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockClient struct {
	createChatCompletionFunc func(ctx context.Context,
		ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

func (m *mockClient) CreateChatCompletion(ctx context.Context,
	ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error) {
	return m.createChatCompletionFunc(ctx, ccr)
}

func TestOpenRouter_Answer(t *testing.T) {
	testCases := []struct {
		name      string
		mockResp  openrouter.ChatCompletionResponse
		mockErr   error
		want      string
		expectErr bool
	}{
		{
			name: "success",
			mockResp: openrouter.ChatCompletionResponse{
				Choices: []openrouter.ChatCompletionChoice{{
					Message: openrouter.ChatCompletionMessage{
						Content: openrouter.Content{Text: "42"},
					},
				}},
			},
			want: "42",
		},
		{
			name:      "api error",
			mockErr:   errors.New("rate limited"),
			expectErr: true,
		},
		{
			name:      "no choices",
			mockResp:  openrouter.ChatCompletionResponse{},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got openrouter.ChatCompletionRequest
			o := &OpenRouter{
				client: &mockClient{
					createChatCompletionFunc: func(_ context.Context,
						ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error) {
						got = ccr
						return tc.mockResp, tc.mockErr
					},
				},
				model:        "openai/gpt-4.1",
				systemPrompt: "answer briefly",
			}

			answer, err := o.Answer(t.Context(), "meaning of life")
			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, answer)
			assert.Equal(t, "openai/gpt-4.1", got.Model)
			require.Len(t, got.Messages, 2)
			assert.Equal(t, openrouter.ChatMessageRoleSystem, got.Messages[0].Role)
			assert.Equal(t, "answer briefly", got.Messages[0].Content.Text)
			assert.Equal(t, "meaning of life", got.Messages[1].Content.Text)
		})
	}
}
