package lookup

import (
	"context"
	"errors"
	"fmt"

	"github.com/revrost/go-openrouter"
)

type openRouterClient interface {
	CreateChatCompletion(ctx context.Context,
		ccr openrouter.ChatCompletionRequest) (openrouter.ChatCompletionResponse, error)
}

// OpenRouter answers questions with a chat completion model.
type OpenRouter struct {
	client       openRouterClient
	model        string
	systemPrompt string
}

func NewOpenRouter(apiKey, model, systemPrompt string) *OpenRouter {
	return &OpenRouter{
		client: openrouter.NewClient(
			apiKey,
			openrouter.WithXTitle("felix"),
		),
		model:        model,
		systemPrompt: systemPrompt,
	}
}

func (o *OpenRouter) Answer(ctx context.Context, question string) (string, error) {
	ccr := openrouter.ChatCompletionRequest{
		Model: o.model,
		Messages: []openrouter.ChatCompletionMessage{
			{
				Role:    openrouter.ChatMessageRoleSystem,
				Content: openrouter.Content{Text: o.systemPrompt},
			},
			{
				Role:    openrouter.ChatMessageRoleUser,
				Content: openrouter.Content{Text: question},
			},
		},
	}

	resp, err := o.client.CreateChatCompletion(ctx, ccr)
	if err != nil {
		return "", fmt.Errorf("openrouter API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no choices returned from openrouter response")
	}

	return resp.Choices[0].Message.Content.Text, nil
}
