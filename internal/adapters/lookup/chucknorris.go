package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"felix/internal/adapters/fetch"
	"fmt"
	"net/url"
	"strings"
)

// ChuckNorris talks to the api.chucknorris.io joke service.
type ChuckNorris struct {
	endpoint string
}

func NewChuckNorris(endpoint string) *ChuckNorris {
	return &ChuckNorris{endpoint: strings.TrimSuffix(endpoint, "/")}
}

func (c *ChuckNorris) Categories(ctx context.Context) ([]string, error) {
	body, err := fetch.Download(ctx, c.endpoint+"/categories")
	if err != nil {
		return nil, fmt.Errorf("joke categories request failed: %w", err)
	}

	var categories []string
	if err := json.Unmarshal(body, &categories); err != nil {
		return nil, fmt.Errorf("error unmarshalling joke categories: %w", err)
	}

	return categories, nil
}

type jokeResponse struct {
	Value string `json:"value"`
}

func (c *ChuckNorris) RandomJoke(ctx context.Context, category string) (string, error) {
	body, err := fetch.Download(ctx, c.endpoint+"/random?category="+url.QueryEscape(category))
	if err != nil {
		return "", fmt.Errorf("joke request failed: %w", err)
	}

	var joke jokeResponse
	if err := json.Unmarshal(body, &joke); err != nil {
		return "", fmt.Errorf("error unmarshalling joke: %w", err)
	}

	if joke.Value == "" {
		return "", errors.New("empty joke")
	}

	return joke.Value, nil
}
