package lookup

import (
	"context"
	"felix/internal/adapters/fetch"
	"fmt"
	"net/url"
	"strings"
)

// cheat.sh serves colored terminal output unless it believes it is talking to curl.
const cheatUserAgent = "curl/7.68.0"

type CheatSh struct {
	endpoint string
}

func NewCheatSh(endpoint string) *CheatSh {
	return &CheatSh{endpoint: strings.TrimSuffix(endpoint, "/")}
}

func (c *CheatSh) URL(topic string, terms []string) string {
	u := c.endpoint + "/" + url.QueryEscape(topic)
	if len(terms) > 0 {
		u += "/" + url.QueryEscape(strings.Join(terms, " "))
	}

	return u
}

func (c *CheatSh) Lookup(ctx context.Context, pageURL string) (string, error) {
	res, err := fetch.Get(ctx, pageURL, map[string]string{"User-Agent": cheatUserAgent})
	if err != nil {
		return "", fmt.Errorf("cheat sheet request failed: %w", err)
	}

	return string(res.Body), nil
}
