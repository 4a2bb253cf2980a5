package lookup

import (
	"context"
	"encoding/json"
	"felix/internal/adapters/fetch"
	"felix/internal/core/domain"
	"fmt"
	"net/url"
)

// Urban looks up terms on Urban Dictionary.
type Urban struct {
	endpoint string
}

func NewUrban(endpoint string) *Urban {
	return &Urban{endpoint: endpoint}
}

type urbanResponse struct {
	List []struct {
		Definition string `json:"definition"`
		Example    string `json:"example"`
	} `json:"list"`
}

func (u *Urban) Define(ctx context.Context, term string) ([]domain.Definition, error) {
	res, err := fetch.Get(ctx, u.endpoint+"?term="+url.QueryEscape(term), nil)
	if err != nil {
		return nil, fmt.Errorf("urban dictionary request failed: %w", err)
	}

	var result urbanResponse
	if err := json.Unmarshal(res.Body, &result); err != nil {
		return nil, fmt.Errorf("error unmarshalling urban dictionary response: %w", err)
	}

	definitions := make([]domain.Definition, 0, len(result.List))
	for _, entry := range result.List {
		definitions = append(definitions, domain.Definition{
			Definition: entry.Definition,
			Example:    entry.Example,
		})
	}

	return definitions, nil
}
