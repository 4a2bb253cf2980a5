package lookup

import (
	"context"
	"encoding/json"
	"felix/internal/adapters/fetch"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Giphy searches gifs on the Giphy API.
type Giphy struct {
	endpoint string
	apiKey   string
}

func NewGiphy(endpoint, apiKey string) *Giphy {
	return &Giphy{endpoint: endpoint, apiKey: apiKey}
}

type giphyResponse struct {
	Data []struct {
		Images struct {
			Original struct {
				URL string `json:"url"`
			} `json:"original"`
		} `json:"images"`
	} `json:"data"`
	Message string `json:"message"`
}

func (g *Giphy) SearchGifs(ctx context.Context, terms string, limit int) ([]string, error) {
	q := url.Values{}
	q.Set("api_key", g.apiKey)
	q.Set("q", terms)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("rating", "R")
	q.Set("lang", "en")

	res, err := fetch.Get(ctx, g.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("giphy request failed: %w", err)
	}

	var result giphyResponse
	if err := json.Unmarshal(res.Body, &result); err != nil {
		return nil, fmt.Errorf("error unmarshalling giphy response: %w", err)
	}

	if result.Data == nil {
		if strings.Contains(result.Message, "Invalid authentication credentials") {
			log.Error().Msg("Giphy API key is not valid")
		}
		return nil, nil
	}

	urls := make([]string, 0, len(result.Data))
	for _, gif := range result.Data {
		urls = append(urls, gif.Images.Original.URL)
	}

	return urls, nil
}
