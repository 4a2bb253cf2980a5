package lookup

import (
	"context"
	"encoding/json"
	"felix/internal/adapters/fetch"
	"felix/internal/core/domain"
	"fmt"
	"net/http"
	"net/url"
)

// EMKC reads per-member message statistics.
type EMKC struct {
	endpoint string
}

func NewEMKC(endpoint string) *EMKC {
	return &EMKC{endpoint: endpoint}
}

type emkcStats []struct {
	Messages int `json:"messages"`
}

// MessageCount returns the number of messages of a user, 0 if the user has none on record.
func (e *EMKC) MessageCount(ctx context.Context, userID string) (int, error) {
	res, err := fetch.Get(ctx, e.endpoint+"?discord_id="+url.QueryEscape(userID), nil)
	if err != nil {
		return 0, fmt.Errorf("stats request failed: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("stats: %w: %d", domain.ErrUnexpectedStatus, res.StatusCode)
	}

	var stats emkcStats
	if err := json.Unmarshal(res.Body, &stats); err != nil {
		return 0, fmt.Errorf("error unmarshalling stats response: %w", err)
	}

	if len(stats) == 0 {
		return 0, nil
	}

	return stats[0].Messages, nil
}
