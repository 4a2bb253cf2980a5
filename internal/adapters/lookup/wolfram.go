package lookup

import (
	"context"
	"felix/internal/adapters/fetch"
	"fmt"
	"net/url"
)

// Wolfram answers questions with the Wolfram Alpha short answers API. The API replies with a
// non-2xx status and a plain text explanation when it cannot answer, that text is the answer.
type Wolfram struct {
	endpoint string
	appID    string
}

func NewWolfram(endpoint, appID string) *Wolfram {
	return &Wolfram{endpoint: endpoint, appID: appID}
}

func (w *Wolfram) Answer(ctx context.Context, question string) (string, error) {
	q := url.Values{}
	q.Set("i", question)
	q.Set("appid", w.appID)

	res, err := fetch.Get(ctx, w.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("wolfram request failed: %w", err)
	}

	return string(res.Body), nil
}
