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

// NASA fetches the astronomy picture of the day.
type NASA struct {
	endpoint string
	apiKey   string
}

func NewNASA(endpoint, apiKey string) *NASA {
	return &NASA{endpoint: endpoint, apiKey: apiKey}
}

type apodResponse struct {
	Code        int    `json:"code"`
	Msg         string `json:"msg"`
	Title       string `json:"title"`
	Explanation string `json:"explanation"`
	Date        string `json:"date"`
	MediaType   string `json:"media_type"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl"`
	Copyright   string `json:"copyright"`
}

// Picture returns a BadArgumentError carrying the upstream message when the API reports an error
// code in its body.
func (n *NASA) Picture(ctx context.Context, date string) (domain.Picture, error) {
	q := url.Values{}
	q.Set("api_key", n.apiKey)
	q.Set("date", date)

	res, err := fetch.Get(ctx, n.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return domain.Picture{}, fmt.Errorf("apod request failed: %w", err)
	}

	var apod apodResponse
	if err := json.Unmarshal(res.Body, &apod); err != nil {
		return domain.Picture{}, fmt.Errorf("error unmarshalling apod response: %w", err)
	}

	if apod.Code != 0 && apod.Code != http.StatusOK {
		msg := apod.Msg
		if msg == "" {
			msg = "Error"
		}
		return domain.Picture{}, domain.NewBadArgument("%s", msg)
	}

	return domain.Picture{
		Title:       apod.Title,
		Explanation: apod.Explanation,
		Date:        apod.Date,
		MediaType:   apod.MediaType,
		URL:         apod.URL,
		HDURL:       apod.HDURL,
		Copyright:   apod.Copyright,
	}, nil
}
