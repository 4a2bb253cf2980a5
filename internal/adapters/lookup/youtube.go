package lookup

import (
	"context"
	"encoding/json"
	"felix/internal/adapters/fetch"
	"felix/internal/core/domain"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const youtubePageSize = 50

// YouTube lists the videos of a single channel, newest first.
type YouTube struct {
	endpoint  string
	apiKey    string
	channelID string
}

func NewYouTube(endpoint, apiKey, channelID string) *YouTube {
	return &YouTube{endpoint: endpoint, apiKey: apiKey, channelID: channelID}
}

type youtubeResponse struct {
	Items []struct {
		ID struct {
			Kind    string `json:"kind"`
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title string `json:"title"`
		} `json:"snippet"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

func (y *YouTube) SearchPage(ctx context.Context, pageToken string) (domain.VideoPage, error) {
	q := url.Values{}
	q.Set("key", y.apiKey)
	q.Set("channelId", y.channelID)
	q.Set("part", "snippet,id")
	q.Set("order", "date")
	q.Set("maxResults", strconv.Itoa(youtubePageSize))
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}

	res, err := fetch.Get(ctx, y.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return domain.VideoPage{}, fmt.Errorf("youtube request failed: %w", err)
	}

	if !res.OK() {
		return domain.VideoPage{}, fmt.Errorf("youtube search: %w: %d", domain.ErrUnexpectedStatus, res.StatusCode)
	}

	var result youtubeResponse
	if err := json.Unmarshal(res.Body, &result); err != nil {
		return domain.VideoPage{}, fmt.Errorf("error unmarshalling youtube response: %w", err)
	}

	page := domain.VideoPage{NextPageToken: result.NextPageToken}
	for _, item := range result.Items {
		if !strings.Contains(item.ID.Kind, "youtube#video") {
			continue
		}
		page.Videos = append(page.Videos, domain.Video{ID: item.ID.VideoID, Title: item.Snippet.Title})
	}

	return page, nil
}
