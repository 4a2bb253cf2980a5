package lookup

import (
	"context"
	"felix/internal/adapters/fetch"
	"fmt"
	"net/url"
	"strings"
)

// Wttr fetches plain text weather reports from wttr.in.
type Wttr struct {
	endpoint string
}

func NewWttr(endpoint string) *Wttr {
	return &Wttr{endpoint: strings.TrimSuffix(endpoint, "/")}
}

func (w *Wttr) Report(ctx context.Context, location, options string) (string, error) {
	res, err := fetch.Get(ctx, w.endpoint+"/"+url.PathEscape(location)+"?"+options, nil)
	if err != nil {
		return "", fmt.Errorf("weather request failed: %w", err)
	}

	return string(res.Body), nil
}
