package fetch

import (
	"context"
	"felix/internal/core/domain"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Response is the raw result of a GET request.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the upstream answered with a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

// Get performs a single GET request and returns the body regardless of the status code. Some
// providers put the interesting part of an error into the body, callers decide what to do.
func Get(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err = fmt.Errorf("error creating request %w", err)
		log.Error().Err(err).Str("url", url).Send()
		return nil, err
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error executing request %w", err)
	}
	defer res.Body.Close()

	buf, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response %w", err)
	}

	log.Debug().Str("url", url).Int("status", res.StatusCode).Int("bytes", len(buf)).Msg("fetched")

	return &Response{StatusCode: res.StatusCode, Body: buf}, nil
}

// Download returns the body of a URL and fails on any non-2xx status.
func Download(ctx context.Context, url string) ([]byte, error) {
	res, err := Get(ctx, url, nil)
	if err != nil {
		return nil, err
	}

	if !res.OK() {
		err = fmt.Errorf("%w on download: %d", domain.ErrUnexpectedStatus, res.StatusCode)
		log.Error().Err(err).Str("url", url).Send()
		return nil, err
	}

	return res.Body, nil
}
